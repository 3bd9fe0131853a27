package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/thesixthai/brandpulse/internal/model"
)

// Store is the sqlite snapshot store, the "store" half of the
// file-or-store ingestion contract. It holds raw account/post records
// only; derived results are never persisted.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed initializes) the snapshot store at
// the given path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			username     TEXT PRIMARY KEY,
			full_name    TEXT NOT NULL DEFAULT '',
			followers    INTEGER NOT NULL DEFAULT 0,
			following    INTEGER NOT NULL DEFAULT 0,
			country      TEXT NOT NULL DEFAULT '',
			external_url TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS posts (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			username    TEXT NOT NULL REFERENCES accounts(username) ON DELETE CASCADE,
			caption     TEXT NOT NULL DEFAULT '',
			hashtags    TEXT NOT NULL DEFAULT '[]',
			upload_date TEXT NOT NULL DEFAULT '',
			likes       INTEGER NOT NULL DEFAULT 0,
			comments    INTEGER NOT NULL DEFAULT 0,
			video_views INTEGER NOT NULL DEFAULT 0,
			url         TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_posts_username ON posts(username);
	`)
	if err != nil {
		return fmt.Errorf("initializing store schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAccounts replaces the stored snapshot with the given accounts.
// The swap is transactional: a failed import leaves the previous
// snapshot intact.
func (s *Store) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("clearing posts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("clearing accounts: %w", err)
	}

	accStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO accounts (username, full_name, followers, following, country, external_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing account insert: %w", err)
	}
	defer accStmt.Close()

	postStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO posts (username, caption, hashtags, upload_date, likes, comments, video_views, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing post insert: %w", err)
	}
	defer postStmt.Close()

	for _, a := range accounts {
		if _, err := accStmt.ExecContext(ctx, a.Username, a.FullName, a.Followers, a.Following, a.Country, a.ExternalURL); err != nil {
			return fmt.Errorf("inserting account %s: %w", a.Username, err)
		}
		for _, p := range a.Posts {
			tags, err := json.Marshal(p.Hashtags)
			if err != nil {
				return fmt.Errorf("encoding hashtags for %s: %w", a.Username, err)
			}
			if _, err := postStmt.ExecContext(ctx, a.Username, p.Caption, string(tags), p.UploadDate, p.Likes, p.Comments, p.VideoViews, p.URL); err != nil {
				return fmt.Errorf("inserting post for %s: %w", a.Username, err)
			}
		}
	}

	return tx.Commit()
}

// LoadAccounts reads the full stored snapshot, posts grouped under
// their accounts in insertion order. Rows with undecodable hashtag
// blobs keep the post and drop the hashtags.
func (s *Store) LoadAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT username, full_name, followers, following, country, external_url
		FROM accounts ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	index := map[string]int{}
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.Username, &a.FullName, &a.Followers, &a.Following, &a.Country, &a.ExternalURL); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		index[a.Username] = len(accounts)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	postRows, err := s.db.QueryContext(ctx, `
		SELECT username, caption, hashtags, upload_date, likes, comments, video_views, url
		FROM posts ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer postRows.Close()

	for postRows.Next() {
		var username, tags string
		var p model.Post
		if err := postRows.Scan(&username, &p.Caption, &tags, &p.UploadDate, &p.Likes, &p.Comments, &p.VideoViews, &p.URL); err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		_ = json.Unmarshal([]byte(tags), &p.Hashtags)
		if i, ok := index[username]; ok {
			accounts[i].Posts = append(accounts[i].Posts, p)
		}
	}
	if err := postRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating posts: %w", err)
	}

	return accounts, nil
}
