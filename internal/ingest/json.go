// Package ingest loads brand-account snapshots and search-interest
// series from their external sources: a JSON export, a CSV export, or
// the sqlite snapshot store.
//
// Loading is deliberately forgiving. Malformed individual records are
// skipped rather than failing the whole load, and an unreadable or
// unparseable source degrades to an empty data set so downstream
// consumers render "no data" instead of crashing.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thesixthai/brandpulse/internal/model"
)

// ReadAccounts decodes a JSON array of account records. Elements that
// fail to decode are dropped; the count of dropped records is returned
// so callers can report it.
func ReadAccounts(r io.Reader) ([]model.Account, int, error) {
	var raw []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("decoding account array: %w", err)
	}

	accounts := make([]model.Account, 0, len(raw))
	skipped := 0
	for _, msg := range raw {
		var a model.Account
		if err := json.Unmarshal(msg, &a); err != nil {
			skipped++
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts, skipped, nil
}

// LoadAccounts reads a snapshot from a JSON file. On any failure it
// returns an empty slice together with the error; callers that only
// care about display can use the empty snapshot as-is.
func LoadAccounts(path string) ([]model.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return []model.Account{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	accounts, _, err := ReadAccounts(f)
	if err != nil {
		return []model.Account{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return accounts, nil
}
