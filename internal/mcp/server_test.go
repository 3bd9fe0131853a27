package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/server"

	"github.com/thesixthai/brandpulse/internal/classify"
	"github.com/thesixthai/brandpulse/internal/interest"
	"github.com/thesixthai/brandpulse/internal/model"
	"github.com/thesixthai/brandpulse/internal/report"
	"github.com/thesixthai/brandpulse/internal/taxonomy"
)

func testServer(t *testing.T) *server.MCPServer {
	t.Helper()
	tax, err := taxonomy.New([]taxonomy.Theme{
		{Name: "Sustainability", Keywords: []string{"Solar panels", "Green Building"}},
		{Name: "Views", Keywords: []string{"Lake view"}},
	})
	if err != nil {
		t.Fatalf("taxonomy: %v", err)
	}

	accounts := []model.Account{
		{
			Username: "brandA", Country: "UAE", Followers: 1000,
			Posts: []model.Post{
				{Caption: "solar panels everywhere", UploadDate: "2024-01-10", Likes: 5, URL: "https://p/1"},
				{Caption: "solar panels again", UploadDate: "2024-02-10", Likes: 5, URL: "https://p/2"},
				{Caption: "solar panels once more", UploadDate: "2024-02-15", Likes: 5, URL: "https://p/3"},
				{Caption: "lake view suite", UploadDate: "2024-01-20", Likes: 2, URL: "https://p/4"},
			},
		},
		{
			Username: "brandB", Country: "USA", Followers: 200,
			Posts: []model.Post{{Caption: "hello", UploadDate: "2024-01-01", URL: "https://p/5"}},
		},
	}

	points := []interest.Point{}
	if p, ok := interest.NewPoint("2024-01-01", "UAE", "Sustainability", "solar panels", 10); ok {
		points = append(points, p)
	}
	if p, ok := interest.NewPoint("2024-02-01", "UAE", "Sustainability", "solar panels", 30); ok {
		points = append(points, p)
	}

	return NewServer(ServerConfig{
		Accounts:   accounts,
		Interest:   points,
		Classifier: classify.New(tax, 0),
	})
}

// callTool invokes an MCP tool through the server's JSON-RPC entry
// point and returns the text payload.
func callTool(t *testing.T, srv *server.MCPServer, name string, args map[string]interface{}) string {
	t.Helper()

	raw, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]interface{}{
			"name":      name,
			"arguments": args,
		},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	result := srv.HandleMessage(context.Background(), raw)
	respBytes, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	var resp struct {
		Result struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
			IsError bool `json:"isError"`
		} `json:"result"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		t.Fatalf("unmarshal response: %v\nraw: %s", err, respBytes)
	}
	if resp.Error != nil {
		t.Fatalf("JSON-RPC error: %d %s", resp.Error.Code, resp.Error.Message)
	}
	if resp.Result.IsError {
		if len(resp.Result.Content) > 0 {
			t.Fatalf("tool error: %s", resp.Result.Content[0].Text)
		}
		t.Fatal("tool error with no content")
	}
	if len(resp.Result.Content) == 0 {
		t.Fatal("no content in result")
	}
	return resp.Result.Content[0].Text
}

func decodeTable(t *testing.T, text string) report.Table {
	t.Helper()
	var tb report.Table
	if err := json.Unmarshal([]byte(text), &tb); err != nil {
		t.Fatalf("parsing table: %v\nraw: %s", err, text)
	}
	return tb
}

func TestNewServer(t *testing.T) {
	if srv := testServer(t); srv == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestBrandOverviewTool(t *testing.T) {
	srv := testServer(t)
	tb := decodeTable(t, callTool(t, srv, "brand_overview", nil))
	if len(tb.Rows) != 6 {
		t.Fatalf("overview rows = %+v", tb.Rows)
	}
	if tb.Rows[0][0] != "Total Brands" || tb.Rows[0][1] != "2" {
		t.Fatalf("first row = %v", tb.Rows[0])
	}
}

func TestBrandOverviewWithCountryFilter(t *testing.T) {
	srv := testServer(t)
	tb := decodeTable(t, callTool(t, srv, "brand_overview", map[string]interface{}{
		"countries": "UAE",
	}))
	if tb.Rows[0][1] != "1" {
		t.Fatalf("filtered Total Brands = %q, want 1", tb.Rows[0][1])
	}
}

func TestTopThemesTool(t *testing.T) {
	srv := testServer(t)
	tb := decodeTable(t, callTool(t, srv, "top_themes", map[string]interface{}{
		"limit": float64(5),
	}))
	if len(tb.Rows) != 2 {
		t.Fatalf("rows = %+v", tb.Rows)
	}
	if tb.Rows[0][0] != "Sustainability" || tb.Rows[0][1] != "3" {
		t.Fatalf("top theme = %v", tb.Rows[0])
	}
}

func TestThemeGrowthTool(t *testing.T) {
	srv := testServer(t)
	tb := decodeTable(t, callTool(t, srv, "theme_growth", nil))
	// Sustainability: 1 post then 2, slope 1, total 3 — growing.
	// Views: single month — excluded.
	if len(tb.Rows) != 1 {
		t.Fatalf("growth rows = %+v", tb.Rows)
	}
	if tb.Rows[0][0] != "Sustainability" {
		t.Fatalf("growth subject = %q", tb.Rows[0][0])
	}
	if tb.Rows[0][4] != "Strong Growth" {
		t.Fatalf("growth summary = %q", tb.Rows[0][4])
	}
}

func TestAccountsTableTool(t *testing.T) {
	srv := testServer(t)
	tb := decodeTable(t, callTool(t, srv, "accounts_table", map[string]interface{}{
		"accounts": "brandA",
	}))
	if len(tb.Rows) != 4 {
		t.Fatalf("rows = %d, want 4 (one per brandA post)", len(tb.Rows))
	}
	for _, row := range tb.Rows {
		if row[0] != "brandA" {
			t.Fatalf("row for %q leaked through account filter", row[0])
		}
	}
}

func TestTopAccountsTool(t *testing.T) {
	srv := testServer(t)
	tb := decodeTable(t, callTool(t, srv, "top_accounts", map[string]interface{}{
		"limit": float64(1),
	}))
	if len(tb.Rows) != 1 || tb.Rows[0][0] != "brandA" || tb.Rows[0][1] != "4" {
		t.Fatalf("top accounts = %+v", tb.Rows)
	}
}

func TestInterestOverviewTool(t *testing.T) {
	srv := testServer(t)
	text := callTool(t, srv, "interest_overview", nil)

	var out map[string]report.Table
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("parsing interest overview: %v", err)
	}
	themes, ok := out["theme_averages"]
	if !ok {
		t.Fatalf("sections = %v", out)
	}
	if len(themes.Rows) != 1 || themes.Rows[0][0] != "Sustainability" || themes.Rows[0][1] != "20.00" {
		t.Fatalf("theme averages = %+v", themes.Rows)
	}
}

func TestInvalidDateRange(t *testing.T) {
	srv := testServer(t)

	raw, _ := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]interface{}{
			"name":      "brand_overview",
			"arguments": map[string]interface{}{"date_from": "garbage"},
		},
	})
	result := srv.HandleMessage(context.Background(), raw)
	respBytes, _ := json.Marshal(result)

	var resp struct {
		Result struct {
			IsError bool `json:"isError"`
		} `json:"result"`
	}
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Result.IsError {
		t.Fatal("malformed date accepted, want tool error")
	}
}

func TestReadResource(t *testing.T) {
	srv := testServer(t)
	raw, _ := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "resources/read",
		"params":  map[string]interface{}{"uri": "brandpulse://stats"},
	})
	result := srv.HandleMessage(context.Background(), raw)
	respBytes, _ := json.Marshal(result)

	var resp struct {
		Result struct {
			Contents []struct {
				Text string `json:"text"`
			} `json:"contents"`
		} `json:"result"`
	}
	if err := json.Unmarshal(respBytes, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Result.Contents) == 0 {
		t.Fatal("no resource contents")
	}
	tb := decodeTable(t, resp.Result.Contents[0].Text)
	if len(tb.Rows) != 6 {
		t.Fatalf("stats rows = %+v", tb.Rows)
	}
}
