// Package mcp provides a Model Context Protocol server for BrandPulse.
//
// It exposes the analytics engine (overview metrics, theme and keyword
// rankings, growth and trend analysis, account tables, search-interest
// analytics) as read-only MCP tools over stdio, for use from MCP-aware
// clients. Every tool accepts the same optional filter parameters, so
// a client can scope any question to themes, keywords, accounts,
// countries, or a date range.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/thesixthai/brandpulse/internal/classify"
	"github.com/thesixthai/brandpulse/internal/filter"
	"github.com/thesixthai/brandpulse/internal/interest"
	"github.com/thesixthai/brandpulse/internal/memo"
	"github.com/thesixthai/brandpulse/internal/model"
	"github.com/thesixthai/brandpulse/internal/report"
	"github.com/thesixthai/brandpulse/internal/timeseries"
	"github.com/thesixthai/brandpulse/internal/trend"
)

// ServerConfig holds the data and engine pieces the server works over.
type ServerConfig struct {
	Accounts   []model.Account
	Interest   []interest.Point
	Classifier *classify.Classifier
	Version    string
}

type engine struct {
	accounts   []model.Account
	interest   []interest.Point
	classifier *classify.Classifier
	memo       *memo.Cache
}

// NewServer creates a configured MCP server with all BrandPulse tools
// and resources.
func NewServer(cfg ServerConfig) *server.MCPServer {
	ver := cfg.Version
	if ver == "" {
		ver = "dev"
	}

	s := server.NewMCPServer(
		"BrandPulse",
		ver,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(true, false),
	)

	eng := &engine{
		accounts:   cfg.Accounts,
		interest:   cfg.Interest,
		classifier: cfg.Classifier,
		memo:       memo.NewCache(),
	}

	registerOverviewTool(s, eng)
	registerTopThemesTool(s, eng)
	registerTopKeywordsTool(s, eng)
	registerThemeGrowthTool(s, eng)
	registerKeywordGrowthTool(s, eng)
	registerThemeTrendTool(s, eng)
	registerKeywordTrendTool(s, eng)
	registerAccountsTableTool(s, eng)
	registerTopAccountsTool(s, eng)
	registerInterestOverviewTool(s, eng)

	registerStatsResource(s, eng)

	return s
}

// withFilterParams appends the shared filter parameters to a tool.
func withFilterParams(opts ...mcp.ToolOption) []mcp.ToolOption {
	return append(opts,
		mcp.WithString("themes",
			mcp.Description("Comma-separated theme names to filter posts by (empty = all themes)"),
		),
		mcp.WithString("keywords",
			mcp.Description("Comma-separated keywords to filter posts by (empty = all)"),
		),
		mcp.WithString("accounts",
			mcp.Description("Comma-separated account usernames to include (empty = all)"),
		),
		mcp.WithString("countries",
			mcp.Description("Comma-separated countries to include (empty = all)"),
		),
		mcp.WithString("date_from",
			mcp.Description("Start of the date range, inclusive (YYYY-MM-DD)"),
		),
		mcp.WithString("date_to",
			mcp.Description("End of the date range, inclusive (YYYY-MM-DD)"),
		),
	)
}

// specFromRequest builds a filter spec from the shared tool parameters.
func specFromRequest(req mcp.CallToolRequest) (filter.Spec, error) {
	spec := filter.Spec{
		Themes:    csvParam(req, "themes"),
		Keywords:  csvParam(req, "keywords"),
		Accounts:  csvParam(req, "accounts"),
		Countries: csvParam(req, "countries"),
	}

	from, _ := req.RequireString("date_from")
	to, _ := req.RequireString("date_to")
	if from != "" || to != "" {
		r, err := filter.ParseRange(from, to)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.DateRange = &r
	}
	return spec, nil
}

func csvParam(req mcp.CallToolRequest, name string) []string {
	raw, err := req.RequireString(name)
	if err != nil || raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// filtered applies the request's filter spec and rekeys the memo cache
// to the resulting snapshot.
func (e *engine) filtered(req mcp.CallToolRequest) ([]model.Account, error) {
	spec, err := specFromRequest(req)
	if err != nil {
		return nil, err
	}
	view := filter.Apply(e.accounts, spec, e.classifier.Taxonomy())
	e.memo.Rekey(memo.SnapshotHash(view))
	return view, nil
}

func limitParam(req mcp.CallToolRequest, def, max int) int {
	n := def
	if v, err := req.RequireFloat("limit"); err == nil && v > 0 {
		n = int(v)
	}
	if n > max {
		n = max
	}
	return n
}

func tableResult(t report.Table) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(t, "", "  ")
	return mcp.NewToolResultText(string(data))
}

// --- Tools ---

func registerOverviewTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("brand_overview",
		withFilterParams(
			mcp.WithDescription("Headline brand metrics over the (optionally filtered) post snapshot: total brands, countries, post volume, engagements, average post engagement, and estimated reach."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return tableResult(report.Overview(view)), nil
	})
}

func registerTopThemesTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("top_themes",
		withFilterParams(
			mcp.WithDescription("Themes ranked by number of matching posts, using fuzzy keyword classification against the taxonomy."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of themes to return (default: 10, max: 50)"),
			),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		n := limitParam(req, 10, 50)
		key := eng.memo.Key("top_themes", fmt.Sprint(n))
		counts := eng.memo.Do(key, func() interface{} {
			return eng.classifier.TopThemes(view, n)
		}).([]classify.Count)
		return tableResult(report.Counts("Theme", counts)), nil
	})
}

func registerTopKeywordsTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("top_keywords",
		withFilterParams(
			mcp.WithDescription("Taxonomy keywords ranked by number of matching posts."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of keywords to return (default: 10, max: 50)"),
			),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		n := limitParam(req, 10, 50)
		key := eng.memo.Key("top_keywords", fmt.Sprint(n))
		counts := eng.memo.Do(key, func() interface{} {
			return eng.classifier.TopKeywords(view, n)
		}).([]classify.Count)
		return tableResult(report.Counts("Keyword", counts)), nil
	})
}

func registerThemeGrowthTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("theme_growth",
		withFilterParams(
			mcp.WithDescription("Theme growth rates fitted by linear regression over monthly post counts. A theme is growing when its slope is positive and it has at least 3 posts."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of themes to return (default: 5, max: 50)"),
			),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		n := limitParam(req, 5, 50)
		key := eng.memo.Key("theme_growth", fmt.Sprint(n))
		records := eng.memo.Do(key, func() interface{} {
			monthly := eng.classifier.ThemeMonthly(view, nil)
			return trend.TopGrowing(monthly, n)
		}).([]trend.Record)
		return tableResult(report.GrowthRates("Theme", records)), nil
	})
}

func registerKeywordGrowthTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("keyword_growth",
		withFilterParams(
			mcp.WithDescription("Keyword growth rates fitted by linear regression over monthly post counts."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of keywords to return (default: 5, max: 50)"),
			),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		n := limitParam(req, 5, 50)
		key := eng.memo.Key("keyword_growth", fmt.Sprint(n))
		records := eng.memo.Do(key, func() interface{} {
			monthly := eng.classifier.KeywordMonthly(view, nil)
			return trend.TopGrowing(monthly, n)
		}).([]trend.Record)
		return tableResult(report.GrowthRates("Keyword", records)), nil
	})
}

func registerThemeTrendTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("theme_trend",
		withFilterParams(
			mcp.WithDescription("Monthly post counts per theme, for charting theme activity over time. Scope with the themes parameter."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		subjects := csvParam(req, "themes")
		key := eng.memo.Key("theme_trend", strings.Join(subjects, ","))
		rows := eng.memo.Do(key, func() interface{} {
			monthly := eng.classifier.ThemeMonthly(view, subjects)
			return monthly.Rows(monthly.Subjects())
		}).([]timeseries.Row)
		return tableResult(report.MonthlyTrend("Theme", rows)), nil
	})
}

func registerKeywordTrendTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("keyword_trend",
		withFilterParams(
			mcp.WithDescription("Monthly post counts per keyword, for charting keyword activity over time. Scope with the keywords parameter."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		subjects := csvParam(req, "keywords")
		key := eng.memo.Key("keyword_trend", strings.Join(subjects, ","))
		rows := eng.memo.Do(key, func() interface{} {
			monthly := eng.classifier.KeywordMonthly(view, subjects)
			return monthly.Rows(monthly.Subjects())
		}).([]timeseries.Row)
		return tableResult(report.MonthlyTrend("Keyword", rows)), nil
	})
}

func registerAccountsTableTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("accounts_table",
		withFilterParams(
			mcp.WithDescription("Per-post account table: username, full name, follower counts, country, post URL, and computed profile URL."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return tableResult(report.Accounts(view)), nil
	})
}

func registerTopAccountsTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("top_accounts",
		withFilterParams(
			mcp.WithDescription("Accounts ranked by post volume in the (optionally filtered) snapshot."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of accounts to return (default: 10, max: 50)"),
			),
		)...,
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		view, err := eng.filtered(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		n := limitParam(req, 10, 50)
		return tableResult(report.TopAccountsByPostCount(view, n)), nil
	})
}

func registerInterestOverviewTool(s *server.MCPServer, eng *engine) {
	tool := mcp.NewTool("interest_overview",
		mcp.WithDescription("Search-interest analytics: average interest per theme and keyword, plus fastest-growing themes (interest delta) and keywords (interest slope). Optionally scoped by theme and country."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithString("theme",
			mcp.Description("Restrict to one theme (empty = all)"),
		),
		mcp.WithString("country",
			mcp.Description("Restrict to one country (empty = all)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum rows per section (default: 10, max: 50)"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if len(eng.interest) == 0 {
			return mcp.NewToolResultError("no search-interest data loaded"), nil
		}

		theme, _ := req.RequireString("theme")
		country, _ := req.RequireString("country")
		n := limitParam(req, 10, 50)

		points := interest.Filter(eng.interest, theme, country)

		out := map[string]report.Table{
			"theme_averages":   report.InterestAverages("Theme", interest.TopByAverage(interest.ThemeAverages(points), n)),
			"keyword_averages": report.InterestAverages("Keyword", interest.TopByAverage(interest.KeywordAverages(points), n)),
			"growing_themes":   report.InterestGrowth("Theme", interest.FastestGrowingThemes(points, n)),
			"growing_keywords": report.InterestGrowth("Keyword", interest.FastestGrowingKeywords(points, n)),
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	})
}

// --- Resources ---

func registerStatsResource(s *server.MCPServer, eng *engine) {
	resource := mcp.NewResource(
		"brandpulse://stats",
		"Snapshot Statistics",
		mcp.WithResourceDescription("Headline metrics over the full unfiltered snapshot."),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.MarshalIndent(report.Overview(eng.accounts), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("rendering stats: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
