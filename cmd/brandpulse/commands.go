package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/thesixthai/brandpulse/internal/classify"
	"github.com/thesixthai/brandpulse/internal/config"
	"github.com/thesixthai/brandpulse/internal/filter"
	"github.com/thesixthai/brandpulse/internal/ingest"
	"github.com/thesixthai/brandpulse/internal/interest"
	"github.com/thesixthai/brandpulse/internal/mcp"
	"github.com/thesixthai/brandpulse/internal/model"
	"github.com/thesixthai/brandpulse/internal/report"
	"github.com/thesixthai/brandpulse/internal/taxonomy"
	"github.com/thesixthai/brandpulse/internal/timeseries"
	"github.com/thesixthai/brandpulse/internal/trend"
)

// cmdFlags holds the parsed flags shared by the analysis commands.
type cmdFlags struct {
	configPath string
	dataPath   string
	dbPath     string
	taxPath    string
	interest   string
	threshold  string
	format     string
	top        int
	all        bool

	themes    []string
	keywords  []string
	accounts  []string
	countries []string
	from      string
	to        string

	args []string
}

// parseFlags walks args with the usual flag loop. Unknown flags are an
// error; bare arguments accumulate in order.
func parseFlags(args []string) (cmdFlags, error) {
	f := cmdFlags{format: "table"}

	take := func(i int, name string) (string, int, error) {
		if i+1 >= len(args) {
			return "", i, fmt.Errorf("%s requires a value", name)
		}
		return args[i+1], i + 1, nil
	}

	var err error
	var v string
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--config":
			v, i, err = take(i, arg)
			f.configPath = v
		case "--data":
			v, i, err = take(i, arg)
			f.dataPath = v
		case "--db":
			v, i, err = take(i, arg)
			f.dbPath = v
		case "--taxonomy":
			v, i, err = take(i, arg)
			f.taxPath = v
		case "--interest":
			v, i, err = take(i, arg)
			f.interest = v
		case "--threshold":
			v, i, err = take(i, arg)
			f.threshold = v
		case "--format":
			v, i, err = take(i, arg)
			f.format = v
		case "--top":
			v, i, err = take(i, arg)
			if err == nil {
				if _, serr := fmt.Sscanf(v, "%d", &f.top); serr != nil {
					return f, fmt.Errorf("invalid --top value %q", v)
				}
			}
		case "--all":
			f.all = true
		case "--theme":
			v, i, err = take(i, arg)
			f.themes = splitCSV(v)
		case "--keyword":
			v, i, err = take(i, arg)
			f.keywords = splitCSV(v)
		case "--account":
			v, i, err = take(i, arg)
			f.accounts = splitCSV(v)
		case "--country":
			v, i, err = take(i, arg)
			f.countries = splitCSV(v)
		case "--from":
			v, i, err = take(i, arg)
			f.from = v
		case "--to":
			v, i, err = take(i, arg)
			f.to = v
		default:
			if strings.HasPrefix(arg, "-") {
				return f, fmt.Errorf("unknown flag: %s", arg)
			}
			f.args = append(f.args, arg)
		}
		if err != nil {
			return f, err
		}
	}

	if f.format != "table" && f.format != "json" {
		return f, fmt.Errorf("invalid --format %q (want table or json)", f.format)
	}
	return f, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// env is the loaded analysis environment: resolved config, taxonomy,
// classifier, and the filtered account snapshot.
type env struct {
	cfg        config.ResolvedConfig
	tax        *taxonomy.Taxonomy
	classifier *classify.Classifier
	accounts   []model.Account
}

func loadEnv(f cmdFlags) (*env, error) {
	cfg, err := config.ResolveConfig(config.ResolveOptions{
		ConfigPath:   f.configPath,
		CLIDataPath:  f.dataPath,
		CLIDBPath:    f.dbPath,
		CLITaxonomy:  f.taxPath,
		CLIInterest:  f.interest,
		CLIThreshold: f.threshold,
	})
	if err != nil {
		return nil, err
	}

	tax := taxonomy.Default()
	if cfg.TaxonomyPath.Value != "" {
		tax, err = taxonomy.LoadFile(cfg.TaxonomyPath.Value)
		if err != nil {
			return nil, fmt.Errorf("loading taxonomy: %w", err)
		}
	}

	accounts, err := loadSnapshot(cfg)
	if err != nil {
		return nil, err
	}

	e := &env{
		cfg:        cfg,
		tax:        tax,
		classifier: classify.New(tax, cfg.ThresholdValue()),
		accounts:   accounts,
	}

	spec := filter.Spec{
		Themes:    f.themes,
		Keywords:  f.keywords,
		Accounts:  f.accounts,
		Countries: f.countries,
	}
	if f.from != "" || f.to != "" {
		r, err := filter.ParseRange(f.from, f.to)
		if err != nil {
			return nil, err
		}
		spec.DateRange = &r
	}
	e.accounts = filter.Apply(e.accounts, spec, tax)
	return e, nil
}

// loadSnapshot prefers the raw data file when given, falling back to
// the SQLite store.
func loadSnapshot(cfg config.ResolvedConfig) ([]model.Account, error) {
	if cfg.DataPath.Value != "" {
		accounts, err := ingest.LoadAccounts(cfg.DataPath.Value)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", cfg.DataPath.Value, err)
		}
		return accounts, nil
	}
	if cfg.DBPath.Value != "" {
		store, err := ingest.OpenStore(cfg.DBPath.Value)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		defer store.Close()
		return store.LoadAccounts(context.Background())
	}
	return nil, fmt.Errorf("no data source configured (use --data or --db, or set data_path in %s)", cfg.ConfigPath)
}

func printTable(f cmdFlags, t report.Table) error {
	if f.format == "json" {
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Print(t.Render())
	return nil
}

// --- Commands ---

func runImport(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(f.args) != 1 {
		return fmt.Errorf("usage: brandpulse import <file.json> [--db <path>]")
	}
	path := f.args[0]

	cfg, err := config.ResolveConfig(config.ResolveOptions{
		ConfigPath: f.configPath,
		CLIDBPath:  f.dbPath,
	})
	if err != nil {
		return err
	}
	if cfg.DBPath.Value == "" {
		return fmt.Errorf("no store path configured (use --db or set db_path in %s)", cfg.ConfigPath)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	accounts, skipped, err := ingest.ReadAccounts(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	store, err := ingest.OpenStore(cfg.DBPath.Value)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	if err := store.SaveAccounts(context.Background(), accounts); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	posts := 0
	for _, a := range accounts {
		posts += len(a.Posts)
	}
	fmt.Printf("Imported %d account(s), %d post(s) into %s\n", len(accounts), posts, cfg.DBPath.Value)
	if skipped > 0 {
		fmt.Printf("Skipped %d malformed record(s)\n", skipped)
	}
	return nil
}

func runOverview(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	e, err := loadEnv(f)
	if err != nil {
		return err
	}
	return printTable(f, report.Overview(e.accounts))
}

func runThemes(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	e, err := loadEnv(f)
	if err != nil {
		return err
	}
	if f.all {
		return printTable(f, report.Counts("Theme", e.classifier.ThemeCounts(e.accounts)))
	}
	n := f.top
	if n <= 0 {
		n = 10
	}
	return printTable(f, report.Counts("Theme", e.classifier.TopThemes(e.accounts, n)))
}

func runKeywords(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	e, err := loadEnv(f)
	if err != nil {
		return err
	}
	if f.all {
		return printTable(f, report.Counts("Keyword", e.classifier.KeywordCounts(e.accounts)))
	}
	n := f.top
	if n <= 0 {
		n = 10
	}
	return printTable(f, report.Counts("Keyword", e.classifier.TopKeywords(e.accounts, n)))
}

func runGrowth(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(f.args) != 1 || (f.args[0] != "themes" && f.args[0] != "keywords") {
		return fmt.Errorf("usage: brandpulse growth <themes|keywords> [--top <n>] [--all]")
	}
	e, err := loadEnv(f)
	if err != nil {
		return err
	}

	var monthly *timeseries.SubjectMonthly
	subjectCol := "Theme"
	if f.args[0] == "themes" {
		monthly = e.classifier.ThemeMonthly(e.accounts, nil)
	} else {
		monthly = e.classifier.KeywordMonthly(e.accounts, nil)
		subjectCol = "Keyword"
	}

	n := f.top
	if n <= 0 {
		n = 5
	}
	var records []trend.Record
	if f.all {
		records = trend.Rates(monthly, 0)
	} else {
		records = trend.TopGrowing(monthly, n)
	}
	return printTable(f, report.GrowthRates(subjectCol, records))
}

func runTrend(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(f.args) != 1 {
		return fmt.Errorf("usage: brandpulse trend <posts|engagement|themes|keywords>")
	}
	e, err := loadEnv(f)
	if err != nil {
		return err
	}

	switch f.args[0] {
	case "posts":
		return printTable(f, report.Series("Post Count", timeseries.PostTrend(e.accounts)))
	case "engagement":
		return printTable(f, report.Series("Total Engagement", timeseries.EngagementTrend(e.accounts)))
	case "themes":
		monthly := e.classifier.ThemeMonthly(e.accounts, subjectsOrNil(f.themes))
		return printTable(f, report.MonthlyTrend("Theme", monthly.Rows(monthly.Subjects())))
	case "keywords":
		monthly := e.classifier.KeywordMonthly(e.accounts, subjectsOrNil(f.keywords))
		return printTable(f, report.MonthlyTrend("Keyword", monthly.Rows(monthly.Subjects())))
	default:
		return fmt.Errorf("unknown trend subject %q (want posts, engagement, themes, or keywords)", f.args[0])
	}
}

// subjectsOrNil maps "no selection" to nil, which the classifier reads
// as "all subjects".
func subjectsOrNil(subjects []string) []string {
	if len(subjects) == 0 {
		return nil
	}
	return subjects
}

func runAccounts(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	e, err := loadEnv(f)
	if err != nil {
		return err
	}
	if f.top > 0 {
		return printTable(f, report.TopAccountsByPostCount(e.accounts, f.top))
	}
	return printTable(f, report.Accounts(e.accounts))
}

func runInterest(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.ResolveConfig(config.ResolveOptions{
		ConfigPath:  f.configPath,
		CLIInterest: f.interest,
	})
	if err != nil {
		return err
	}
	if cfg.InterestPath.Value == "" {
		return fmt.Errorf("no interest data configured (use --interest or set interest_path in %s)", cfg.ConfigPath)
	}

	points, err := ingest.LoadInterest(cfg.InterestPath.Value)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.InterestPath.Value, err)
	}

	theme := ""
	if len(f.themes) > 0 {
		theme = f.themes[0]
	}
	country := ""
	if len(f.countries) > 0 {
		country = f.countries[0]
	}
	points = interest.Filter(points, theme, country)

	n := f.top
	if n <= 0 {
		n = 10
	}

	sections := []struct {
		title string
		table report.Table
	}{
		{"Theme Interest", report.InterestAverages("Theme", interest.TopByAverage(interest.ThemeAverages(points), n))},
		{"Keyword Interest", report.InterestAverages("Keyword", interest.TopByAverage(interest.KeywordAverages(points), n))},
		{"Fastest Growing Themes", report.InterestGrowth("Theme", interest.FastestGrowingThemes(points, n))},
		{"Fastest Growing Keywords", report.InterestGrowth("Keyword", interest.FastestGrowingKeywords(points, n))},
	}
	if theme != "" {
		sections = append(sections, struct {
			title string
			table report.Table
		}{"Interest Over Time", report.InterestTrend("Theme", interest.ThemeTrend(points, []string{theme}))})
	}

	if f.format == "json" {
		out := map[string]report.Table{}
		for _, s := range sections {
			out[strings.ToLower(strings.ReplaceAll(s.title, " ", "_"))] = s.table
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for i, s := range sections {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(s.title)
		fmt.Print(s.table.Render())
	}
	return nil
}

func runConfig(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.ResolveConfig(config.ResolveOptions{
		ConfigPath:   f.configPath,
		CLIDataPath:  f.dataPath,
		CLIDBPath:    f.dbPath,
		CLITaxonomy:  f.taxPath,
		CLIInterest:  f.interest,
		CLIThreshold: f.threshold,
	})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runMCP(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	e, err := loadEnv(f)
	if err != nil {
		return err
	}

	var points []interest.Point
	if e.cfg.InterestPath.Value != "" {
		points, err = ingest.LoadInterest(e.cfg.InterestPath.Value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: interest data unavailable: %v\n", err)
		}
	}

	s := mcp.NewServer(mcp.ServerConfig{
		Accounts:   e.accounts,
		Interest:   points,
		Classifier: e.classifier,
		Version:    version,
	})
	return server.ServeStdio(s)
}
