package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	var err error
	switch os.Args[1] {
	case "import":
		err = runImport(os.Args[2:])
	case "overview":
		err = runOverview(os.Args[2:])
	case "themes":
		err = runThemes(os.Args[2:])
	case "keywords":
		err = runKeywords(os.Args[2:])
	case "growth":
		err = runGrowth(os.Args[2:])
	case "trend":
		err = runTrend(os.Args[2:])
	case "accounts":
		err = runAccounts(os.Args[2:])
	case "interest":
		err = runInterest(os.Args[2:])
	case "config":
		err = runConfig(os.Args[2:])
	case "mcp":
		err = runMCP(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("brandpulse %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`brandpulse %s — Brand social media analytics engine

Usage:
  brandpulse <command> [arguments]

Commands:
  import <file.json>  Import an account snapshot into the local store
  overview            Headline metrics (brands, countries, volume, reach)
  themes              Theme rankings and distribution
  keywords            Keyword rankings and distribution
  growth <subject>    Growth analysis for themes or keywords
  trend <subject>     Monthly series: posts, engagement, themes, keywords
  accounts            Account tables (per-post rows, top by volume)
  interest            Search-interest analytics
  config              Show resolved configuration and value sources
  mcp                 Serve the analytics engine over MCP (stdio)
  version             Print version

Filter Flags (analysis commands):
  --theme <names>     Comma-separated themes to include
  --keyword <words>   Comma-separated keywords to include
  --account <users>   Comma-separated account usernames to include
  --country <names>   Comma-separated countries to include
  --from <date>       Range start, inclusive (YYYY-MM-DD)
  --to <date>         Range end, inclusive (YYYY-MM-DD)

Common Flags:
  --data <path>       Account snapshot JSON (overrides config/env)
  --db <path>         SQLite store path
  --taxonomy <path>   Theme taxonomy YAML (default: built-in)
  --threshold <n>     Fuzzy match cutoff, 0-100 (default: 60)
  --format <fmt>      Output format: table or json (default: table)
  -h, --help          Show this help message
  -v, --version       Print version
`, version)
}
