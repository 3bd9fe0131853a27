// Package config resolves runtime settings from a YAML config file,
// environment variables, and CLI flags, with the usual precedence:
// defaults < config file < env < CLI. Every resolved value remembers
// where it came from so `brandpulse config` can explain itself.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thesixthai/brandpulse/internal/classify"
)

type ValueSource string

const (
	SourceUnknown ValueSource = "unknown"
	SourceConfig  ValueSource = "config"
	SourceEnv     ValueSource = "env"
	SourceCLI     ValueSource = "cli"
	SourceDefault ValueSource = "default"
)

type ResolvedValue struct {
	Value  string      `json:"value"`
	Source ValueSource `json:"source"`
	From   string      `json:"from,omitempty"`
}

type ResolveOptions struct {
	ConfigPath   string
	CLIDataPath  string
	CLIDBPath    string
	CLITaxonomy  string
	CLIInterest  string
	CLIThreshold string
}

type ResolvedConfig struct {
	ConfigPath string `json:"config_path"`

	DataPath     ResolvedValue `json:"data_path"`
	DBPath       ResolvedValue `json:"db_path"`
	TaxonomyPath ResolvedValue `json:"taxonomy_path"`
	InterestPath ResolvedValue `json:"interest_path"`
	Threshold    ResolvedValue `json:"threshold"`
}

type fileConfig struct {
	DataPath     string `yaml:"data_path"`
	DBPath       string `yaml:"db_path"`
	TaxonomyPath string `yaml:"taxonomy_path"`
	InterestPath string `yaml:"interest_path"`
	Classify     struct {
		Threshold string `yaml:"threshold"`
	} `yaml:"classify"`
}

func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".brandpulse", "config.yaml")
}

func ResolveConfig(opts ResolveOptions) (ResolvedConfig, error) {
	path := strings.TrimSpace(opts.ConfigPath)
	if path == "" {
		path = DefaultConfigPath()
	}

	out := ResolvedConfig{
		ConfigPath: path,
		Threshold: ResolvedValue{
			Value:  fmt.Sprintf("%d", classify.DefaultThreshold),
			Source: SourceDefault,
			From:   "built-in default",
		},
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return out, err
	}

	if cfg != nil {
		apply(&out.DataPath, cfg.DataPath, SourceConfig, path)
		apply(&out.DBPath, cfg.DBPath, SourceConfig, path)
		apply(&out.TaxonomyPath, cfg.TaxonomyPath, SourceConfig, path)
		apply(&out.InterestPath, cfg.InterestPath, SourceConfig, path)
		apply(&out.Threshold, cfg.Classify.Threshold, SourceConfig, path)
	}

	applyEnv(&out.DataPath, "BRANDPULSE_DATA")
	applyEnv(&out.DBPath, "BRANDPULSE_DB")
	applyEnv(&out.TaxonomyPath, "BRANDPULSE_TAXONOMY")
	applyEnv(&out.InterestPath, "BRANDPULSE_INTEREST")
	applyEnv(&out.Threshold, "BRANDPULSE_THRESHOLD")

	apply(&out.DataPath, opts.CLIDataPath, SourceCLI, "--data")
	apply(&out.DBPath, opts.CLIDBPath, SourceCLI, "--db")
	apply(&out.TaxonomyPath, opts.CLITaxonomy, SourceCLI, "--taxonomy")
	apply(&out.InterestPath, opts.CLIInterest, SourceCLI, "--interest")
	apply(&out.Threshold, opts.CLIThreshold, SourceCLI, "--threshold")

	for _, rv := range []*ResolvedValue{&out.DataPath, &out.DBPath, &out.TaxonomyPath, &out.InterestPath} {
		if rv.Value != "" {
			rv.Value = expandUserPath(rv.Value)
		}
	}

	return out, nil
}

// ThresholdValue parses the resolved classification threshold, falling
// back to the built-in default when the value is malformed.
func (r ResolvedConfig) ThresholdValue() int {
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(r.Threshold.Value), "%d", &n); err != nil {
		return classify.DefaultThreshold
	}
	if n < 0 || n > 100 {
		return classify.DefaultThreshold
	}
	return n
}

func apply(dst *ResolvedValue, raw string, source ValueSource, from string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	*dst = ResolvedValue{Value: v, Source: source, From: from}
}

func applyEnv(dst *ResolvedValue, envKey string) {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		*dst = ResolvedValue{Value: v, Source: SourceEnv, From: envKey}
	}
}

func loadConfig(path string) (*fileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

func expandUserPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
