package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	logLevelEnv   = "KB_LOG_LEVEL"
	outputEnv     = "KB_OUTPUT"
	geminiKeysEnv = "GEMINI_API_KEYS"
)

type Config struct {
	Scanner    ScannerConfig    `yaml:"scanner"`
	Analyzer   AnalyzerConfig   `yaml:"analyzer"`
	Categories []CategoryConfig `yaml:"categories"`
	Report     ReportConfig     `yaml:"report"`
	Watch      WatchConfig      `yaml:"watch"`
	Logging    LoggingConfig    `yaml:"logging"`
	Gemini     GeminiConfig     `yaml:"gemini"`
}

type ScannerConfig struct {
	Extension      string `yaml:"extension"`
	ReservedPrefix string `yaml:"reserved_prefix"`
}

type AnalyzerConfig struct {
	Terms           []string `yaml:"terms"`
	HeaderLines     int      `yaml:"header_lines"`
	SeparatorChar   string   `yaml:"separator_char"`
	SeparatorLength int      `yaml:"separator_length"`
}

// CategoryConfig is one entry of the keyword table. List order is the
// tie-break order.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type ReportConfig struct {
	Output          string `yaml:"output"`
	Title           string `yaml:"title"`
	ExcerptLimit    int    `yaml:"excerpt_limit"`
	TopTerms        int    `yaml:"top_terms"`
	TopTermsPerFile int    `yaml:"top_terms_per_file"`
	Docx            bool   `yaml:"docx"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

// Default returns a config with every optional field left empty; Validate
// fills them in.
func Default() *Config {
	return &Config{}
}

// Load reads the YAML file at path, applies env overrides and validates.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(outputEnv); v != "" {
		c.Report.Output = v
	}
	if v := os.Getenv(geminiKeysEnv); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		c.Gemini.APIKeys = keys
	}
}

// Validate rejects impossible values and fills defaults. The keyword tables
// are taken as given.
func (c *Config) Validate() error {
	if c.Analyzer.HeaderLines < 0 {
		return fmt.Errorf("analyzer.header_lines must not be negative")
	}
	if c.Analyzer.SeparatorLength < 0 {
		return fmt.Errorf("analyzer.separator_length must not be negative")
	}
	if len([]rune(c.Analyzer.SeparatorChar)) > 1 {
		return fmt.Errorf("analyzer.separator_char must be a single character")
	}
	if c.Report.ExcerptLimit < 0 {
		return fmt.Errorf("report.excerpt_limit must not be negative")
	}
	if c.Report.TopTerms < 0 || c.Report.TopTermsPerFile < 0 {
		return fmt.Errorf("report.top_terms must not be negative")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}

	if c.Scanner.Extension == "" {
		c.Scanner.Extension = ".txt"
	}
	if !strings.HasPrefix(c.Scanner.Extension, ".") {
		c.Scanner.Extension = "." + c.Scanner.Extension
	}
	if c.Scanner.ReservedPrefix == "" {
		c.Scanner.ReservedPrefix = "_"
	}
	if c.Analyzer.HeaderLines == 0 {
		c.Analyzer.HeaderLines = 5
	}
	if c.Analyzer.SeparatorChar == "" {
		c.Analyzer.SeparatorChar = "="
	}
	if c.Analyzer.SeparatorLength == 0 {
		c.Analyzer.SeparatorLength = 40
	}
	if c.Report.Output == "" {
		c.Report.Output = "knowledge_base.md"
	}
	if c.Report.Title == "" {
		c.Report.Title = "Knowledge Base: Procurement, ATS, HR, HRIS, Staffing & Contingent Workforce"
	}
	if c.Report.ExcerptLimit == 0 {
		c.Report.ExcerptLimit = 1000
	}
	if c.Report.TopTerms == 0 {
		c.Report.TopTerms = 20
	}
	if c.Report.TopTermsPerFile == 0 {
		c.Report.TopTermsPerFile = 10
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 2 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
