package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/stylo/pkg/stylo/chart"
	"github.com/cognicore/stylo/pkg/stylo/corpus"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config describes one attribution run.
type Config struct {
	Language   string     `yaml:"language"` // ISO 639-1 code the corpora are expected to be in
	Encoding   string     `yaml:"encoding"`
	Unknown    string     `yaml:"unknown"`
	Corpora    []Corpus   `yaml:"corpora"`
	Stopwords  Stopwords  `yaml:"stopwords"`
	Charts     Charts     `yaml:"charts"`
	Vocabulary Vocabulary `yaml:"vocabulary"`
	LogLevel   string     `yaml:"log_level"`
}

// Corpus maps an author label to a text file.
type Corpus struct {
	Author string `yaml:"author"`
	Path   string `yaml:"path"`
}

// Stopwords controls the optional stopword chart.
type Stopwords struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // YAML terms file; empty means the embedded english list
	Top     int    `yaml:"top"`
}

// Charts controls chart rendering. An empty Dir disables chart files.
type Charts struct {
	Dir           string `yaml:"dir"`
	Format        string `yaml:"format"`
	WordLengthTop int    `yaml:"word_length_top"`
	POSTop        int    `yaml:"pos_top"`
}

// Vocabulary controls the chi-squared test.
type Vocabulary struct {
	MostCommon int `yaml:"most_common"`
}

// Default returns the classic setup: Doyle and Wells against an unknown text.
func Default() *Config {
	return &Config{
		Language: "en",
		Encoding: "ISO-8859-1",
		Unknown:  corpus.DefaultUnknown,
		Corpora: []Corpus{
			{Author: "doyle", Path: "hound.txt"},
			{Author: "wells", Path: "war.txt"},
			{Author: corpus.DefaultUnknown, Path: "lost.txt"},
		},
		Stopwords: Stopwords{Top: 50},
		Charts: Charts{
			Dir:           "charts",
			Format:        "png",
			WordLengthTop: 15,
			POSTop:        35,
		},
		Vocabulary: Vocabulary{MostCommon: 1000},
		LogLevel:   "info",
	}
}

// Load reads a YAML config on top of Default. An empty path returns Default.
// Relative corpus paths are resolved against the config file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i, c := range cfg.Corpora {
		if c.Path != "" && !filepath.IsAbs(c.Path) {
			cfg.Corpora[i].Path = filepath.Join(base, c.Path)
		}
	}
	return cfg, nil
}

// LoadEnv loads an optional .env file into the process environment and applies
// STYLO_* overrides.
func (c *Config) LoadEnv() error {
	_ = godotenv.Load()
	return c.ApplyEnv(os.LookupEnv)
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
		return nil
	}

	str("STYLO_LANGUAGE", &c.Language)
	str("STYLO_ENCODING", &c.Encoding)
	str("STYLO_UNKNOWN", &c.Unknown)
	str("STYLO_LOG_LEVEL", &c.LogLevel)
	str("STYLO_CHART_FORMAT", &c.Charts.Format)
	str("STYLO_STOPWORDS_PATH", &c.Stopwords.Path)
	if v, ok := lookup("STYLO_CHART_DIR"); ok {
		c.Charts.Dir = v // empty disables charts
	}

	if err := boolean("STYLO_STOPWORDS", &c.Stopwords.Enabled); err != nil {
		return err
	}
	return integer("STYLO_MOST_COMMON", &c.Vocabulary.MostCommon)
}

// Validate checks that the config describes a runnable comparison.
func (c *Config) Validate() error {
	var problems []string

	if c.Unknown == "" {
		problems = append(problems, "unknown label is empty")
	}

	seen := make(map[string]struct{}, len(c.Corpora))
	known := 0
	hasUnknown := false
	for i, corp := range c.Corpora {
		if corp.Author == "" {
			problems = append(problems, fmt.Sprintf("corpora[%d]: author is empty", i))
			continue
		}
		if _, dup := seen[corp.Author]; dup {
			problems = append(problems, fmt.Sprintf("corpora[%d]: duplicate author %q", i, corp.Author))
		}
		seen[corp.Author] = struct{}{}
		if corp.Author == c.Unknown {
			hasUnknown = true
		} else {
			known++
		}
	}
	if !hasUnknown && c.Unknown != "" {
		problems = append(problems, fmt.Sprintf("no corpus is labeled %q", c.Unknown))
	}
	if known == 0 {
		problems = append(problems, "at least one known author is required")
	}

	if c.Charts.Dir != "" {
		if _, ok := chart.Formats[c.Charts.Format]; !ok {
			problems = append(problems, fmt.Sprintf("unsupported chart format %q", c.Charts.Format))
		}
	}
	if c.Charts.WordLengthTop <= 0 || c.Charts.POSTop <= 0 || c.Stopwords.Top <= 0 {
		problems = append(problems, "chart top values must be positive")
	}
	if c.Vocabulary.MostCommon <= 0 {
		problems = append(problems, "vocabulary.most_common must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Authors returns the configured author labels in order.
func (c *Config) Authors() []string {
	out := make([]string, len(c.Corpora))
	for i, corp := range c.Corpora {
		out[i] = corp.Author
	}
	return out
}
