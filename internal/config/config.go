package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type          string `yaml:"type"`
	Sentences     int    `yaml:"sentences"`
	Segmenter     string `yaml:"segmenter"`
	StopwordsFile string `yaml:"stopwords_file,omitempty"`
}

// SentimentConfig configures polarity labelling.
type SentimentConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// SpellingConfig configures the spell checker.
type SpellingConfig struct {
	DictionaryFile string `yaml:"dictionary_file,omitempty"`
	MaxDistance    int    `yaml:"max_distance"`
}

// TaggerConfig selects the part-of-speech tagger.
type TaggerConfig struct {
	Type string `yaml:"type"`
}

// LogConfig configures structured logging. An empty File discards logs
// while the dashboard owns the terminal and writes to stderr otherwise.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Sentiment  SentimentConfig  `yaml:"sentiment"`
	Spelling   SpellingConfig   `yaml:"spelling"`
	Tagger     TaggerConfig     `yaml:"tagger"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textkit/config.yaml.
// If neither exists, it writes defaults to ~/.config/textkit/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides settings from TEXTKIT_* environment variables.
func ApplyEnv(cfg *AppConfig) error {
	if v := os.Getenv("TEXTKIT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TEXTKIT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("TEXTKIT_SENTENCES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TEXTKIT_SENTENCES: %w", err)
		}
		cfg.Summarizer.Sentences = n
	}
	return nil
}

// Validate rejects settings no component can honor.
func (c *AppConfig) Validate() error {
	switch c.Summarizer.Type {
	case "frequency":
	default:
		return fmt.Errorf("unknown summarizer: %s", c.Summarizer.Type)
	}
	switch c.Summarizer.Segmenter {
	case "punkt", "regex":
	default:
		return fmt.Errorf("unknown segmenter: %s", c.Summarizer.Segmenter)
	}
	switch c.Tagger.Type {
	case "prose":
	default:
		return fmt.Errorf("unknown tagger: %s", c.Tagger.Type)
	}
	if c.Sentiment.Threshold <= 0 || c.Sentiment.Threshold > 1 {
		return fmt.Errorf("sentiment threshold must be in (0, 1], got %v", c.Sentiment.Threshold)
	}
	if c.Spelling.MaxDistance < 1 || c.Spelling.MaxDistance > 3 {
		return fmt.Errorf("spelling max_distance must be between 1 and 3, got %d", c.Spelling.MaxDistance)
	}
	return nil
}

// UserDir is the directory holding the user config and default log file.
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textkit"), nil
}

func defaultUserConfigPath() (string, error) {
	dir, err := UserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "frequency"
	}
	if cfg.Summarizer.Sentences == 0 {
		cfg.Summarizer.Sentences = 3
	}
	if cfg.Summarizer.Segmenter == "" {
		cfg.Summarizer.Segmenter = "punkt"
	}
	if cfg.Sentiment.Threshold == 0 {
		cfg.Sentiment.Threshold = 0.3
	}
	if cfg.Spelling.MaxDistance == 0 {
		cfg.Spelling.MaxDistance = 2
	}
	if cfg.Tagger.Type == "" {
		cfg.Tagger.Type = "prose"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 10
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 3
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 28
	}
}
