package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"textkit/internal/config"
	"textkit/internal/domain"
	"textkit/internal/logging"
	"textkit/internal/segmenter"
	"textkit/internal/sentiment"
	"textkit/internal/service"
	"textkit/internal/spelling"
	"textkit/internal/stopwords"
	"textkit/internal/summarizer"
	"textkit/internal/tagger"
)

// loadConfig resolves the config file: the --config flag, then
// TEXTKIT_CONFIG, then the default locations.
func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		path = os.Getenv("TEXTKIT_CONFIG")
	}
	var (
		cfg *config.AppConfig
		err error
	)
	if path == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger sends logs to stderr for one-shot commands. The dashboard
// owns the terminal, so there logs go to the configured file or to
// textkit.log in the user config directory.
func newLogger(cfg *config.AppConfig, interactive bool) *slog.Logger {
	var fallback io.Writer = os.Stderr
	if interactive && cfg.Log.File == "" {
		fallback = io.Discard
		if dir, err := config.UserDir(); err == nil {
			lc := cfg.Log
			lc.File = filepath.Join(dir, "textkit.log")
			return logging.New(lc, fallback)
		}
	}
	return logging.New(cfg.Log, fallback)
}

// buildService assembles the components. The Punkt model, stopwords
// and dictionary are loaded once here and shared by every call.
func buildService(cfg *config.AppConfig, log *slog.Logger) (*service.TextService, error) {
	seg, err := segmenter.New(cfg.Summarizer.Segmenter)
	if err != nil {
		return nil, err
	}

	stops := stopwords.English()
	if cfg.Summarizer.StopwordsFile != "" {
		if stops, err = stopwords.Load(cfg.Summarizer.StopwordsFile); err != nil {
			return nil, err
		}
	}

	var sum domain.Summarizer
	switch cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer(segmenter.NewWordTokenizer(), stops, seg)
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	tg, err := tagger.New(cfg.Tagger.Type)
	if err != nil {
		return nil, err
	}

	sp, err := spelling.English(cfg.Spelling.MaxDistance, cfg.Spelling.DictionaryFile)
	if err != nil {
		return nil, err
	}

	log.Debug("components ready", "segmenter", cfg.Summarizer.Segmenter, "stopwords", stops.Len(), "tagger", cfg.Tagger.Type)
	return service.NewTextService(sum, sentiment.NewAnalyzer(cfg.Sentiment.Threshold, seg), tg, sp, log, cfg.Summarizer.Sentences), nil
}
