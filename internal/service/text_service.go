package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"textkit/internal/domain"
)

// TextService wires the text utilities together and logs every call.
type TextService struct {
	summarizer       domain.Summarizer
	sentiment        domain.SentimentAnalyzer
	tagger           domain.Tagger
	speller          domain.SpellChecker
	log              *slog.Logger
	summarySentences int
}

func NewTextService(summarizer domain.Summarizer, sentiment domain.SentimentAnalyzer, tagger domain.Tagger, speller domain.SpellChecker, log *slog.Logger, summarySentences int) *TextService {
	return &TextService{
		summarizer:       summarizer,
		sentiment:        sentiment,
		tagger:           tagger,
		speller:          speller,
		log:              log,
		summarySentences: summarySentences,
	}
}

// SummarySentences is the configured default summary length.
func (s *TextService) SummarySentences() int { return s.summarySentences }

func (s *TextService) Summarize(text string, sentenceCount int) (*domain.Summary, error) {
	log, start := s.begin("summarize", text)
	sum, err := s.summarizer.Summarize(text, sentenceCount)
	if err != nil {
		log.Error("summarize failed", "err", err)
		return nil, err
	}
	log.Info("summarized", "requested", sentenceCount, "selected", len(sum.Sentences),
		"vocabulary", len(sum.Frequencies), "took", time.Since(start))
	return sum, nil
}

func (s *TextService) Sentiment(text string) (domain.Sentiment, []domain.SentenceSentiment, error) {
	log, start := s.begin("sentiment", text)
	overall := s.sentiment.Analyze(text)
	sentences, err := s.sentiment.AnalyzeSentences(text)
	if err != nil {
		log.Error("sentiment failed", "err", err)
		return domain.Sentiment{}, nil, err
	}
	log.Info("scored sentiment", "polarity", overall.Polarity, "label", overall.Label,
		"sentences", len(sentences), "took", time.Since(start))
	return overall, sentences, nil
}

func (s *TextService) Tag(text string) ([]domain.TaggedToken, error) {
	log, start := s.begin("tag", text)
	tags, err := s.tagger.Tag(text)
	if err != nil {
		log.Error("tag failed", "err", err)
		return nil, err
	}
	log.Info("tagged", "tokens", len(tags), "took", time.Since(start))
	return tags, nil
}

func (s *TextService) Spell(text string) domain.Correction {
	log, start := s.begin("spell", text)
	c := s.speller.Correct(text)
	log.Info("corrected", "changes", len(c.Changes), "took", time.Since(start))
	return c
}

// Analyze runs every utility over text concurrently. The first error
// cancels the report.
func (s *TextService) Analyze(text string, sentenceCount int) (*domain.Report, error) {
	var (
		r domain.Report
		g errgroup.Group
	)
	g.Go(func() error {
		sum, err := s.Summarize(text, sentenceCount)
		r.Summary = sum
		return err
	})
	g.Go(func() error {
		var err error
		r.Sentiment, r.Sentences, err = s.Sentiment(text)
		return err
	})
	g.Go(func() error {
		var err error
		r.Tags, err = s.Tag(text)
		return err
	})
	g.Go(func() error {
		r.Correction = s.Spell(text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadDocument reads a .txt, .md or .html file. HTML is reduced to its
// visible text.
func (s *TextService) LoadDocument(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md", ".text", "":
	case ".html", ".htm":
	default:
		return "", fmt.Errorf("unsupported document type %q", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if ext == ".html" || ext == ".htm" {
		title, text, err := ExtractHTML(string(data))
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		s.log.Debug("loaded html", "path", path, "title", title, "bytes", len(data))
		return text, nil
	}
	s.log.Debug("loaded text", "path", path, "bytes", len(data))
	return string(data), nil
}

func (s *TextService) begin(op, text string) (*slog.Logger, time.Time) {
	log := s.log.With("op", op, "request_id", uuid.NewString())
	log.Debug("request", "bytes", len(text))
	return log, time.Now()
}
