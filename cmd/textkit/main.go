package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"textkit/internal/service"
	"textkit/internal/spelling"
	"textkit/internal/summarizer"
	"textkit/internal/tagger"
	"textkit/internal/tui"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	cfgPath string
	svc     *service.TextService
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "textkit [file]",
		Short:         "Summarize, tag, score and spell check English text",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runUI,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textkit/config.yaml if not provided)")

	var count int
	var table bool
	summarize := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Print the highest scoring sentences and optionally the word frequency table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.setup(cmd, args, false)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("sentences") {
				count = a.svc.SummarySentences()
			}
			sum, err := a.svc.Summarize(text, count)
			if errors.Is(err, summarizer.ErrEmptyDocument) || errors.Is(err, summarizer.ErrEmptyVocabulary) {
				return fmt.Errorf("no content to summarize: %w", err)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sum.Text)
			if table {
				fmt.Fprintln(out)
				for _, row := range sum.Frequencies {
					fmt.Fprintf(out, "%-20s %d\n", row.Word, row.Count)
				}
			}
			return nil
		},
	}
	summarize.Flags().IntVarP(&count, "sentences", "n", 3, "Number of sentences in the summary")
	summarize.Flags().BoolVar(&table, "table", false, "Also print the word frequency table")

	sentimentCmd := &cobra.Command{
		Use:   "sentiment [file]",
		Short: "Score the polarity of the text and of each sentence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.setup(cmd, args, false)
			if err != nil {
				return err
			}
			overall, sentences, err := a.svc.Sentiment(text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "polarity %+.3f %s\n\n", overall.Polarity, overall.Label)
			for _, s := range sentences {
				fmt.Fprintf(out, "%-8s %+.3f  %s\n", s.Label, s.Polarity, s.Sentence)
			}
			return nil
		},
	}

	tagCmd := &cobra.Command{
		Use:   "tag [file]",
		Short: "Print part-of-speech tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.setup(cmd, args, false)
			if err != nil {
				return err
			}
			tags, err := a.svc.Tag(text)
			if err != nil {
				return err
			}
			for _, t := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-5s %s\n", t.Text, t.Tag, tagger.Describe(t.Tag))
			}
			return nil
		},
	}

	spellCmd := &cobra.Command{
		Use:   "spell [file]",
		Short: "Correct spelling and show a word diff",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.setup(cmd, args, false)
			if err != nil {
				return err
			}
			c := a.svc.Spell(text)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.Corrected)
			fmt.Fprintln(out, spelling.Markup(spelling.Diff(c.Original, c.Corrected)))
			return nil
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Run every analysis at once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.setup(cmd, args, false)
			if err != nil {
				return err
			}
			r, err := a.svc.Analyze(text, a.svc.SummarySentences())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "== Summary\n%s\n\n", r.Summary.Text)
			fmt.Fprintf(out, "== Sentiment\n%+.3f %s\n\n", r.Sentiment.Polarity, r.Sentiment.Label)
			fmt.Fprintf(out, "== Spelling\n%s\n\n", spelling.Markup(spelling.Diff(r.Correction.Original, r.Correction.Corrected)))
			var tags []string
			for _, t := range r.Tags {
				tags = append(tags, t.Text+"/"+t.Tag)
			}
			fmt.Fprintf(out, "== Tags\n%s\n", strings.Join(tags, " "))
			return nil
		},
	}

	uiCmd := &cobra.Command{
		Use:   "ui [file]",
		Short: "Open the interactive dashboard",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runUI,
	}

	root.AddCommand(summarize, sentimentCmd, tagCmd, spellCmd, analyzeCmd, uiCmd)
	return root
}

func (a *app) runUI(cmd *cobra.Command, args []string) error {
	text, err := a.setup(cmd, args, true)
	if err != nil {
		return err
	}
	m := tui.New(a.svc, text, a.svc.SummarySentences())
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// setup loads config and components, then reads the input document from
// the file argument or, for one-shot commands, stdin.
func (a *app) setup(cmd *cobra.Command, args []string, interactive bool) (string, error) {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return "", err
	}
	log := newLogger(cfg, interactive)
	a.svc, err = buildService(cfg, log)
	if err != nil {
		return "", err
	}
	if len(args) > 0 {
		return a.svc.LoadDocument(args[0])
	}
	if interactive {
		return "", nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
