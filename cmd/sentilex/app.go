package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/spacesedan/sentilex/config"
	"github.com/spacesedan/sentilex/internal/analyzer"
	"github.com/spacesedan/sentilex/internal/input"
	"github.com/spacesedan/sentilex/internal/lexicon"
	"github.com/spacesedan/sentilex/internal/logging"
	"github.com/spacesedan/sentilex/internal/models"
	"github.com/spacesedan/sentilex/internal/report"
	"github.com/spacesedan/sentilex/internal/sentiment"
)

const (
	EXIT_FAILURE = 1
	EXIT_USAGE   = 2
)

var errSourceRequired = errors.New("you must specify exactly one of --text, --file, or --dir")

func newApp(cfg *config.Config, ui UI) *cli.App {
	return &cli.App{
		Name:            "sentilex",
		Usage:           "Lexicon-based sentiment analyzer (sentence + document level)",
		Writer:          ui.Out,
		ErrWriter:       ui.Err,
		HideHelpCommand: true,
		// run maps errors to exit codes; never exit from inside the app.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "raw text to analyze"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "path to a text file to analyze"},
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "directory of .txt files to analyze in batch"},
			&cli.StringFlag{Name: "json", Usage: "write a JSON report to `PATH`"},
			&cli.StringFlag{Name: "csv", Usage: "write a CSV summary report to `PATH`"},
			&cli.IntFlag{Name: "top", Value: cfg.TopN, Usage: "number of top positive/negative words to keep"},
			&cli.IntFlag{Name: "workers", Value: cfg.Workers, Usage: "documents analyzed in parallel"},
			&cli.BoolFlag{Name: "markdown", Usage: "treat input as markdown and strip it to plain text"},
			&cli.BoolFlag{Name: "vader", Usage: "also report the VADER compound score"},
			&cli.BoolFlag{Name: "progress", Usage: "show a progress bar while analyzing"},
			&cli.StringFlag{Name: "positive-words", Value: cfg.PositiveWords, Usage: "custom positive word list `FILE`"},
			&cli.StringFlag{Name: "negative-words", Value: cfg.NegativeWords, Usage: "custom negative word list `FILE`"},
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel, Usage: "debug, info, warn or error"},
		},
		Action: func(c *cli.Context) error {
			return analyzeCommand(c, *cfg, ui)
		},
	}
}

func analyzeCommand(c *cli.Context, cfg config.Config, ui UI) error {
	cfg.TopN = c.Int("top")
	cfg.Workers = c.Int("workers")
	cfg.PositiveWords = c.String("positive-words")
	cfg.NegativeWords = c.String("negative-words")
	cfg.LogLevel = c.String("log-level")
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), EXIT_USAGE)
	}

	slog.SetDefault(logging.NewLogger(ui.Err, cfg.LogLevel))

	docs, err := loadDocuments(c)
	if err != nil {
		if errors.Is(err, errSourceRequired) {
			return cli.Exit(err.Error(), EXIT_USAGE)
		}
		return cli.Exit(err.Error(), EXIT_FAILURE)
	}

	if c.Bool("markdown") {
		for i := range docs {
			docs[i].Text = sentiment.ConvertMarkdownToText(docs[i].Text)
		}
	}

	loader := lexicon.LoadDefault
	if cfg.HasCustomLexicon() {
		loader = lexicon.FilesLoader(cfg.PositiveWords, cfg.NegativeWords)
	}

	opts := []analyzer.Option{analyzer.WithWorkers(cfg.Workers)}
	if c.Bool("vader") {
		opts = append(opts, analyzer.WithVader(sentiment.NewVaderScorer()))
	}

	var progress *uiprogress.Progress
	if c.Bool("progress") {
		progress = uiprogress.New()
		progress.SetOut(ui.Err)
		bar := progress.AddBar(len(docs))
		bar.AppendCompleted()
		bar.PrependElapsed()
		opts = append(opts, analyzer.WithObserver(func(models.DocumentResult) {
			bar.Incr()
		}))
		progress.Start()
	}

	a, err := analyzer.NewFromLoader(loader, opts...)
	if err != nil {
		if progress != nil {
			progress.Stop()
		}
		return cli.Exit(err.Error(), EXIT_FAILURE)
	}

	results, err := a.BatchAnalyze(c.Context, docs, cfg.TopN)
	if progress != nil {
		progress.Stop()
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := report.WriteSummary(ui.Out, results); err != nil {
		return err
	}

	return writeExports(c, results, ui)
}

// loadDocuments reads the single input source selected on the command line.
func loadDocuments(c *cli.Context) ([]models.Document, error) {
	var sources int
	for _, name := range []string{"text", "file", "dir"} {
		if c.IsSet(name) {
			sources++
		}
	}
	if sources != 1 {
		return nil, errSourceRequired
	}

	switch {
	case c.IsSet("text"):
		// An empty --text selects no source.
		if c.String("text") == "" {
			return nil, errSourceRequired
		}
		return input.FromText(c.String("text")), nil
	case c.IsSet("file"):
		return input.FromFile(c.String("file"))
	default:
		return input.FromDir(c.String("dir"))
	}
}

func writeExports(c *cli.Context, results []models.DocumentResult, ui UI) error {
	if path := c.String("json"); path != "" {
		if err := report.WriteJSONFile(path, results); err != nil {
			return cli.Exit(err.Error(), EXIT_FAILURE)
		}
		fmt.Fprintf(ui.Out, "JSON report written to %s\n", path)
	}

	if path := c.String("csv"); path != "" {
		if err := report.WriteCSVFile(path, results); err != nil {
			return cli.Exit(err.Error(), EXIT_FAILURE)
		}
		fmt.Fprintf(ui.Out, "CSV report written to %s\n", path)
	}

	return nil
}
