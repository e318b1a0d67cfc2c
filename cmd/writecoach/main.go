package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vampirenirmal/writecoach/internal/agent"
	"github.com/vampirenirmal/writecoach/internal/config"
	"github.com/vampirenirmal/writecoach/internal/report"
	"github.com/vampirenirmal/writecoach/internal/rubric"
	"github.com/vampirenirmal/writecoach/internal/session"
	"github.com/vampirenirmal/writecoach/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "score":
		err = runScore(cfg, os.Args[2:])
	case "coach":
		err = runCoach(cfg, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: writecoach <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  score [files...]   Score writing samples against the rubric")
	fmt.Println("  coach              Run an interactive coaching session on stdin")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --genre narrative|persuasive|informative   (default narrative)")
	fmt.Println("  --save                                     write Markdown reports (score only)")
}

func parseGenre(s string) (rubric.Genre, error) {
	switch rubric.Genre(s) {
	case rubric.GenreNarrative, rubric.GenrePersuasive, rubric.GenreInformative:
		return rubric.Genre(s), nil
	default:
		return "", fmt.Errorf("unknown genre %q", s)
	}
}

func runScore(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	genreFlag := fs.String("genre", string(rubric.GenreNarrative), "writing genre")
	save := fs.Bool("save", false, "write Markdown reports to the output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no input files")
	}

	genre, err := parseGenre(*genreFlag)
	if err != nil {
		return err
	}

	writer := report.NewWriter(storage.NewFileSystem(cfg.Paths.OutputDir))

	type result struct {
		file     string
		analysis report.Analysis
		saved    string
	}
	results := make([]result, fs.NArg())

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Coach.MaxConcurrentScores)
	for i, file := range fs.Args() {
		i, file := i, file
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			a := report.Analyze(string(data), genre)
			r := result{file: file, analysis: a}
			if *save {
				title := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
				path, err := writer.Write(ctx, a, title)
				if err != nil {
					return err
				}
				r.saved = path
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		a := r.analysis
		fmt.Printf("%s: %d/100 (%d words, stage %s, show-tell %s)\n",
			r.file, a.Score.Overall, a.Sample.WordCount, a.Stages.CurrentStage, a.ShowTell.Assessment)
		if r.saved != "" {
			fmt.Printf("  report: %s\n", r.saved)
		}
	}
	return nil
}

func runCoach(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("coach", flag.ExitOnError)
	genreFlag := fs.String("genre", string(rubric.GenreNarrative), "writing genre")
	if err := fs.Parse(args); err != nil {
		return err
	}

	genre, err := parseGenre(*genreFlag)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	client := buildClient(cfg)
	manager := session.NewManager(client,
		session.WithCooldown(time.Duration(cfg.Coach.CooldownSeconds)*time.Second))
	sess := manager.Start(genre)
	defer manager.End(sess.ID())

	fmt.Println("writecoach: type your story, one chunk per line. Blank line for a paragraph break, 'done' to finish.")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	var text strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if line == "done" {
			break
		}

		prev := text.String()
		if line == "" {
			text.WriteString("\n\n")
		} else {
			if prev != "" && !strings.HasSuffix(prev, "\n") {
				text.WriteString(" ")
			}
			text.WriteString(line)
		}

		if ch := sess.OnTextChanged(ctx, prev, text.String()); ch != nil {
			if message, ok := <-ch; ok {
				fmt.Printf("\n  coach: %s\n\n", message)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	score := sess.OnDemandAnalysis(text.String())
	fmt.Printf("\nFinal score: %d/100\n", score.Overall)
	return nil
}

// buildClient returns the HTTP generation client when an API key is
// configured, otherwise the offline mock.
func buildClient(cfg *config.Config) agent.Client {
	if cfg.AI.APIKey == "" {
		return agent.NewMockClient()
	}
	return agent.NewHTTPClient(cfg.AI.APIKey,
		agent.WithAPIConfig(cfg.AI.BaseURL, cfg.AI.Model),
		agent.WithTimeout(time.Duration(cfg.AI.Timeout)*time.Second),
		agent.WithRetry(cfg.Coach.MaxRetries),
		agent.WithRateLimit(cfg.Coach.RateLimit.RequestsPerMinute, cfg.Coach.RateLimit.BurstSize),
	)
}
