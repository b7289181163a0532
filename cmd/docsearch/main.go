package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"docsearch/internal/config"
	"docsearch/internal/search"
	"docsearch/internal/service"
	"docsearch/internal/stopwords"
	"docsearch/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/docsearch/config.yaml if not provided)")
	flag.Parse()

	if cfgPath == "" {
		cfgPath = os.Getenv("DOCSEARCH_CONFIG")
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.Log.Level)

	// The stopword set is built once here and passed by reference; the
	// engine has no ambient stopword state.
	stop := stopwords.Default()
	if cfg.Stopwords.File != "" {
		stop, err = stopwords.LoadFile(cfg.Stopwords.File)
		if err != nil {
			log.Fatalf("failed to load stopwords: %v", err)
		}
	}

	scorer := search.NewScorer(cfg.Search.MaxResults, cfg.Search.MinSimilarity)
	svc := service.New(stop, scorer, logger.WithField("component", "service"))

	banner := "No corpus loaded. Use: setpath <path>"
	if dir := flag.Arg(0); dir != "" {
		stats, err := svc.Load(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error occured while loading from %s: %v\n", dir, err)
			os.Exit(1)
		}
		banner = tui.LoadBanner(stats)
	}

	m := tui.New(svc, banner)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Goodbye!")
}

// newLogger configures logrus on stderr so diagnostics never fight the
// TUI for stdout.
func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}
