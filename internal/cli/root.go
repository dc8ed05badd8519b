package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"qa-chat/internal/config"
	"qa-chat/internal/corpus"
	"qa-chat/internal/match"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	configFlag   string
	corpusFlag   string
	logLevelFlag string
)

// Set by setup before any subcommand runs.
var (
	cfg    *config.Config
	logger hclog.Logger
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "qa-chat",
	Short: "Approximate question-answer chat bot",
	Long: `qa-chat answers free-form questions from a fixed table of question-answer
pairs. Input is normalized and compared to every known question by edit
distance; close enough matches get the stored answer, anything else gets
the fallback reply.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultFile, "Path to config file")
	rootCmd.PersistentFlags().StringVar(&corpusFlag, "corpus", "", "Path to corpus YAML file (default: built-in corpus)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error")
}

// setup loads the configuration, applies global flags and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.LoadFromFile(configFlag)
	if err != nil {
		return err
	}

	if corpusFlag != "" {
		c.Corpus.Path = corpusFlag
	}

	if logLevelFlag != "" {
		c.Log.Level = strings.ToLower(logLevelFlag)
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	cfg = c
	logger = hclog.New(&hclog.LoggerOptions{
		Name:       "qa-chat",
		Level:      hclog.LevelFromString(c.Log.Level),
		Output:     cmd.ErrOrStderr(),
		JSONFormat: c.Log.JSON,
	})

	logger.Debug("configuration loaded", "config", configFlag, "corpus", c.Corpus.Path, "threshold", c.Matcher.Threshold)

	return nil
}

// loadCorpus reads the corpus at path, or the built-in one when path is empty.
func loadCorpus(path string) (*corpus.Corpus, error) {
	if path == "" {
		return corpus.Default(), nil
	}

	c, err := corpus.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	return c, nil
}

// newMatcher builds the matcher for the configured corpus and logs anything
// about the corpus worth knowing.
func newMatcher() (*match.Matcher, error) {
	c, err := loadCorpus(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}

	diags := corpus.Validate(c, match.Normalize)
	for _, d := range diags.Errors {
		logger.Error("corpus entry", "problem", d.String())
	}

	for _, d := range diags.Warnings {
		logger.Warn("corpus entry", "problem", d.String())
	}

	logger.Debug("corpus loaded", "entries", c.Len(), "diagnostics", diags.Codes())

	return match.New(c, cfg.MatcherOptions()...), nil
}

// useColor resolves a color mode for output written to w.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && f == os.Stdout && !color.NoColor
	}
}
