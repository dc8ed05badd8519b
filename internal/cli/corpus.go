package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qa-chat/internal/corpus"
	"qa-chat/internal/diagnostic"
	"qa-chat/internal/match"
)

var dumpOutputFlag string

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect question-answer corpora",
}

var corpusCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report problems in a corpus",
	Long: `Load a corpus and report entries that are broken or can never be selected,
such as blank answers or questions that normalize to the same text as an
earlier one. Exits non-zero when errors are found.

Without a file argument the configured corpus is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCorpusCheck,
}

var corpusDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the active corpus as YAML",
	Args:  cobra.NoArgs,
	RunE:  runCorpusDump,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusCheckCmd, corpusDumpCmd)

	corpusDumpCmd.Flags().StringVarP(&dumpOutputFlag, "output", "o", "", "Write to file instead of stdout")
}

func runCorpusCheck(cmd *cobra.Command, args []string) error {
	path := cfg.Corpus.Path
	if len(args) == 1 {
		path = args[0]
	}

	c, err := loadCorpus(path)
	if err != nil {
		return err
	}

	diags := corpus.Validate(c, match.Normalize)
	out := cmd.OutOrStdout()

	renderDiagnostics(out, diags, useColor(cfg.Color, out))

	fmt.Fprintf(out, "%d entries: %d error(s), %d warning(s), %d note(s)\n",
		c.Len(), len(diags.Errors), len(diags.Warnings), len(diags.Infos))

	if err := diags.Error(); err != nil {
		return fmt.Errorf("corpus has %d error(s): %w", len(diags.Errors), err)
	}

	return nil
}

func renderDiagnostics(w io.Writer, diags *diagnostic.Diagnostics, colorEnabled bool) {
	styles := map[diagnostic.Severity]*color.Color{
		diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
		diagnostic.SeverityWarning: color.New(color.FgYellow),
		diagnostic.SeverityInfo:    color.New(color.FgCyan),
	}

	for _, style := range styles {
		if colorEnabled {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}

	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s %s\n", styles[d.Severity].Sprintf("%-7s", d.Severity), d)
	}
}

func runCorpusDump(cmd *cobra.Command, _ []string) error {
	c, err := loadCorpus(cfg.Corpus.Path)
	if err != nil {
		return err
	}

	if dumpOutputFlag != "" {
		if err := corpus.WriteFile(c, dumpOutputFlag); err != nil {
			return err
		}

		logger.Info("corpus written", "path", dumpOutputFlag, "entries", c.Len())

		return nil
	}

	data, err := corpus.Marshal(c)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
