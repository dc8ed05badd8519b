package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	explainFlag bool
	topFlag     int
	jsonFlag    bool
)

var askCmd = &cobra.Command{
	Use:   "ask <text...>",
	Short: "Answer a single question",
	Long: `Answer a single question and exit. All arguments are joined with spaces
to form the question.

With --explain the closest corpus questions are listed with their edit
distances, in the order the matcher ranks them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().BoolVar(&explainFlag, "explain", false, "List the closest corpus questions")
	askCmd.Flags().IntVar(&topFlag, "top", 3, "Number of candidates shown by --explain")
	askCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the full match result as JSON")
}

func runAsk(cmd *cobra.Command, args []string) error {
	if topFlag < 1 {
		return errors.New("--top must be >= 1")
	}

	m, err := newMatcher()
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	res := m.Match(input)
	out := cmd.OutOrStdout()

	logger.Debug("answered", "outcome", res.Outcome.String(), "question", res.Question, "distance", res.Distance)

	if jsonFlag {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	}

	fmt.Fprintln(out, res.Answer)

	if !explainFlag {
		return nil
	}

	fmt.Fprintln(out)

	ranked := m.Rank(input)
	accepted := ranked.WithinThreshold(m.Threshold())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tDISTANCE\tSIMILARITY\tACCEPT\tQUESTION")

	// ranked is sorted by distance, so accepted candidates are a prefix of it.
	for i, c := range ranked.Top(topFlag) {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%s\t%s\n", i+1, c.Distance, c.Similarity, yesNo(i < len(accepted)), c.Entry.Question)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nthreshold: %d, within threshold: %d, outcome: %s\n", m.Threshold(), len(accepted), res.Outcome)

	if best := ranked.Best(); best != nil && ranked.IsAmbiguous() {
		fmt.Fprintf(out, "tie decided by corpus order: %q wins at distance %d\n", best.Entry.Question, best.Distance)
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
