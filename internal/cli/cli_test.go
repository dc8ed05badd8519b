package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-chat/internal/corpus"
	"qa-chat/internal/match"
)

const helloAnswer = "नमस्ते! भवतः स्वागतं हार्दं कुर्मः।"

// resetFlags restores every flag to its default so tests don't leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)

	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCommandContext(t *testing.T, ctx context.Context, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	for _, env := range []string{"QA_CHAT_LOG_LEVEL", "QA_CHAT_CORPUS", "QA_CHAT_ADDR", "QA_CHAT_THRESHOLD"} {
		t.Setenv(env, "")
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))

	err := rootCmd.ExecuteContext(ctx)

	return out.String(), err
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandContext(t, context.Background(), "", args...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func questionsOf(c *corpus.Corpus) []string {
	var qs []string
	for _, e := range c.Entries() {
		qs = append(qs, e.Question)
	}

	return qs
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "exact", args: []string{"ask", "hello"}, want: helloAnswer},
		{name: "typo and punctuation", args: []string{"ask", "Helo!"}, want: helloAnswer},
		{name: "joined args", args: []string{"ask", "good", "morning"}, want: "सुप्रभातम्"},
		{name: "fallback", args: []string{"ask", "tell me a story"}, want: match.DefaultFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestAsk_JSON(t *testing.T) {
	out, err := executeCommand(t, "ask", "--json", "hi")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.Equal(t, "hi", res["question"])
	assert.Equal(t, "Matched", res["outcome"])
	assert.InDelta(t, 0, res["distance"], 0)
}

func TestAsk_Explain(t *testing.T) {
	out, err := executeCommand(t, "ask", "--explain", "--top", "2", "who are yu")
	require.NoError(t, err)

	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "who are you")
	assert.Contains(t, out, "how are you")
	assert.NotContains(t, out, "good morning")
	assert.Contains(t, out, "threshold: 3, within threshold: 2, outcome: Matched")
	assert.NotContains(t, out, "tie decided by corpus order")
}

func TestAsk_ExplainTie(t *testing.T) {
	path := writeFile(t, "ab.yaml", `pairs:
  a: first
  b: second
  zzzzzz: far away
`)

	out, err := executeCommand(t, "ask", "--explain", "--corpus", path, "c")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "first", lines[0])
	assert.Equal(t, []string{"1", "1", "0.00", "yes", "a"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"2", "1", "0.00", "yes", "b"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"3", "6", "0.00", "no", "zzzzzz"}, strings.Fields(lines[5]))
	assert.Contains(t, out, "threshold: 3, within threshold: 2, outcome: Matched")
	assert.Contains(t, out, `tie decided by corpus order: "a" wins at distance 1`)
}

func TestAsk_Errors(t *testing.T) {
	_, err := executeCommand(t, "ask")
	assert.Error(t, err)

	_, err = executeCommand(t, "ask", "--top", "0", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--top")

	_, err = executeCommand(t, "ask", "--corpus", filepath.Join(t.TempDir(), "nope.yaml"), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load corpus")

	_, err = executeCommand(t, "ask", "--log-level", "loud", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestAsk_CustomCorpus(t *testing.T) {
	path := writeFile(t, "pairs.yaml", `pairs:
  ping: pong
  what time is it: time to test
`)

	out, err := executeCommand(t, "ask", "--corpus", path, "pnig")
	require.NoError(t, err)
	assert.Equal(t, "pong\n", out)

	out, err = executeCommand(t, "ask", "--corpus", path, "hello")
	require.NoError(t, err)
	assert.Equal(t, match.DefaultFallback+"\n", out)
}

func TestChat(t *testing.T) {
	out, err := executeCommandContext(t, context.Background(), "hello\n\nexit\nhi\n", "chat", "--reply-delay", "0s")
	require.NoError(t, err)

	assert.Contains(t, out, "Type 'exit' to quit.")
	assert.Contains(t, out, "Bot: "+helloAnswer)
	assert.Equal(t, 1, strings.Count(out, "Bot: "))
	assert.NotContains(t, out, "\x1b[")
}

func TestCorpusCheck(t *testing.T) {
	t.Run("built-in corpus is clean", func(t *testing.T) {
		out, err := executeCommand(t, "corpus", "check")
		require.NoError(t, err)
		assert.Contains(t, out, "5 entries: 0 error(s), 0 warning(s), 0 note(s)")
	})

	t.Run("problems are reported", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", `pairs:
  hello: hi there
  "Hello!": shadowed
  bye: ""
`)

		out, err := executeCommand(t, "corpus", "check", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 error(s)")
		assert.Contains(t, err.Error(), `line 4 "bye": [empty_answer]`)
		assert.Contains(t, out, "empty_answer")
		assert.Contains(t, out, "shadowed_question")
		assert.Contains(t, out, "line 4")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := writeFile(t, "dup.yaml", "pairs:\n  a: x\n  a: y\n")

		_, err := executeCommand(t, "corpus", "check", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})
}

func TestCorpusDump(t *testing.T) {
	out, err := executeCommand(t, "corpus", "dump")
	require.NoError(t, err)

	c, err := corpus.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, questionsOf(corpus.Default()), questionsOf(c))

	path := filepath.Join(t.TempDir(), "out.yaml")
	_, err = executeCommand(t, "corpus", "dump", "-o", path)
	require.NoError(t, err)

	c, err = corpus.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := executeCommandContext(t, ctx, "", "serve", "--addr", "127.0.0.1:0")
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2024-01-01")
	defer SetVersionInfo("dev", "none", "unknown")

	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "qa-chat version 1.2.3")
	assert.Contains(t, out, "commit: abc123")
	assert.Contains(t, out, "built:  2024-01-01")
}

func TestVersion_SkipsUnknown(t *testing.T) {
	SetVersionInfo("1.0.0", "none", "unknown")
	defer SetVersionInfo("dev", "none", "unknown")

	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	assert.NotContains(t, out, "commit:")
	assert.NotContains(t, out, "built:")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, useColor("always", &buf))
	assert.False(t, useColor("never", os.Stdout))
	assert.False(t, useColor("auto", &buf))
}
