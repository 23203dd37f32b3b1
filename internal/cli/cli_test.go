package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/xiam/sexpr/internal/cli"
	"github.com/xiam/sexpr/internal/logging"
)

var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

type result struct {
	stdout string
	stderr string
	err    error
	code   int
}

// execute runs the root command with an empty config file so the
// developer's own settings do not leak into the test.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	emptyConfig := filepath.Join(t.TempDir(), ".sexpr.yaml")
	require.NoError(t, os.WriteFile(emptyConfig, nil, 0o644))

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs(append([]string{"--config", emptyConfig}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return result{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
		code:   cli.ExitCode(err),
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := cli.NewRootCommand(testInfo)
	assert.Equal(t, "sexpr", cmd.Use)

	for _, name := range []string{"tokens", "parse", "concrete", "fmt", "env", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %q", name)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestParseJSON(t *testing.T) {
	res := execute(t, `(a "b" 1 'c)`, "parse")
	require.NoError(t, res.err)
	assert.JSONEq(t, `["a", {"$string": "b"}, 1, ["quote", "c"]]`, res.stdout)
}

func TestParseYAML(t *testing.T) {
	res := execute(t, `(a "b" 1 'c)`, "parse", "--output", "yaml")
	require.NoError(t, res.err)

	var decoded any
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &decoded))
	assert.Equal(t, []any{"a", map[string]any{"$string": "b"}, 1, []any{"quote", "c"}}, decoded)
}

func TestParseMsgpack(t *testing.T) {
	res := execute(t, `(a "b" 1 'c)`, "parse", "-o", "msgpack")
	require.NoError(t, res.err)

	var decoded any
	require.NoError(t, msgpack.Unmarshal([]byte(res.stdout), &decoded))
	assert.Equal(t, []any{"a", map[string]any{"$string": "b"}, 1.0, []any{"quote", "c"}}, decoded)
}

func TestParseOutputFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.toml")
	require.NoError(t, os.WriteFile(path, []byte("output = \"yaml\"\n"), 0o644))

	res := execute(t, `(a b)`, "parse", "--config", path)
	require.NoError(t, res.err)
	assert.Equal(t, "- a\n- b\n", res.stdout)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.scm")
	require.NoError(t, os.WriteFile(path, []byte("; c\n(x)"), 0o644))

	res := execute(t, "", "concrete", path)
	require.NoError(t, res.err)
	assert.JSONEq(t, `{
		"type": "List",
		"value": [{"type": "Symbol", "value": "x", "meta": {"location": {"start": 5, "end": 6}, "comments": []}}],
		"meta": {"location": {"start": 4, "end": 7}, "comments": ["; c"]}
	}`, res.stdout)
}

func TestNormalize(t *testing.T) {
	decomposed := "e\u0301"

	res := execute(t, decomposed, "parse", "--normalize", "nfc")
	require.NoError(t, res.err)

	var decoded string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &decoded))
	assert.Equal(t, "\u00e9", decoded)

	res = execute(t, decomposed, "parse")
	require.NoError(t, res.err)
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &decoded))
	assert.Equal(t, decomposed, decoded)
}

func TestSyntaxErrorDiagnostic(t *testing.T) {
	res := execute(t, "(foo", "parse")
	require.Error(t, res.err)
	assert.Equal(t, cli.ExitSyntaxError, res.code)
	assert.True(t, cli.Reported(res.err))
	assert.Empty(t, res.stdout)
	assert.Equal(t, "<stdin>:1:1: missing matching paren for opening paren\n  (foo\n  ^\n", res.stderr)
}

func TestSyntaxErrorCaretWidth(t *testing.T) {
	res := execute(t, "(ok\n\t(日本 \"abc", "concrete")
	require.Error(t, res.err)
	assert.Equal(t, cli.ExitSyntaxError, res.code)

	lines := strings.Split(strings.TrimSuffix(res.stderr, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "<stdin>:2:6: failed to read string", lines[0])
	assert.Equal(t, "  \t(日本 \"abc", lines[1])
	assert.Equal(t, "  \t      ^", lines[2])
}

func TestMaxDepthFlag(t *testing.T) {
	res := execute(t, "((a))", "parse", "--max-depth", "1")
	assert.Equal(t, cli.ExitSyntaxError, res.code)
	assert.Contains(t, res.stderr, "nesting deeper than 1")

	res = execute(t, "((a))", "parse", "--max-depth", "2")
	assert.NoError(t, res.err)
}

func TestTokens(t *testing.T) {
	res := execute(t, "; hi\n(a 'b)", "tokens", "--comments")
	require.NoError(t, res.err)

	expected := "\t; hi\n" +
		"2:1\tOpenParen\t(\n" +
		"2:2\tSymbol\ta\n" +
		"2:4\tQuote\t'\n" +
		"2:5\tSymbol\tb\n" +
		"2:6\tCloseParen\t)\n"
	assert.Equal(t, expected, res.stdout)
}

func TestTokensError(t *testing.T) {
	res := execute(t, `"\q"`, "tokens")
	assert.Equal(t, cli.ExitSyntaxError, res.code)
	assert.Contains(t, res.stderr, `<stdin>:1:2: unrecognized escape \q in string`)
}

func TestFmt(t *testing.T) {
	res := execute(t, "(a   b\n  'c)", "fmt")
	require.NoError(t, res.err)
	assert.Equal(t, "(a b 'c)\n", res.stdout)

	res = execute(t, "(alpha beta)", "fmt", "--width", "5", "--indent", "4")
	require.NoError(t, res.err)
	assert.Equal(t, "(alpha\n    beta)\n", res.stdout)
}

func TestFmtDiff(t *testing.T) {
	res := execute(t, "(a   b)\n", "fmt", "--diff")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, cli.ErrUnformatted)
	assert.Equal(t, cli.ExitSyntaxError, res.code)
	assert.True(t, cli.Reported(res.err))
	assert.Equal(t, "--- <stdin>\n+++ <stdin> (formatted)\n-(a   b)\n+(a b)\n", res.stdout)

	res = execute(t, "(a b)\n", "fmt", "-d")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
}

func TestFmtWrite(t *testing.T) {
	dir := t.TempDir()
	messy := filepath.Join(dir, "messy.scm")
	clean := filepath.Join(dir, "clean.scm")
	require.NoError(t, os.WriteFile(messy, []byte("( quote   x )"), 0o600))
	require.NoError(t, os.WriteFile(clean, []byte("(y)\n"), 0o644))

	res := execute(t, "", "fmt", "-w", messy, clean)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(messy)
	require.NoError(t, err)
	assert.Equal(t, "'x\n", string(data))

	info, err := os.Stat(messy)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err = os.ReadFile(clean)
	require.NoError(t, err)
	assert.Equal(t, "(y)\n", string(data))
}

func TestFmtKeepsGoingAfterSyntaxError(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.scm")
	good := filepath.Join(dir, "good.scm")
	require.NoError(t, os.WriteFile(bad, []byte("(a"), 0o644))
	require.NoError(t, os.WriteFile(good, []byte("( b )"), 0o644))

	res := execute(t, "", "fmt", bad, good)
	assert.Equal(t, cli.ExitSyntaxError, res.code)
	assert.Equal(t, "(b)\n", res.stdout)
	assert.Contains(t, res.stderr, bad+":1:1:")
}

func TestUsageErrors(t *testing.T) {
	testCases := [][]string{
		{"parse", "--color", "purple"},
		{"parse", "--output", "xml"},
		{"parse", "--no-such-flag"},
		{"parse", "a", "b"},
		{"fmt", "-w", "-d"},
		{"fmt", "--width", "0"},
		{"version", "extra"},
	}

	for _, args := range testCases {
		res := execute(t, "x", args...)
		assert.Equal(t, cli.ExitInvalidUsage, res.code, "args: %v, err: %v", args, res.err)
	}
}

func TestConfigError(t *testing.T) {
	res := execute(t, "x", "parse", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, cli.ExitConfigError, res.code)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: -3\n"), 0o644))
	res = execute(t, "x", "parse", "--config", bad)
	assert.Equal(t, cli.ExitConfigError, res.code)
	assert.Contains(t, res.err.Error(), bad)
}

func TestMissingInput(t *testing.T) {
	res := execute(t, "", "parse", filepath.Join(t.TempDir(), "missing.scm"))
	assert.Equal(t, cli.ExitIOError, res.code)
	assert.False(t, cli.Reported(res.err))
}

func TestDebugLogging(t *testing.T) {
	res := execute(t, "(a)", "parse", "--debug")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "read input")
	assert.Contains(t, res.stderr, "tokenized")
}

func TestCommandContextLogger(t *testing.T) {
	original := logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	emptyConfig := filepath.Join(t.TempDir(), ".sexpr.yaml")
	require.NoError(t, os.WriteFile(emptyConfig, nil, 0o644))

	root := cli.NewRootCommand(testInfo)
	root.AddCommand(&cobra.Command{
		Use: "hello",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.SetDefault(logging.NewWithWriter(io.Discard, "debug"))
			logging.FromContext(cmd.Context()).Debug("hello from context")
			return nil
		},
	})

	var stderr bytes.Buffer
	root.SetArgs([]string{"--config", emptyConfig, "--debug", "hello"})
	root.SetOut(io.Discard)
	root.SetErr(&stderr)

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "hello from context")
}

func TestVersion(t *testing.T) {
	res := execute(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "test-version")
	assert.Contains(t, res.stdout, "test-commit")
}

func TestEnv(t *testing.T) {
	res := execute(t, "", "env")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "SEXPR_OUTPUT")
	assert.Contains(t, res.stdout, "SEXPR_MAX_DEPTH")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(&cli.ExitError{Code: cli.ExitIOError, Err: os.ErrNotExist}))
	assert.Equal(t, cli.ExitSyntaxError, cli.ExitCode(cli.ErrUnformatted))
}
