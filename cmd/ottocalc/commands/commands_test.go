package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

// run executes the command tree with logging silenced and returns
// stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--quiet", "--log-file", "stderr"}, args...))

	err := execute(context.Background(), root)
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "", "eval", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestEvalMany(t *testing.T) {
	out, err := run(t, "", "eval", "10/3", "1/0", "6×7", "(1+2")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"10/3 = 3.33333333333",
		"1/0 = Error",
		"6×7 = 42",
		"(1+2 = Error",
	}, "\n")+"\n", out)
}

func TestEvalSkipsSpaces(t *testing.T) {
	out, err := run(t, "", "eval", " 1 + 2 ×\t3 ")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestEvalPercent(t *testing.T) {
	out, err := run(t, "", "eval", "200+50%")
	require.NoError(t, err)
	assert.Equal(t, "200.5\n", out)
}

func TestEvalRejectsNonExpressionKeys(t *testing.T) {
	for _, text := range []string{"1e5", "1+2c3", "2+3=", "1 + x"} {
		t.Run(text, func(t *testing.T) {
			out, err := run(t, "", "eval", text)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnknownKey)
			assert.Empty(t, out)
		})
	}
}

func TestBatchRejectsNonExpressionLine(t *testing.T) {
	_, err := run(t, "1+1\n2c\n", "batch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.ErrorIs(t, err, domain.ErrUnknownKey)
}

func TestEvalMaxLengthFlag(t *testing.T) {
	out, err := run(t, "", "--max-length", "3", "eval", "12345")
	require.NoError(t, err)
	assert.Equal(t, "123\n", out)
}

func TestKeys(t *testing.T) {
	out, err := run(t, "", "keys", "2", "0", "0", "plus", "5", "0", "percent")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"0", "2", "20", "200", "200+", "200+5", "200+50", "200+0.5",
	}, "\n")+"\n", out)
}

func TestKeysFinal(t *testing.T) {
	out, err := run(t, "", "keys", "--final", "0", "0", "5", "×", "3", "enter")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestKeysUnknown(t *testing.T) {
	_, err := run(t, "", "keys", "1", "sqrt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"sqrt"`)
}

func TestBatch(t *testing.T) {
	in := "2+3*4\n\n10/3\n1/0\n0.1+0.2\n"
	out, err := run(t, in, "batch", "-j", "2")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"2+3*4\t14",
		"10/3\t3.33333333333",
		"1/0\tError",
		"0.1+0.2\t0.3",
	}, "\n")+"\n", out)
}

func TestBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("7*6\n(2+3)*4\n"), 0o644))

	out, err := run(t, "", "batch", path)
	require.NoError(t, err)
	assert.Equal(t, "7*6\t42\n(2+3)*4\t20\n", out)
}

func TestInvalidConfigRejected(t *testing.T) {
	_, err := run(t, "", "--precision", "40", "eval", "1")
	assert.Error(t, err)
}

func TestLogClosedWhenCommandFails(t *testing.T) {
	chdir(t, t.TempDir())

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--log-file", filepath.Join("logs", "ottocalc.log"), "keys", "sqrt"})

	var closed bool
	root.PersistentPreRunE = wrapSetup(root.PersistentPreRunE, func() { closed = true })

	err := execute(context.Background(), root)
	require.Error(t, err)
	assert.True(t, closed, "log file left open")
	assert.FileExists(t, filepath.Join("logs", "ottocalc.log"))
}

// wrapSetup runs pre and then chains onClose onto the log closer it
// installed.
func wrapSetup(pre func(*cobra.Command, []string) error, onClose func()) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := pre(cmd, args); err != nil {
			return err
		}
		next := appCtx.closeLog
		appCtx.closeLog = func() {
			next()
			onClose()
		}
		return nil
	}
}

func TestOpenLogFallsBackWhenDirectoryFails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	w, closeLog := openLog(filepath.Join(blocker, "ottocalc.log"))
	defer closeLog()
	assert.Equal(t, os.Stderr, w)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
