package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-negativo/algorithms/chromatic"
	"github.com/RyanBlaney/sonido-negativo/algorithms/selector"
	"github.com/RyanBlaney/sonido-negativo/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return ansi.ReplaceAllString(out.String(), ""), errOut.String(), err
}

// rowFields returns the whitespace-separated cells of every output line
func rowFields(out string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rows = append(rows, strings.Fields(line))
	}
	return rows
}

func TestReflect_Args(t *testing.T) {
	out, _, err := run(t, "", "reflect", "C", "E", "G", "--key", "C")
	require.NoError(t, err)
	assert.Equal(t, "G Eb C\n", out)

	out, _, err = run(t, "", "reflect", "F")
	require.NoError(t, err)
	assert.Equal(t, "D\n", out)
}

func TestReflect_Stdin(t *testing.T) {
	out, _, err := run(t, "C E G\n\nF\n", "reflect", "-k", "G")
	require.NoError(t, err)
	assert.Equal(t, "A F D\n\nE\n", out)
}

func TestReflect_Errors(t *testing.T) {
	_, errOut, err := run(t, "", "reflect", "H")
	assert.ErrorIs(t, err, chromatic.ErrNotFound)
	assert.Contains(t, errOut, "ignoring unknown note")

	_, _, err = run(t, "", "reflect", "C", "--key", "H")
	assert.ErrorIs(t, err, selector.ErrNotFound)
}

func TestAxis(t *testing.T) {
	out, _, err := run(t, "", "axis", "--key", "G")
	require.NoError(t, err)

	assert.Contains(t, out, "G/D")
	assert.Contains(t, out, "30°")
	assert.Contains(t, out, "endpoints")
}

func TestTable(t *testing.T) {
	out, _, err := run(t, "", "table")
	require.NoError(t, err)

	rows := rowFields(out)
	require.Len(t, rows, 13)
	assert.Contains(t, out, "reflection (C/G)")
	assert.Contains(t, rows, []string{"F", "9", "10", "D"})
	assert.Contains(t, rows, []string{"C", "7", "0", "G"})
}

func TestSpin(t *testing.T) {
	out, _, err := run(t, "", "spin", "--key", "C", "--steps", "2")
	require.NoError(t, err)

	rows := rowFields(out)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"C", "C/G", "11", "0°"}, rows[1])
	assert.Equal(t, []string{"Db", "Db/Ab", "10", "30°"}, rows[2])
	assert.Equal(t, []string{"D", "D/A", "9", "60°"}, rows[3])

	out, _, err = run(t, "", "spin", "--steps=-1")
	require.NoError(t, err)
	rows = rowFields(out)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"B", "B/Gb", "0", "150°"}, rows[2])
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "", "info")
	require.NoError(t, err)

	assert.Contains(t, out, "Negative Harmony Inverter")
	assert.Contains(t, out, "C becomes G")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negativo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key_center: D\ncolors: never\n"), 0o644))

	out, _, err := run(t, "", "reflect", "C", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "B\n", out)
}

func TestLogLevelFlag(t *testing.T) {
	_, errOut, err := run(t, "", "reflect", "C", "--log-level", "debug", "--key", "D")
	require.NoError(t, err)
	assert.Contains(t, errOut, "[DEBUG] key center changed")

	_, _, err = run(t, "", "reflect", "C", "--log-level", "loud")
	assert.Error(t, err)
}

func TestReflect_WhitespaceSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negativo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"\"\n"), 0o644))

	out, _, err := run(t, "", "reflect", "C", "E", "G", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "G Eb C\n", out)

	out, _, err = run(t, "C\tE  G\n", "reflect", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "G Eb C\n", out)
}

func TestSetup_InstallsGlobalLogger(t *testing.T) {
	previous := logging.GetGlobalLogger()
	t.Cleanup(func() { logging.SetGlobalLogger(previous) })

	_, errOut, err := run(t, "", "reflect", "C", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, errOut, "[DEBUG] configuration loaded command=reflect key_center=C log_level=debug")
	assert.NotSame(t, previous, logging.GetGlobalLogger())
	assert.IsType(t, &logging.DefaultLogger{}, logging.GetGlobalLogger())
}
