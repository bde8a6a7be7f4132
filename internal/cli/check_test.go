package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCheck(t *testing.T, rootOpts *RootOptions, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewCheckCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return buf, cmd.Execute()
}

func TestCheckValidPuzzle(t *testing.T) {
	buf, err := execCheck(t, &RootOptions{Format: "text"}, easyPuzzlePath)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "puzzle is valid")
}

func TestCheckValidPuzzleJSON(t *testing.T) {
	buf, err := execCheck(t, &RootOptions{Format: "json"}, easyPuzzlePath)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCheckWrongShape(t *testing.T) {
	path := writePuzzle(t, "1,2,3\n4,5,6\n")
	buf, err := execCheck(t, &RootOptions{Format: "text"}, path)
	require.Error(t, err)
	assert.Equal(t, ExitBadPuzzle, GetExitCode(err))
	assert.Contains(t, buf.String(), "SHAPE_ERROR")
}

func TestCheckIllegalValue(t *testing.T) {
	path := writePuzzle(t, "x,,,,,,,,\n,,,,,,,,\n,,,,,,,,\n,,,,,,,,\n,,,,,,,,\n,,,,,,,,\n,,,,,,,,\n,,,,,,,,\n,,,,,,,,\n")
	buf, err := execCheck(t, &RootOptions{Format: "text"}, path)
	require.Error(t, err)
	assert.Equal(t, ExitBadPuzzle, GetExitCode(err))
	assert.Contains(t, buf.String(), "ILLEGAL_VALUE")
	assert.Contains(t, buf.String(), "x")
}

func TestCheckFileNotFound(t *testing.T) {
	_, err := execCheck(t, &RootOptions{Format: "text"}, filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err), "missing file is not a format error")
}

func TestCheckUnsolvableStillValid(t *testing.T) {
	// check judges format only; satisfiability is the solver's call.
	path := writePuzzle(t, unsolvableCSV)
	_, err := execCheck(t, &RootOptions{Format: "text"}, path)
	assert.NoError(t, err)
}
