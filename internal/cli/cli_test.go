package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and captures output.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeResponse parses a JSON CLIResponse from command output.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

func TestFmtText(t *testing.T) {
	out, _, err := runCommand(t, "fmt", "( sample : a )")
	require.NoError(t, err)
	assert.Equal(t, "(sample:a)\n", out)
}

func TestFmtJSON(t *testing.T) {
	out, _, err := runCommand(t, "--format", "json", "fmt", "  *  or sample : x ")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "* or sample:x", data["canonical"])
	assert.Len(t, data["fingerprint"], 64)
}

func TestFmtInvalidExpression(t *testing.T) {
	out, _, err := runCommand(t, "fmt", "sample:1 and")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [SYNTAX_ERROR]")
}

func TestValidateValid(t *testing.T) {
	out, _, err := runCommand(t, "--format", "json", "validate", "sample:a")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	data := resp.Data.(map[string]any)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, "sample:a", data["canonical"])
	assert.Equal(t, true, data["singleton"])
}

func TestValidateInvalid(t *testing.T) {
	out, _, err := runCommand(t, "--format", "json", "validate", "()")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	resp := decodeResponse(t, out)
	data := resp.Data.(map[string]any)
	assert.Equal(t, false, data["valid"])
	assert.NotEmpty(t, data["error"])
}

func TestCompileDefaultMapping(t *testing.T) {
	out, _, err := runCommand(t, "--format", "json", "compile", "sample:1 and not group:5")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "(sample_id = ? AND NOT (group_id = ?))", data["sql"])
	assert.Equal(t, []any{"1", "5"}, data["params"])
}

func TestCompileUnknownField(t *testing.T) {
	out, _, err := runCommand(t, "compile", "chromosome:7")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "UNKNOWN_FIELD")
}

func TestCompileInvalidFormatFlag(t *testing.T) {
	_, _, err := runCommand(t, "--format", "xml", "compile", "sample:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestFiltersSaveAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	out, _, err := runCommand(t, "--db", db, "--format", "json", "filters", "save", "mine", " sample : 1 ")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	saved := resp.Data.(map[string]any)
	assert.Equal(t, "sample:1", saved["expression"])

	out, _, err = runCommand(t, "--db", db, "--format", "json", "filters", "list")
	require.NoError(t, err)
	resp = decodeResponse(t, out)
	list := resp.Data.([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "mine", list[0].(map[string]any)["name"])
}

func TestSamplesAddAndQuery(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	_, _, err := runCommand(t, "--db", db, "samples", "add", "1", "10")
	require.NoError(t, err)
	_, _, err = runCommand(t, "--db", db, "samples", "add", "2", "20")
	require.NoError(t, err)

	out, _, err := runCommand(t, "--db", db, "--format", "json", "samples", "query", "group:20")
	require.NoError(t, err)
	resp := decodeResponse(t, out)
	matches := resp.Data.([]any)
	require.Len(t, matches, 1)
	assert.Equal(t, "2", matches[0].(map[string]any)["sample_id"])
}

func TestSamplesQueryNoMatchesText(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")
	out, _, err := runCommand(t, "--db", db, "samples", "query", "sample:99")
	require.NoError(t, err)
	assert.Contains(t, out, "no matches")
}
