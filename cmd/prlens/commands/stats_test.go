package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEventLog = `{
  "organization": "acme",
  "repositories": {
    "core": [
      {
        "number": 1,
        "title": "Add parser",
        "events": [
          {"type": "created", "date": "2024-03-01", "person": "alice"},
          {"type": "comment", "date": "2024-03-02", "person": "bob"},
          {"type": "merged", "date": "2024-03-03", "person": "alice"}
        ]
      }
    ]
  }
}`

func writeTestLog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(testEventLog), 0o600))

	return path
}

func TestStatsCommand_UnknownFormat(t *testing.T) {
	cmd := NewStatsCommand()
	cmd.SetArgs([]string{writeTestLog(t), "--format", "xml"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestStatsCommand_MissingLog(t *testing.T) {
	cmd := NewStatsCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.json")})

	err := cmd.Execute()

	require.Error(t, err)
}

func TestStatsCommand_JSONFormat(t *testing.T) {
	cmd := NewStatsCommand()
	cmd.SetArgs([]string{writeTestLog(t), "--format", "json"})

	require.NoError(t, cmd.Execute())
}

func TestRenderCommand_RequiresOutput(t *testing.T) {
	cmd := NewRenderCommand()
	cmd.SetArgs([]string{writeTestLog(t)})

	err := cmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoOutputFile)
}

func TestRenderCommand_WritesDashboard(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dashboard.html")

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{writeTestLog(t), "-o", out, "--theme", "light"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "acme")
}

func TestRenderCommand_RejectsUnknownTheme(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dashboard.html")

	cmd := NewRenderCommand()
	cmd.SetArgs([]string{writeTestLog(t), "-o", out, "--theme", "sepia"})

	err := cmd.Execute()

	require.Error(t, err)
}
