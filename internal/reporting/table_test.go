package reporting

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/jlint/internal/domain/lint"
)

func TestTableReporterEmptyRun(t *testing.T) {
	var buf bytes.Buffer
	run := &lint.Run{Files: 12}
	require.NoError(t, TableReporter{Out: &buf}.Report(run))
	assert.Equal(t, "No violations in 12 files.\n", buf.String())
}

func TestTableReporterRendersFindings(t *testing.T) {
	var buf bytes.Buffer
	run := &lint.Run{
		Files: 3,
		Findings: []lint.Finding{
			{Rule: "ParameterNumber", File: "A.java", Line: 4, Column: 17, Message: "More than 7 parameters (found 8)."},
		},
	}
	require.NoError(t, TableReporter{Out: &buf}.Report(run))
	out := buf.String()
	assert.Contains(t, out, "A.java:4:17")
	assert.Contains(t, out, "ParameterNumber")
	assert.Contains(t, out, "More than 7 parameters (found 8).")
	assert.Contains(t, out, "1 violations in 3 files.")
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	run := &lint.Run{
		ID:    "run-42",
		Files: 1,
		Findings: []lint.Finding{
			{Rule: "ParameterNumber", File: "A.java", Line: 2, Column: 9, Key: lint.MsgMaxParam, Args: []any{7, 8}, Message: "m"},
		},
	}

	path, err := WriteJSON(dir, run)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "run-42.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got lint.Run
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "run-42", got.ID)
	require.Len(t, got.Findings, 1)
	assert.Equal(t, "A.java", got.Findings[0].File)
}
