package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/jlint/internal/domain/lint"
)

func finding(file string, line int, msg string) lint.Finding {
	return lint.Finding{Rule: lint.RuleIDParameterNumber, File: file, Line: line, Column: 5, Message: msg}
}

func TestCompare(t *testing.T) {
	base := &lint.Run{ID: "run-1", Findings: []lint.Finding{
		finding("A.java", 10, "More than 7 parameters (found 8)."),
		finding("B.java", 4, "More than 7 parameters (found 9)."),
	}}
	head := &lint.Run{ID: "run-2", Findings: []lint.Finding{
		finding("A.java", 10, "More than 7 parameters (found 8)."),
		finding("C.java", 22, "More than 7 parameters (found 12)."),
	}}

	d := Compare(base, head)
	assert.Equal(t, "run-1", d.BaseID)
	assert.Equal(t, "run-2", d.HeadID)

	require.Len(t, d.New, 1)
	assert.Equal(t, "C.java", d.New[0].File)

	require.Len(t, d.Fixed, 1)
	assert.Equal(t, "B.java", d.Fixed[0].File)
}

func TestCompareIdenticalRuns(t *testing.T) {
	fs := []lint.Finding{finding("A.java", 1, "m")}
	d := Compare(&lint.Run{ID: "a", Findings: fs}, &lint.Run{ID: "b", Findings: fs})
	assert.Empty(t, d.New)
	assert.Empty(t, d.Fixed)
}

func TestCompareSortsOutput(t *testing.T) {
	head := &lint.Run{ID: "h", Findings: []lint.Finding{
		finding("Z.java", 9, "m"),
		finding("A.java", 30, "m"),
		finding("A.java", 2, "m"),
	}}
	d := Compare(&lint.Run{ID: "b"}, head)
	require.Len(t, d.New, 3)
	assert.Equal(t, "A.java", d.New[0].File)
	assert.Equal(t, 2, d.New[0].Line)
	assert.Equal(t, "A.java", d.New[1].File)
	assert.Equal(t, 30, d.New[1].Line)
	assert.Equal(t, "Z.java", d.New[2].File)
}

func TestCompareSamePositionDifferentMessage(t *testing.T) {
	// The count changed, so the finding counts as both fixed and new.
	base := &lint.Run{ID: "b", Findings: []lint.Finding{
		finding("A.java", 10, "More than 7 parameters (found 8)."),
	}}
	head := &lint.Run{ID: "h", Findings: []lint.Finding{
		finding("A.java", 10, "More than 7 parameters (found 9)."),
	}}
	d := Compare(base, head)
	assert.Len(t, d.New, 1)
	assert.Len(t, d.Fixed, 1)
}
