package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corey/jlint/internal/domain/lint"
)

func TestMessage(t *testing.T) {
	f := lint.Finding{Key: lint.MsgMaxParam, Args: []any{7, 11}}
	assert.Equal(t, "More than 7 parameters (found 11).", Message(f))
}

func TestMessageUnknownKeyFallsBack(t *testing.T) {
	f := lint.Finding{Key: "someFutureKey"}
	assert.Equal(t, "someFutureKey", Message(f))
}

func TestLocalize(t *testing.T) {
	run := &lint.Run{
		Findings: []lint.Finding{
			{Key: lint.MsgMaxParam, Args: []any{2, 3}},
			{Key: lint.MsgMaxParam, Args: []any{2, 5}, Message: "already set"},
		},
	}
	Localize(run)
	assert.Equal(t, "More than 2 parameters (found 3).", run.Findings[0].Message)
	assert.Equal(t, "already set", run.Findings[1].Message, "existing messages are kept")
}
