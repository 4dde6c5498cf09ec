package cmd

import (
	"errors"
	"fmt"
)

// exitCodeError carries a process exit code through cobra without printing
// anything: findings already went to stdout.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// ExitCode extracts the exit code from an error, or -1 if the error does
// not carry one.
func ExitCode(err error) int {
	var e exitCodeError
	if errors.As(err, &e) {
		return e.code
	}
	return -1
}
