package hlog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	t.Setenv("DELVE_DEBUGGER", "")
	t.Setenv("VSCODE_PID", "")
	t.Setenv("VSCODE_IPC_HOOK", "")

	cases := []struct {
		verbose, debug bool
		want           zerolog.Level
	}{
		{false, false, zerolog.ErrorLevel},
		{true, false, zerolog.InfoLevel},
		{false, true, zerolog.DebugLevel},
		{true, true, zerolog.DebugLevel},
	}
	for _, c := range cases {
		if got := parseLogLevel(c.verbose, c.debug, zerolog.ErrorLevel); got != c.want {
			t.Errorf("parseLogLevel(%v, %v) = %v, want %v", c.verbose, c.debug, got, c.want)
		}
	}
}

func TestIsContextCancellation(t *testing.T) {
	if IsContextCancellation(nil) {
		t.Error("nil is not a cancellation")
	}
	if !IsContextCancellation(fmt.Errorf("GET /devices: %w", context.Canceled)) {
		t.Error("wrapped context.Canceled not detected")
	}
	if !IsContextCancellation(context.DeadlineExceeded) {
		t.Error("context.DeadlineExceeded not detected")
	}
	if IsContextCancellation(errors.New("boom")) {
		t.Error("plain error reported as cancellation")
	}

	// must not panic on either path
	log := testr.New(t)
	ErrorIfNotCanceled(log, context.Canceled, "listing devices")
	ErrorIfNotCanceled(log, nil, "listing devices")
}
