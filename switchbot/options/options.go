package options

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asnowfix/switchbot-id/internal/config"
	"github.com/asnowfix/switchbot-id/internal/global"
	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
)

const COMMAND_DEFAULT_TIMEOUT time.Duration = 0 // No timeout by default (wait indefinitely)

var Flags struct {
	ConfigFile string
	Token      string
	Secret     string
	BaseURL    string
	Timeout    time.Duration // the value taken by --timeout, per API call
	Wait       time.Duration // the value taken by --wait / -w, whole command
	Verbose    bool
	Debug      bool
	Quiet      bool
	Json       bool
}

// CommandLineContext derives the command context: cancelled on SIGINT/SIGTERM
// or after --wait, and carrying the version and the loaded configuration.
func CommandLineContext(ctx context.Context, version string, cfg *config.Config) context.Context {
	var cancel context.CancelFunc

	if Flags.Wait > 0 {
		ctx, cancel = context.WithTimeout(ctx, Flags.Wait)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	ctx = context.WithValue(ctx, global.CancelKey, cancel)
	ctx = context.WithValue(ctx, global.VersionKey, version)
	ctx = context.WithValue(ctx, global.ConfigKey, cfg)

	go func() {
		log := logr.FromContextOrDiscard(ctx)
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signals)
		select {
		case <-signals:
			log.Info("Received signal")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx
}

// Config returns the configuration stored by CommandLineContext
func Config(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(global.ConfigKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("no configuration loaded")
	}
	return cfg, nil
}

// PrintResult writes out as YAML, or JSON with --json
func PrintResult(w io.Writer, out any) error {
	if Flags.Json {
		s, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(s))
		return err
	}
	s, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(s))
	return err
}

// Status prints a progress line for the user, unless --quiet
func Status(w io.Writer, format string, args ...any) {
	if Flags.Quiet {
		return
	}
	fmt.Fprintf(w, format+"\n", args...)
}
