package main

import (
	"fmt"
	"io"
	"os"

	"github.com/asnowfix/switchbot-id/hlog"
	"github.com/asnowfix/switchbot-id/internal/config"
	"github.com/asnowfix/switchbot-id/internal/global"
	"github.com/asnowfix/switchbot-id/switchbot/clip"
	configcmd "github.com/asnowfix/switchbot-id/switchbot/config"
	"github.com/asnowfix/switchbot-id/switchbot/devices"
	"github.com/asnowfix/switchbot-id/switchbot/options"
	"github.com/asnowfix/switchbot-id/switchbot/page"
	"github.com/asnowfix/switchbot-id/switchbot/scenes"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

// flag name -> config key
var boundFlags = map[string]string{
	"token":    config.KeyToken,
	"secret":   config.KeySecret,
	"base-url": config.KeyBaseURL,
	"timeout":  config.KeyTimeout,
}

var Cmd = &cobra.Command{
	Use:           "switchbot-id",
	Short:         "Look up SwitchBot device and scene ids",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		hlog.InitWithDebug(options.Flags.Verbose, options.Flags.Debug)
		log := hlog.Logger

		v := config.New()
		for name, key := range boundFlags {
			if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
				return err
			}
		}
		if err := config.Read(log, v, options.Flags.ConfigFile); err != nil {
			return err
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		// cmd keeps the context of a previous execution, the root gets a fresh one each time
		ctx := logr.NewContext(cmd.Root().Context(), log)
		ctx = options.CommandLineContext(ctx, getVersion(), cfg)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		global.Cancel(cmd.Context())
		return nil
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&options.Flags.ConfigFile, "config", "c", "", "read configuration from `file` (default switchbot.yaml in the user config dir, ~/.switchbot-id or .)")
	Cmd.PersistentFlags().StringVarP(&options.Flags.Token, "token", "t", "", "SwitchBot API token (env SWITCHBOT_TOKEN)")
	Cmd.PersistentFlags().StringVarP(&options.Flags.Secret, "secret", "s", "", "SwitchBot client secret, defaults to the token (env SWITCHBOT_SECRET)")
	Cmd.PersistentFlags().StringVar(&options.Flags.BaseURL, "base-url", "", "API base URL (env SWITCHBOT_BASE_URL)")
	Cmd.PersistentFlags().DurationVar(&options.Flags.Timeout, "timeout", 0, "timeout of a single API call (env SWITCHBOT_TIMEOUT)")
	Cmd.PersistentFlags().DurationVarP(&options.Flags.Wait, "wait", "w", options.COMMAND_DEFAULT_TIMEOUT, "Maximum time to wait for command to finish (0 = wait indefinitely)")
	Cmd.PersistentFlags().BoolVarP(&options.Flags.Verbose, "verbose", "v", false, "verbose output (info level)")
	Cmd.PersistentFlags().BoolVarP(&options.Flags.Debug, "debug", "d", false, "debug output (debug level, shows V(1) logs)")
	Cmd.PersistentFlags().BoolVarP(&options.Flags.Quiet, "quiet", "q", false, "no progress messages, errors only")
	Cmd.PersistentFlags().BoolVarP(&options.Flags.Json, "json", "j", false, "output in json format")

	Cmd.MarkFlagsMutuallyExclusive("verbose", "debug", "quiet")

	Cmd.AddCommand(devices.Cmd)
	Cmd.AddCommand(scenes.Cmd)
	Cmd.AddCommand(page.Cmd)
	Cmd.AddCommand(clip.Cmd)
	Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	cobra.EnableTraverseRunHooks = true
	os.Exit(report(os.Stderr, Cmd.Execute()))
}

// report prints err and returns the process exit status. Interrupted or
// timed out commands are not reported as failures.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if hlog.IsContextCancellation(err) {
		hlog.ErrorIfNotCanceled(hlog.Logger, err, "Command did not complete")
		fmt.Fprintln(w, "canceled")
		return 130
	}
	fmt.Fprintln(w, err)
	return 1
}
