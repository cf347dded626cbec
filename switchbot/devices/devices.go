package devices

import (
	"time"

	"github.com/asnowfix/switchbot-id/hlog"
	"github.com/asnowfix/switchbot-id/internal/render"
	"github.com/asnowfix/switchbot-id/switchbot/options"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var flags struct {
	Raw  bool
	Html string
	Open bool
}

var Cmd = &cobra.Command{
	Use:     "devices",
	Aliases: []string{"device", "dev"},
	Short:   "List devices and infrared remotes with their ids",
	Long: `List the devices and infrared remotes registered on the SwitchBot account.

Examples:
  # YAML listing
  switchbot-id devices

  # Answer as returned by the API
  switchbot-id devices --raw

  # HTML table with copy buttons, opened in the browser
  switchbot-id devices --open`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logr.FromContextOrDiscard(ctx).WithName("devices")

		client, err := options.NewClient(ctx)
		if err != nil {
			return err
		}

		options.Status(cmd.ErrOrStderr(), "Fetching device list...")
		list, raw, err := client.ListDevices(ctx)
		if err != nil {
			hlog.ErrorIfNotCanceled(log, err, "Failed to list devices")
			if flags.Html != "" || flags.Open {
				errorPage(cmd, raw, err)
			}
			return err
		}

		if flags.Html != "" || flags.Open {
			path, err := options.WritePage(ctx, flags.Html, flags.Open, render.PageData{
				Title:      "SwitchBot devices",
				Status:     "Device list fetched.",
				StatusType: render.StatusSuccess,
				Devices:    list.Devices,
				Remotes:    list.InfraredRemotes,
				Raw:        options.IndentRaw(raw),
				Generated:  time.Now(),
			})
			if err != nil {
				return err
			}
			options.Status(cmd.ErrOrStderr(), "Wrote %s", path)
		} else if flags.Raw {
			if err := options.PrintRaw(cmd.OutOrStdout(), raw); err != nil {
				return err
			}
		} else if err := options.PrintResult(cmd.OutOrStdout(), list); err != nil {
			return err
		}

		options.Status(cmd.ErrOrStderr(), "Device list fetched.")
		return nil
	},
}

// errorPage writes the page with the error as status and the raw answer, if any
func errorPage(cmd *cobra.Command, raw []byte, cause error) {
	ctx := cmd.Context()
	text := cause.Error()
	if len(raw) > 0 {
		text = options.IndentRaw(raw)
	}
	path, err := options.WritePage(ctx, flags.Html, flags.Open, render.PageData{
		Title:      "SwitchBot devices",
		Status:     cause.Error(),
		StatusType: render.StatusError,
		Raw:        text,
		Generated:  time.Now(),
	})
	if err != nil {
		logr.FromContextOrDiscard(ctx).Error(err, "Failed to write error page")
		return
	}
	options.Status(cmd.ErrOrStderr(), "Wrote %s", path)
}

func init() {
	Cmd.Flags().BoolVarP(&flags.Raw, "raw", "r", false, "print the API answer as received")
	Cmd.Flags().StringVarP(&flags.Html, "html", "H", "", "write an HTML page with copy buttons to `file`")
	Cmd.Flags().BoolVarP(&flags.Open, "open", "o", false, "open the HTML page in the default browser")
	Cmd.MarkFlagsMutuallyExclusive("raw", "html", "open")
}
