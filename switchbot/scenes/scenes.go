package scenes

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
	Use:     "scenes",
	Aliases: []string{"scene"},
	Short:   "List manual scenes with their ids",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logr.FromContextOrDiscard(ctx).WithName("scenes")
		page := flags.Html != "" || flags.Open

		client, err := options.NewClient(ctx)
		if err != nil {
			return err
		}

		options.Status(cmd.ErrOrStderr(), "Fetching scene list...")
		scenes, raw, err := client.ListScenes(ctx)
		if err != nil {
			hlog.ErrorIfNotCanceled(log, err, "Failed to list scenes")
			if page {
				text := err.Error()
				if len(raw) > 0 {
					text = options.IndentRaw(raw)
				}
				if path, perr := options.WritePage(ctx, flags.Html, flags.Open, render.PageData{
					Title:      "SwitchBot scenes",
					Status:     err.Error(),
					StatusType: render.StatusError,
					Raw:        text,
					Generated:  time.Now(),
				}); perr == nil {
					options.Status(cmd.ErrOrStderr(), "Wrote %s", path)
				}
			}
			return err
		}

		switch {
		case page:
			path, err := options.WritePage(ctx, flags.Html, flags.Open, render.PageData{
				Title:      "SwitchBot scenes",
				Status:     "Scene list fetched.",
				StatusType: render.StatusSuccess,
				Scenes:     scenes,
				Raw:        options.IndentRaw(raw),
				Generated:  time.Now(),
			})
			if err != nil {
				return err
			}
			options.Status(cmd.ErrOrStderr(), "Wrote %s", path)
		case flags.Raw:
			if err := options.PrintRaw(cmd.OutOrStdout(), raw); err != nil {
				return err
			}
		default:
			if err := options.PrintResult(cmd.OutOrStdout(), scenes); err != nil {
				return err
			}
		}

		options.Status(cmd.ErrOrStderr(), "Scene list fetched.")
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVarP(&flags.Raw, "raw", "r", false, "print the API answer as received")
	Cmd.Flags().StringVarP(&flags.Html, "html", "H", "", "write an HTML page with copy buttons to `file`")
	Cmd.Flags().BoolVarP(&flags.Open, "open", "o", false, "open the HTML page in the default browser")
	Cmd.MarkFlagsMutuallyExclusive("raw", "html", "open")
}
