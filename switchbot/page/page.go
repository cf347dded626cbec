package page

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/asnowfix/switchbot-id/hlog"
	"github.com/asnowfix/switchbot-id/internal/render"
	"github.com/asnowfix/switchbot-id/pkg/switchbot"
	"github.com/asnowfix/switchbot-id/switchbot/options"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var flags struct {
	Output string
	Open   bool
}

var Cmd = &cobra.Command{
	Use:   "page",
	Short: "Write one HTML page listing devices, infrared remotes and scenes",
	Long: `Fetch both the device and the scene lists and write them as HTML tables,
each id with a button copying it to the clipboard.

A failing list does not prevent the other one from being rendered; the page
status line shows the error and the command exits with it.

Examples:
  switchbot-id page -O ids.html
  switchbot-id page --open`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logr.FromContextOrDiscard(ctx).WithName("page")

		out := flags.Output
		if out == "" && !flags.Open {
			out = "switchbot-ids.html"
		}

		client, err := options.NewClient(ctx)
		if err != nil {
			return err
		}

		data, err := Collect(cmd, client)
		hlog.ErrorIfNotCanceled(log, err, "Failed to collect lists")
		path, werr := options.WritePage(ctx, out, flags.Open, data)
		if werr != nil {
			log.Error(werr, "Failed to write page")
			return errors.Join(err, werr)
		}
		options.Status(cmd.ErrOrStderr(), "Wrote %s", path)
		return err
	},
}

// Collect fetches both lists into page data. Lists that failed stay nil and
// their errors are joined into the returned error.
func Collect(cmd *cobra.Command, client *switchbot.Client) (render.PageData, error) {
	ctx := cmd.Context()
	w := cmd.ErrOrStderr()
	raws := make(map[string]json.RawMessage)
	data := render.PageData{
		Title:     "SwitchBot IDs",
		Generated: time.Now(),
	}

	options.Status(w, "Fetching device list...")
	list, raw, derr := client.ListDevices(ctx)
	keepRaw(raws, "devices", raw)
	if derr == nil {
		data.Devices = list.Devices
		data.Remotes = list.InfraredRemotes
		options.Status(w, "Device list fetched.")
	}

	options.Status(w, "Fetching scene list...")
	scenes, raw, serr := client.ListScenes(ctx)
	keepRaw(raws, "scenes", raw)
	if serr == nil {
		data.Scenes = scenes
		options.Status(w, "Scene list fetched.")
	}

	if len(raws) > 0 {
		if b, err := json.MarshalIndent(raws, "", "  "); err == nil {
			data.Raw = string(b)
		}
	}

	err := errors.Join(derr, serr)
	if err != nil {
		data.Status = err.Error()
		data.StatusType = render.StatusError
	} else {
		data.Status = "Device and scene lists fetched."
		data.StatusType = render.StatusSuccess
	}
	return data, err
}

func keepRaw(raws map[string]json.RawMessage, key string, raw []byte) {
	if len(raw) > 0 && json.Valid(raw) {
		raws[key] = json.RawMessage(raw)
	}
}

func init() {
	Cmd.Flags().StringVarP(&flags.Output, "output", "O", "", "write the page to `file` (default switchbot-ids.html, or a temporary file with --open)")
	Cmd.Flags().BoolVarP(&flags.Open, "open", "o", false, "open the page in the default browser")
}
