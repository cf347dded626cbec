package clip

import (
	"fmt"
	"strings"

	"github.com/asnowfix/switchbot-id/hlog"
	"github.com/asnowfix/switchbot-id/pkg/switchbot"
	"github.com/asnowfix/switchbot-id/switchbot/options"
	"github.com/atotto/clipboard"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var flags struct {
	Print bool
}

var Cmd = &cobra.Command{
	Use:   "copy <name|id>",
	Short: "Copy the id of a device, infrared remote or scene to the clipboard",
	Long: `Look a device, infrared remote or scene up by name or id (case-insensitive)
and copy its id to the system clipboard.

Examples:
  switchbot-id copy "Living Bot"
  switchbot-id copy "Good night" --print`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logr.FromContextOrDiscard(ctx).WithName("copy")

		client, err := options.NewClient(ctx)
		if err != nil {
			return err
		}

		options.Status(cmd.ErrOrStderr(), "Fetching device list...")
		list, _, err := client.ListDevices(ctx)
		if err != nil {
			hlog.ErrorIfNotCanceled(log, err, "Failed to list devices")
			return err
		}
		options.Status(cmd.ErrOrStderr(), "Fetching scene list...")
		scenes, _, err := client.ListScenes(ctx)
		if err != nil {
			hlog.ErrorIfNotCanceled(log, err, "Failed to list scenes")
			return err
		}

		m, err := Resolve(list, scenes, args[0])
		if err != nil {
			return err
		}
		log.Info("Resolved", "query", args[0], "kind", m.Kind, "id", m.ID, "name", m.Name)

		if flags.Print || clipboard.Unsupported {
			if clipboard.Unsupported {
				log.Info("No clipboard utility available, printing the id")
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.ID)
			return nil
		}
		if err := clipboard.WriteAll(m.ID); err != nil {
			return fmt.Errorf("could not copy to the clipboard: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "copied: %s\n", m.ID)
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVarP(&flags.Print, "print", "p", false, "print the id instead of copying it")
}

// Match is a resolved id
type Match struct {
	Kind string `json:"kind" yaml:"kind"`
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Resolve finds the single entry whose id or display name matches query.
// Exact id matches win over name matches.
func Resolve(list *switchbot.DeviceList, scenes []switchbot.Scene, query string) (*Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty name or id")
	}

	var all []Match
	if list != nil {
		for _, d := range list.Devices {
			all = append(all, Match{Kind: "device", ID: d.DeviceID, Name: d.DisplayName()})
		}
		for _, r := range list.InfraredRemotes {
			all = append(all, Match{Kind: "remote", ID: r.DeviceID, Name: r.DisplayName()})
		}
	}
	for _, s := range scenes {
		all = append(all, Match{Kind: "scene", ID: s.SceneID, Name: s.DisplayName()})
	}

	for i := range all {
		if all[i].ID == query {
			return &all[i], nil
		}
	}

	var found []Match
	for _, m := range all {
		if strings.EqualFold(m.Name, query) || strings.EqualFold(m.ID, query) {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("no device, remote or scene named %q", query)
	case 1:
		return &found[0], nil
	default:
		ids := make([]string, len(found))
		for i, m := range found {
			ids[i] = fmt.Sprintf("%s %s", m.Kind, m.ID)
		}
		return nil, fmt.Errorf("%q is ambiguous: %s", query, strings.Join(ids, ", "))
	}
}
