package clip

import (
	"strings"
	"testing"

	"github.com/asnowfix/switchbot-id/pkg/switchbot"
	"github.com/google/go-cmp/cmp"
)

var (
	list = &switchbot.DeviceList{
		Devices: []switchbot.Device{
			{DeviceID: "C271111EC0AB", DeviceName: "Living Bot"},
			{DeviceID: "D001"},
			{DeviceID: "D002", DeviceName: "Lamp"},
		},
		InfraredRemotes: []switchbot.InfraredRemote{
			{DeviceID: "02-202008110034-13", DeviceName: "TV"},
		},
	}
	scenes = []switchbot.Scene{
		{SceneID: "T02-1", SceneName: "Lamp"},
		{SceneID: "T02-2", SceneName: "Good night"},
	}
)

func TestResolve(t *testing.T) {
	cases := []struct {
		query string
		want  Match
	}{
		{"living bot", Match{Kind: "device", ID: "C271111EC0AB", Name: "Living Bot"}},
		{"C271111EC0AB", Match{Kind: "device", ID: "C271111EC0AB", Name: "Living Bot"}},
		{"d001", Match{Kind: "device", ID: "D001", Name: "D001"}},
		{"TV", Match{Kind: "remote", ID: "02-202008110034-13", Name: "TV"}},
		{"  Good Night ", Match{Kind: "scene", ID: "T02-2", Name: "Good night"}},
		{"T02-1", Match{Kind: "scene", ID: "T02-1", Name: "Lamp"}},
	}
	for _, c := range cases {
		got, err := Resolve(list, scenes, c.query)
		if err != nil {
			t.Errorf("Resolve(%q): %v", c.query, err)
			continue
		}
		if diff := cmp.Diff(c.want, *got); diff != "" {
			t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", c.query, diff)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := Resolve(list, scenes, "garage"); err == nil || !strings.Contains(err.Error(), "no device") {
		t.Errorf("unknown name: %v", err)
	}
	if _, err := Resolve(list, scenes, " "); err == nil {
		t.Error("empty query accepted")
	}
	_, err := Resolve(list, scenes, "lamp")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Fatalf("ambiguous name: %v", err)
	}
	if !strings.Contains(err.Error(), "device D002") || !strings.Contains(err.Error(), "scene T02-1") {
		t.Errorf("ambiguity error should list candidates: %v", err)
	}
}

func TestResolveNilList(t *testing.T) {
	m, err := Resolve(nil, scenes, "good night")
	if err != nil || m.ID != "T02-2" {
		t.Errorf("Resolve = %+v, %v", m, err)
	}
}
