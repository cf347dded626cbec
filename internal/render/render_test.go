package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/asnowfix/switchbot-id/pkg/switchbot"
)

func TestDevicesTable(t *testing.T) {
	var buf bytes.Buffer
	err := DevicesTable(&buf, []switchbot.Device{
		{DeviceID: "C271111EC0AB", DeviceName: "Living <Bot>", DeviceType: "Bot", HubDeviceID: "E2F6032048AB"},
		{DeviceID: `D"001`, DeviceType: "Meter"},
	})
	if err != nil {
		t.Fatalf("DevicesTable: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<th>name</th><th>deviceId</th><th>deviceType</th><th>hubDeviceId</th>",
		"<td>Living &lt;Bot&gt;</td>",
		`<button class="copy-btn" data-copy="C271111EC0AB">copy</button>`,
		"<td>E2F6032048AB</td>",
		// unnamed devices show their id; quotes are escaped in attributes
		"<td>D&#34;001</td>",
		`data-copy="D&#34;001"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<Bot>") {
		t.Error("device name was not escaped")
	}
	if n := strings.Count(out, "<tr>"); n != 3 {
		t.Errorf("got %d rows, want header + 2", n)
	}
}

func TestEmptyTables(t *testing.T) {
	cases := []struct {
		name   string
		render func(*bytes.Buffer) error
		hint   string
	}{
		{"devices", func(b *bytes.Buffer) error { return DevicesTable(b, nil) }, "No devices found."},
		{"remotes", func(b *bytes.Buffer) error { return RemotesTable(b, []switchbot.InfraredRemote{}) }, "No infrared remotes found."},
		{"scenes", func(b *bytes.Buffer) error { return ScenesTable(b, []switchbot.Scene{}) }, "No scenes found."},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := c.render(&buf); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		out := strings.TrimSpace(buf.String())
		if want := `<div class="hint">` + c.hint + `</div>`; out != want {
			t.Errorf("%s: got %q, want %q", c.name, out, want)
		}
	}
}

func TestScenesTable(t *testing.T) {
	var buf bytes.Buffer
	err := ScenesTable(&buf, []switchbot.Scene{
		{SceneID: "T02-202009221414-48924101", SceneName: "Alarm off"},
		{SceneID: "T02-202011051830-39363561"},
	})
	if err != nil {
		t.Fatalf("ScenesTable: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<th>name</th><th>sceneId</th>",
		"<td>Alarm off</td>",
		"<td>T02-202011051830-39363561</td><td>T02-202011051830-39363561",
		`data-copy="T02-202009221414-48924101"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRemotesTable(t *testing.T) {
	var buf bytes.Buffer
	err := RemotesTable(&buf, []switchbot.InfraredRemote{
		{DeviceID: "02-202008110034-13", DeviceName: "TV", RemoteType: "TV", HubDeviceID: "E2F6032048AB"},
	})
	if err != nil {
		t.Fatalf("RemotesTable: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "<th>remoteType</th>") || !strings.Contains(out, `data-copy="02-202008110034-13"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPage(t *testing.T) {
	var buf bytes.Buffer
	err := Page(&buf, PageData{
		Status:     "Device list fetched.",
		StatusType: StatusSuccess,
		Devices:    []switchbot.Device{{DeviceID: "C271111EC0AB", DeviceName: "Bot"}},
		Raw:        `{"statusCode":100,"message":"<ok>"}`,
		Generated:  time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!doctype html>",
		"<title>SwitchBot IDs</title>",
		`<div id="status" class="status success">Device list fetched.</div>`,
		`<div id="devices-container">`,
		`<pre id="raw-response" class="raw">`,
		"&lt;ok&gt;",
		"navigator.clipboard",
		"Generated 2026-10-17 09:30:00 UTC",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page lacks %q", want)
		}
	}
	// scenes were not requested, remotes are empty
	if strings.Contains(out, "scenes-container") || strings.Contains(out, "remotes-container") {
		t.Error("page renders sections that were not requested")
	}
}

func TestPageBothLists(t *testing.T) {
	var buf bytes.Buffer
	err := Page(&buf, PageData{
		Title:   "Home",
		Devices: []switchbot.Device{},
		Scenes:  []switchbot.Scene{{SceneID: "S1", SceneName: "Night"}},
	})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No devices found.") {
		t.Error("empty device list should show the hint")
	}
	if !strings.Contains(out, `data-copy="S1"`) {
		t.Error("scene row missing")
	}
	if strings.Contains(out, "raw-response") {
		t.Error("raw section rendered without a raw response")
	}
}
