package render

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/asnowfix/switchbot-id/pkg/switchbot"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// PageData holds everything a standalone page shows. Nil lists are not
// rendered at all; empty lists render the "not found" hint.
type PageData struct {
	Title      string
	Status     string
	StatusType string
	Devices    []switchbot.Device
	Remotes    []switchbot.InfraredRemote
	Scenes     []switchbot.Scene
	Raw        string
	Generated  time.Time
}

type pageView struct {
	PageData
	HasDevices bool
	HasRemotes bool
	HasScenes  bool
	Script     template.JS
	Style      template.CSS
}

var tmpl = template.Must(template.New("render").Parse(`
{{define "devices"}}
{{- if .}}<table><thead><tr><th>name</th><th>deviceId</th><th>deviceType</th><th>hubDeviceId</th></tr></thead><tbody>
{{- range .}}
<tr><td>{{.DisplayName}}</td><td>{{.DeviceID}}<button class="copy-btn" data-copy="{{.DeviceID}}">copy</button></td><td>{{.DeviceType}}</td><td>{{.HubDeviceID}}</td></tr>
{{- end}}
</tbody></table>
{{- else}}<div class="hint">No devices found.</div>{{end}}
{{end}}

{{define "remotes"}}
{{- if .}}<table><thead><tr><th>name</th><th>deviceId</th><th>remoteType</th><th>hubDeviceId</th></tr></thead><tbody>
{{- range .}}
<tr><td>{{.DisplayName}}</td><td>{{.DeviceID}}<button class="copy-btn" data-copy="{{.DeviceID}}">copy</button></td><td>{{.RemoteType}}</td><td>{{.HubDeviceID}}</td></tr>
{{- end}}
</tbody></table>
{{- else}}<div class="hint">No infrared remotes found.</div>{{end}}
{{end}}

{{define "scenes"}}
{{- if .}}<table><thead><tr><th>name</th><th>sceneId</th></tr></thead><tbody>
{{- range .}}
<tr><td>{{.DisplayName}}</td><td>{{.SceneID}}<button class="copy-btn" data-copy="{{.SceneID}}">copy</button></td></tr>
{{- end}}
</tbody></table>
{{- else}}<div class="hint">No scenes found.</div>{{end}}
{{end}}

{{define "page"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>{{.Title}}</title>
  <style>{{.Style}}</style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div id="status" class="status{{if .StatusType}} {{.StatusType}}{{end}}">{{.Status}}</div>
  {{- if .HasDevices}}
  <h2>Devices</h2>
  <div id="devices-container">{{template "devices" .Devices}}</div>
  {{- end}}
  {{- if .HasRemotes}}
  <h2>Infrared remotes</h2>
  <div id="remotes-container">{{template "remotes" .Remotes}}</div>
  {{- end}}
  {{- if .HasScenes}}
  <h2>Scenes</h2>
  <div id="scenes-container">{{template "scenes" .Scenes}}</div>
  {{- end}}
  {{- if .Raw}}
  <h2>Raw response</h2>
  <pre id="raw-response" class="raw">{{.Raw}}</pre>
  {{- end}}
  {{- if not .Generated.IsZero}}
  <p class="hint">Generated {{.Generated.Format "2006-01-02 15:04:05 MST"}}</p>
  {{- end}}
  <script>{{.Script}}</script>
</body>
</html>
{{end}}`))

// DevicesTable writes the devices table fragment
func DevicesTable(w io.Writer, devices []switchbot.Device) error {
	return tmpl.ExecuteTemplate(w, "devices", devices)
}

// RemotesTable writes the infrared remotes table fragment
func RemotesTable(w io.Writer, remotes []switchbot.InfraredRemote) error {
	return tmpl.ExecuteTemplate(w, "remotes", remotes)
}

// ScenesTable writes the scenes table fragment
func ScenesTable(w io.Writer, scenes []switchbot.Scene) error {
	return tmpl.ExecuteTemplate(w, "scenes", scenes)
}

// Page writes a standalone HTML document with the clipboard script inlined
func Page(w io.Writer, data PageData) error {
	script, style, err := inlineAssets()
	if err != nil {
		return err
	}
	if data.Title == "" {
		data.Title = "SwitchBot IDs"
	}
	v := pageView{
		PageData:   data,
		HasDevices: data.Devices != nil,
		HasRemotes: len(data.Remotes) > 0,
		HasScenes:  data.Scenes != nil,
		Script:     script,
		Style:      style,
	}
	if err := tmpl.ExecuteTemplate(w, "page", v); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
