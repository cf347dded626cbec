package switchbot

import "encoding/json"

// Response is the envelope every SwitchBot v1.1 endpoint answers with
type Response[T any] struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Body       *T     `json:"body,omitempty"`
}

// Device is a physical SwitchBot device, as listed by GET /devices
type Device struct {
	DeviceID           string `json:"deviceId" yaml:"deviceId"`
	DeviceName         string `json:"deviceName,omitempty" yaml:"deviceName,omitempty"`
	DeviceType         string `json:"deviceType,omitempty" yaml:"deviceType,omitempty"`
	HubDeviceID        string `json:"hubDeviceId,omitempty" yaml:"hubDeviceId,omitempty"`
	EnableCloudService bool   `json:"enableCloudService,omitempty" yaml:"enableCloudService,omitempty"`
}

// DisplayName is the device name, or its id when unnamed
func (d Device) DisplayName() string {
	if d.DeviceName != "" {
		return d.DeviceName
	}
	return d.DeviceID
}

// InfraredRemote is a virtual IR appliance learned by a hub
type InfraredRemote struct {
	DeviceID    string `json:"deviceId" yaml:"deviceId"`
	DeviceName  string `json:"deviceName,omitempty" yaml:"deviceName,omitempty"`
	RemoteType  string `json:"remoteType,omitempty" yaml:"remoteType,omitempty"`
	HubDeviceID string `json:"hubDeviceId,omitempty" yaml:"hubDeviceId,omitempty"`
}

func (r InfraredRemote) DisplayName() string {
	if r.DeviceName != "" {
		return r.DeviceName
	}
	return r.DeviceID
}

// DeviceList is the body of GET /devices
type DeviceList struct {
	Devices         []Device         `json:"deviceList" yaml:"devices"`
	InfraredRemotes []InfraredRemote `json:"infraredRemoteList" yaml:"infraredRemotes,omitempty"`
}

// Scene is a manual scene, as listed by GET /scenes
type Scene struct {
	SceneID   string `json:"sceneId" yaml:"sceneId"`
	SceneName string `json:"sceneName,omitempty" yaml:"sceneName,omitempty"`
}

func (s Scene) DisplayName() string {
	if s.SceneName != "" {
		return s.SceneName
	}
	return s.SceneID
}

// Raw is an API answer as received, kept for display next to the decoded lists
type Raw = json.RawMessage
