package switchbot

import "context"

// ListDevices fetches GET /devices. A missing body yields an empty list.
func (c *Client) ListDevices(ctx context.Context) (*DeviceList, Raw, error) {
	res, raw, err := call[DeviceList](ctx, c, "/devices")
	if err != nil {
		return nil, raw, err
	}

	list := &DeviceList{}
	if res.Body != nil {
		list = res.Body
	}
	if list.Devices == nil {
		list.Devices = []Device{}
	}
	if list.InfraredRemotes == nil {
		list.InfraredRemotes = []InfraredRemote{}
	}
	c.log.Info("Listed devices", "devices", len(list.Devices), "remotes", len(list.InfraredRemotes))
	return list, raw, nil
}
