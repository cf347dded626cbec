package switchbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type sceneList struct {
	Scenes []Scene `json:"sceneList"`
}

// ListScenes fetches GET /scenes. The body is either a bare array of scenes
// or an object holding a `sceneList` array; both are accepted.
func (c *Client) ListScenes(ctx context.Context) ([]Scene, Raw, error) {
	res, raw, err := call[json.RawMessage](ctx, c, "/scenes")
	if err != nil {
		return nil, raw, err
	}

	scenes, err := decodeScenes(res.Body)
	if err != nil {
		return nil, raw, err
	}
	c.log.Info("Listed scenes", "scenes", len(scenes))
	return scenes, raw, nil
}

func decodeScenes(body *json.RawMessage) ([]Scene, error) {
	scenes := []Scene{}
	if body == nil {
		return scenes, nil
	}

	b := bytes.TrimSpace(*body)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		return scenes, nil
	case b[0] == '[':
		if err := json.Unmarshal(b, &scenes); err != nil {
			return nil, fmt.Errorf("decode scenes: %w", err)
		}
	default:
		var l sceneList
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, fmt.Errorf("decode scenes: %w", err)
		}
		if l.Scenes != nil {
			scenes = l.Scenes
		}
	}
	return scenes, nil
}
