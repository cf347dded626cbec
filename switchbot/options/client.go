package options

import (
	"context"
	"net/http"

	"github.com/asnowfix/switchbot-id/pkg/switchbot"
	"github.com/go-logr/logr"
)

// NewClient builds an API client from the configuration held by ctx
func NewClient(ctx context.Context) (*switchbot.Client, error) {
	cfg, err := Config(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return switchbot.NewClient(cfg.Token, cfg.Secret,
		switchbot.WithBaseURL(cfg.BaseURL),
		switchbot.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		switchbot.WithLogger(logr.FromContextOrDiscard(ctx)),
	)
}
