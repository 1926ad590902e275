package discord

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"ministry-srv/pkg/log"
)

var (
	ErrWebhookRequired = errors.New("discord: webhook URL is required")
	ErrInvalidWebhook  = errors.New("discord: invalid webhook URL")
)

// New builds a webhook client. It does not contact Discord.
func New(l log.Logger, cfg Config) (IDiscord, error) {
	if cfg.WebhookURL == "" {
		return nil, ErrWebhookRequired
	}
	u, err := url.Parse(cfg.WebhookURL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return nil, ErrInvalidWebhook
	}

	if cfg.Username == "" {
		cfg.Username = DefaultUsername
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryCount == 0 {
		cfg.RetryCount = DefaultRetryCount
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	return &discordImpl{
		l:   l,
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        4,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		now: time.Now,
	}, nil
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}
