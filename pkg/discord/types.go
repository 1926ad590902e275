package discord

import (
	"net/http"
	"time"

	"ministry-srv/pkg/log"
)

// Config configures the webhook client. Zero durations fall back to the defaults.
type Config struct {
	WebhookURL string
	Username   string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// EmbedField is a name/value row inside an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed is a Discord rich message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload is the body posted to the webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

type discordImpl struct {
	l      log.Logger
	cfg    Config
	client *http.Client
	now    func() time.Time
}
