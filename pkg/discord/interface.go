package discord

import "context"

// IDiscord reports operational problems to a Discord channel.
type IDiscord interface {
	SendEmbed(ctx context.Context, embed Embed) error
	// ReportBug posts an error report; long messages are truncated.
	ReportBug(ctx context.Context, message string) error
	Close() error
}
