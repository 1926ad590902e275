package response

const (
	DefaultStackTraceDepth = 32
	DiscordMaxMessageLen   = 4000
)

const redacted = "[redacted]"

var sensitiveHeaders = map[string]struct{}{
	"Cookie":        {},
	"Authorization": {},
	"Set-Cookie":    {},
}
