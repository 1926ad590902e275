package discord

import "time"

const (
	ColorError = 15158332

	MaxDescriptionLen = 4096
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond
)

const (
	DefaultUsername = "Ministerio Bot"
	UserAgent       = "ministry-srv/1.0"
	ReportBugTitle  = "Error en el servicio de sesiones"
)
