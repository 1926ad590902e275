package response

import "ministry-srv/pkg/locale"

// ErrorResp is the body of every non-2xx JSON response.
type ErrorResp struct {
	Error string `json:"error"`
}

// RedirectResp tells the client where to navigate next.
type RedirectResp struct {
	Redirect string `json:"redirect"`
}

// SuccessResp acknowledges an operation with no payload.
type SuccessResp struct {
	Success bool `json:"success"`
}

var defaultErrorMessage = locale.Messages{
	locale.ES: "Ocurrió un error inesperado. Intenta de nuevo.",
	locale.EN: "Something went wrong. Please try again.",
}
