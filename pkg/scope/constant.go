package scope

const (
	// MinSecretLength is the shortest signing secret New accepts.
	MinSecretLength = 32

	keyInfo = "ministry-srv session signing key v1"
	// CSRFKeyInfo derives the form token key from the session secret.
	CSRFKeyInfo = "ministry-srv csrf key v1"
	keySize = 32
)

const (
	CookieNameProduction = "__Host-session"
	CookieNameDefault    = "session"
	cookiePath           = "/"
)
