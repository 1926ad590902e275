package locale

// Supported languages
const (
	ES = "es" // Spanish
	EN = "en" // English
)

// DefaultLang is used when no supported locale is requested.
const DefaultLang = ES

// LangList contains all supported language codes.
var LangList = []string{ES, EN}
