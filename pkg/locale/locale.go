package locale

import (
	"context"
	"strings"
)

// Locale is the context key for the request language.
type Locale struct{}

// Messages maps a language code to a translated message.
type Messages map[string]string

// ParseLang normalizes a "lang" header or an Accept-Language value.
// Unsupported values yield DefaultLang.
func ParseLang(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if i := strings.IndexAny(lang, ",;"); i >= 0 {
		lang = lang[:i]
	}
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}

	switch lang {
	case ES, "español", "spanish":
		return ES
	case EN, "english":
		return EN
	default:
		return DefaultLang
	}
}

func IsValidLang(lang string) bool {
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, Locale{}, lang)
}

// GetLang returns the request language, or DefaultLang.
func GetLang(ctx context.Context) string {
	if lang, ok := ctx.Value(Locale{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}

// Pick returns the message for the context language, falling back to DefaultLang.
func (m Messages) Pick(ctx context.Context) string {
	if msg, ok := m[GetLang(ctx)]; ok {
		return msg
	}
	return m[DefaultLang]
}
