package locale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ES},
		{name: "english", in: "EN", want: EN},
		{name: "accept-language", in: "en-US,en;q=0.9", want: EN},
		{name: "spanish region", in: "es_CO", want: ES},
		{name: "unsupported", in: "vi", want: ES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLang(tt.in))
		})
	}
}

func TestMessagesPick(t *testing.T) {
	msgs := Messages{ES: "hola", EN: "hello"}

	assert.Equal(t, "hola", msgs.Pick(context.Background()))
	assert.Equal(t, "hello", msgs.Pick(SetLocaleToContext(context.Background(), EN)))
	assert.Equal(t, "hola", Messages{ES: "hola"}.Pick(SetLocaleToContext(context.Background(), EN)))
}
