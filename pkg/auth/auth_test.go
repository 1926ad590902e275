package auth

import (
	"context"
	"testing"

	"ministry-srv/pkg/log"

	"github.com/stretchr/testify/assert"
)

func TestMaskIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "cedula", in: "1020304050", want: "******4050"},
		{name: "short", in: "ana", want: "***"},
		{name: "empty", in: "", want: ""},
		{name: "multibyte", in: "josé.núñez", want: "******úñez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskIdentifier(tt.in))
		})
	}
}

func TestSecurityLoggerDoesNotPanic(t *testing.T) {
	s := NewSecurityLogger(log.NewNop())
	ctx := context.Background()
	assert.NotPanics(t, func() {
		s.LoginSucceeded(ctx, "1020304050", "director")
		s.LoginRejected(ctx, "12345", "not found")
		s.RoleSwitched(ctx, "acc", "maestro")
		s.RoleSwitchDenied(ctx, "acc", "maestro", "not current")
		s.CredentialRejected(ctx, "/panel", "expired")
	})
}
