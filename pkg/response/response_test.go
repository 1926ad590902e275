package response

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ministry-srv/pkg/discord"
	"ministry-srv/pkg/errors"
	"ministry-srv/pkg/locale"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDiscord struct {
	reported chan string
}

func (m *mockDiscord) SendEmbed(ctx context.Context, embed discord.Embed) error {
	return nil
}
func (m *mockDiscord) ReportBug(ctx context.Context, message string) error {
	m.reported <- message
	return nil
}
func (m *mockDiscord) Close() error { return nil }

func newTestContext(lang string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("Cookie", "session=secret-token")
	c.Request = req.WithContext(locale.SetLocaleToContext(req.Context(), lang))
	return c, w
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		lang       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "http error keeps status and message",
			err:        errors.NewHTTPError(404, "Cédula o usuario no encontrado.", http.StatusNotFound),
			lang:       locale.ES,
			wantStatus: http.StatusNotFound,
			wantError:  "Cédula o usuario no encontrado.",
		},
		{
			name:       "validation error",
			err:        errors.NewValidationError(110001, "identifier", "Ingresa tu cédula o usuario."),
			lang:       locale.ES,
			wantStatus: http.StatusBadRequest,
			wantError:  "Ingresa tu cédula o usuario.",
		},
		{
			name:       "permission error",
			err:        errors.NewPermissionError(110003, "account", "Tu cuenta está inactiva."),
			lang:       locale.ES,
			wantStatus: http.StatusForbidden,
			wantError:  "Tu cuenta está inactiva.",
		},
		{
			name:       "unknown error is hidden",
			err:        stderrors.New("pq: connection refused"),
			lang:       locale.EN,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(tt.lang)

			Error(c, tt.err, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body ErrorResp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestErrorReportsBugWithoutCookie(t *testing.T) {
	c, w := newTestContext(locale.ES)
	d := &mockDiscord{reported: make(chan string, 4)}

	Error(c, stderrors.New("db down"), d)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	report := <-d.reported
	assert.Contains(t, report, "db down")
	assert.Contains(t, report, "Cookie: "+redacted)
	assert.NotContains(t, report, "secret-token")
}

func TestPanicError(t *testing.T) {
	c, w := newTestContext(locale.ES)

	PanicError(c, "nil map", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, c.IsAborted())
}

func TestSplitMessageForDiscord(t *testing.T) {
	msg := strings.Repeat("a", DiscordMaxMessageLen+10)
	chunks := splitMessageForDiscord(msg)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], DiscordMaxMessageLen)
}
