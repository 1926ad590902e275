package response

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"strings"

	"ministry-srv/pkg/discord"
	"ministry-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the JSON body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Redirect sends 200 {"redirect": path}.
func Redirect(c *gin.Context, path string) {
	c.JSON(http.StatusOK, RedirectResp{Redirect: path})
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, ErrorResp) {
	ctx := c.Request.Context()
	switch parsedErr := err.(type) {
	case *errors.HTTPError:
		statusCode := parsedErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		return statusCode, ErrorResp{Error: parsedErr.Message}
	case *errors.ValidationError:
		return http.StatusBadRequest, ErrorResp{Error: parsedErr.Message}
	case *errors.PermissionError:
		return http.StatusForbidden, ErrorResp{Error: parsedErr.Message}
	default:
		if d != nil && err != nil {
			sendDiscordMessageAsync(d, buildInternalServerErrorDataForReportBug(c, err.Error(), captureStackTrace()))
		}
		return http.StatusInternalServerError, ErrorResp{Error: defaultErrorMessage.Pick(ctx)}
	}
}

// Error renders err. Errors that are not one of the pkg/errors types become a
// generic 500 and, when d is set, a bug report.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// HttpError renders an already-mapped error.
func HttpError(c *gin.Context, err *errors.HTTPError) {
	statusCode, resp := parseError(err, c, nil)
	c.JSON(statusCode, resp)
}

// PanicError renders a recovered panic value as a 500.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	if _, isHTTP := err.(*errors.HTTPError); isHTTP {
		err = fmt.Errorf("panic: %w", err)
	}
	statusCode, resp := parseError(err, c, d)
	c.AbortWithStatusJSON(statusCode, resp)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		frame, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return stackTrace
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}
