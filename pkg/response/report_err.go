package response

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// buildInternalServerErrorDataForReportBug formats a report for Discord.
// Credentials and request bodies never leave the process: the body may hold
// an identifier and the headers may hold the session cookie.
func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("============= MINISTRY SESSION ERROR =============\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	sb.WriteString("--------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		keys := make([]string, 0, len(c.Request.Header))
		for key := range c.Request.Header {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		sb.WriteString("Headers :\n")
		for _, key := range keys {
			value := strings.Join(c.Request.Header[key], ", ")
			if _, ok := sensitiveHeaders[key]; ok {
				value = redacted
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", key, value))
		}
		sb.WriteString("--------------------------------------------------\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}
	sb.WriteString("==================================================\n")
	return sb.String()
}
