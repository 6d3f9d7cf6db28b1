package state

import "strings"

// FooterText returns the footer content: status line (if any) above help.
func FooterText(session Session, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if session == QuitView || status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
