package mtext

import (
	"os"
	"strconv"
	"strings"
)

// DetectTrueColor returns true if the current environment likely supports
// 24-bit SGR colors. A non-empty NO_COLOR disables colors.
func DetectTrueColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return true
	}
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode":
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "kitty") || strings.HasSuffix(term, "-direct") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 3600 {
			return true
		}
	}
	return false
}
