package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dkrasnov/notable/internal/client/models"
)

// Truncate shortens text to at most max characters, appending "..." when
// something was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// FormatDate renders a timestamp the way the note views display it,
// e.g. "Aug 29, 2026, 3:04 PM".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// parseColor maps user input to a note color, defaulting to yellow.
func parseColor(s string) models.Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue":
		return models.ColorBlue
	case "grey", "gray":
		return models.ColorGrey
	default:
		return models.ColorYellow
	}
}

// renderFieldErrors prints field-level validation messages in a stable
// order. The services are never called when these exist.
func (a *App) renderFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(a.out, "%s: %s\n", f, errs[f])
	}
}
