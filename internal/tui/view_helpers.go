package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/nudge/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// expiryLabel describes how far an item is from its expiry date.
func expiryLabel(days int) string {
	switch {
	case days == 0:
		return "Expires today"
	case days == 1:
		return "Expires tomorrow"
	case days > 1:
		return fmt.Sprintf("Expires in %d days", days)
	case days == -1:
		return "Expired yesterday"
	default:
		return fmt.Sprintf("Expired %d days ago", -days)
	}
}

// itemLine is the plain-text form of an item, used for the clipboard.
func itemLine(item models.ClassifiedItem) string {
	return fmt.Sprintf("%s (%s): %s", item.Name, item.ExpiryDate, expiryLabel(item.DaysUntilExpiry))
}

// statusBadges renders one badge per status with the total count. Hidden
// buckets are struck through.
func statusBadges(counts map[models.Status]int, pref models.FilterPreference) string {
	badges := make([]string, 0, len(models.Statuses))
	for i, status := range models.Statuses {
		label := fmt.Sprintf("[%d] %s %d", i+1, status, counts[status])
		if pref.Visible(status) {
			badges = append(badges, statusStyle(status).Bold(true).Render(label))
		} else {
			badges = append(badges, hiddenStyle.Render(label))
		}
	}
	return strings.Join(badges, "  ")
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
