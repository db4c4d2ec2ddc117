package subscription

import (
	"fmt"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/dateutil"
)

// Badge is the dashboard chip shown next to a subscription.
type Badge struct {
	BgColor   string `json:"bg_color"`
	TextColor string `json:"text_color"`
	Text      string `json:"text"`
}

// DeriveBadge maps a subscription and "today" onto its dashboard badge:
// not yet started, expired, expiring within a week (amber), or healthy
// (green).
func DeriveBadge(sub *domain.Subscription, today time.Time) Badge {
	today = dateutil.Truncate(today)

	if sub.StartDate.After(today) {
		return Badge{
			BgColor:   "#DBEAFE",
			TextColor: "#1E40AF",
			Text:      fmt.Sprintf("Starts in %dd", dateutil.DaysBetween(today, sub.StartDate)),
		}
	}

	daysToEnd := dateutil.DaysBetween(today, sub.EndDate)
	if daysToEnd < 0 {
		return Badge{
			BgColor:   "#FEE2E2",
			TextColor: "#991B1B",
			Text:      fmt.Sprintf("Expired %dd ago", -daysToEnd),
		}
	}

	if daysToEnd <= 7 {
		return Badge{
			BgColor:   "#FEF3C7",
			TextColor: "#92400E",
			Text:      fmt.Sprintf("%dd left", daysToEnd),
		}
	}

	return Badge{
		BgColor:   "#D1FAE5",
		TextColor: "#065F46",
		Text:      fmt.Sprintf("%dd left", daysToEnd),
	}
}
