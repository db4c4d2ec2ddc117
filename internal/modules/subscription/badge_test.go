package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yogastudio/internal/domain"
)

func TestDeriveBadge(t *testing.T) {
	today := mustDate("2025-01-20")

	cases := []struct {
		name       string
		start, end string
		wantText   string
		wantBg     string
	}{
		{"not started yet", "2025-01-25", "2025-02-25", "Starts in 5d", "#DBEAFE"},
		{"expired", "2024-12-01", "2025-01-10", "Expired 10d ago", "#FEE2E2"},
		{"expiring within a week", "2025-01-01", "2025-01-25", "5d left", "#FEF3C7"},
		{"expires today", "2025-01-01", "2025-01-20", "0d left", "#FEF3C7"},
		{"healthy", "2025-01-01", "2025-03-01", "40d left", "#D1FAE5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := &domain.Subscription{
				StartDate: mustDate(tc.start),
				EndDate:   mustDate(tc.end),
			}
			badge := DeriveBadge(sub, today)
			assert.Equal(t, tc.wantText, badge.Text)
			assert.Equal(t, tc.wantBg, badge.BgColor)
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	today := mustDate("2025-01-20")

	active := &domain.Subscription{StartDate: mustDate("2025-01-01"), EndDate: mustDate("2025-02-01")}
	assert.Equal(t, domain.SubscriptionActive, DeriveStatus(active, today))

	scheduled := &domain.Subscription{StartDate: mustDate("2025-02-01"), EndDate: mustDate("2025-03-01")}
	assert.Equal(t, domain.SubscriptionScheduled, DeriveStatus(scheduled, today))

	expired := &domain.Subscription{StartDate: mustDate("2024-11-01"), EndDate: mustDate("2024-12-01")}
	assert.Equal(t, domain.SubscriptionExpired, DeriveStatus(expired, today))

	cancelled := &domain.Subscription{
		StartDate: mustDate("2025-01-01"), EndDate: mustDate("2025-02-01"),
		Status: domain.SubscriptionCancelled,
	}
	assert.Equal(t, domain.SubscriptionCancelled, DeriveStatus(cancelled, today))
}
