package domain

import "time"

// Backup is the full-database JSON export used for offline backup and
// restore. Restore replaces all rows in one transaction.
type Backup struct {
	ExportedAt    time.Time         `json:"exported_at"`
	Members       []*Member         `json:"members"`
	Leads         []*Lead           `json:"leads"`
	Slots         []*SessionSlot    `json:"slots"`
	Plans         []*MembershipPlan `json:"plans"`
	Subscriptions []*Subscription   `json:"subscriptions"`
	Invoices      []*Invoice        `json:"invoices"`
	Payments      []*Payment        `json:"payments"`
	Products      []*Product        `json:"products"`
	Trials        []*TrialBooking   `json:"trials"`
	Settings      *Settings         `json:"settings,omitempty"`
}
