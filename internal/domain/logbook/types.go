package logbook

import (
	"github.com/magangkita/admin-console-go/internal/domain/display"
	"github.com/magangkita/admin-console-go/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Record struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	User        user.Summary `json:"user"`
	Date        string       `json:"date"`
	Activity    string       `json:"activity"`
	Description string       `json:"description"`
	Status      Status       `json:"status"`
	Feedback    *string      `json:"feedback,omitempty"`
}

var statusBadges = map[Status]display.Badge{
	StatusPending:  {Label: "Awaiting Review", Color: "amber", Icon: "clock"},
	StatusApproved: {Label: "Approved", Color: "green", Icon: "check-circle"},
	StatusRejected: {Label: "Needs Revision", Color: "red", Icon: "edit"},
}

// StatusBadge resolves the badge for a logbook status.
func StatusBadge(s Status) display.Badge {
	return display.Lookup(statusBadges, s)
}
