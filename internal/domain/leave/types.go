package leave

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

type Type string

const (
	TypeSick       Type = "sick"
	TypePermission Type = "permission"
	TypeLeave      Type = "leave"
)

type Record struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	User       user.Summary `json:"user"`
	Type       Type         `json:"type"`
	StartDate  string       `json:"start_date"`
	EndDate    string       `json:"end_date"`
	TotalDays  int          `json:"total_days"`
	Reason     string       `json:"reason"`
	Status     Status       `json:"status"`
	Attachment *string      `json:"attachment,omitempty"`
	ReviewNote *string      `json:"review_note,omitempty"`
}

var statusBadges = map[Status]display.Badge{
	StatusPending:  {Label: "Pending", Color: "amber", Icon: "clock"},
	StatusApproved: {Label: "Approved", Color: "green", Icon: "check-circle"},
	StatusRejected: {Label: "Rejected", Color: "red", Icon: "x-circle"},
}

var typeBadges = map[Type]display.Badge{
	TypeSick:       {Label: "Sick", Color: "red", Icon: "thermometer"},
	TypePermission: {Label: "Permission", Color: "blue", Icon: "file-text"},
	TypeLeave:      {Label: "Leave", Color: "teal", Icon: "calendar"},
}

// StatusBadge resolves the badge for a leave status.
func StatusBadge(s Status) display.Badge {
	return display.Lookup(statusBadges, s)
}

// TypeBadge resolves the badge for a leave type.
func TypeBadge(t Type) display.Badge {
	return display.Lookup(typeBadges, t)
}
