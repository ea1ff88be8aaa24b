package attendance

import (
	"github.com/magangkita/admin-console-go/internal/domain/display"
	"github.com/magangkita/admin-console-go/internal/domain/user"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "on_leave"
)

// WorkType is the attendance mode: working from the office or remotely.
type WorkType string

const (
	WorkOnsite  WorkType = "onsite"
	WorkOffsite WorkType = "offsite"
)

type Record struct {
	ID       string       `json:"id"`
	UserID   string       `json:"user_id"`
	User     user.Summary `json:"user"`
	Date     string       `json:"date"`
	ClockIn  *string      `json:"clock_in,omitempty"`
	ClockOut *string      `json:"clock_out,omitempty"`
	Status   Status       `json:"status"`
	WorkType WorkType     `json:"work_type"`
	Location *string      `json:"location,omitempty"`
	Notes    *string      `json:"notes,omitempty"`
}

var statusBadges = map[Status]display.Badge{
	StatusPresent: {Label: "Present", Color: "green", Icon: "check-circle"},
	StatusLate:    {Label: "Late", Color: "amber", Icon: "clock"},
	StatusAbsent:  {Label: "Absent", Color: "red", Icon: "x-circle"},
	StatusOnLeave: {Label: "On Leave", Color: "blue", Icon: "calendar"},
}

var workTypeBadges = map[WorkType]display.Badge{
	WorkOnsite:  {Label: "Onsite", Color: "teal", Icon: "building"},
	WorkOffsite: {Label: "Offsite", Color: "indigo", Icon: "home"},
}

// StatusBadge resolves the badge for an attendance status.
func StatusBadge(s Status) display.Badge {
	return display.Lookup(statusBadges, s)
}

// WorkTypeBadge resolves the badge for a work type.
func WorkTypeBadge(w WorkType) display.Badge {
	return display.Lookup(workTypeBadges, w)
}
