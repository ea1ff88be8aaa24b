package settings

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Settings is the system configuration the console edits. The backend may
// return a partial object; Merge lays fetched values over Defaults so the
// form never renders an empty field.
type Settings struct {
	OfficeStartTime      string `json:"office_start_time" validate:"required,len=5,datetime=15:04"`
	OfficeEndTime        string `json:"office_end_time" validate:"required,len=5,datetime=15:04"`
	LateThresholdMinutes int    `json:"late_threshold_minutes" validate:"min=0,max=120"`
	MinLeaveQuota        int    `json:"min_leave_quota" validate:"min=1"`
	MaxLeavePerMonth     int    `json:"max_leave_per_month" validate:"min=1"`
	LogbookReminderTime  string `json:"logbook_reminder_time" validate:"required,len=5,datetime=15:04"`
	AllowOffsite         bool   `json:"allow_offsite"`
}

// Partial mirrors Settings with every field optional, for merging.
type Partial struct {
	OfficeStartTime      *string `json:"office_start_time,omitempty"`
	OfficeEndTime        *string `json:"office_end_time,omitempty"`
	LateThresholdMinutes *int    `json:"late_threshold_minutes,omitempty"`
	MinLeaveQuota        *int    `json:"min_leave_quota,omitempty"`
	MaxLeavePerMonth     *int    `json:"max_leave_per_month,omitempty"`
	LogbookReminderTime  *string `json:"logbook_reminder_time,omitempty"`
	AllowOffsite         *bool   `json:"allow_offsite,omitempty"`
}

// Defaults returns the client-side defaults the fetched object is merged over.
func Defaults() Settings {
	return Settings{
		OfficeStartTime:      "09:00",
		OfficeEndTime:        "17:00",
		LateThresholdMinutes: 15,
		MinLeaveQuota:        1,
		MaxLeavePerMonth:     2,
		LogbookReminderTime:  "16:00",
		AllowOffsite:         true,
	}
}

// Merge lays the fetched partial over the defaults.
func Merge(p Partial) Settings {
	s := Defaults()
	if p.OfficeStartTime != nil {
		s.OfficeStartTime = *p.OfficeStartTime
	}
	if p.OfficeEndTime != nil {
		s.OfficeEndTime = *p.OfficeEndTime
	}
	if p.LateThresholdMinutes != nil {
		s.LateThresholdMinutes = *p.LateThresholdMinutes
	}
	if p.MinLeaveQuota != nil {
		s.MinLeaveQuota = *p.MinLeaveQuota
	}
	if p.MaxLeavePerMonth != nil {
		s.MaxLeavePerMonth = *p.MaxLeavePerMonth
	}
	if p.LogbookReminderTime != nil {
		s.LogbookReminderTime = *p.LogbookReminderTime
	}
	if p.AllowOffsite != nil {
		s.AllowOffsite = *p.AllowOffsite
	}
	return s
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate enforces the threshold rules before the settings are saved.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid settings: field %s failed rule %s", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
