// Package screen wires the generic controllers to each admin screen: its
// filter defaults, stat buckets, client-side post-filters, and the mutation
// flows behind its modals.
package screen

import (
	"context"
	"time"

	"github.com/magangkita/admin-console-go/internal/api"
	"github.com/magangkita/admin-console-go/internal/controller"
	"github.com/magangkita/admin-console-go/internal/domain/attendance"
	"github.com/magangkita/admin-console-go/internal/domain/division"
)

// Attendance drives the attendance screen: a date-ranged list with division,
// status, work type and search filters, page-scoped stats, and the only
// auto-refreshing list in the console.
type Attendance struct {
	*controller.List[attendance.Record]

	Form    *controller.Form
	Confirm *controller.Confirm

	client *api.Client
}

func attendanceDefaults(now time.Time) map[string]string {
	today := controller.Today(now)
	return map[string]string{
		"date_from":          today,
		"date_to":            today,
		"division_id":        "",
		"status":             "",
		"work_type":          "",
		"cohort":             "",
		"source":             "",
		controller.SearchKey: "",
	}
}

func attendanceBuckets() []controller.Bucket[attendance.Record] {
	return []controller.Bucket[attendance.Record]{
		{Key: "present", Match: func(r attendance.Record) bool { return r.Status == attendance.StatusPresent }},
		{Key: "late", Match: func(r attendance.Record) bool { return r.Status == attendance.StatusLate }},
		{Key: "absent", Match: func(r attendance.Record) bool { return r.Status == attendance.StatusAbsent }},
		{Key: "on_leave", Match: func(r attendance.Record) bool { return r.Status == attendance.StatusOnLeave }},
	}
}

func NewAttendance(client *api.Client, notifier controller.Notifier, opts ...controller.ListOption[attendance.Record]) *Attendance {
	a := &Attendance{client: client}

	base := []controller.ListOption[attendance.Record]{
		controller.WithDefaults[attendance.Record](attendanceDefaults(time.Now())),
		controller.WithBuckets(attendanceBuckets()),
		controller.WithPostFilter([]string{"cohort", "source"}, func(filters map[string]string, r attendance.Record) bool {
			if v := filters["cohort"]; !controller.IsUnset(v) && r.User.Cohort != v {
				return false
			}
			if v := filters["source"]; !controller.IsUnset(v) && string(r.User.Source) != v {
				return false
			}
			return true
		}),
		controller.WithNotifier[attendance.Record](notifier),
		controller.WithFailureMessage[attendance.Record]("Failed to load attendance data"),
	}
	a.List = controller.NewList(client.ListAttendances, append(base, opts...)...)

	a.Form = controller.NewForm(nil, notifier, a.refetch,
		"Attendance updated", "Failed to save attendance")
	a.Confirm = controller.NewConfirm(notifier, a.refetch,
		"Attendance deleted", "Failed to delete attendance")

	return a
}

func (a *Attendance) refetch() {
	go func() { _ = a.Reload(context.Background()) }()
}

// OpenEdit loads one record's editable fields into the form. Nullable fields
// become empty strings, never nulls.
func (a *Attendance) OpenEdit(r attendance.Record) {
	a.Form.OpenEdit(r.ID, map[string]string{
		"clock_in":  deref(r.ClockIn),
		"clock_out": deref(r.ClockOut),
		"status":    string(r.Status),
		"work_type": string(r.WorkType),
		"notes":     deref(r.Notes),
	})
}

// SubmitForm sends the draft to the backend.
func (a *Attendance) SubmitForm(ctx context.Context) error {
	return a.Form.Submit(ctx, func(ctx context.Context, _ controller.Mode, id string, body map[string]any) error {
		_, err := a.client.UpdateAttendance(ctx, id, body)
		return err
	})
}

// ConfirmDelete deletes the record pending confirmation.
func (a *Attendance) ConfirmDelete(ctx context.Context) error {
	return a.Confirm.Confirm(ctx, a.client.DeleteAttendance)
}

// Divisions fetches the division lookup for the filter dropdown.
func (a *Attendance) Divisions(ctx context.Context) ([]division.Division, error) {
	return a.client.ListDivisions(ctx)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
