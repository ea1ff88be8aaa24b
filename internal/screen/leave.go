package screen

import (
	"context"
	"time"

	"github.com/magangkita/admin-console-go/internal/api"
	"github.com/magangkita/admin-console-go/internal/controller"
	"github.com/magangkita/admin-console-go/internal/domain/division"
	"github.com/magangkita/admin-console-go/internal/domain/leave"
)

// Leave drives the leave-request screen.
type Leave struct {
	*controller.List[leave.Record]

	client   *api.Client
	notifier controller.Notifier
}

func leaveDefaults(now time.Time) map[string]string {
	today := controller.Today(now)
	return map[string]string{
		"start_date":         today,
		"end_date":           today,
		"division_id":        "",
		"status":             "",
		"type":               "",
		"cohort":             "",
		"source":             "",
		controller.SearchKey: "",
	}
}

func leaveBuckets() []controller.Bucket[leave.Record] {
	return []controller.Bucket[leave.Record]{
		{Key: "pending", Match: func(r leave.Record) bool { return r.Status == leave.StatusPending }},
		{Key: "approved", Match: func(r leave.Record) bool { return r.Status == leave.StatusApproved }},
		{Key: "rejected", Match: func(r leave.Record) bool { return r.Status == leave.StatusRejected }},
	}
}

func NewLeave(client *api.Client, notifier controller.Notifier, opts ...controller.ListOption[leave.Record]) *Leave {
	l := &Leave{client: client, notifier: notifier}

	base := []controller.ListOption[leave.Record]{
		controller.WithDefaults[leave.Record](leaveDefaults(time.Now())),
		controller.WithBuckets(leaveBuckets()),
		controller.WithPostFilter([]string{"cohort", "source"}, func(filters map[string]string, r leave.Record) bool {
			if v := filters["cohort"]; !controller.IsUnset(v) && r.User.Cohort != v {
				return false
			}
			if v := filters["source"]; !controller.IsUnset(v) && string(r.User.Source) != v {
				return false
			}
			return true
		}),
		controller.WithNotifier[leave.Record](notifier),
		controller.WithFailureMessage[leave.Record]("Failed to load leave requests"),
	}
	l.List = controller.NewList(client.ListLeaveRequests, append(base, opts...)...)
	return l
}

// Review approves or rejects one request, then refetches. No optimistic
// update: the list is always reloaded from the backend.
func (l *Leave) Review(ctx context.Context, id string, status leave.Status, note string) error {
	if _, err := l.client.ReviewLeaveRequest(ctx, id, status, note); err != nil {
		l.notifier.Error(api.Message(err, "Failed to update leave request"))
		return err
	}
	l.notifier.Success("Leave request updated")
	return l.Reload(ctx)
}

// Divisions fetches the division lookup for the filter dropdown.
func (l *Leave) Divisions(ctx context.Context) ([]division.Division, error) {
	return l.client.ListDivisions(ctx)
}
