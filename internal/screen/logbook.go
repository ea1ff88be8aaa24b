package screen

import (
	"context"
	"time"

	"github.com/magangkita/admin-console-go/internal/api"
	"github.com/magangkita/admin-console-go/internal/controller"
	"github.com/magangkita/admin-console-go/internal/domain/division"
	"github.com/magangkita/admin-console-go/internal/domain/logbook"
)

// Logbook drives the daily-logbook review screen.
type Logbook struct {
	*controller.List[logbook.Record]

	client   *api.Client
	notifier controller.Notifier
}

func logbookDefaults(now time.Time) map[string]string {
	today := controller.Today(now)
	return map[string]string{
		"start_date":         today,
		"end_date":           today,
		"division_id":        "",
		"status":             "",
		"cohort":             "",
		"source":             "",
		controller.SearchKey: "",
	}
}

func logbookBuckets() []controller.Bucket[logbook.Record] {
	return []controller.Bucket[logbook.Record]{
		{Key: "pending", Match: func(r logbook.Record) bool { return r.Status == logbook.StatusPending }},
		{Key: "approved", Match: func(r logbook.Record) bool { return r.Status == logbook.StatusApproved }},
		{Key: "rejected", Match: func(r logbook.Record) bool { return r.Status == logbook.StatusRejected }},
	}
}

func NewLogbook(client *api.Client, notifier controller.Notifier, opts ...controller.ListOption[logbook.Record]) *Logbook {
	lb := &Logbook{client: client, notifier: notifier}

	base := []controller.ListOption[logbook.Record]{
		controller.WithDefaults[logbook.Record](logbookDefaults(time.Now())),
		controller.WithBuckets(logbookBuckets()),
		controller.WithPostFilter([]string{"cohort", "source"}, func(filters map[string]string, r logbook.Record) bool {
			if v := filters["cohort"]; !controller.IsUnset(v) && r.User.Cohort != v {
				return false
			}
			if v := filters["source"]; !controller.IsUnset(v) && string(r.User.Source) != v {
				return false
			}
			return true
		}),
		controller.WithNotifier[logbook.Record](notifier),
		controller.WithFailureMessage[logbook.Record]("Failed to load logbook entries"),
	}
	lb.List = controller.NewList(client.ListLogbooks, append(base, opts...)...)
	return lb
}

// Review records supervisor feedback on one entry, then refetches.
func (lb *Logbook) Review(ctx context.Context, id string, status logbook.Status, feedback string) error {
	if _, err := lb.client.ReviewLogbook(ctx, id, status, feedback); err != nil {
		lb.notifier.Error(api.Message(err, "Failed to review logbook entry"))
		return err
	}
	lb.notifier.Success("Logbook entry reviewed")
	return lb.Reload(ctx)
}

// Divisions fetches the division lookup for the filter dropdown.
func (lb *Logbook) Divisions(ctx context.Context) ([]division.Division, error) {
	return lb.client.ListDivisions(ctx)
}
