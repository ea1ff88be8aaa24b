package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/magangkita/admin-console-go/internal/api"
	"github.com/magangkita/admin-console-go/internal/controller"
	"github.com/magangkita/admin-console-go/internal/domain/division"
	"github.com/magangkita/admin-console-go/internal/domain/user"
)

// Divisions drives the division grid. The list is unpaginated; CRUD and
// member assignment follow the same submit-then-refetch contract as the
// other screens.
type Divisions struct {
	Form    *controller.Form
	Confirm *controller.Confirm

	client   *api.Client
	notifier controller.Notifier

	mu           sync.Mutex
	items        []division.Division
	loading      bool
	assignTarget string
	assignIDs    map[string]bool
}

func validateDivisionDraft(_ controller.Mode, values map[string]string) error {
	if controller.IsUnset(values["name"]) {
		return errors.New("division name is required")
	}
	return nil
}

func NewDivisions(client *api.Client, notifier controller.Notifier) *Divisions {
	if notifier == nil {
		notifier = controller.NopNotifier{}
	}
	d := &Divisions{client: client, notifier: notifier}
	d.Form = controller.NewForm(validateDivisionDraft, notifier, d.refetch,
		"Division saved", "Failed to save division")
	d.Confirm = controller.NewConfirm(notifier, d.refetch,
		"Division deleted", "Failed to delete division")
	return d
}

func (d *Divisions) refetch() {
	go func() { _ = d.Load(context.Background()) }()
}

// Load fetches the grid. User-initiated semantics: a failure clears the grid
// and raises a notification.
func (d *Divisions) Load(ctx context.Context) error {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	items, err := d.client.ListDivisions(ctx)

	d.mu.Lock()
	d.loading = false
	if err != nil {
		d.items = nil
		d.mu.Unlock()
		d.notifier.Error(api.Message(err, "Failed to load divisions"))
		return err
	}
	d.items = items
	d.mu.Unlock()
	return nil
}

// Items returns the loaded grid.
func (d *Divisions) Items() []division.Division {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]division.Division, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Divisions) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// OpenEdit loads one division into the form.
func (d *Divisions) OpenEdit(dv division.Division) {
	d.Form.OpenEdit(dv.ID, map[string]string{
		"name":        dv.Name,
		"description": deref(dv.Description),
	})
}

// SubmitForm creates or updates depending on the form's mode.
func (d *Divisions) SubmitForm(ctx context.Context) error {
	return d.Form.Submit(ctx, func(ctx context.Context, mode controller.Mode, id string, body map[string]any) error {
		var err error
		if mode == controller.Create {
			_, err = d.client.CreateDivision(ctx, body)
		} else {
			_, err = d.client.UpdateDivision(ctx, id, body)
		}
		return err
	})
}

// ConfirmDelete deletes the division pending confirmation.
func (d *Divisions) ConfirmDelete(ctx context.Context) error {
	return d.Confirm.Confirm(ctx, d.client.DeleteDivision)
}

// OpenAssign starts the member-assignment draft for one division, seeded with
// its current members. assigned user ids are a UI-only field; they exist
// nowhere but this draft until submit.
func (d *Divisions) OpenAssign(dv division.Division) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.assignTarget = dv.ID
	d.assignIDs = make(map[string]bool, len(dv.Members))
	for _, m := range dv.Members {
		d.assignIDs[m.ID] = true
	}
}

// ToggleAssign adds or removes one user from the assignment draft.
func (d *Divisions) ToggleAssign(userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.assignTarget == "" {
		return
	}
	if d.assignIDs[userID] {
		delete(d.assignIDs, userID)
	} else {
		d.assignIDs[userID] = true
	}
}

// CancelAssign discards the assignment draft.
func (d *Divisions) CancelAssign() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.assignTarget = ""
	d.assignIDs = nil
}

// AssignedIDs returns the draft's current selection.
func (d *Divisions) AssignedIDs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]string, 0, len(d.assignIDs))
	for id := range d.assignIDs {
		ids = append(ids, id)
	}
	return ids
}

// SubmitAssign replaces the division's member set, then refetches.
func (d *Divisions) SubmitAssign(ctx context.Context) error {
	d.mu.Lock()
	target := d.assignTarget
	ids := make([]string, 0, len(d.assignIDs))
	for id := range d.assignIDs {
		ids = append(ids, id)
	}
	d.mu.Unlock()
	if target == "" {
		return errors.New("no assignment in progress")
	}

	if _, err := d.client.AssignUsers(ctx, target, ids); err != nil {
		d.notifier.Error(api.Message(err, "Failed to assign users"))
		return err
	}
	d.CancelAssign()
	d.notifier.Success("Division members updated")
	return d.Load(ctx)
}

// UnassignedUsers fetches the lookup for the assignment modal.
func (d *Divisions) UnassignedUsers(ctx context.Context) ([]user.Summary, error) {
	return d.client.ListUnassignedUsers(ctx)
}
