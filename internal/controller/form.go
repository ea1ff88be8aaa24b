package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/magangkita/admin-console-go/internal/api"
)

// Mode is the modal's lifecycle state.
type Mode int

const (
	Closed Mode = iota
	Create
	Edit
)

// ValidateFunc checks the client-side whitelist rules before submit. A non-nil
// error blocks the network call entirely; everything else is the backend's
// job.
type ValidateFunc func(mode Mode, values map[string]string) error

// Form holds the local, uncommitted draft of a record being created or
// edited. The draft exists only while the modal is open and is discarded on
// cancel. Touched fields are tracked so the submit body always carries fields
// the user edited, even ones re-set to their original value.
type Form struct {
	validate ValidateFunc
	notifier Notifier
	refetch  func()
	okMsg    string
	failMsg  string

	mu       sync.Mutex
	mode     Mode
	recordID string
	values   map[string]string
	touched  map[string]bool
}

func NewForm(validate ValidateFunc, notifier Notifier, refetch func(), okMsg, failMsg string) *Form {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Form{
		validate: validate,
		notifier: notifier,
		refetch:  refetch,
		okMsg:    okMsg,
		failMsg:  failMsg,
	}
}

// OpenCreate opens the modal with an empty draft seeded from defaults.
func (f *Form) OpenCreate(defaults map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = Create
	f.recordID = ""
	f.values = make(map[string]string, len(defaults))
	for k, v := range defaults {
		f.values[k] = v
	}
	f.touched = map[string]bool{}
}

// OpenEdit loads the record's current fields into the draft. Callers
// normalize foreign-key placeholders to "" (never a null) before passing
// them in, so controlled inputs render cleanly.
func (f *Form) OpenEdit(id string, fields map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = Edit
	f.recordID = id
	f.values = make(map[string]string, len(fields))
	for k, v := range fields {
		f.values[k] = v
	}
	f.touched = map[string]bool{}
}

// Set records a user edit: the value is stored and the field marked touched.
func (f *Form) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == Closed {
		return
	}
	f.values[key] = value
	f.touched[key] = true
}

func (f *Form) Get(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key]
}

func (f *Form) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *Form) RecordID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recordID
}

// Close discards the draft.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = Closed
	f.recordID = ""
	f.values = nil
	f.touched = nil
}

// Body builds the submit payload: a field is included when its value is
// non-empty or the user touched it. Untouched empty optional fields never
// reach the wire.
func (f *Form) Body() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodyLocked()
}

func (f *Form) bodyLocked() map[string]any {
	body := make(map[string]any, len(f.values))
	for k, v := range f.values {
		if v == "" && !f.touched[k] {
			continue
		}
		body[k] = v
	}
	return body
}

// Submit validates the draft and runs send. Success closes the modal,
// discards the draft, and triggers a full refetch; failure keeps the modal
// open with the draft intact and shows the backend's message when there is
// one.
func (f *Form) Submit(ctx context.Context, send func(ctx context.Context, mode Mode, id string, body map[string]any) error) error {
	f.mu.Lock()
	if f.mode == Closed {
		f.mu.Unlock()
		return errors.New("form is not open")
	}
	mode := f.mode
	id := f.recordID
	body := f.bodyLocked()
	values := make(map[string]string, len(f.values))
	for k, v := range f.values {
		values[k] = v
	}
	f.mu.Unlock()

	if f.validate != nil {
		if err := f.validate(mode, values); err != nil {
			f.notifier.Error(err.Error())
			return err
		}
	}

	if err := send(ctx, mode, id, body); err != nil {
		f.notifier.Error(api.Message(err, f.failMsg))
		return err
	}

	f.Close()
	if f.refetch != nil {
		f.refetch()
	}
	if f.okMsg != "" {
		f.notifier.Success(f.okMsg)
	}
	return nil
}

// Confirm is the two-step delete flow: closed -> confirming(target) -> closed.
type Confirm struct {
	notifier Notifier
	refetch  func()
	okMsg    string
	failMsg  string

	mu       sync.Mutex
	targetID string
}

func NewConfirm(notifier Notifier, refetch func(), okMsg, failMsg string) *Confirm {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Confirm{notifier: notifier, refetch: refetch, okMsg: okMsg, failMsg: failMsg}
}

func (c *Confirm) Open(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetID = id
}

func (c *Confirm) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetID = ""
}

func (c *Confirm) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetID != ""
}

func (c *Confirm) Target() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetID
}

// Confirm runs del against the pending target. Success closes the dialog and
// refetches; failure keeps it open so the user can retry.
func (c *Confirm) Confirm(ctx context.Context, del func(ctx context.Context, id string) error) error {
	c.mu.Lock()
	id := c.targetID
	c.mu.Unlock()
	if id == "" {
		return errors.New("nothing pending confirmation")
	}

	if err := del(ctx, id); err != nil {
		c.notifier.Error(api.Message(err, c.failMsg))
		return err
	}

	c.Cancel()
	if c.refetch != nil {
		c.refetch()
	}
	if c.okMsg != "" {
		c.notifier.Success(c.okMsg)
	}
	return nil
}

// MinPasswordLen is the only password rule enforced client-side.
const MinPasswordLen = 6

// ErrPasswordRules is raised before any network call when the reset form's
// inputs don't satisfy the match and length rules.
var ErrPasswordRules = errors.New("passwords must match and be at least 6 characters")

// PasswordReset is the reset-password modal. Submit stays disabled until the
// two inputs match and clear the minimum length.
type PasswordReset struct {
	notifier Notifier
	okMsg    string
	failMsg  string

	mu      sync.Mutex
	userID  string
	newPass string
	confirm string
}

func NewPasswordReset(notifier Notifier, okMsg, failMsg string) *PasswordReset {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &PasswordReset{notifier: notifier, okMsg: okMsg, failMsg: failMsg}
}

func (p *PasswordReset) Open(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.userID = userID
	p.newPass = ""
	p.confirm = ""
}

func (p *PasswordReset) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.userID = ""
	p.newPass = ""
	p.confirm = ""
}

func (p *PasswordReset) SetNew(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.newPass = v
}

func (p *PasswordReset) SetConfirm(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirm = v
}

// CanSubmit gates the submit button.
func (p *PasswordReset) CanSubmit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.userID != "" && len(p.newPass) >= MinPasswordLen && p.newPass == p.confirm
}

// Submit sends the new password, rejecting rule violations before any network
// call is made.
func (p *PasswordReset) Submit(ctx context.Context, send func(ctx context.Context, userID, newPassword string) error) error {
	if !p.CanSubmit() {
		p.notifier.Error(ErrPasswordRules.Error())
		return ErrPasswordRules
	}

	p.mu.Lock()
	userID := p.userID
	newPass := p.newPass
	p.mu.Unlock()

	if err := send(ctx, userID, newPass); err != nil {
		p.notifier.Error(api.Message(err, p.failMsg))
		return err
	}

	p.Close()
	if p.okMsg != "" {
		p.notifier.Success(p.okMsg)
	}
	return nil
}
