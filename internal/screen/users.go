package screen

import (
	"context"
	"errors"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/magangkita/admin-console-go/internal/api"
	"github.com/magangkita/admin-console-go/internal/controller"
	"github.com/magangkita/admin-console-go/internal/domain/division"
	"github.com/magangkita/admin-console-go/internal/domain/user"
	"github.com/magangkita/admin-console-go/internal/importfile"
)

// Users drives the user-management screen: the paginated list with its
// client-side cohort/source filters, the create/edit modal, delete
// confirmation, active toggling, password resets, and bulk import/export.
type Users struct {
	*controller.List[user.User]

	Form     *controller.Form
	Confirm  *controller.Confirm
	Password *controller.PasswordReset

	client   *api.Client
	notifier controller.Notifier
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// userDraft carries the whitelist of fields validated client-side. Everything
// else is the backend's job.
type userDraft struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"omitempty,min=6"`
}

func validateUserDraft(mode controller.Mode, values map[string]string) error {
	d := userDraft{
		Name:     values["name"],
		Email:    values["email"],
		Password: values["password"],
	}
	if mode == controller.Create && len(d.Password) < controller.MinPasswordLen {
		return errors.New("password must be at least 6 characters")
	}
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Name":
				return errors.New("name is required")
			case "Email":
				return errors.New("a valid email is required")
			case "Password":
				return errors.New("password must be at least 6 characters")
			}
		}
		return err
	}
	return nil
}

func usersDefaults() map[string]string {
	return map[string]string{
		"role":               "",
		"division_id":        "",
		"is_active":          "",
		"cohort":             "",
		"source":             "",
		controller.SearchKey: "",
	}
}

func usersBuckets() []controller.Bucket[user.User] {
	return []controller.Bucket[user.User]{
		{Key: "active", Match: func(u user.User) bool { return u.Active }},
		{Key: "inactive", Match: func(u user.User) bool { return !u.Active }},
	}
}

func NewUsers(client *api.Client, notifier controller.Notifier, opts ...controller.ListOption[user.User]) *Users {
	u := &Users{client: client, notifier: notifier}

	base := []controller.ListOption[user.User]{
		controller.WithDefaults[user.User](usersDefaults()),
		controller.WithBuckets(usersBuckets()),
		controller.WithPostFilter([]string{"cohort", "source"}, func(filters map[string]string, rec user.User) bool {
			if v := filters["cohort"]; !controller.IsUnset(v) && rec.Cohort != v {
				return false
			}
			if v := filters["source"]; !controller.IsUnset(v) && string(rec.Source) != v {
				return false
			}
			return true
		}),
		controller.WithNotifier[user.User](notifier),
		controller.WithFailureMessage[user.User]("Failed to load users"),
	}
	u.List = controller.NewList(client.ListUsers, append(base, opts...)...)

	u.Form = controller.NewForm(validateUserDraft, notifier, u.refetch,
		"User saved", "Failed to save user")
	u.Confirm = controller.NewConfirm(notifier, u.refetch,
		"User deleted", "Failed to delete user")
	u.Password = controller.NewPasswordReset(notifier,
		"Password reset", "Failed to reset password")

	return u
}

func (u *Users) refetch() {
	go func() { _ = u.Reload(context.Background()) }()
}

// OpenCreate opens an empty create form.
func (u *Users) OpenCreate() {
	u.Form.OpenCreate(map[string]string{
		"name":        "",
		"email":       "",
		"password":    "",
		"role":        string(user.RoleIntern),
		"division_id": "",
		"cohort":      "",
		"source":      "",
	})
}

// OpenEdit loads one user's editable fields. Foreign-key placeholders become
// empty strings, never nulls.
func (u *Users) OpenEdit(rec user.User) {
	u.Form.OpenEdit(rec.ID, map[string]string{
		"name":          rec.Name,
		"email":         rec.Email,
		"role":          string(rec.Role),
		"division_id":   rec.DivisionID,
		"supervisor_id": rec.SupervisorID,
		"cohort":        rec.Cohort,
		"source":        string(rec.Source),
		"phone":         deref(rec.Phone),
		"campus":        deref(rec.Campus),
	})
}

// SubmitForm creates or updates depending on the form's mode.
func (u *Users) SubmitForm(ctx context.Context) error {
	return u.Form.Submit(ctx, func(ctx context.Context, mode controller.Mode, id string, body map[string]any) error {
		var err error
		if mode == controller.Create {
			_, err = u.client.CreateUser(ctx, body)
		} else {
			_, err = u.client.UpdateUser(ctx, id, body)
		}
		return err
	})
}

// ConfirmDelete deletes the user pending confirmation.
func (u *Users) ConfirmDelete(ctx context.Context) error {
	return u.Confirm.Confirm(ctx, u.client.DeleteUser)
}

// ToggleActive flips a user's active flag immediately, with no confirmation
// step and no optimistic update: the list is refetched either way the call
// lands.
func (u *Users) ToggleActive(ctx context.Context, id string, active bool) error {
	_, err := u.client.SetUserActive(ctx, id, active)
	if err != nil {
		u.notifier.Error(api.Message(err, "Failed to update user status"))
		return err
	}
	u.notifier.Success("User status updated")
	return u.Reload(ctx)
}

// ResetPassword submits the reset modal.
func (u *Users) ResetPassword(ctx context.Context) error {
	return u.Password.Submit(ctx, u.client.ResetUserPassword)
}

// Import stages the picked file, rejects unsupported formats before any
// upload, then submits one multipart request. Per-row failures reported by
// the backend are surfaced for rendering.
func (u *Users) Import(ctx context.Context, name, contentType string, r io.Reader) (api.ImportResult, error) {
	staged, err := importfile.Stage(name, contentType, r)
	if err != nil {
		u.notifier.Error(err.Error())
		return api.ImportResult{}, err
	}

	res, err := u.client.ImportUsers(ctx, staged.Name, staged.Reader())
	if err != nil {
		u.notifier.Error(api.Message(err, "Failed to import users"))
		return api.ImportResult{}, err
	}

	if len(res.Errors) > 0 {
		u.notifier.Error("Some rows could not be imported")
	} else {
		u.notifier.Success(res.Message)
	}
	_ = u.Reload(ctx)
	return res, nil
}

// Export downloads the user list as a spreadsheet, carrying the screen's
// active filters but no pagination.
func (u *Users) Export(ctx context.Context) ([]byte, error) {
	params := u.Params()
	params.Del("page")
	params.Del("limit")
	data, err := u.client.ExportUsers(ctx, params)
	if err != nil {
		u.notifier.Error(api.Message(err, "Failed to export users"))
		return nil, err
	}
	return data, nil
}

// Template downloads the import template workbook.
func (u *Users) Template(ctx context.Context) ([]byte, error) {
	data, err := u.client.DownloadUserTemplate(ctx)
	if err != nil {
		u.notifier.Error(api.Message(err, "Failed to download template"))
		return nil, err
	}
	return data, nil
}

// Divisions fetches the division lookup for filters and the edit form.
func (u *Users) Divisions(ctx context.Context) ([]division.Division, error) {
	return u.client.ListDivisions(ctx)
}

// Supervisors fetches the supervisor lookup for the edit form.
func (u *Users) Supervisors(ctx context.Context) ([]user.Summary, error) {
	return u.client.ListSupervisors(ctx)
}
