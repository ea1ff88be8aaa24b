package screen

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magangkita/admin-console-go/internal/domain/settings"
)

func TestSettingsLoad_MergesOverDefaults(t *testing.T) {
	t.Parallel()

	client := newBackend(t, func(r chi.Router) {
		r.Get("/admin/settings", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(`{"data": {"office_start_time": "08:00", "late_threshold_minutes": 30}}`))
		})
	})
	scr := NewSettings(client, &noteRec{})

	require.NoError(t, scr.Load(context.Background()))

	cur := scr.Current()
	assert.Equal(t, "08:00", cur.OfficeStartTime)
	assert.Equal(t, 30, cur.LateThresholdMinutes)
	assert.Equal(t, "17:00", cur.OfficeEndTime, "fields the backend omitted keep their defaults")
	assert.Equal(t, 2, cur.MaxLeavePerMonth)
	assert.True(t, scr.Loaded())
}

func TestSettingsSave_InvalidBlocksNetwork(t *testing.T) {
	t.Parallel()

	puts := &counter{}
	client := newBackend(t, func(r chi.Router) {
		r.Put("/admin/settings", func(w http.ResponseWriter, req *http.Request) {
			puts.inc()
			w.Write([]byte(`{"data": {}}`))
		})
	})
	notes := &noteRec{}
	scr := NewSettings(client, notes)

	bad := settings.Defaults()
	bad.MinLeaveQuota = 0

	require.Error(t, scr.Save(context.Background(), bad))
	assert.Zero(t, puts.count(), "threshold violations never reach the wire")
	require.Len(t, notes.errorMessages(), 1)
	assert.Contains(t, notes.errorMessages()[0], "invalid settings")
}

func TestSettingsSave_Roundtrip(t *testing.T) {
	t.Parallel()

	client := newBackend(t, func(r chi.Router) {
		r.Put("/admin/settings", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(`{"data": {"office_start_time": "07:30"}}`))
		})
	})
	notes := &noteRec{}
	scr := NewSettings(client, notes)

	next := settings.Defaults()
	next.OfficeStartTime = "07:30"

	require.NoError(t, scr.Save(context.Background(), next))
	assert.Equal(t, "07:30", scr.Current().OfficeStartTime)
	assert.Equal(t, []string{"Settings saved"}, notes.successes)
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	ok := settings.Defaults()
	assert.NoError(t, ok.Validate())

	tooLate := settings.Defaults()
	tooLate.LateThresholdMinutes = 200
	assert.Error(t, tooLate.Validate())

	noEnd := settings.Defaults()
	noEnd.OfficeEndTime = ""
	assert.Error(t, noEnd.Validate())

	badClock := settings.Defaults()
	badClock.OfficeStartTime = "99:99"
	assert.Error(t, badClock.Validate(), "out-of-range clock values are rejected")

	notAClock := settings.Defaults()
	notAClock.LogbookReminderTime = "ab:cd"
	assert.Error(t, notAClock.Validate())
}
