package screen

import (
	"context"
	"sync"

	"github.com/magangkita/admin-console-go/internal/api"
	"github.com/magangkita/admin-console-go/internal/controller"
	"github.com/magangkita/admin-console-go/internal/domain/settings"
)

// Settings drives the system-settings screen: fetch, merge over the client
// defaults, edit, validate thresholds, save.
type Settings struct {
	client   *api.Client
	notifier controller.Notifier

	mu      sync.Mutex
	current settings.Settings
	loaded  bool
}

func NewSettings(client *api.Client, notifier controller.Notifier) *Settings {
	if notifier == nil {
		notifier = controller.NopNotifier{}
	}
	return &Settings{
		client:   client,
		notifier: notifier,
		current:  settings.Defaults(),
	}
}

// Load fetches the settings and merges them over the defaults, so a partial
// response never leaves an empty form field.
func (s *Settings) Load(ctx context.Context) error {
	partial, err := s.client.GetSettings(ctx)
	if err != nil {
		s.notifier.Error(api.Message(err, "Failed to load settings"))
		return err
	}

	s.mu.Lock()
	s.current = settings.Merge(partial)
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Current returns the working copy.
func (s *Settings) Current() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Settings) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Save validates the thresholds client-side, blocks the call on a violation,
// and otherwise PUTs the full object and re-merges the response.
func (s *Settings) Save(ctx context.Context, next settings.Settings) error {
	if err := next.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return err
	}

	partial, err := s.client.UpdateSettings(ctx, next)
	if err != nil {
		s.notifier.Error(api.Message(err, "Failed to save settings"))
		return err
	}

	s.mu.Lock()
	s.current = settings.Merge(partial)
	s.mu.Unlock()
	s.notifier.Success("Settings saved")
	return nil
}
