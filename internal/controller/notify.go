package controller

import "log/slog"

// Notifier receives the transient notifications a screen raises. The web UI
// renders these as toasts; the CLI prints them.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string) {}

// SlogNotifier routes notifications through slog.
type SlogNotifier struct {
	Log *slog.Logger
}

func (n SlogNotifier) Success(msg string) { n.logger().Info(msg) }
func (n SlogNotifier) Error(msg string)   { n.logger().Error(msg) }

func (n SlogNotifier) logger() *slog.Logger {
	if n.Log != nil {
		return n.Log
	}
	return slog.Default()
}
