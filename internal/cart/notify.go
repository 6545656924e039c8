package cart

import (
	"log/slog"
	"sync"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notifier shows short outcome messages to the shopper.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Toasts collects notifications so a handler can return them with the response.
type Toasts struct {
	mu    sync.Mutex
	items []models.Toast
}

func (t *Toasts) Success(message string) { t.add(LevelSuccess, message) }

func (t *Toasts) Error(message string) { t.add(LevelError, message) }

func (t *Toasts) add(level, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append(t.items, models.Toast{Level: level, Message: message})
}

func (t *Toasts) List() []models.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.Toast, len(t.items))
	copy(out, t.items)

	return out
}

// LogNotifier writes notifications to a logger; used when nobody is listening.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Success(message string) {
	n.logger().Info("Cart notification", slog.String("level", LevelSuccess), slog.String("message", message))
}

func (n LogNotifier) Error(message string) {
	n.logger().Warn("Cart notification", slog.String("level", LevelError), slog.String("message", message))
}

func (n LogNotifier) logger() *slog.Logger {
	if n.Logger != nil {
		return n.Logger
	}

	return slog.Default()
}
