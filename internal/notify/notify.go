// Package notify holds sinks for the notifications the cart raises.
package notify

import (
	"sync"

	"github.com/nikolayk812/cart-widget/internal/domain"
	"go.uber.org/zap"
)

// Logger writes every notification to a zap logger.
type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Notify(n domain.Notification) {
	l.log.Info("notification",
		zap.String("kind", string(n.Kind)),
		zap.String("message", n.Message),
	)
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sent = append(r.sent, n)
}

func (r *Recorder) All() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sent) == 0 {
		return domain.Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

type notifier interface {
	Notify(n domain.Notification)
}

// Multi fans a notification out to several sinks in order.
type Multi []notifier

func (m Multi) Notify(n domain.Notification) {
	for _, s := range m {
		s.Notify(n)
	}
}
