// internal/observability/slog.go
package observability

import (
	"context"
	"log/slog"

	"go-state-container/pkg/statemachine"
)

// SlogObserver пишет каждый переход контейнера в slog.Logger.
// Принудительный перезапуск состояния логируется на уровне info, обычные переходы — debug.
type SlogObserver struct {
	logger *slog.Logger
	name   string
}

// NewSlogObserver создаёт наблюдателя; name попадает в атрибут "machine".
func NewSlogObserver(logger *slog.Logger, name string) *SlogObserver {
	return &SlogObserver{logger: logger, name: name}
}

func (o *SlogObserver) OnTransition(tr statemachine.Transition) {
	level := slog.LevelDebug
	msg := "state changed"
	if tr.Forced {
		level = slog.LevelInfo
		msg = "state reset"
	}

	attrs := []slog.Attr{
		slog.String("machine", o.name),
		slog.String("to", tr.To.String()),
	}
	if !tr.From.IsZero() {
		attrs = append(attrs, slog.String("from", tr.From.String()))
	}
	o.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

var _ statemachine.Observer = (*SlogObserver)(nil)
