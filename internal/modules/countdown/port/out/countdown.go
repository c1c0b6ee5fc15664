package out

import (
	"context"

	"countdown/internal/modules/countdown/domain"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Renderer is presentation only; the registry never reads anything back.
type Renderer interface {
	RenderPrimary(b domain.Breakdown, elapsedFraction float64, name string)
	AttachSecondary(id, name string)
	RenderSecondary(id string, b domain.Breakdown)
	DetachSecondary(id string)
	ResetPrimaryDisplay()
}

// PauseMarker is an optional Renderer extension for displays that can show
// that the primary timer is paused.
type PauseMarker interface {
	MarkPrimaryPaused(paused bool)
}

// EffectsSink calls are fire-and-forget.
type EffectsSink interface {
	PlayCompletionSound()
	ShowCompletionDialog(name string)
	Notify(message string, severity Severity)
}

type Journal interface {
	Append(ctx context.Context, record domain.Record) error
	Recent(ctx context.Context, limit int) ([]domain.Record, error)
}
