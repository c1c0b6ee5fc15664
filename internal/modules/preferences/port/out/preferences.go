package out

import (
	"context"

	"countdown/internal/modules/preferences/domain"
)

type Store interface {
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}
