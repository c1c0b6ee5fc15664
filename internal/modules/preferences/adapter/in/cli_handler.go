package in

import (
	"context"

	preferencesdto "countdown/internal/modules/preferences/dto"
	preferencesin "countdown/internal/modules/preferences/port/in"
)

type CLIHandler struct {
	usecase preferencesin.Usecase
}

func NewCLIHandler(usecase preferencesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (preferencesdto.PreferencesOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) SetTheme(ctx context.Context, theme string) (preferencesdto.PreferencesOutput, error) {
	return h.usecase.SetTheme(ctx, preferencesdto.SetThemeInput{Theme: theme})
}
