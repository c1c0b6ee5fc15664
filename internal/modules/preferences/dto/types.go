package dto

type PreferencesOutput struct {
	Theme        string
	SoundEnabled bool
}

type SetThemeInput struct {
	Theme string
}
