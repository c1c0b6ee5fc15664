package domain

const (
	SchemaVersion = 1
	DefaultTheme  = "golden"
)

type Preferences struct {
	SchemaVersion int    `yaml:"schema_version"`
	Theme         string `yaml:"theme"`
	SoundEnabled  bool   `yaml:"sound_enabled"`
}

func Default() Preferences {
	return Preferences{SchemaVersion: SchemaVersion, Theme: DefaultTheme, SoundEnabled: true}
}
