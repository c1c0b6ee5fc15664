package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func FrameForTest() tea.Msg { return frameMsg(time.Now()) }
