package ui

import (
	"cinematch/internal/ui/commands"
)

// EventMsg wraps a domain event for the UI
type EventMsg = commands.EventMsg

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// cardInfoPagerMsg contains the result of showing a card in the pager
type cardInfoPagerMsg struct {
	title string
	err   error
}

// openURLMsg reports the outcome of opening a watch link
type openURLMsg struct {
	title string
	err   error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
