package ui

import (
	"time"

	"quotes/internal/viewmodel"
)

// OutputMsg carries one viewmodel output into the Bubble Tea message loop.
type OutputMsg struct {
	Output viewmodel.Output
}

// tickMsg refreshes the "updated ..." status line.
type tickMsg time.Time
