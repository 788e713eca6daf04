package viewmodel

import (
	"fmt"

	"quotes/internal/quote"
)

// Input is a user or lifecycle intent emitted by the view.
type Input int

const (
	ScreenAppeared Input = iota + 1
	RefreshRequested
)

func (i Input) String() string {
	switch i {
	case ScreenAppeared:
		return "screen-appeared"
	case RefreshRequested:
		return "refresh-requested"
	default:
		return fmt.Sprintf("input(%d)", int(i))
	}
}

// Output is a presentation instruction for the view. The set is closed:
// FetchFailed, FetchSucceeded and SetRefreshEnabled.
type Output interface {
	isOutput()
}

// FetchFailed replaces the quote text with a description of the failure.
type FetchFailed struct {
	Description string
}

// FetchSucceeded carries the freshly decoded quote.
type FetchSucceeded struct {
	Quote quote.Quote
}

// SetRefreshEnabled toggles the refresh trigger.
type SetRefreshEnabled struct {
	Enabled bool
}

func (FetchFailed) isOutput()       {}
func (FetchSucceeded) isOutput()    {}
func (SetRefreshEnabled) isOutput() {}
