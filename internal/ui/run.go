package ui

import (
	"context"
	"errors"
	"fmt"

	"quotes/internal/viewmodel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// RunParams holds what Run needs to drive the quote screen.
type RunParams struct {
	ViewModel *viewmodel.ViewModel
	Logger    *log.Logger
	// ProgramOptions are appended after the defaults (alt screen, ctx).
	ProgramOptions []tea.ProgramOption
}

// Run shows the quote screen until the user quits or ctx is done. It
// subscribes to the view-model before the program starts, and on return
// disposes the subscription and closes the view-model.
func Run(ctx context.Context, p RunParams) error {
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}
	vm := p.ViewModel

	view := NewQuoteView(vm)
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, p.ProgramOptions...)
	prog := tea.NewProgram(AsTeaModel(view), opts...)

	// Send blocks until the program reads the message and returns once
	// the program has exited.
	sub := vm.Subscribe(func(out viewmodel.Output) {
		prog.Send(OutputMsg{Output: out})
	})
	defer vm.Close()
	defer sub.Dispose()

	logger.Info("quote screen starting")
	_, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("quote screen stopped", "reason", ctx.Err())
			return nil
		}
		return fmt.Errorf("running quote screen: %w", err)
	}
	logger.Info("quote screen closed")
	return nil
}
