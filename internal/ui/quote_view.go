package ui

import (
	"strings"
	"time"

	"quotes/internal/viewmodel"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	defaultWidth = 60
	maxBoxWidth  = 80
	statusTick   = time.Second
)

// IntentHandler receives the view's inputs. *viewmodel.ViewModel satisfies it.
type IntentHandler interface {
	Handle(viewmodel.Input)
}

// QuoteView is the quote screen: a read-only label and a refresh button.
type QuoteView struct {
	intents IntentHandler

	label          string
	labelIsError   bool
	refreshEnabled bool
	pending        bool
	appeared       bool
	updatedAt      time.Time

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
	now     func() time.Time
}

// Ensure QuoteView implements View.
var _ View = (*QuoteView)(nil)

// NewQuoteView creates the quote screen. The refresh button starts enabled.
func NewQuoteView(intents IntentHandler) *QuoteView {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(Styles.Spinner))
	h := help.New()
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return &QuoteView{
		intents:        intents,
		refreshEnabled: true,
		keys:           newKeyMap(),
		help:           h,
		spinner:        sp,
		width:          defaultWidth,
		now:            time.Now,
	}
}

// Label returns the text currently shown in the quote label.
func (v *QuoteView) Label() string {
	return v.label
}

// RefreshEnabled reports whether the refresh button can be pressed.
func (v *QuoteView) RefreshEnabled() bool {
	return v.refreshEnabled
}

// Pending reports whether a fetch is outstanding as far as the view can tell.
func (v *QuoteView) Pending() bool {
	return v.pending
}

// Init emits ScreenAppeared the first time the screen is shown.
func (v *QuoteView) Init() tea.Cmd {
	if v.appeared {
		return nil
	}
	v.appeared = true
	return tea.Batch(v.sendIntent(viewmodel.ScreenAppeared), tickStatus())
}

func (v *QuoteView) sendIntent(in viewmodel.Input) tea.Cmd {
	intents := v.intents
	return func() tea.Msg {
		intents.Handle(in)
		return nil
	}
}

func tickStatus() tea.Cmd {
	return tea.Tick(statusTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update applies key presses, viewmodel outputs and timer ticks.
func (v *QuoteView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
		return v, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Refresh):
			// Matches is false while the binding is disabled.
			return v, v.sendIntent(viewmodel.RefreshRequested)
		}
		return v, nil
	case OutputMsg:
		return v, v.apply(msg.Output)
	case spinner.TickMsg:
		if !v.pending {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tickMsg:
		return v, tickStatus()
	}
	return v, nil
}

func (v *QuoteView) apply(out viewmodel.Output) tea.Cmd {
	switch out := out.(type) {
	case viewmodel.FetchFailed:
		v.label = out.Description
		v.labelIsError = true
		v.pending = false
	case viewmodel.FetchSucceeded:
		v.label = out.Quote.Content
		v.labelIsError = false
		v.updatedAt = v.now()
	case viewmodel.SetRefreshEnabled:
		v.refreshEnabled = out.Enabled
		v.keys.Refresh.SetEnabled(out.Enabled)
		wasPending := v.pending
		v.pending = !out.Enabled
		if v.pending && !wasPending {
			return v.spinner.Tick
		}
	}
	return nil
}

// View renders the screen.
func (v *QuoteView) View() string {
	var b strings.Builder

	b.WriteString(Styles.Title.Render("quotes"))
	b.WriteString("\n")

	boxWidth := min(max(v.width-4, 20), maxBoxWidth)
	labelStyle := Styles.Quote
	if v.labelIsError {
		labelStyle = Styles.Error
	}
	label := v.label
	if label == "" {
		label = " "
	}
	b.WriteString(Styles.Box.Width(boxWidth).Render(labelStyle.Render(label)))
	b.WriteString("\n")

	button := Styles.Button.Render("[ Refresh ]")
	if !v.refreshEnabled {
		button = Styles.ButtonDisabled.Render("[ Refresh ]")
	}
	row := []string{button}
	if v.pending {
		row = append(row, " ", v.spinner.View(), Styles.Status.Render(" fetching"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, row...))
	b.WriteString("\n")

	if !v.updatedAt.IsZero() {
		b.WriteString(Styles.Status.Render("updated " + humanize.RelTime(v.updatedAt, v.now(), "ago", "from now")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.help.View(v.keys))
	return b.String()
}
