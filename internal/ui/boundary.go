package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Boundary wraps a [tea.Model] and recovers panics raised by its Init,
// Update or View. The first panic freezes the wrapped model and swaps
// the display for a static apology, so a rendering bug degrades one
// session instead of crashing the terminal with half-drawn output.
type Boundary struct {
	inner  tea.Model
	logger *log.Logger
	failed bool
	reason any
}

var _ tea.Model = (*Boundary)(nil)

// NewBoundary wraps a model in a panic boundary.
func NewBoundary(inner tea.Model, logger *log.Logger) *Boundary {
	return &Boundary{inner: inner, logger: logger}
}

// Failed reports whether the wrapped model has panicked.
func (b *Boundary) Failed() bool { return b.failed }

func (b *Boundary) fail(reason any) {
	b.failed = true
	b.reason = reason
	b.logger.Error("view crashed", "panic", reason)
}

func (b *Boundary) Init() (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			b.fail(r)
			cmd = nil
		}
	}()
	return b.inner.Init()
}

func (b *Boundary) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	if b.failed {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "ctrl+c":
				return b, tea.Quit
			}
		}
		return b, nil
	}

	defer func() {
		if r := recover(); r != nil {
			b.fail(r)
			model, cmd = b, nil
		}
	}()

	inner, cmd := b.inner.Update(msg)
	b.inner = inner
	return b, cmd
}

func (b *Boundary) View() (view string) {
	if b.failed {
		return b.crashView()
	}

	defer func() {
		if r := recover(); r != nil {
			b.fail(r)
			view = b.crashView()
		}
	}()

	return b.inner.View()
}

func (b *Boundary) crashView() string {
	title := styles.err.Render("Something went wrong.")
	detail := styles.help.Render(fmt.Sprintf("%v", b.reason))
	hint := styles.help.Render("Press q to quit.")
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", title, detail, hint)
}
