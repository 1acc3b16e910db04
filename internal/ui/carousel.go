package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coursedeck/internal/carousel"
	"coursedeck/internal/models"
)

// unitsPerCell scales terminal cell columns into the gesture units the
// engine's swipe threshold is expressed in, so a drag across roughly
// twenty cells clears the dead zone while a click on a card does not.
const unitsPerCell = 8

// AutoplayTickMsg advances one carousel on its autoplay interval.
type AutoplayTickMsg struct {
	ID         string
	Generation int
}

// Carousel drives a [carousel.Engine] inside the TUI: it schedules
// autoplay ticks, translates mouse drags into the engine's gesture
// sequence, and renders the visible window of cards.
//
// Every state change bumps the generation counter, which invalidates
// any tick already in flight. A tick carrying a stale generation is
// dropped, so a deck refresh or a manual advance never collides with a
// delayed autoplay message.
type Carousel struct {
	id         string
	title      string
	engine     *carousel.Engine
	interval   time.Duration
	generation int
	dragging   bool
	focused    bool
}

// NewCarousel creates a named carousel with an empty deck. A zero
// interval disables autoplay entirely.
func NewCarousel(id, title string, interval time.Duration, width int) *Carousel {
	return &Carousel{
		id:       id,
		title:    title,
		engine:   carousel.New(nil, width),
		interval: interval,
	}
}

// Engine exposes the underlying state machine, mainly for tests.
func (c *Carousel) Engine() *carousel.Engine { return c.engine }

// Generation returns the current tick generation.
func (c *Carousel) Generation() int { return c.generation }

// SetItems replaces the deck, rewinds to the first card, and restarts
// autoplay.
func (c *Carousel) SetItems(items []models.Course) tea.Cmd {
	c.engine.SetItems(items)
	return c.restart()
}

// Resize recomputes the visible window for a new terminal width. When
// the width crosses a breakpoint the pending tick is invalidated and a
// fresh one scheduled, so a deck that starts overflowing after a
// shrink picks up autoplay without waiting for the next refresh.
func (c *Carousel) Resize(width int) tea.Cmd {
	before := c.engine.Visible()
	c.engine.Resize(width)
	if c.engine.Visible() == before {
		return nil
	}
	return c.restart()
}

// SetFocus marks the carousel as the keyboard target.
func (c *Carousel) SetFocus(on bool) { c.focused = on }

// Current returns the course at the front of the window.
func (c *Carousel) Current() (models.Course, bool) {
	window := c.engine.Window()
	if len(window) == 0 {
		return models.Course{}, false
	}
	return window[0], true
}

// restart invalidates any scheduled tick and, when the deck overflows
// the window, schedules a fresh one.
func (c *Carousel) restart() tea.Cmd {
	c.generation++
	if c.interval <= 0 || !c.engine.CanScroll() {
		return nil
	}
	gen := c.generation
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return AutoplayTickMsg{ID: c.id, Generation: gen}
	})
}

// Start schedules the first autoplay tick.
func (c *Carousel) Start() tea.Cmd { return c.restart() }

// HandleTick advances the deck on an autoplay tick. Ticks addressed to
// other carousels or carrying an invalidated generation are ignored.
func (c *Carousel) HandleTick(msg AutoplayTickMsg) tea.Cmd {
	if msg.ID != c.id || msg.Generation != c.generation {
		return nil
	}
	c.engine.Next()
	return c.restart()
}

// Next advances manually and resets the autoplay timer, so the deck
// does not jump again right after a keypress.
func (c *Carousel) Next() tea.Cmd {
	c.engine.Next()
	return c.restart()
}

// Prev retreats manually and resets the autoplay timer.
func (c *Carousel) Prev() tea.Cmd {
	c.engine.Prev()
	return c.restart()
}

// HandleMouse translates a horizontal left-button drag into the
// engine's touch gesture. A plain click starts and ends at the same
// cell, stays inside the dead zone, and advances nothing.
func (c *Carousel) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			c.dragging = true
			c.engine.TouchStart(float64(msg.X * unitsPerCell))
		}
	case tea.MouseActionMotion:
		if c.dragging {
			c.engine.TouchMove(float64(msg.X * unitsPerCell))
		}
	case tea.MouseActionRelease:
		if !c.dragging {
			return nil
		}
		c.dragging = false
		if c.engine.TouchEnd() != 0 {
			return c.restart()
		}
	}
	return nil
}

// View renders the carousel title, the visible cards, and position
// indicators when the deck can scroll.
func (c *Carousel) View() string {
	heading := c.title
	if c.focused {
		heading = "» " + heading
	}
	title := styles.title.Render(heading)

	if c.engine.Empty() {
		return fmt.Sprintf("%s\n%s", title, styles.help.Render("Nothing here yet."))
	}

	cards := make([]string, 0, c.engine.Visible())
	for _, course := range c.engine.Window() {
		cards = append(cards, renderCard(course))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	if !c.engine.CanScroll() {
		return fmt.Sprintf("%s\n%s", title, row)
	}

	position := styles.help.Render(fmt.Sprintf("‹ %d/%d ›", c.engine.Index()+1, c.engine.Len()))
	return fmt.Sprintf("%s\n%s\n%s", title, row, position)
}

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Margin(0, 1).
	Width(28)

func renderCard(course models.Course) string {
	name := styles.ok.Render(truncate(course.Title, 26))
	category := styles.warn.Render(string(course.Category))
	intro := truncate(course.ShortIntro, 52)
	return cardStyle.Render(fmt.Sprintf("%s\n%s\n%s", name, category, intro))
}

// truncate shortens s to max characters. It counts runes rather than
// bytes so non-ASCII titles are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
