package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"coursedeck/internal/models"
)

func deck(n int) []models.Course {
	courses := make([]models.Course, n)
	for i := range courses {
		courses[i] = models.Course{Title: fmt.Sprintf("Course %d", i), Category: models.Visual}
	}
	return courses
}

// wide enough for a three-card window
const wide = 1200

func TestCarouselAutoplay(t *testing.T) {
	t.Run("Schedules When Deck Overflows", func(t *testing.T) {
		c := NewCarousel("test", "Test", 7*time.Second, wide)
		if cmd := c.SetItems(deck(6)); cmd == nil {
			t.Error("Expected a scheduled tick for an overflowing deck")
		}
	})

	t.Run("Idle When Everything Fits", func(t *testing.T) {
		c := NewCarousel("test", "Test", 7*time.Second, wide)
		if cmd := c.SetItems(deck(2)); cmd != nil {
			t.Error("Expected no tick when all cards are visible")
		}
	})

	t.Run("Idle When Disabled", func(t *testing.T) {
		c := NewCarousel("test", "Test", 0, wide)
		if cmd := c.SetItems(deck(6)); cmd != nil {
			t.Error("Expected no tick with autoplay disabled")
		}
	})

	t.Run("Current Tick Advances And Reschedules", func(t *testing.T) {
		c := NewCarousel("test", "Test", 7*time.Second, wide)
		c.SetItems(deck(6))

		cmd := c.HandleTick(AutoplayTickMsg{ID: "test", Generation: c.Generation()})
		if c.Engine().Index() != 1 {
			t.Errorf("Expected index 1 after tick, got %d", c.Engine().Index())
		}
		if cmd == nil {
			t.Error("Expected the next tick to be scheduled")
		}
	})

	t.Run("Stale Generation Dropped", func(t *testing.T) {
		c := NewCarousel("test", "Test", 7*time.Second, wide)
		c.SetItems(deck(6))

		stale := AutoplayTickMsg{ID: "test", Generation: c.Generation()}
		c.Next() // invalidates the scheduled tick

		if cmd := c.HandleTick(stale); cmd != nil {
			t.Error("Expected stale tick to be dropped")
		}
		if c.Engine().Index() != 1 {
			t.Errorf("Expected only the manual advance, got index %d", c.Engine().Index())
		}
	})

	t.Run("Other Carousel Tick Ignored", func(t *testing.T) {
		c := NewCarousel("enrolled", "Enrolled", 7*time.Second, wide)
		c.SetItems(deck(6))

		if cmd := c.HandleTick(AutoplayTickMsg{ID: "trending", Generation: c.Generation()}); cmd != nil {
			t.Error("Expected tick addressed elsewhere to be ignored")
		}
		if c.Engine().Index() != 0 {
			t.Errorf("Expected index unchanged, got %d", c.Engine().Index())
		}
	})

	t.Run("Deck Refresh Invalidates Pending Tick", func(t *testing.T) {
		c := NewCarousel("test", "Test", 7*time.Second, wide)
		c.SetItems(deck(6))

		pending := AutoplayTickMsg{ID: "test", Generation: c.Generation()}
		c.SetItems(deck(8))

		if cmd := c.HandleTick(pending); cmd != nil {
			t.Error("Expected pre-refresh tick to be dropped")
		}
		if c.Engine().Index() != 0 {
			t.Errorf("Expected fresh deck at index 0, got %d", c.Engine().Index())
		}
	})
}

func TestCarouselResize(t *testing.T) {
	t.Run("Overflow After Shrink Restarts Autoplay", func(t *testing.T) {
		c := NewCarousel("test", "Test", 7*time.Second, wide)
		if cmd := c.SetItems(deck(3)); cmd != nil {
			t.Fatal("Three cards fit a three-card window, expected no tick")
		}
		gen := c.Generation()

		cmd := c.Resize(500) // single-card window, deck now overflows
		if !c.Engine().CanScroll() {
			t.Fatal("Expected the deck to overflow after the shrink")
		}
		if cmd == nil {
			t.Error("Expected a scheduled tick after the shrink")
		}
		if c.Generation() == gen {
			t.Error("Expected the resize to invalidate any pending tick")
		}
	})

	t.Run("Same Breakpoint Keeps Timer", func(t *testing.T) {
		c := NewCarousel("test", "Test", 7*time.Second, wide)
		c.SetItems(deck(6))
		gen := c.Generation()

		if cmd := c.Resize(wide + 100); cmd != nil {
			t.Error("Expected no restart when the window size is unchanged")
		}
		if c.Generation() != gen {
			t.Error("Expected the scheduled tick left alone")
		}
	})

	t.Run("Grow Until Everything Fits Stops Autoplay", func(t *testing.T) {
		c := NewCarousel("test", "Test", 7*time.Second, 500)
		c.SetItems(deck(3))
		pending := AutoplayTickMsg{ID: "test", Generation: c.Generation()}

		if cmd := c.Resize(wide); cmd != nil {
			t.Error("Expected no tick once all cards fit")
		}
		if cmd := c.HandleTick(pending); cmd != nil {
			t.Error("Expected the pre-resize tick to be dropped")
		}
	})
}

func TestCarouselMouse(t *testing.T) {
	drag := func(c *Carousel, from, to int) {
		c.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: from})
		c.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion, X: to})
		c.HandleMouse(tea.MouseMsg{Action: tea.MouseActionRelease, X: to})
	}

	t.Run("Long Drag Advances", func(t *testing.T) {
		c := NewCarousel("test", "Test", 0, wide)
		c.SetItems(deck(6))

		drag(c, 40, 10)
		if c.Engine().Index() != 1 {
			t.Errorf("Expected leftward drag to advance, got index %d", c.Engine().Index())
		}
	})

	t.Run("Click Stays Put", func(t *testing.T) {
		c := NewCarousel("test", "Test", 0, wide)
		c.SetItems(deck(6))

		drag(c, 20, 20)
		if c.Engine().Index() != 0 {
			t.Errorf("Expected click to be inert, got index %d", c.Engine().Index())
		}
	})

	t.Run("Short Drag Stays Put", func(t *testing.T) {
		c := NewCarousel("test", "Test", 0, wide)
		c.SetItems(deck(6))

		drag(c, 20, 10)
		if c.Engine().Index() != 0 {
			t.Errorf("Expected short drag inside dead zone to be inert, got index %d", c.Engine().Index())
		}
	})

	t.Run("Release Without Press Ignored", func(t *testing.T) {
		c := NewCarousel("test", "Test", 0, wide)
		c.SetItems(deck(6))

		c.HandleMouse(tea.MouseMsg{Action: tea.MouseActionRelease, X: 500})
		if c.Engine().Index() != 0 {
			t.Errorf("Expected stray release to be inert, got index %d", c.Engine().Index())
		}
	})
}

func TestCarouselView(t *testing.T) {
	t.Run("Empty Deck Placeholder", func(t *testing.T) {
		c := NewCarousel("test", "Your Courses", 0, wide)
		view := c.View()
		if view == "" {
			t.Fatal("Expected placeholder output")
		}
	})

	t.Run("Deterministic For Same State", func(t *testing.T) {
		c := NewCarousel("test", "Test", 0, wide)
		c.SetItems(deck(6))
		if c.View() != c.View() {
			t.Error("Expected identical renders for identical state")
		}
	})

	t.Run("Focused Deck Marked", func(t *testing.T) {
		c := NewCarousel("test", "Test", 0, wide)
		c.SetItems(deck(2))
		c.SetFocus(true)
		if !strings.Contains(c.View(), "»") {
			t.Error("Expected the focus marker in the heading")
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Run("Counts Runes Not Bytes", func(t *testing.T) {
		title := strings.Repeat("日", 30)
		got := truncate(title, 10)
		if !utf8.ValidString(got) {
			t.Fatalf("Expected valid UTF-8, got %q", got)
		}
		if want := strings.Repeat("日", 7) + "..."; got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("Short Strings Pass Through", func(t *testing.T) {
		if got := truncate("Go Basics", 26); got != "Go Basics" {
			t.Errorf("Expected untouched string, got %q", got)
		}
	})
}
