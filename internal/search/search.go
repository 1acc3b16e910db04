// Package search drives the course catalogue browser: a draft query
// the user is still typing, the committed query the current results
// belong to, category filters, and clamped pagination.
package search

import (
	"context"

	"coursedeck/internal/models"
	"coursedeck/internal/services"
)

// Controller tracks catalogue search state. The draft query is edited
// freely; results only change on an explicit [Controller.Submit] or a
// page move. Category toggles take effect on the next fetch rather
// than immediately, so flipping filters mid-typing never races the
// results on screen.
type Controller struct {
	api services.API

	draft      string
	committed  string
	categories map[models.Category]bool

	page       int
	totalPages int
	results    []models.Course
	searched   bool
}

// NewController creates a search controller with no filters and an
// empty query.
func NewController(api services.API) *Controller {
	return &Controller{
		api:        api,
		categories: make(map[models.Category]bool),
		page:       1,
	}
}

// SetQuery replaces the draft query. Results are untouched until the
// next Submit.
func (c *Controller) SetQuery(q string) {
	c.draft = q
}

// Query returns the draft query as currently edited.
func (c *Controller) Query() string { return c.draft }

// Committed returns the query the current results belong to.
func (c *Controller) Committed() string { return c.committed }

// ToggleCategory flips a filter and rewinds to page 1, since the page
// count for the old filter set no longer applies. No fetch happens
// here; the new filters apply on the next Submit or page move.
func (c *Controller) ToggleCategory(cat models.Category) {
	if !cat.Valid() {
		return
	}
	if c.categories[cat] {
		delete(c.categories, cat)
	} else {
		c.categories[cat] = true
	}
	c.page = 1
}

// Active reports whether the category filter is currently enabled.
func (c *Controller) Active(cat models.Category) bool {
	return c.categories[cat]
}

// Selected returns the enabled filters in catalogue order.
func (c *Controller) Selected() []models.Category {
	var out []models.Category
	for _, cat := range models.Categories() {
		if c.categories[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// Commit freezes the draft as the query the next fetch runs under.
func (c *Controller) Commit() { c.committed = c.draft }

// Apply installs one fetched page of results. Splitting the fetch from
// the mutation lets a caller run the request on a worker goroutine and
// apply the outcome back on the goroutine that owns the controller;
// nothing here touches the network.
func (c *Controller) Apply(page *models.SearchPage) {
	c.results = page.Courses
	c.totalPages = page.TotalPages
	c.page = page.CurrentPage
	if c.page < 1 {
		c.page = 1
	}
	c.searched = true
}

// Submit commits the draft query and fetches page 1 under the current
// filters. On error the previous results stay on screen.
func (c *Controller) Submit(ctx context.Context) error {
	c.Commit()
	return c.fetch(ctx, 1)
}

// NextPage fetches the following page of the committed query. It is a
// no-op on the last page; pagination never wraps.
func (c *Controller) NextPage(ctx context.Context) error {
	if !c.CanNext() {
		return nil
	}
	return c.fetch(ctx, c.page+1)
}

// PrevPage fetches the preceding page. It is a no-op on page 1.
func (c *Controller) PrevPage(ctx context.Context) error {
	if !c.CanPrev() {
		return nil
	}
	return c.fetch(ctx, c.page-1)
}

func (c *Controller) fetch(ctx context.Context, page int) error {
	result, err := c.api.Search(ctx, c.committed, page, c.Selected())
	if err != nil {
		return err
	}
	c.Apply(result)
	return nil
}

// CanNext reports whether a further page exists.
func (c *Controller) CanNext() bool {
	return c.searched && c.page < c.totalPages
}

// CanPrev reports whether an earlier page exists.
func (c *Controller) CanPrev() bool {
	return c.searched && c.page > 1
}

// Searched reports whether any search has completed yet, which is what
// separates "no results" from "nothing searched".
func (c *Controller) Searched() bool { return c.searched }

func (c *Controller) Results() []models.Course { return c.results }
func (c *Controller) Page() int                { return c.page }
func (c *Controller) TotalPages() int          { return c.totalPages }
