// Package session owns authentication state and view routing. A
// Controller wraps a token [Store] and the backend API: it decides on
// startup whether the app boots authenticated, performs login, register
// and logout transitions, and demotes the session when the backend
// rejects its token.
package session

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"coursedeck/internal/models"
	"coursedeck/internal/services"
	"coursedeck/internal/shared"
)

// Controller is the single authority on whether the app is
// authenticated. All session mutations funnel through it so the token
// store and in-memory state never disagree.
type Controller struct {
	store  Store
	api    services.API
	logger *log.Logger

	authenticated bool
	username      string
	enrolled      []models.EnrolledCourse
	progress      models.ProgressReport
	recommended   []models.Course
}

// NewController creates a session controller backed by the given token
// store and API client.
func NewController(store Store, api services.API, logger *log.Logger) *Controller {
	return &Controller{store: store, api: api, logger: logger}
}

// Initialize reads the persisted token synchronously and reports
// whether the session starts authenticated. Callers issue the
// authenticated startup fetches only when it returns true; with no
// stored token the backend is never contacted.
func (c *Controller) Initialize() bool {
	c.authenticated = c.store.Current() != ""
	if c.authenticated {
		c.logger.Debug("restored persisted session")
	}
	return c.authenticated
}

// Authenticated reports the current session state.
func (c *Controller) Authenticated() bool { return c.authenticated }

// Token returns the persisted token for the current request. It is read
// from the store every call so a mid-session logout takes effect
// immediately.
func (c *Controller) Token() string { return c.store.Current() }

// Establish persists a freshly issued token and marks the session
// authenticated. It is the mutation half of a login: the token exchange
// can run anywhere, but Establish must be called on the goroutine that
// owns the controller. On failure the existing session, if any, is left
// untouched.
func (c *Controller) Establish(token string) error {
	if token == "" {
		return fmt.Errorf("%w: login response carried no token", shared.ErrAuthFailed)
	}
	if err := c.store.Save(token); err != nil {
		return err
	}
	c.authenticated = true
	return nil
}

// Login exchanges credentials for a token and persists it. On failure
// the backend's message is surfaced verbatim.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	token, err := c.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := c.Establish(token); err != nil {
		return err
	}
	c.logger.Info("logged in", "email", email)
	return nil
}

// Register creates an account. When the backend issues a token in the
// same response the session is logged in immediately and Register
// returns true; otherwise the caller should send the user to the login
// screen.
func (c *Controller) Register(ctx context.Context, username, email, password string) (bool, error) {
	token, err := c.api.Register(ctx, username, email, password)
	if err != nil {
		return false, err
	}
	if token == "" {
		c.logger.Info("registered, login required", "username", username)
		return false, nil
	}
	if err := c.Establish(token); err != nil {
		return false, err
	}
	c.username = username
	c.logger.Info("registered and logged in", "username", username)
	return true, nil
}

// Logout clears the persisted token and all per-user state. It is
// purely local: no backend call is made, so it succeeds even when the
// server is unreachable.
func (c *Controller) Logout() {
	if err := c.store.Clear(); err != nil {
		c.logger.Warn("failed to clear persisted token", "error", err)
	}
	c.authenticated = false
	c.username = ""
	c.enrolled = nil
	c.progress = models.ProgressReport{}
	c.recommended = nil
}

// HandleAuthError inspects a failed request. A 401 means the persisted
// token is no longer honored, so the session is torn down and true is
// returned; the caller shows a session-expired notice and routes to
// login. Every other error returns false and is reported in place,
// keeping the session intact.
func (c *Controller) HandleAuthError(err error) bool {
	if !services.IsUnauthorized(err) {
		return false
	}
	c.logger.Info("session rejected by backend, logging out")
	c.Logout()
	return true
}

// SetUserInfo records the outcome of the startup user-info fetch.
func (c *Controller) SetUserInfo(info *models.UserInfo) {
	c.username = info.Username
	c.enrolled = info.EnrolledCourses
}

// SetProgress records the outcome of the startup progress fetch.
func (c *Controller) SetProgress(report *models.ProgressReport) {
	c.progress = *report
}

// SetRecommendations records the outcome of the startup
// recommendations fetch.
func (c *Controller) SetRecommendations(courses []models.Course) {
	c.recommended = courses
}

// RecordEnrollment appends a freshly enrolled course to the local list
// without refetching user info.
func (c *Controller) RecordEnrollment(course models.Course) {
	c.enrolled = append(c.enrolled, models.EnrolledCourse{
		Course:   course,
		Status:   models.StatusOngoing,
		Progress: 0,
	})
}

func (c *Controller) Username() string                 { return c.username }
func (c *Controller) Enrolled() []models.EnrolledCourse { return c.enrolled }
func (c *Controller) Progress() models.ProgressReport  { return c.progress }
func (c *Controller) Recommendations() []models.Course { return c.recommended }
