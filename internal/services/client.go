// Course backend implementation of [API]
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"coursedeck/internal/models"
	"coursedeck/internal/shared"
)

const defaultBaseURL = "http://localhost:5000"

// TokenFunc returns the current auth token, or the empty string when no
// session exists. The client reads it before every authenticated request,
// so token writes by login/logout are picked up without rebuilding the
// client.
type TokenFunc func() string

// StatusError is a non-2xx backend response. Message carries the backend's
// own error text when the body was a {"error": ...} payload, so validation
// failures can be surfaced to the user verbatim.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// IsUnauthorized reports whether err is a 401 response. This is the one
// error class the session controller recovers from automatically.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusUnauthorized
}

// tokenSource adapts a [TokenFunc] to [oauth2.TokenSource] so the oauth2
// transport injects the bearer header. Used without ReuseTokenSource
// caching: the token must be re-read on every request.
type tokenSource struct {
	current TokenFunc
}

func (t tokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: t.current()}, nil
}

// Client implements [API] against the course backend.
type Client struct {
	baseURL string
	token   TokenFunc
	plain   *http.Client
	authed  *http.Client
	limiter *rate.Limiter
}

var _ API = (*Client)(nil)

// NewClient creates a course backend client. The base HTTP client is
// optional and defaults to [http.DefaultClient]; authenticated requests go
// through an [oauth2.Transport] layered on top of it.
func NewClient(baseURL string, token TokenFunc, base *http.Client) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if token == nil {
		token = func() string { return "" }
	}
	if base == nil {
		base = http.DefaultClient
	}

	authed := &http.Client{
		Transport: &oauth2.Transport{
			Source: tokenSource{current: token},
			Base:   base.Transport,
		},
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		plain:   base,
		authed:  authed,
		limiter: rate.NewLimiter(rate.Limit(8), 8),
	}
}

func (c *Client) Name() string {
	return "course backend"
}

// doRequest performs one request against the backend. Authenticated calls
// short-circuit locally when no token is present.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body, result any, authed bool) error {
	if authed && c.token() == "" {
		return shared.ErrNotAuthenticated
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.plain
	if authed {
		httpClient = c.authed
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// responseError converts a non-2xx response into a [StatusError], pulling
// the backend's {"error": ...} message through when present.
func responseError(resp *http.Response) error {
	statusErr := &StatusError{Status: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return statusErr
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		statusErr.Message = payload.Error
	}

	return statusErr
}

// Login establishes a session via POST /login.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}

	var response struct {
		Token string `json:"token"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/login", payload, &response, false); err != nil {
		return "", err
	}
	if response.Token == "" {
		return "", fmt.Errorf("%w: no token in response", shared.ErrAuthFailed)
	}

	return response.Token, nil
}

// Register creates an account via POST /register.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	payload := map[string]string{"username": username, "email": email, "password": password}

	var response struct {
		Token string `json:"token"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/register", payload, &response, false); err != nil {
		return "", err
	}

	return response.Token, nil
}

// UserInfo retrieves username and enrolled courses via GET /user-info.
func (c *Client) UserInfo(ctx context.Context) (*models.UserInfo, error) {
	var info models.UserInfo
	if err := c.doRequest(ctx, http.MethodGet, "/user-info", nil, &info, true); err != nil {
		return nil, err
	}
	return &info, nil
}

// Progress retrieves per-category progress via GET /progress.
func (c *Client) Progress(ctx context.Context) (*models.ProgressReport, error) {
	var report models.ProgressReport
	if err := c.doRequest(ctx, http.MethodGet, "/progress", nil, &report, true); err != nil {
		return nil, err
	}
	return &report, nil
}

// Recommendations retrieves recommended courses via GET /recommend.
func (c *Client) Recommendations(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.doRequest(ctx, http.MethodGet, "/recommend", nil, &courses, true); err != nil {
		return nil, err
	}
	return courses, nil
}

// Search retrieves one result page via GET /search. Each selected category
// is sent as a repeated vakg parameter.
func (c *Client) Search(ctx context.Context, query string, page int, categories []models.Category) (*models.SearchPage, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	for _, category := range categories {
		params.Add("vakg", string(category))
	}

	var result models.SearchPage
	if err := c.doRequest(ctx, http.MethodGet, "/search?"+params.Encode(), nil, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// Enroll enrolls the learner via POST /enroll.
func (c *Client) Enroll(ctx context.Context, course models.Course) error {
	payload := map[string]models.Course{"course": course}
	return c.doRequest(ctx, http.MethodPost, "/enroll", payload, nil, true)
}

// QuestionnaireRecommend retrieves matches for questionnaire answers via
// POST /questionnaire-recommend.
func (c *Client) QuestionnaireRecommend(ctx context.Context, answers models.QuestionnaireAnswers) ([]models.Course, error) {
	var courses []models.Course
	if err := c.doRequest(ctx, http.MethodPost, "/questionnaire-recommend", answers, &courses, true); err != nil {
		return nil, err
	}
	return courses, nil
}

// Profile retrieves the full learner profile via GET /profile.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.doRequest(ctx, http.MethodGet, "/profile", nil, &profile, true); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CompleteCourse marks a course completed via POST /complete-course.
func (c *Client) CompleteCourse(ctx context.Context, title, certificateLink string) error {
	if title == "" || certificateLink == "" {
		return fmt.Errorf("%w: course title and certificate link are required", shared.ErrInvalidInput)
	}

	payload := map[string]string{
		"course_title":     title,
		"certificate_link": certificateLink,
	}
	return c.doRequest(ctx, http.MethodPost, "/complete-course", payload, nil, true)
}
