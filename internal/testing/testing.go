// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"coursedeck/internal/models"
)

// MockAPI is a configurable test double for [services.API]. Zero values
// answer every call successfully with empty data; set the function fields
// or Err to script behavior. Calls records method names in order.
type MockAPI struct {
	Err   error
	Calls []string

	LoginFunc         func(email, password string) (string, error)
	RegisterFunc      func(username, email, password string) (string, error)
	UserInfoFunc      func() (*models.UserInfo, error)
	ProgressFunc      func() (*models.ProgressReport, error)
	RecommendFunc     func() ([]models.Course, error)
	SearchFunc        func(query string, page int, categories []models.Category) (*models.SearchPage, error)
	EnrollFunc        func(course models.Course) error
	QuestionnaireFunc func(answers models.QuestionnaireAnswers) ([]models.Course, error)
	ProfileFunc       func() (*models.Profile, error)
	CompleteFunc      func(title, link string) error
}

func (m *MockAPI) record(name string) {
	m.Calls = append(m.Calls, name)
}

func (m *MockAPI) Login(ctx context.Context, email, password string) (string, error) {
	m.record("Login")
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return "test-token", m.Err
}

func (m *MockAPI) Register(ctx context.Context, username, email, password string) (string, error) {
	m.record("Register")
	if m.RegisterFunc != nil {
		return m.RegisterFunc(username, email, password)
	}
	return "test-token", m.Err
}

func (m *MockAPI) UserInfo(ctx context.Context) (*models.UserInfo, error) {
	m.record("UserInfo")
	if m.UserInfoFunc != nil {
		return m.UserInfoFunc()
	}
	return &models.UserInfo{}, m.Err
}

func (m *MockAPI) Progress(ctx context.Context) (*models.ProgressReport, error) {
	m.record("Progress")
	if m.ProgressFunc != nil {
		return m.ProgressFunc()
	}
	return &models.ProgressReport{}, m.Err
}

func (m *MockAPI) Recommendations(ctx context.Context) ([]models.Course, error) {
	m.record("Recommendations")
	if m.RecommendFunc != nil {
		return m.RecommendFunc()
	}
	return nil, m.Err
}

func (m *MockAPI) Search(ctx context.Context, query string, page int, categories []models.Category) (*models.SearchPage, error) {
	m.record("Search")
	if m.SearchFunc != nil {
		return m.SearchFunc(query, page, categories)
	}
	return &models.SearchPage{CurrentPage: page, TotalPages: 1}, m.Err
}

func (m *MockAPI) Enroll(ctx context.Context, course models.Course) error {
	m.record("Enroll")
	if m.EnrollFunc != nil {
		return m.EnrollFunc(course)
	}
	return m.Err
}

func (m *MockAPI) QuestionnaireRecommend(ctx context.Context, answers models.QuestionnaireAnswers) ([]models.Course, error) {
	m.record("QuestionnaireRecommend")
	if m.QuestionnaireFunc != nil {
		return m.QuestionnaireFunc(answers)
	}
	return nil, m.Err
}

func (m *MockAPI) Profile(ctx context.Context) (*models.Profile, error) {
	m.record("Profile")
	if m.ProfileFunc != nil {
		return m.ProfileFunc()
	}
	return &models.Profile{}, m.Err
}

func (m *MockAPI) CompleteCourse(ctx context.Context, title, link string) error {
	m.record("CompleteCourse")
	if m.CompleteFunc != nil {
		return m.CompleteFunc(title, link)
	}
	return m.Err
}

func (m *MockAPI) Name() string { return "mock" }

// Called reports whether the named method was invoked.
func (m *MockAPI) Called(name string) bool {
	for _, call := range m.Calls {
		if call == name {
			return true
		}
	}
	return false
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertFileMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
