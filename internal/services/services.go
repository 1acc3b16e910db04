// package services defines interface API for the course backend
package services

import (
	"context"

	"coursedeck/internal/models"
)

// API defines the client surface for the course backend. Every method maps
// to exactly one endpoint; none retries or applies a timeout of its own.
type API interface {
	// Login establishes a session and returns the auth token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates an account. The returned token may be empty when the
	// backend does not auto-login the new account.
	Register(ctx context.Context, username, email, password string) (string, error)

	// UserInfo retrieves the learner's username and enrolled courses.
	UserInfo(ctx context.Context) (*models.UserInfo, error)

	// Progress retrieves per-category progress counts.
	Progress(ctx context.Context) (*models.ProgressReport, error)

	// Recommendations retrieves personalized course recommendations.
	Recommendations(ctx context.Context) ([]models.Course, error)

	// Search retrieves one page of courses matching the query and category
	// filters.
	Search(ctx context.Context, query string, page int, categories []models.Category) (*models.SearchPage, error)

	// Enroll enrolls the learner in a course.
	Enroll(ctx context.Context, course models.Course) error

	// QuestionnaireRecommend retrieves courses matching questionnaire
	// answers.
	QuestionnaireRecommend(ctx context.Context, answers models.QuestionnaireAnswers) ([]models.Course, error)

	// Profile retrieves the learner's full profile.
	Profile(ctx context.Context) (*models.Profile, error)

	// CompleteCourse marks an enrolled course completed with a certificate.
	CompleteCourse(ctx context.Context, title, certificateLink string) error

	// Name returns the name of the backend (for logs and output).
	Name() string
}
