package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursedeck/internal/models"
	"coursedeck/internal/shared"
	tu "coursedeck/internal/testing"
)

func staticToken(token string) TokenFunc {
	return func() string { return token }
}

func TestClient(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Empty BaseURL", func(t *testing.T) {
			c := NewClient("", nil, nil)
			if c.baseURL != defaultBaseURL {
				t.Errorf("expected default baseURL %s, got %s", defaultBaseURL, c.baseURL)
			}
		})

		t.Run("With Nil Token Func", func(t *testing.T) {
			c := NewClient("http://example.com", nil, nil)
			if c.token() != "" {
				t.Error("expected empty token from default token func")
			}
		})
	})

	t.Run("Login", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/login" {
					t.Errorf("expected POST /login, got %s %s", r.Method, r.URL.Path)
				}

				var payload map[string]string
				if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
					t.Fatalf("failed to decode login payload: %v", err)
				}
				if payload["email"] != "dana@example.com" || payload["password"] != "hunter2" {
					t.Errorf("unexpected payload: %v", payload)
				}

				json.NewEncoder(w).Encode(map[string]string{"token": "jwt-abc"})
			}))
			defer server.Close()

			c := NewClient(server.URL, nil, nil)
			token, err := c.Login(context.Background(), "dana@example.com", "hunter2")
			if err != nil {
				t.Fatalf("expected login to succeed, got %v", err)
			}
			if token != "jwt-abc" {
				t.Errorf("expected token 'jwt-abc', got %s", token)
			}
		})

		t.Run("Invalid Credentials Surface Server Message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			}))
			defer server.Close()

			c := NewClient(server.URL, nil, nil)
			_, err := c.Login(context.Background(), "dana@example.com", "wrong")
			if err == nil {
				t.Fatal("expected login error")
			}

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected StatusError, got %T", err)
			}
			if statusErr.Message != "Invalid credentials" {
				t.Errorf("expected server message to surface verbatim, got %q", statusErr.Message)
			}
		})

		t.Run("No Token In Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{})
			}))
			defer server.Close()

			c := NewClient(server.URL, nil, nil)
			if _, err := c.Login(context.Background(), "a@b.c", "p"); !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})
	})

	t.Run("Register", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]string
			json.NewDecoder(r.Body).Decode(&payload)
			if payload["username"] != "dana" {
				t.Errorf("expected username in payload, got %v", payload)
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"token": "jwt-new"})
		}))
		defer server.Close()

		c := NewClient(server.URL, nil, nil)
		token, err := c.Register(context.Background(), "dana", "dana@example.com", "hunter2")
		if err != nil {
			t.Fatalf("expected register to succeed, got %v", err)
		}
		if token != "jwt-new" {
			t.Errorf("expected token 'jwt-new', got %s", token)
		}
	})

	t.Run("Authenticated Requests", func(t *testing.T) {
		t.Run("Bearer Header Present", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer jwt-abc" {
					t.Errorf("expected bearer header, got %q", got)
				}
				json.NewEncoder(w).Encode(models.UserInfo{Username: "dana"})
			}))
			defer server.Close()

			c := NewClient(server.URL, staticToken("jwt-abc"), nil)
			info, err := c.UserInfo(context.Background())
			if err != nil {
				t.Fatalf("expected user info, got %v", err)
			}
			if info.Username != "dana" {
				t.Errorf("expected username 'dana', got %s", info.Username)
			}
		})

		t.Run("Missing Token Short-Circuits Locally", func(t *testing.T) {
			contacted := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				contacted = true
			}))
			defer server.Close()

			c := NewClient(server.URL, staticToken(""), nil)
			if _, err := c.UserInfo(context.Background()); !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
			if contacted {
				t.Error("expected no request to reach the backend without a token")
			}
		})

		t.Run("Fresh Token Read Per Request", func(t *testing.T) {
			var seen []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = append(seen, r.Header.Get("Authorization"))
				json.NewEncoder(w).Encode(models.ProgressReport{})
			}))
			defer server.Close()

			token := "first"
			c := NewClient(server.URL, func() string { return token }, nil)

			if _, err := c.Progress(context.Background()); err != nil {
				t.Fatalf("first request failed: %v", err)
			}
			token = "second"
			if _, err := c.Progress(context.Background()); err != nil {
				t.Fatalf("second request failed: %v", err)
			}

			if len(seen) != 2 || seen[0] != "Bearer first" || seen[1] != "Bearer second" {
				t.Errorf("expected per-request token reads, got %v", seen)
			}
		})

		t.Run("401 Identified As Unauthorized", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			c := NewClient(server.URL, staticToken("expired"), nil)
			_, err := c.Recommendations(context.Background())
			if !IsUnauthorized(err) {
				t.Errorf("expected IsUnauthorized for 401, got %v", err)
			}
		})

		t.Run("Non-401 Not Unauthorized", func(t *testing.T) {
			if IsUnauthorized(&StatusError{Status: http.StatusConflict}) {
				t.Error("409 must not classify as unauthorized")
			}
			if IsUnauthorized(errors.New("plain")) {
				t.Error("plain errors must not classify as unauthorized")
			}
		})
	})

	t.Run("Search", func(t *testing.T) {
		t.Run("Query Page And Repeated Categories", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("query") != "deep learning" {
					t.Errorf("expected query 'deep learning', got %q", q.Get("query"))
				}
				if q.Get("page") != "2" {
					t.Errorf("expected page 2, got %q", q.Get("page"))
				}
				if vakg := q["vakg"]; len(vakg) != 2 || vakg[0] != "Visual" || vakg[1] != "Auditory" {
					t.Errorf("expected repeated vakg params, got %v", vakg)
				}

				json.NewEncoder(w).Encode(models.SearchPage{
					Courses:     []models.Course{{Title: "Advanced Deep Learning", Category: models.Visual}},
					TotalPages:  3,
					CurrentPage: 2,
				})
			}))
			defer server.Close()

			c := NewClient(server.URL, staticToken("jwt"), nil)
			page, err := c.Search(context.Background(), "deep learning", 2, []models.Category{models.Visual, models.Auditory})
			if err != nil {
				t.Fatalf("expected search to succeed, got %v", err)
			}
			if page.TotalPages != 3 || page.CurrentPage != 2 {
				t.Errorf("unexpected pagination: %+v", page)
			}
			if len(page.Courses) != 1 {
				t.Errorf("expected 1 course, got %d", len(page.Courses))
			}
		})

		t.Run("Page Below One Clamped", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("page") != "1" {
					t.Errorf("expected page clamped to 1, got %q", r.URL.Query().Get("page"))
				}
				json.NewEncoder(w).Encode(models.SearchPage{TotalPages: 1, CurrentPage: 1})
			}))
			defer server.Close()

			c := NewClient(server.URL, staticToken("jwt"), nil)
			if _, err := c.Search(context.Background(), "", 0, nil); err != nil {
				t.Fatalf("expected search to succeed, got %v", err)
			}
		})
	})

	t.Run("Enroll", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload struct {
				Course models.Course `json:"course"`
			}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("failed to decode enroll payload: %v", err)
			}
			if payload.Course.Title != "Data Storytelling" {
				t.Errorf("expected wrapped course payload, got %+v", payload)
			}
			json.NewEncoder(w).Encode(map[string]string{"message": "Enrolled successfully"})
		}))
		defer server.Close()

		c := NewClient(server.URL, staticToken("jwt"), nil)
		err := c.Enroll(context.Background(), models.Course{Title: "Data Storytelling", Category: models.Auditory})
		if err != nil {
			t.Fatalf("expected enroll to succeed, got %v", err)
		}
	})

	t.Run("QuestionnaireRecommend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var answers models.QuestionnaireAnswers
			if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
				t.Fatalf("failed to decode answers: %v", err)
			}
			if answers.Domain != "Machine Learning" {
				t.Errorf("expected domain in payload, got %+v", answers)
			}
			json.NewEncoder(w).Encode([]models.Course{{Title: "Intro to ML", Category: models.Visual}})
		}))
		defer server.Close()

		c := NewClient(server.URL, staticToken("jwt"), nil)
		courses, err := c.QuestionnaireRecommend(context.Background(), models.QuestionnaireAnswers{
			EducationLevel: "Under graduate",
			Domain:         "Machine Learning",
			KnowledgeLevel: "Beginner",
			LearningStyle:  "Visual",
		})
		if err != nil {
			t.Fatalf("expected recommendations, got %v", err)
		}
		if len(courses) != 1 || courses[0].Title != "Intro to ML" {
			t.Errorf("unexpected courses: %+v", courses)
		}
	})

	t.Run("CompleteCourse", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var payload map[string]string
				json.NewDecoder(r.Body).Decode(&payload)
				if payload["course_title"] != "Intro to ML" || payload["certificate_link"] == "" {
					t.Errorf("unexpected payload: %v", payload)
				}
				json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
			}))
			defer server.Close()

			c := NewClient(server.URL, staticToken("jwt"), nil)
			if err := c.CompleteCourse(context.Background(), "Intro to ML", "https://example.com/cert"); err != nil {
				t.Fatalf("expected completion to succeed, got %v", err)
			}
		})

		t.Run("Missing Fields Rejected Locally", func(t *testing.T) {
			c := NewClient("http://example.invalid", staticToken("jwt"), nil)
			if err := c.CompleteCourse(context.Background(), "", "link"); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("Not Found Surfaces Server Message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "Course not found or already completed"})
			}))
			defer server.Close()

			c := NewClient(server.URL, staticToken("jwt"), nil)
			err := c.CompleteCourse(context.Background(), "Ghost Course", "link")
			if err == nil || !strings.Contains(err.Error(), "Course not found or already completed") {
				t.Errorf("expected verbatim server message, got %v", err)
			}
		})
	})

	t.Run("Transport Failure", func(t *testing.T) {
		base := &http.Client{
			Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused")),
		}

		c := NewClient("http://example.com", staticToken("jwt"), base)
		_, err := c.Profile(context.Background())
		if err == nil {
			t.Fatal("expected transport error")
		}
		if IsUnauthorized(err) {
			t.Error("transport errors must not classify as unauthorized")
		}
	})
}
