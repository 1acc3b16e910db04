// package models defines the data model for the course dashboard client
package models

import "fmt"

// Category is one of the four VAKG learning styles used for search
// filtering and progress bucketing.
type Category string

const (
	Visual      Category = "Visual"
	Auditory    Category = "Auditory"
	Kinesthetic Category = "Kinesthetic"
	General     Category = "General"
)

// Categories lists every VAKG category in display order.
func Categories() []Category {
	return []Category{Visual, Auditory, Kinesthetic, General}
}

// Valid reports whether c is one of the four VAKG categories.
func (c Category) Valid() bool {
	switch c {
	case Visual, Auditory, Kinesthetic, General:
		return true
	}
	return false
}

// Course represents a catalogue entry as the backend serves it.
// Field names follow the backend's wire format.
type Course struct {
	Title       string   `json:"Title"`
	Category    Category `json:"Category"`
	SubCategory string   `json:"Sub_Category,omitempty"`
	ShortIntro  string   `json:"short_intro"`
	Skills      string   `json:"Skills,omitempty"`
	URL         string   `json:"URL,omitempty"`
}

// Course completion statuses.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// EnrolledCourse is a course in the learner's enrolled list, annotated with
// completion state.
type EnrolledCourse struct {
	Course
	Status          string `json:"status,omitempty"`
	Progress        int    `json:"progress,omitempty"`
	CertificateLink string `json:"certificate_link,omitempty"`
}

// Completed reports whether the course has been marked completed.
func (e EnrolledCourse) Completed() bool {
	return e.Status == StatusCompleted
}

// UserInfo is the GET /user-info response.
type UserInfo struct {
	Username        string           `json:"username"`
	EnrolledCourses []EnrolledCourse `json:"enrolled_courses"`
}

// Profile is the GET /profile response.
type Profile struct {
	Username        string           `json:"username"`
	Email           string           `json:"email"`
	EnrolledCourses []EnrolledCourse `json:"enrolled_courses"`
}

// Split partitions enrolled courses into ongoing and completed. Courses
// without a status count as ongoing.
func (p Profile) Split() (ongoing, completed []EnrolledCourse) {
	for _, c := range p.EnrolledCourses {
		if c.Completed() {
			completed = append(completed, c)
		} else {
			ongoing = append(ongoing, c)
		}
	}
	return ongoing, completed
}

// ProgressReport maps each learning style to a numeric progress count,
// matching the GET /progress response shape.
type ProgressReport struct {
	Visual      int `json:"Visual"`
	Auditory    int `json:"Auditory"`
	Kinesthetic int `json:"Kinesthetic"`
	General     int `json:"General"`
}

// Count returns the progress value for the given category.
func (p ProgressReport) Count(c Category) int {
	switch c {
	case Visual:
		return p.Visual
	case Auditory:
		return p.Auditory
	case Kinesthetic:
		return p.Kinesthetic
	case General:
		return p.General
	}
	return 0
}

// Total sums progress across all categories.
func (p ProgressReport) Total() int {
	return p.Visual + p.Auditory + p.Kinesthetic + p.General
}

// TallyCategories builds a ProgressReport by counting the category of each
// enrolled course, the same bucketing the profile chart renders.
func TallyCategories(courses []EnrolledCourse) ProgressReport {
	var report ProgressReport
	for _, c := range courses {
		switch c.Category {
		case Visual:
			report.Visual++
		case Auditory:
			report.Auditory++
		case Kinesthetic:
			report.Kinesthetic++
		case General:
			report.General++
		}
	}
	return report
}

// SearchPage is one page of the GET /search response.
type SearchPage struct {
	Courses     []Course `json:"courses"`
	TotalPages  int      `json:"total_pages"`
	CurrentPage int      `json:"current_page"`
}

// QuestionnaireAnswers carries the four required answers for
// POST /questionnaire-recommend.
type QuestionnaireAnswers struct {
	EducationLevel string `json:"education_level"`
	Domain         string `json:"domain"`
	KnowledgeLevel string `json:"knowledge_level"`
	LearningStyle  string `json:"learning_style"`
}

// Complete reports whether all four answers have been provided.
func (q QuestionnaireAnswers) Complete() bool {
	return q.EducationLevel != "" && q.Domain != "" && q.KnowledgeLevel != "" && q.LearningStyle != ""
}

// Validate checks each provided answer against its option set.
func (q QuestionnaireAnswers) Validate() error {
	if !q.Complete() {
		return fmt.Errorf("all four answers are required")
	}
	if !contains(EducationLevels(), q.EducationLevel) {
		return fmt.Errorf("unknown education level %q", q.EducationLevel)
	}
	if !contains(Domains(), q.Domain) {
		return fmt.Errorf("unknown domain %q", q.Domain)
	}
	if !contains(KnowledgeLevels(), q.KnowledgeLevel) {
		return fmt.Errorf("unknown knowledge level %q", q.KnowledgeLevel)
	}
	if !Category(q.LearningStyle).Valid() {
		return fmt.Errorf("unknown learning style %q", q.LearningStyle)
	}
	return nil
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
