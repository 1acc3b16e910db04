package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"coursedeck/internal/models"
	"coursedeck/internal/shared"
)

// CourseRepository caches catalogue entries in SQLite. Courses are
// keyed by title, matching the backend's own identifier for enrollment
// and completion, so re-seeing a course refreshes its row instead of
// duplicating it.
type CourseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new CourseRepository with the given database connection
func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Save upserts a single course into the cache.
func (r *CourseRepository) Save(course models.Course) error {
	if course.Title == "" {
		return fmt.Errorf("%w: course title is required", shared.ErrInvalidInput)
	}

	query := `
		INSERT INTO courses (id, title, category, sub_category, short_intro, skills, url, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			category = excluded.category,
			sub_category = excluded.sub_category,
			short_intro = excluded.short_intro,
			skills = excluded.skills,
			url = excluded.url,
			cached_at = excluded.cached_at
	`

	_, err := r.db.Exec(query,
		shared.GenerateID(),
		course.Title,
		string(course.Category),
		course.SubCategory,
		course.ShortIntro,
		course.Skills,
		course.URL,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to cache course: %w", err)
	}

	return nil
}

// SaveAll upserts a batch of courses in a single transaction. Entries
// without a title are skipped rather than failing the batch.
func (r *CourseRepository) SaveAll(courses []models.Course) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO courses (id, title, category, sub_category, short_intro, skills, url, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			category = excluded.category,
			sub_category = excluded.sub_category,
			short_intro = excluded.short_intro,
			skills = excluded.skills,
			url = excluded.url,
			cached_at = excluded.cached_at
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	saved := 0
	for _, course := range courses {
		if course.Title == "" {
			continue
		}
		if _, err := stmt.Exec(
			shared.GenerateID(),
			course.Title,
			string(course.Category),
			course.SubCategory,
			course.ShortIntro,
			course.Skills,
			course.URL,
			now,
		); err != nil {
			return 0, fmt.Errorf("failed to cache course %q: %w", course.Title, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}

// GetByTitle returns the cached course with the given title.
func (r *CourseRepository) GetByTitle(title string) (*models.Course, error) {
	query := `
		SELECT title, category, sub_category, short_intro, skills, url
		FROM courses
		WHERE title = ?
	`

	var course models.Course
	err := r.db.QueryRow(query, title).Scan(
		&course.Title,
		&course.Category,
		&course.SubCategory,
		&course.ShortIntro,
		&course.Skills,
		&course.URL,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrCourseNotFound, title)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return &course, nil
}

// List returns the most recently cached courses, newest first.
func (r *CourseRepository) List(limit int) ([]models.Course, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT title, category, sub_category, short_intro, skills, url
		FROM courses
		ORDER BY cached_at DESC, title ASC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.Title,
			&course.Category,
			&course.SubCategory,
			&course.ShortIntro,
			&course.Skills,
			&course.URL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}

	return courses, nil
}

// ListByCategory returns cached courses in the given category, newest
// first.
func (r *CourseRepository) ListByCategory(category models.Category, limit int) ([]models.Course, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT title, category, sub_category, short_intro, skills, url
		FROM courses
		WHERE category = ?
		ORDER BY cached_at DESC, title ASC
		LIMIT ?
	`

	rows, err := r.db.Query(query, string(category), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.Title,
			&course.Category,
			&course.SubCategory,
			&course.ShortIntro,
			&course.Skills,
			&course.URL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}

	return courses, nil
}

// Count returns the number of cached courses.
func (r *CourseRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// Clear removes every cached course and returns how many were deleted.
func (r *CourseRepository) Clear() (int, error) {
	result, err := r.db.Exec(`DELETE FROM courses`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return int(deleted), nil
}
