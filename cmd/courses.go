package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"coursedeck/internal/models"
	"coursedeck/internal/repositories"
	"coursedeck/internal/shared"
)

// Search queries the catalogue and prints one result page. Fetched
// courses land in the local cache so `enroll` can resolve them later.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	page := cmd.Int("page")

	var categories []models.Category
	for _, raw := range cmd.StringSlice("category") {
		cat := models.Category(raw)
		if !cat.Valid() {
			return fmt.Errorf("%w: unknown category %q (expected one of %v)", shared.ErrInvalidFlag, raw, models.Categories())
		}
		categories = append(categories, cat)
	}

	result, err := r.api.Search(ctx, query, page, categories)
	if err != nil {
		return r.authFailed(err)
	}

	r.cacheCourses(result.Courses)

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	if len(result.Courses) == 0 {
		return r.writePlain("No courses found.\n")
	}

	r.writeCourses(result.Courses)
	return r.writePlainln("Page %d of %d", result.CurrentPage, result.TotalPages)
}

// Recommend prints the personalized recommendation rail.
func (r *Runner) Recommend(ctx context.Context, cmd *cli.Command) error {
	courses, err := r.api.Recommendations(ctx)
	if err != nil {
		return r.authFailed(err)
	}

	r.cacheCourses(courses)

	if cmd.Bool("json") {
		return r.writeJSON(courses, cmd.Bool("pretty"))
	}

	if len(courses) == 0 {
		return r.writePlain("No recommendations yet. Enroll in a few courses first.\n")
	}

	r.writeCourses(courses)
	return nil
}

// Questionnaire submits the four profile answers and prints the
// resulting recommendations.
func (r *Runner) Questionnaire(ctx context.Context, cmd *cli.Command) error {
	answers := models.QuestionnaireAnswers{
		EducationLevel: cmd.String("education"),
		Domain:         cmd.String("domain"),
		KnowledgeLevel: cmd.String("knowledge"),
		LearningStyle:  cmd.String("style"),
	}
	if err := answers.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	courses, err := r.api.QuestionnaireRecommend(ctx, answers)
	if err != nil {
		return r.authFailed(err)
	}

	r.cacheCourses(courses)

	if cmd.Bool("json") {
		return r.writeJSON(courses, cmd.Bool("pretty"))
	}

	if len(courses) == 0 {
		return r.writePlain("No matching courses.\n")
	}

	r.writeCourses(courses)
	return nil
}

// Enroll enrolls in a course by title. The full course payload comes
// from the local cache, so the course must have been seen by a prior
// search, recommend or questionnaire run.
func (r *Runner) Enroll(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: course title is required", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	course, err := repositories.NewCourseRepository(db).GetByTitle(title)
	if err != nil {
		return fmt.Errorf("%w (run a search first so the course is cached)", err)
	}

	if err := r.api.Enroll(ctx, *course); err != nil {
		return r.authFailed(err)
	}

	return r.writePlain("✓ Enrolled in %s\n", course.Title)
}

// Progress prints progress per learning style.
func (r *Runner) Progress(ctx context.Context, cmd *cli.Command) error {
	report, err := r.api.Progress(ctx)
	if err != nil {
		return r.authFailed(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(report, cmd.Bool("pretty"))
	}

	for _, cat := range models.Categories() {
		r.writePlain("%-12s %d\n", cat, report.Count(cat))
	}
	return r.writePlainln("Total: %d", report.Total())
}
