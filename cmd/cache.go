package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"coursedeck/internal/models"
	"coursedeck/internal/repositories"
	"coursedeck/internal/shared"
)

// CacheList prints recently cached courses without touching the
// backend.
func (r *Runner) CacheList(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewCourseRepository(db)

	var courses []models.Course
	if raw := cmd.String("category"); raw != "" {
		cat := models.Category(raw)
		if !cat.Valid() {
			return fmt.Errorf("%w: unknown category %q (expected one of %v)", shared.ErrInvalidFlag, raw, models.Categories())
		}
		courses, err = repo.ListByCategory(cat, limit)
	} else {
		courses, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(courses, cmd.Bool("pretty"))
	}

	if len(courses) == 0 {
		return r.writePlain("Cache is empty. Run a search to fill it.\n")
	}

	r.writeCourses(courses)
	return nil
}

// CacheClear deletes every cached course.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := repositories.NewCourseRepository(db).Clear()
	if err != nil {
		return err
	}

	return r.writePlain("✓ Removed %d cached courses\n", deleted)
}
