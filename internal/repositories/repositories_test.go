package repositories_test

import (
	"errors"
	"testing"

	"coursedeck/internal/models"
	"coursedeck/internal/repositories"
	"coursedeck/internal/shared"
)

func setupRepo(t *testing.T) *repositories.CourseRepository {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return repositories.NewCourseRepository(db)
}

func sampleCourse() models.Course {
	return models.Course{
		Title:       "Go Basics",
		Category:    models.Visual,
		SubCategory: "Programming",
		ShortIntro:  "An introduction to Go.",
		Skills:      "Go, Testing",
		URL:         "https://example.com/go-basics",
	}
}

func TestSave(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		repo := setupRepo(t)
		want := sampleCourse()

		if err := repo.Save(want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := repo.GetByTitle("Go Basics")
		if err != nil {
			t.Fatalf("GetByTitle failed: %v", err)
		}
		if *got != want {
			t.Errorf("Expected %+v, got %+v", want, *got)
		}
	})

	t.Run("Upsert Refreshes Existing Row", func(t *testing.T) {
		repo := setupRepo(t)

		if err := repo.Save(sampleCourse()); err != nil {
			t.Fatal(err)
		}

		updated := sampleCourse()
		updated.ShortIntro = "Revised introduction."
		if err := repo.Save(updated); err != nil {
			t.Fatalf("Second save failed: %v", err)
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("Expected 1 row after upsert, got %d", count)
		}

		got, err := repo.GetByTitle("Go Basics")
		if err != nil {
			t.Fatal(err)
		}
		if got.ShortIntro != "Revised introduction." {
			t.Errorf("Expected refreshed intro, got %q", got.ShortIntro)
		}
	})

	t.Run("Rejects Missing Title", func(t *testing.T) {
		repo := setupRepo(t)
		err := repo.Save(models.Course{Category: models.Visual})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestSaveAll(t *testing.T) {
	t.Run("Batch Insert", func(t *testing.T) {
		repo := setupRepo(t)

		courses := []models.Course{
			{Title: "Go Basics", Category: models.Visual},
			{Title: "SQL Deep Dive", Category: models.Auditory},
			{Title: "Hands-on Testing", Category: models.Kinesthetic},
		}
		saved, err := repo.SaveAll(courses)
		if err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}
		if saved != 3 {
			t.Errorf("Expected 3 saved, got %d", saved)
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatal(err)
		}
		if count != 3 {
			t.Errorf("Expected 3 rows, got %d", count)
		}
	})

	t.Run("Skips Untitled Entries", func(t *testing.T) {
		repo := setupRepo(t)

		saved, err := repo.SaveAll([]models.Course{
			{Title: "Go Basics", Category: models.Visual},
			{Category: models.General},
		})
		if err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}
		if saved != 1 {
			t.Errorf("Expected 1 saved, got %d", saved)
		}
	})

	t.Run("Deduplicates By Title", func(t *testing.T) {
		repo := setupRepo(t)

		if _, err := repo.SaveAll([]models.Course{sampleCourse()}); err != nil {
			t.Fatal(err)
		}
		if _, err := repo.SaveAll([]models.Course{sampleCourse()}); err != nil {
			t.Fatal(err)
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("Expected 1 row, got %d", count)
		}
	})
}

func TestGetByTitle(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByTitle("No Such Course")
	if !errors.Is(err, shared.ErrCourseNotFound) {
		t.Errorf("Expected ErrCourseNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	t.Run("Empty Cache", func(t *testing.T) {
		repo := setupRepo(t)
		courses, err := repo.List(10)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(courses) != 0 {
			t.Errorf("Expected empty list, got %d", len(courses))
		}
	})

	t.Run("Respects Limit", func(t *testing.T) {
		repo := setupRepo(t)
		if _, err := repo.SaveAll([]models.Course{
			{Title: "A", Category: models.Visual},
			{Title: "B", Category: models.Visual},
			{Title: "C", Category: models.Visual},
		}); err != nil {
			t.Fatal(err)
		}

		courses, err := repo.List(2)
		if err != nil {
			t.Fatal(err)
		}
		if len(courses) != 2 {
			t.Errorf("Expected 2 courses, got %d", len(courses))
		}
	})

	t.Run("By Category", func(t *testing.T) {
		repo := setupRepo(t)
		if _, err := repo.SaveAll([]models.Course{
			{Title: "Go Basics", Category: models.Visual},
			{Title: "Podcasting", Category: models.Auditory},
			{Title: "Diagrams", Category: models.Visual},
		}); err != nil {
			t.Fatal(err)
		}

		courses, err := repo.ListByCategory(models.Visual, 10)
		if err != nil {
			t.Fatalf("ListByCategory failed: %v", err)
		}
		if len(courses) != 2 {
			t.Fatalf("Expected 2 visual courses, got %d", len(courses))
		}
		for _, course := range courses {
			if course.Category != models.Visual {
				t.Errorf("Expected Visual, got %q", course.Category)
			}
		}
	})
}

func TestClear(t *testing.T) {
	repo := setupRepo(t)

	if _, err := repo.SaveAll([]models.Course{
		{Title: "A", Category: models.Visual},
		{Title: "B", Category: models.Auditory},
	}); err != nil {
		t.Fatal(err)
	}

	deleted, err := repo.Clear()
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 deleted, got %d", deleted)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Expected empty cache, got %d rows", count)
	}
}
