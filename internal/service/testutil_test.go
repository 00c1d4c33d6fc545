package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cinelog/internal/database"
	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// newTestDB opens a fresh in-memory store with the full schema applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func createTestUser(t *testing.T, db *sqlx.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		Salt:         "00112233aabbccdd",
		PasswordHash: "irrelevant",
	}
	if err := repository.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user %q: %v", username, err)
	}
	return user
}

func createTestMovie(t *testing.T, db *sqlx.DB, title string) *model.Movie {
	t.Helper()

	movie := &model.Movie{
		Title:     title,
		MediaType: model.MediaTypeMovie,
		Year:      2020,
		Runtime:   100,
	}
	if err := repository.NewMovieRepository(db).Create(context.Background(), movie); err != nil {
		t.Fatalf("failed to create test movie %q: %v", title, err)
	}
	return movie
}
