package repositories

import (
	"context"
	"fmt"

	"github.com/courseadmin/dashboard/internal/client"
	"github.com/courseadmin/dashboard/internal/models"
)

// quizRepository implements quiz operations against the upstream API.
// A lesson has at most one quiz, addressed through the lesson.
type quizRepository struct {
	client *client.Client
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(c *client.Client) *quizRepository {
	return &quizRepository{
		client: c,
	}
}

// Create creates the quiz of a lesson
func (r *quizRepository) Create(ctx context.Context, lessonID models.ID, quiz *models.Quiz) error {
	if err := r.client.Post(ctx, quizPath(lessonID), quiz, nil); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

// Update replaces the quiz of a lesson
func (r *quizRepository) Update(ctx context.Context, lessonID models.ID, quiz *models.Quiz) error {
	if err := r.client.Patch(ctx, quizPath(lessonID), quiz, nil); err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	return nil
}

// Delete deletes the quiz of a lesson
func (r *quizRepository) Delete(ctx context.Context, lessonID models.ID) error {
	if err := r.client.Delete(ctx, quizPath(lessonID)); err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	return nil
}

func quizPath(lessonID models.ID) string {
	return lessonPath(lessonID) + "/quiz"
}
