package repositories

import (
	"context"
	"fmt"
	"net/url"

	"github.com/courseadmin/dashboard/internal/client"
	"github.com/courseadmin/dashboard/internal/models"
)

// lessonRepository implements lesson operations against the upstream API
type lessonRepository struct {
	client *client.Client
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(c *client.Client) *lessonRepository {
	return &lessonRepository{
		client: c,
	}
}

// GetByCourseID retrieves the lessons of a course
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID models.ID) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	if err := r.client.Get(ctx, coursePath(courseID)+"/lessons", &lessons); err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}
	return lessons, nil
}

// Create creates a lesson in a course and returns the backend assigned ID.
// The returned ID is empty when the response carries none.
func (r *lessonRepository) Create(ctx context.Context, courseID models.ID, lesson *models.LessonPayload) (models.ID, error) {
	var created struct {
		ID models.ID `json:"id"`
	}
	if err := r.client.Post(ctx, coursePath(courseID)+"/lessons", lesson, &created); err != nil {
		return "", fmt.Errorf("failed to create lesson: %w", err)
	}
	return created.ID, nil
}

// Update updates a lesson
func (r *lessonRepository) Update(ctx context.Context, lessonID models.ID, lesson *models.LessonPayload) error {
	if err := r.client.Patch(ctx, lessonPath(lessonID), lesson, nil); err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	return nil
}

// Delete deletes a lesson
func (r *lessonRepository) Delete(ctx context.Context, lessonID models.ID) error {
	if err := r.client.Delete(ctx, lessonPath(lessonID)); err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	return nil
}

func lessonPath(lessonID models.ID) string {
	return "/courses/lessons/" + url.PathEscape(lessonID.String())
}
