package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/courseadmin/dashboard/internal/client"
	"github.com/courseadmin/dashboard/internal/models"
)

// courseRepository implements course operations against the upstream API
type courseRepository struct {
	client *client.Client
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(c *client.Client) *courseRepository {
	return &courseRepository{
		client: c,
	}
}

// GetAll retrieves all courses
func (r *courseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	courses := []models.Course{}
	if err := r.client.Get(ctx, "/courses", &courses); err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}

// Count retrieves the total number of courses
func (r *courseRepository) Count(ctx context.Context) (int, error) {
	count, err := getCount(ctx, r.client, "/courses/count")
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// GetByID retrieves a course by ID, including its lessons when the backend embeds them
func (r *courseRepository) GetByID(ctx context.Context, id models.ID) (*models.Course, error) {
	var course models.Course
	if err := r.client.Get(ctx, coursePath(id), &course); err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course.ID.IsZero() {
		course.ID = id
	}
	return &course, nil
}

// Create creates a new course from a metadata-only payload
func (r *courseRepository) Create(ctx context.Context, metadata *models.CourseMetadata) (*models.Course, error) {
	var course models.Course
	if err := r.client.Post(ctx, "/courses", metadata, &course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return &course, nil
}

// CreateWithThumbnail creates a new course with the thumbnail attached as a multipart file.
// The metadata thumbnail value is not sent.
func (r *courseRepository) CreateWithThumbnail(ctx context.Context, metadata *models.CourseMetadata, thumbnail *models.UploadFile) (*models.Course, error) {
	fields := map[string]string{
		"title":       metadata.Title,
		"category":    metadata.Category,
		"level":       string(metadata.Level),
		"duration":    strconv.Itoa(metadata.Duration),
		"students":    strconv.Itoa(metadata.Students),
		"rating":      strconv.FormatFloat(metadata.Rating, 'f', -1, 64),
		"price":       strconv.FormatFloat(metadata.Price, 'f', -1, 64),
		"description": metadata.Description,
		"isPublished": strconv.FormatBool(metadata.IsPublished),
	}

	body, err := r.client.DoMultipart(ctx, http.MethodPost, "/courses", fields, map[string]*models.UploadFile{
		"thumbnail": thumbnail,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	var course models.Course
	if err := client.DecodeEnvelope(body, &course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return &course, nil
}

// Update updates the metadata of a course
func (r *courseRepository) Update(ctx context.Context, id models.ID, metadata *models.CourseMetadata) error {
	if err := r.client.Patch(ctx, coursePath(id), metadata, nil); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

// Delete deletes a course
func (r *courseRepository) Delete(ctx context.Context, id models.ID) error {
	if err := r.client.Delete(ctx, coursePath(id)); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// SetPublished sets the publish flag of a course and returns the updated course
func (r *courseRepository) SetPublished(ctx context.Context, id models.ID, published bool) (*models.Course, error) {
	var course models.Course
	if err := r.client.Patch(ctx, coursePath(id)+"/publish", &models.PublishRequest{IsPublished: published}, &course); err != nil {
		return nil, fmt.Errorf("failed to set publish flag: %w", err)
	}
	if course.ID.IsZero() {
		course.ID = id
		course.IsPublished = published
	}
	return &course, nil
}

// Import uploads a course import file
func (r *courseRepository) Import(ctx context.Context, file *models.UploadFile) (*models.ImportResult, error) {
	body, err := r.client.DoMultipart(ctx, http.MethodPost, "/courses/import", nil, map[string]*models.UploadFile{
		"file": file,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import courses: %w", err)
	}

	result := &models.ImportResult{}
	if err := client.DecodeEnvelope(body, result); err != nil {
		return nil, fmt.Errorf("failed to import courses: %w", err)
	}
	return result, nil
}

// UploadThumbnail uploads a course thumbnail and returns the URL under which it is served
func (r *courseRepository) UploadThumbnail(ctx context.Context, id models.ID, file *models.UploadFile) (string, error) {
	body, err := r.client.DoMultipart(ctx, http.MethodPost, coursePath(id)+"/thumbnail", nil, map[string]*models.UploadFile{
		"thumbnail": file,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	thumbnailURL, err := extractThumbnailURL(body)
	if err != nil {
		return "", fmt.Errorf("failed to upload thumbnail: %w", err)
	}
	return thumbnailURL, nil
}

// extractThumbnailURL finds the uploaded file URL in an upload response.
//
// Looked up in order: "thumbnail", "data.thumbnail", "secure_url", "data.secure_url",
// then the body itself when it is a JSON string or a bare URL.
func extractThumbnailURL(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("empty upload response")
	}

	if !json.Valid(trimmed) {
		raw := string(trimmed)
		if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
			return raw, nil
		}
		return "", fmt.Errorf("unrecognized upload response")
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	switch v := value.(type) {
	case string:
		if v != "" {
			return v, nil
		}
	case map[string]any:
		data, _ := v["data"].(map[string]any)
		candidates := []string{
			stringField(v, "thumbnail"),
			stringField(data, "thumbnail"),
			stringField(v, "secure_url"),
			stringField(data, "secure_url"),
		}
		if s, ok := v["data"].(string); ok {
			candidates = append(candidates, s)
		}
		for _, candidate := range candidates {
			if candidate != "" {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("no thumbnail url in upload response")
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func coursePath(id models.ID) string {
	return "/courses/" + url.PathEscape(id.String())
}
