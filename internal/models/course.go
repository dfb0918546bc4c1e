package models

import "strings"

// Level represents the difficulty level of a course
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
)

// Course represents a course as returned by the upstream backend
type Course struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Level       Level    `json:"level"`
	Duration    int      `json:"duration"`
	Students    int      `json:"students"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	IsPublished bool     `json:"isPublished"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	Lessons     []Lesson `json:"lessons,omitempty"`
}

// CourseMetadata is the metadata-only subset of a course accepted by the
// upstream course endpoints. It never carries lessons.
type CourseMetadata struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Level       Level   `json:"level"`
	Duration    int     `json:"duration"`
	Students    int     `json:"students"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail"`
	Description string  `json:"description"`
	IsPublished bool    `json:"isPublished"`
}

// CourseDraft is the desired state of a course as edited in the dashboard
type CourseDraft struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Category    string   `json:"category" validate:"required,notblank"`
	Level       Level    `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Duration    int      `json:"duration" validate:"gte=0"`
	Students    int      `json:"students" validate:"gte=0"`
	Rating      float64  `json:"rating" validate:"gte=0"`
	Price       float64  `json:"price" validate:"gte=0"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	IsPublished bool     `json:"isPublished"`
	Lessons     []Lesson `json:"lessons" validate:"dive"`
}

// Metadata returns the metadata-only payload of the draft
func (d *CourseDraft) Metadata() CourseMetadata {
	return CourseMetadata{
		Title:       d.Title,
		Category:    d.Category,
		Level:       d.Level,
		Duration:    d.Duration,
		Students:    d.Students,
		Rating:      d.Rating,
		Price:       d.Price,
		Thumbnail:   d.Thumbnail,
		Description: d.Description,
		IsPublished: d.IsPublished,
	}
}

// Draft converts a loaded course into an editable draft
func (c *Course) Draft() *CourseDraft {
	lessons := make([]Lesson, len(c.Lessons))
	copy(lessons, c.Lessons)
	return &CourseDraft{
		Title:       c.Title,
		Category:    c.Category,
		Level:       c.Level,
		Duration:    c.Duration,
		Students:    c.Students,
		Rating:      c.Rating,
		Price:       c.Price,
		Thumbnail:   c.Thumbnail,
		Description: c.Description,
		IsPublished: c.IsPublished,
		Lessons:     lessons,
	}
}

// IsDataURL reports whether a thumbnail value is an inline base64 data URL
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, "data:")
}

// PublishRequest represents a request to toggle the publish flag of a course
type PublishRequest struct {
	IsPublished bool `json:"isPublished"`
}

// ImportResult represents the upstream response to a bulk import
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}
