package models

// Lesson represents a lesson in a course.
//
// QuizID is set by the backend when the lesson already has a quiz stored,
// while Quiz holds the quiz the editor wants the lesson to have (nil means no quiz).
type Lesson struct {
	ID        ID     `json:"id,omitempty"`
	CourseID  ID     `json:"courseId,omitempty"`
	Title     string `json:"title" validate:"required,notblank"`
	Order     int    `json:"order"`
	Duration  int    `json:"duration" validate:"gte=0"`
	IsPreview bool   `json:"isPreview"`
	Content   string `json:"content"`
	VideoURL  string `json:"videoUrl"`
	QuizID    ID     `json:"quizId,omitempty"`
	Quiz      *Quiz  `json:"quiz,omitempty" validate:"omitnil"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// HasStoredQuiz reports whether the backend already holds a quiz for the lesson
func (l *Lesson) HasStoredQuiz() bool {
	return !l.QuizID.IsZero()
}

// Payload returns the lesson-only payload sent to the lesson endpoints
func (l *Lesson) Payload() LessonPayload {
	return LessonPayload{
		Title:     l.Title,
		Order:     l.Order,
		Duration:  l.Duration,
		IsPreview: l.IsPreview,
		Content:   l.Content,
		VideoURL:  l.VideoURL,
	}
}

// LessonPayload is the body of lesson create and update requests
type LessonPayload struct {
	Title     string `json:"title"`
	Order     int    `json:"order"`
	Duration  int    `json:"duration"`
	IsPreview bool   `json:"isPreview"`
	Content   string `json:"content"`
	VideoURL  string `json:"videoUrl"`
}
