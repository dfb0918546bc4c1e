package models

import "time"

// SyncMode tells whether an orchestration run created a course or updated an existing one
type SyncMode string

const (
	SyncModeCreate SyncMode = "create"
	SyncModeUpdate SyncMode = "update"
)

// SyncStep is a coarse phase reported through progress callbacks
type SyncStep string

const (
	SyncStepMeta    SyncStep = "meta"
	SyncStepLessons SyncStep = "lessons"
	SyncStepCourse  SyncStep = "course"
)

// SyncStatus is the state of a SyncStep
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusDone    SyncStatus = "done"
	SyncStatusFailed  SyncStatus = "failed"
)

// LessonState classifies a desired lesson against the initial snapshot
type LessonState string

const (
	LessonStateNew      LessonState = "new"
	LessonStateExisting LessonState = "existing"
)

// QuizAction is the quiz call required for one lesson
type QuizAction string

const (
	QuizActionNone   QuizAction = "none"
	QuizActionCreate QuizAction = "create"
	QuizActionUpdate QuizAction = "update"
	QuizActionDelete QuizAction = "delete"
)

// LessonStep is the planned work for one desired lesson
type LessonStep struct {
	Lesson     Lesson      `json:"lesson"`
	State      LessonState `json:"state"`
	QuizAction QuizAction  `json:"quizAction"`
}

// LessonDeletion is a lesson present in the initial snapshot but absent from the desired one
type LessonDeletion struct {
	LessonID   ID   `json:"lessonId"`
	DeleteQuiz bool `json:"deleteQuiz"`
}

// LessonPlan is the diff between the initial and desired lesson lists
type LessonPlan struct {
	Steps     []LessonStep     `json:"steps"`
	Deletions []LessonDeletion `json:"deletions"`
}

// OperationKind is the kind of resource touched by an operation
type OperationKind string

const (
	OperationKindCourse    OperationKind = "course"
	OperationKindThumbnail OperationKind = "thumbnail"
	OperationKindLesson    OperationKind = "lesson"
	OperationKindQuiz      OperationKind = "quiz"
)

// OperationAction is the action performed on a resource
type OperationAction string

const (
	OperationActionCreate OperationAction = "create"
	OperationActionUpdate OperationAction = "update"
	OperationActionDelete OperationAction = "delete"
	OperationActionUpload OperationAction = "upload"
)

// SyncOperation records the outcome of one upstream call made during a run
type SyncOperation struct {
	Kind     OperationKind   `json:"kind"`
	Action   OperationAction `json:"action"`
	LessonID ID              `json:"lessonId,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Failed reports whether the operation failed
func (o SyncOperation) Failed() bool {
	return o.Error != ""
}

// SyncReport summarizes an orchestration run.
//
// A run that returned without error may still be partially converged: Failures
// counts the non-fatal operations that did not apply.
type SyncReport struct {
	CourseID   ID              `json:"courseId"`
	Mode       SyncMode        `json:"mode"`
	Operations []SyncOperation `json:"operations"`
	Failures   int             `json:"failures"`
	Converged  bool            `json:"converged"`
}

// Record appends an operation and keeps the failure counters current
func (r *SyncReport) Record(op SyncOperation) {
	r.Operations = append(r.Operations, op)
	if op.Failed() {
		r.Failures++
	}
	r.Converged = r.Failures == 0
}

// SyncRun is a persisted orchestration run
type SyncRun struct {
	ID         int64     `json:"id"`
	CourseID   ID        `json:"courseId"`
	Mode       SyncMode  `json:"mode"`
	Operations int       `json:"operations"`
	Failures   int       `json:"failures"`
	Converged  bool      `json:"converged"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SaveResponse is returned by the create and save endpoints
type SaveResponse struct {
	Course *Course     `json:"course"`
	Report *SyncReport `json:"report"`
}
