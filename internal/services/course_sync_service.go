package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// placeholderIDPrefix marks lesson ids generated locally for lessons the backend does not know yet
const placeholderIDPrefix = "tmp-"

// ErrCourseIDMissing is returned when the backend accepts a course creation but returns no id
var ErrCourseIDMissing = errors.New("course created but no ID returned")

// ProgressFunc receives coarse progress of a sync run.
// "message" is set for failures.
type ProgressFunc func(step models.SyncStep, status models.SyncStatus, message string)

// SyncCourseRepository defines the course writes needed to sync a course
type SyncCourseRepository interface {
	// Create creates a course from a metadata-only payload
	//
	// "ctx" is the context for the request.
	// "metadata" is the course metadata.
	//
	// Returns the created course and an error if any.
	Create(ctx context.Context, metadata *models.CourseMetadata) (*models.Course, error)
	// CreateWithThumbnail creates a course sending the thumbnail as a file
	//
	// "ctx" is the context for the request.
	// "metadata" is the course metadata.
	// "thumbnail" is the decoded thumbnail file.
	//
	// Returns the created course and an error if any.
	CreateWithThumbnail(ctx context.Context, metadata *models.CourseMetadata, thumbnail *models.UploadFile) (*models.Course, error)
	// Update updates the metadata of a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	// "metadata" is the course metadata.
	//
	// Returns an error if any.
	Update(ctx context.Context, id models.ID, metadata *models.CourseMetadata) error
	// UploadThumbnail uploads a thumbnail for a course
	//
	// "ctx" is the context for the request.
	// "id" is the ID of the course.
	// "file" is the thumbnail file.
	//
	// Returns the URL of the uploaded thumbnail and an error if any.
	UploadThumbnail(ctx context.Context, id models.ID, file *models.UploadFile) (string, error)
}

// SyncLessonRepository defines the lesson writes needed to sync a course
type SyncLessonRepository interface {
	// Create creates a lesson in a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "lesson" is the lesson payload.
	//
	// Returns the backend ID of the lesson (empty if the backend returned none) and an error if any.
	Create(ctx context.Context, courseID models.ID, lesson *models.LessonPayload) (models.ID, error)
	// Update updates a lesson
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	// "lesson" is the lesson payload.
	//
	// Returns an error if any.
	Update(ctx context.Context, lessonID models.ID, lesson *models.LessonPayload) error
	// Delete deletes a lesson
	//
	// "ctx" is the context for the request.
	// "lessonID" is the ID of the lesson.
	//
	// Returns an error if any.
	Delete(ctx context.Context, lessonID models.ID) error
}

// SyncQuizRepository defines the quiz writes needed to sync a course
type SyncQuizRepository interface {
	// Create creates the quiz of a lesson
	Create(ctx context.Context, lessonID models.ID, quiz *models.Quiz) error
	// Update replaces the quiz of a lesson
	Update(ctx context.Context, lessonID models.ID, quiz *models.Quiz) error
	// Delete deletes the quiz of a lesson
	Delete(ctx context.Context, lessonID models.ID) error
}

// SyncRunRepository defines methods for save history persistence
type SyncRunRepository interface {
	// Create persists a sync run
	//
	// "ctx" is the context for the request.
	// "run" is the run to persist, its ID is set on success.
	//
	// Returns an error if any.
	Create(ctx context.Context, run *models.SyncRun) error
	// GetRecentByCourse retrieves the latest runs of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	// "limit" is the maximum number of runs.
	//
	// Returns a list of runs, newest first, and an error if any.
	GetRecentByCourse(ctx context.Context, courseID models.ID, limit int) ([]models.SyncRun, error)
}

type courseSyncService struct {
	courses SyncCourseRepository
	lessons SyncLessonRepository
	quizzes SyncQuizRepository
	runs    SyncRunRepository
	logger  *zap.Logger
}

// NewCourseSyncService creates a new course sync service.
//
// "runs" may be nil, in which case runs are not recorded.
func NewCourseSyncService(
	courses SyncCourseRepository,
	lessons SyncLessonRepository,
	quizzes SyncQuizRepository,
	runs SyncRunRepository,
	logger *zap.Logger,
) *courseSyncService {
	return &courseSyncService{
		courses: courses,
		lessons: lessons,
		quizzes: quizzes,
		runs:    runs,
		logger:  logger,
	}
}

// PlanLessons diffs the initial lessons of a course against the desired ones.
//
// A desired lesson is existing iff its id is the id of an initial lesson. Its quiz
// action follows from whether the initial lesson has a stored quiz and whether the
// desired lesson carries one. Initial lessons whose id is absent from the desired
// lessons are deleted, together with their quiz when they have one.
func PlanLessons(initial, desired []models.Lesson) models.LessonPlan {
	initialByID := make(map[models.ID]models.Lesson, len(initial))
	for _, lesson := range initial {
		if !lesson.ID.IsZero() {
			initialByID[lesson.ID] = lesson
		}
	}

	plan := models.LessonPlan{
		Steps:     make([]models.LessonStep, 0, len(desired)),
		Deletions: []models.LessonDeletion{},
	}

	desiredIDs := make(map[models.ID]struct{}, len(desired))
	for _, lesson := range desired {
		if !lesson.ID.IsZero() {
			desiredIDs[lesson.ID] = struct{}{}
		}

		state := models.LessonStateNew
		hasInitialQuiz := false
		if stored, ok := initialByID[lesson.ID]; ok && !lesson.ID.IsZero() {
			state = models.LessonStateExisting
			hasInitialQuiz = stored.HasStoredQuiz()
		}

		plan.Steps = append(plan.Steps, models.LessonStep{
			Lesson:     lesson,
			State:      state,
			QuizAction: quizAction(hasInitialQuiz, lesson.Quiz != nil),
		})
	}

	seen := make(map[models.ID]struct{}, len(initialByID))
	for _, lesson := range initial {
		if lesson.ID.IsZero() {
			continue
		}
		if _, ok := seen[lesson.ID]; ok {
			continue
		}
		seen[lesson.ID] = struct{}{}

		if _, ok := desiredIDs[lesson.ID]; !ok {
			plan.Deletions = append(plan.Deletions, models.LessonDeletion{
				LessonID:   lesson.ID,
				DeleteQuiz: lesson.HasStoredQuiz(),
			})
		}
	}

	return plan
}

func quizAction(hasInitialQuiz, hasDesiredQuiz bool) models.QuizAction {
	switch {
	case hasDesiredQuiz && hasInitialQuiz:
		return models.QuizActionUpdate
	case hasDesiredQuiz:
		return models.QuizActionCreate
	case hasInitialQuiz:
		return models.QuizActionDelete
	default:
		return models.QuizActionNone
	}
}

// Update converges an existing course to the desired draft.
//
// "initial" must be the course as currently stored upstream, freshly fetched; lessons
// created by an earlier run are only recognized through it. A nil initial means no lessons.
//
// The returned error is set only when the metadata write failed; every other failure is
// recorded in the report and the run continues. The report is returned in both cases.
//
// A started run is not cancellable: cancellation of ctx is ignored, its values
// (the forwarded session) are kept.
func (s *courseSyncService) Update(ctx context.Context, courseID models.ID, desired *models.CourseDraft, initial *models.Course, onProgress ProgressFunc) (*models.SyncReport, error) {
	ctx = context.WithoutCancel(ctx)
	progress := progressOrNop(onProgress)
	report := &models.SyncReport{CourseID: courseID, Mode: models.SyncModeUpdate, Converged: true}
	log := s.logger.With(zap.String("course_id", courseID.String()), zap.String("mode", string(report.Mode)))

	progress(models.SyncStepCourse, models.SyncStatusPending, "")
	progress(models.SyncStepMeta, models.SyncStatusPending, "")

	metadata := desired.Metadata()
	s.resolveThumbnail(ctx, courseID, &metadata, report, log)

	if err := s.courses.Update(ctx, courseID, &metadata); err != nil {
		return report, s.fail(ctx, report, log, progress, models.OperationActionUpdate, fmt.Errorf("failed to update course metadata: %w", err))
	}
	report.Record(models.SyncOperation{Kind: models.OperationKindCourse, Action: models.OperationActionUpdate})
	progress(models.SyncStepMeta, models.SyncStatusDone, "")

	var initialLessons []models.Lesson
	if initial != nil {
		initialLessons = initial.Lessons
	}
	plan := PlanLessons(initialLessons, withPlaceholderIDs(desired.Lessons))
	s.applyPlan(ctx, courseID, plan, report, log, progress)

	progress(models.SyncStepCourse, models.SyncStatusDone, "")
	s.recordRun(ctx, report, nil, log)
	return report, nil
}

// Create creates a course from the desired draft and then creates all its lessons and quizzes.
//
// The returned error is set only when the course creation failed or returned no id.
// Like Update, the run ignores cancellation of ctx.
func (s *courseSyncService) Create(ctx context.Context, desired *models.CourseDraft, onProgress ProgressFunc) (*models.SyncReport, error) {
	ctx = context.WithoutCancel(ctx)
	progress := progressOrNop(onProgress)
	report := &models.SyncReport{Mode: models.SyncModeCreate, Converged: true}
	log := s.logger.With(zap.String("mode", string(report.Mode)))

	progress(models.SyncStepCourse, models.SyncStatusPending, "")
	progress(models.SyncStepMeta, models.SyncStatusPending, "")

	metadata := desired.Metadata()

	var thumbnail *models.UploadFile
	if models.IsDataURL(metadata.Thumbnail) {
		file, err := decodeDataURL(metadata.Thumbnail)
		if err != nil {
			log.Warn("failed to decode thumbnail, sending original value", zap.Error(err))
			report.Record(models.SyncOperation{Kind: models.OperationKindThumbnail, Action: models.OperationActionUpload, Error: err.Error()})
		} else {
			thumbnail = file
		}
	}

	var course *models.Course
	var err error
	if thumbnail != nil {
		course, err = s.courses.CreateWithThumbnail(ctx, &metadata, thumbnail)
	} else {
		course, err = s.courses.Create(ctx, &metadata)
	}
	if err == nil && (course == nil || course.ID.IsZero()) {
		err = ErrCourseIDMissing
	}
	if err != nil {
		return report, s.fail(ctx, report, log, progress, models.OperationActionCreate, fmt.Errorf("failed to create course: %w", err))
	}

	report.CourseID = course.ID
	report.Record(models.SyncOperation{Kind: models.OperationKindCourse, Action: models.OperationActionCreate})
	progress(models.SyncStepMeta, models.SyncStatusDone, "")
	log = log.With(zap.String("course_id", course.ID.String()))

	plan := PlanLessons(nil, withPlaceholderIDs(desired.Lessons))
	s.applyPlan(ctx, course.ID, plan, report, log, progress)

	progress(models.SyncStepCourse, models.SyncStatusDone, "")
	s.recordRun(ctx, report, nil, log)
	return report, nil
}

// GetRuns retrieves the latest recorded runs of a course
func (s *courseSyncService) GetRuns(ctx context.Context, courseID models.ID, limit int) ([]models.SyncRun, error) {
	if s.runs == nil {
		return []models.SyncRun{}, nil
	}
	runs, err := s.runs.GetRecentByCourse(ctx, courseID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get sync runs: %w", err)
	}
	return runs, nil
}

// fail records a fatal course write failure and returns err
func (s *courseSyncService) fail(ctx context.Context, report *models.SyncReport, log *zap.Logger, progress ProgressFunc, action models.OperationAction, err error) error {
	log.Error("course sync aborted", zap.Error(err))
	report.Record(models.SyncOperation{Kind: models.OperationKindCourse, Action: action, Error: err.Error()})
	progress(models.SyncStepMeta, models.SyncStatusFailed, err.Error())
	progress(models.SyncStepCourse, models.SyncStatusFailed, err.Error())
	s.recordRun(ctx, report, err, log)
	return err
}

// resolveThumbnail uploads a data URL thumbnail and substitutes the returned URL.
// On failure the original value is kept.
func (s *courseSyncService) resolveThumbnail(ctx context.Context, courseID models.ID, metadata *models.CourseMetadata, report *models.SyncReport, log *zap.Logger) {
	if !models.IsDataURL(metadata.Thumbnail) {
		return
	}

	file, err := decodeDataURL(metadata.Thumbnail)
	if err != nil {
		log.Warn("failed to decode thumbnail, keeping original value", zap.Error(err))
		report.Record(models.SyncOperation{Kind: models.OperationKindThumbnail, Action: models.OperationActionUpload, Error: err.Error()})
		return
	}

	url, err := s.courses.UploadThumbnail(ctx, courseID, file)
	if err != nil {
		log.Warn("failed to upload thumbnail, keeping original value", zap.Error(err))
		report.Record(models.SyncOperation{Kind: models.OperationKindThumbnail, Action: models.OperationActionUpload, Error: err.Error()})
		return
	}

	metadata.Thumbnail = url
	report.Record(models.SyncOperation{Kind: models.OperationKindThumbnail, Action: models.OperationActionUpload})
}

// applyPlan runs the lesson steps in order and then the deletions
func (s *courseSyncService) applyPlan(ctx context.Context, courseID models.ID, plan models.LessonPlan, report *models.SyncReport, log *zap.Logger, progress ProgressFunc) {
	progress(models.SyncStepLessons, models.SyncStatusPending, "")

	for _, step := range plan.Steps {
		s.syncLesson(ctx, courseID, step, report, log)
	}

	for _, deletion := range plan.Deletions {
		if deletion.DeleteQuiz {
			err := s.quizzes.Delete(ctx, deletion.LessonID)
			s.recordOperation(report, log, models.OperationKindQuiz, models.OperationActionDelete, deletion.LessonID, err)
		}
		err := s.lessons.Delete(ctx, deletion.LessonID)
		s.recordOperation(report, log, models.OperationKindLesson, models.OperationActionDelete, deletion.LessonID, err)
	}

	progress(models.SyncStepLessons, models.SyncStatusDone, "")
}

// syncLesson writes one lesson and then its quiz.
// The quiz is skipped when the lesson write failed.
func (s *courseSyncService) syncLesson(ctx context.Context, courseID models.ID, step models.LessonStep, report *models.SyncReport, log *zap.Logger) {
	payload := step.Lesson.Payload()
	lessonID := step.Lesson.ID

	switch step.State {
	case models.LessonStateExisting:
		err := s.lessons.Update(ctx, lessonID, &payload)
		s.recordOperation(report, log, models.OperationKindLesson, models.OperationActionUpdate, lessonID, err)
		if err != nil {
			return
		}
	default:
		createdID, err := s.lessons.Create(ctx, courseID, &payload)
		if err == nil && createdID.IsZero() {
			log.Warn("lesson created but no ID returned, using client ID", zap.String("lesson_id", lessonID.String()))
		} else if err == nil {
			lessonID = createdID
		}
		s.recordOperation(report, log, models.OperationKindLesson, models.OperationActionCreate, lessonID, err)
		if err != nil {
			return
		}
	}

	var err error
	switch step.QuizAction {
	case models.QuizActionNone:
		return
	case models.QuizActionCreate:
		err = s.quizzes.Create(ctx, lessonID, step.Lesson.Quiz)
	case models.QuizActionUpdate:
		err = s.quizzes.Update(ctx, lessonID, step.Lesson.Quiz)
	case models.QuizActionDelete:
		err = s.quizzes.Delete(ctx, lessonID)
	}
	s.recordOperation(report, log, models.OperationKindQuiz, models.OperationAction(step.QuizAction), lessonID, err)
}

func (s *courseSyncService) recordOperation(report *models.SyncReport, log *zap.Logger, kind models.OperationKind, action models.OperationAction, lessonID models.ID, err error) {
	op := models.SyncOperation{Kind: kind, Action: action, LessonID: lessonID}
	if err != nil {
		op.Error = err.Error()
		log.Error("course sync operation failed",
			zap.String("kind", string(kind)),
			zap.String("action", string(action)),
			zap.String("lesson_id", lessonID.String()),
			zap.Error(err),
		)
	}
	report.Record(op)
}

// recordRun persists the outcome of a run. Persistence failures are only logged.
func (s *courseSyncService) recordRun(ctx context.Context, report *models.SyncReport, runErr error, log *zap.Logger) {
	log.Info("course sync finished",
		zap.Int("operations", len(report.Operations)),
		zap.Int("failures", report.Failures),
		zap.Bool("converged", report.Converged),
	)

	if s.runs == nil {
		return
	}

	run := &models.SyncRun{
		CourseID:   report.CourseID,
		Mode:       report.Mode,
		Operations: len(report.Operations),
		Failures:   report.Failures,
		Converged:  report.Converged,
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := s.runs.Create(ctx, run); err != nil {
		log.Error("failed to record sync run", zap.Error(err))
	}
}

// withPlaceholderIDs returns a copy of lessons where lessons without an id get a local placeholder
func withPlaceholderIDs(lessons []models.Lesson) []models.Lesson {
	out := make([]models.Lesson, len(lessons))
	copy(out, lessons)
	for i := range out {
		if out[i].ID.IsZero() {
			out[i].ID = models.ID(placeholderIDPrefix + uuid.New().String())
		}
	}
	return out
}

func progressOrNop(onProgress ProgressFunc) ProgressFunc {
	if onProgress == nil {
		return func(models.SyncStep, models.SyncStatus, string) {}
	}
	return onProgress
}
