package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/go-chi/chi/v5"
)

// platform is an in-memory stand-in for the upstream course backend
type platform struct {
	mu        sync.Mutex
	nextID    int
	courses   map[models.ID]*models.Course
	lessons   map[models.ID]*models.Lesson
	quizzes   map[models.ID]*models.Quiz
	students  []models.Student
	companies []models.Company
	calls     []string
	imported  []string
}

func newPlatform() *platform {
	return &platform{
		courses: map[models.ID]*models.Course{},
		lessons: map[models.ID]*models.Lesson{},
		quizzes: map[models.ID]*models.Quiz{},
		students: []models.Student{
			{ID: "s1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
			{ID: "s2", FirstName: "Alan", LastName: "Turing", Email: "alan@example.com"},
		},
		companies: []models.Company{
			{ID: "co1", Name: "Acme", Email: "hr@acme.test"},
		},
	}
}

// start serves the platform until the test ends and returns its URL
func (p *platform) start(t *testing.T) string {
	t.Helper()

	r := chi.NewRouter()
	r.Use(p.record)
	r.Get("/courses", p.listCourses)
	r.Post("/courses", p.createCourse)
	r.Get("/courses/count", p.countCourses)
	r.Post("/courses/import", p.importCourses)
	r.Patch("/courses/lessons/{lessonID}", p.updateLesson)
	r.Delete("/courses/lessons/{lessonID}", p.deleteLesson)
	r.Post("/courses/lessons/{lessonID}/quiz", p.putQuiz)
	r.Patch("/courses/lessons/{lessonID}/quiz", p.putQuiz)
	r.Delete("/courses/lessons/{lessonID}/quiz", p.deleteQuiz)
	r.Get("/courses/{id}", p.getCourse)
	r.Patch("/courses/{id}", p.updateCourse)
	r.Delete("/courses/{id}", p.deleteCourse)
	r.Patch("/courses/{id}/publish", p.publishCourse)
	r.Post("/courses/{id}/thumbnail", p.uploadThumbnail)
	r.Get("/courses/{id}/lessons", p.listLessons)
	r.Post("/courses/{id}/lessons", p.createLesson)
	r.Get("/students", func(w http.ResponseWriter, r *http.Request) { p.ok(w, p.students) })
	r.Get("/students/count", func(w http.ResponseWriter, r *http.Request) { p.ok(w, map[string]int{"count": len(p.students)}) })
	r.Get("/companies", func(w http.ResponseWriter, r *http.Request) { p.ok(w, p.companies) })
	r.Get("/companies/count", func(w http.ResponseWriter, r *http.Request) { p.ok(w, len(p.companies)) })

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func (p *platform) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		if r.Method != http.MethodGet {
			p.calls = append(p.calls, r.Method+" "+r.URL.Path)
		}
		p.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// mutations returns the non-GET calls received so far and resets the log
func (p *platform) mutations() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	calls := p.calls
	p.calls = nil
	return calls
}

func (p *platform) newID() models.ID {
	p.nextID++
	return models.ID(strconv.Itoa(p.nextID))
}

func (p *platform) ok(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"statusCode": http.StatusOK, "message": "ok", "data": data})
}

func (p *platform) notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"statusCode":404,"message":"Not Found"}`))
}

func (p *platform) badRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]any{"statusCode": http.StatusBadRequest, "message": []string{message}})
}

func (p *platform) listCourses(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	courses := make([]models.Course, 0, len(p.courses))
	for _, c := range p.courses {
		courses = append(courses, *c)
	}
	slices.SortFunc(courses, func(a, b models.Course) int { return strings.Compare(b.CreatedAt, a.CreatedAt) })
	p.ok(w, courses)
}

func (p *platform) countCourses(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ok(w, map[string]int{"total": len(p.courses)})
}

func (p *platform) createCourse(w http.ResponseWriter, r *http.Request) {
	var meta models.CourseMetadata
	thumbnail := ""

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			p.badRequest(w, "invalid form")
			return
		}
		meta.Title = r.FormValue("title")
		meta.Category = r.FormValue("category")
		meta.Level = models.Level(r.FormValue("level"))
		meta.Description = r.FormValue("description")
		meta.IsPublished = r.FormValue("isPublished") == "true"
		meta.Duration, _ = strconv.Atoi(r.FormValue("duration"))
		if _, header, err := r.FormFile("thumbnail"); err == nil {
			thumbnail = "https://cdn.test/" + header.Filename
		}
	} else if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		p.badRequest(w, "invalid body")
		return
	}

	if meta.Title == "" {
		p.badRequest(w, "title should not be empty")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.newID()
	course := courseFrom(id, meta)
	if thumbnail != "" {
		course.Thumbnail = thumbnail
	}
	course.CreatedAt = fmt.Sprintf("2026-01-%02dT00:00:00Z", p.nextID%28+1)
	p.courses[id] = course
	p.ok(w, course)
}

func courseFrom(id models.ID, meta models.CourseMetadata) *models.Course {
	return &models.Course{
		ID:          id,
		Title:       meta.Title,
		Category:    meta.Category,
		Level:       meta.Level,
		Duration:    meta.Duration,
		Students:    meta.Students,
		Rating:      meta.Rating,
		Price:       meta.Price,
		Thumbnail:   meta.Thumbnail,
		Description: meta.Description,
		IsPublished: meta.IsPublished,
	}
}

func (p *platform) getCourse(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	course, ok := p.courses[models.ID(chi.URLParam(r, "id"))]
	if !ok {
		p.notFound(w)
		return
	}
	p.ok(w, course)
}

func (p *platform) updateCourse(w http.ResponseWriter, r *http.Request) {
	var meta models.CourseMetadata
	if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		p.badRequest(w, "invalid body")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id := models.ID(chi.URLParam(r, "id"))
	existing, ok := p.courses[id]
	if !ok {
		p.notFound(w)
		return
	}
	updated := courseFrom(id, meta)
	updated.CreatedAt = existing.CreatedAt
	p.courses[id] = updated
	p.ok(w, updated)
}

func (p *platform) deleteCourse(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := models.ID(chi.URLParam(r, "id"))
	if _, ok := p.courses[id]; !ok {
		p.notFound(w)
		return
	}
	delete(p.courses, id)
	p.ok(w, nil)
}

func (p *platform) publishCourse(w http.ResponseWriter, r *http.Request) {
	var req models.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.badRequest(w, "invalid body")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	course, ok := p.courses[models.ID(chi.URLParam(r, "id"))]
	if !ok {
		p.notFound(w)
		return
	}
	course.IsPublished = req.IsPublished
	p.ok(w, course)
}

func (p *platform) uploadThumbnail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		p.badRequest(w, "invalid form")
		return
	}
	_, header, err := r.FormFile("thumbnail")
	if err != nil {
		p.badRequest(w, "thumbnail is required")
		return
	}
	p.ok(w, map[string]string{"thumbnail": "https://cdn.test/" + header.Filename})
}

func (p *platform) importCourses(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		p.badRequest(w, "invalid form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		p.badRequest(w, "file is required")
		return
	}
	defer file.Close()
	data, _ := io.ReadAll(file)

	rows := strings.Split(strings.TrimSpace(string(data)), "\n")
	p.mu.Lock()
	p.imported = append(p.imported, rows[1:]...)
	p.mu.Unlock()
	p.ok(w, models.ImportResult{Imported: len(rows) - 1})
}

func (p *platform) listLessons(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	courseID := models.ID(chi.URLParam(r, "id"))
	if _, ok := p.courses[courseID]; !ok {
		p.notFound(w)
		return
	}

	lessons := []models.Lesson{}
	for _, l := range p.lessons {
		if l.CourseID != courseID {
			continue
		}
		lesson := *l
		if quiz, ok := p.quizzes[l.ID]; ok {
			q := *quiz
			lesson.Quiz = &q
			lesson.QuizID = "q" + l.ID
		}
		lessons = append(lessons, lesson)
	}
	p.ok(w, lessons)
}

func (p *platform) createLesson(w http.ResponseWriter, r *http.Request) {
	var payload models.LessonPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		p.badRequest(w, "invalid body")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	courseID := models.ID(chi.URLParam(r, "id"))
	if _, ok := p.courses[courseID]; !ok {
		p.notFound(w)
		return
	}

	id := p.newID()
	p.lessons[id] = lessonFrom(id, courseID, payload)
	p.ok(w, map[string]models.ID{"id": id})
}

func lessonFrom(id, courseID models.ID, payload models.LessonPayload) *models.Lesson {
	return &models.Lesson{
		ID:        id,
		CourseID:  courseID,
		Title:     payload.Title,
		Order:     payload.Order,
		Duration:  payload.Duration,
		IsPreview: payload.IsPreview,
		Content:   payload.Content,
		VideoURL:  payload.VideoURL,
	}
}

func (p *platform) updateLesson(w http.ResponseWriter, r *http.Request) {
	var payload models.LessonPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		p.badRequest(w, "invalid body")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id := models.ID(chi.URLParam(r, "lessonID"))
	existing, ok := p.lessons[id]
	if !ok {
		p.notFound(w)
		return
	}
	p.lessons[id] = lessonFrom(id, existing.CourseID, payload)
	p.ok(w, p.lessons[id])
}

func (p *platform) deleteLesson(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := models.ID(chi.URLParam(r, "lessonID"))
	if _, ok := p.lessons[id]; !ok {
		p.notFound(w)
		return
	}
	delete(p.lessons, id)
	p.ok(w, nil)
}

func (p *platform) putQuiz(w http.ResponseWriter, r *http.Request) {
	var quiz models.Quiz
	if err := json.NewDecoder(r.Body).Decode(&quiz); err != nil {
		p.badRequest(w, "invalid body")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	id := models.ID(chi.URLParam(r, "lessonID"))
	if _, ok := p.lessons[id]; !ok {
		p.notFound(w)
		return
	}
	_, exists := p.quizzes[id]
	if r.Method == http.MethodPost && exists {
		p.badRequest(w, "quiz already exists")
		return
	}
	if r.Method == http.MethodPatch && !exists {
		p.notFound(w)
		return
	}
	p.quizzes[id] = &quiz
	p.ok(w, quiz)
}

func (p *platform) deleteQuiz(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := models.ID(chi.URLParam(r, "lessonID"))
	if _, ok := p.quizzes[id]; !ok {
		p.notFound(w)
		return
	}
	delete(p.quizzes, id)
	p.ok(w, nil)
}

// lessonTitles returns the titles of a course's stored lessons ordered by Order
func (p *platform) lessonTitles(courseID models.ID) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lessons []*models.Lesson
	for _, l := range p.lessons {
		if l.CourseID == courseID {
			lessons = append(lessons, l)
		}
	}
	slices.SortFunc(lessons, func(a, b *models.Lesson) int { return a.Order - b.Order })

	titles := make([]string, 0, len(lessons))
	for _, l := range lessons {
		titles = append(titles, l.Title)
	}
	return titles
}

func (p *platform) quizCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.quizzes)
}
