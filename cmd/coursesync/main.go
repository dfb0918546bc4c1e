// Command coursesync pushes a course draft file to the upstream backend.
//
// Without -course the draft is created as a new course. With -course the
// stored course is converged to the draft, deleting lessons the draft omits.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/courseadmin/dashboard/internal/client"
	"github.com/courseadmin/dashboard/internal/config"
	"github.com/courseadmin/dashboard/internal/logger"
	"github.com/courseadmin/dashboard/internal/models"
	"github.com/courseadmin/dashboard/internal/repositories"
	"github.com/courseadmin/dashboard/internal/services"
	"go.uber.org/zap"
)

func main() {
	courseID := flag.String("course", "", "ID of the course to update, empty to create a new course")
	file := flag.String("file", "", "path to the course draft JSON file")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	draft, err := readDraft(*file)
	if err != nil {
		logger.Logger.Fatal("Failed to read draft", zap.String("file", *file), zap.Error(err))
	}

	upstream := client.New(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.SessionCookie, logger.Logger)
	courseRepo := repositories.NewCourseRepository(upstream)
	lessonRepo := repositories.NewLessonRepository(upstream)
	quizRepo := repositories.NewQuizRepository(upstream)

	syncService := services.NewCourseSyncService(courseRepo, lessonRepo, quizRepo, nil, logger.Logger)
	courseService := services.NewCourseService(courseRepo, lessonRepo, syncService, services.NewValidator(), logger.Logger)

	// A started save runs to completion; interrupts are only reported
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupts)
	go func() {
		for range interrupts {
			logger.Logger.Warn("Save in progress, waiting for it to finish")
		}
	}()

	ctx := context.Background()
	var result *models.SaveResponse
	if *courseID == "" {
		result, err = courseService.Create(ctx, draft, printProgress)
	} else {
		result, err = courseService.Save(ctx, models.ID(*courseID), draft, printProgress)
	}
	if err != nil {
		logger.Logger.Error("Course sync failed", zap.Error(err))
	} else {
		printReport(os.Stdout, result.Report)
	}

	code := exitCode(result, err)
	logger.Sync()
	os.Exit(code)
}

// exitCode is 1 for a failed run, 3 for a run that finished without converging
// and 0 otherwise. Usage errors exit with 2 before a run starts.
func exitCode(result *models.SaveResponse, err error) int {
	switch {
	case err != nil:
		return 1
	case result == nil || result.Report == nil || !result.Report.Converged:
		return 3
	default:
		return 0
	}
}

func readDraft(path string) (*models.CourseDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var draft models.CourseDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

func printProgress(step models.SyncStep, status models.SyncStatus, message string) {
	if message != "" {
		fmt.Fprintf(os.Stderr, "%-8s %-8s %s\n", step, status, message)
		return
	}
	fmt.Fprintf(os.Stderr, "%-8s %s\n", step, status)
}

func printReport(w io.Writer, report *models.SyncReport) {
	if report == nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Logger.Error("failed to encode report", zap.Error(err))
	}
}
