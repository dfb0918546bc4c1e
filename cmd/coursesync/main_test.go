package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name         string
		result       *models.SaveResponse
		err          error
		expectedCode int
	}{
		{
			name:         "converged",
			result:       &models.SaveResponse{Report: &models.SyncReport{Converged: true}},
			expectedCode: 0,
		},
		{
			name:         "partial failure",
			result:       &models.SaveResponse{Report: &models.SyncReport{Failures: 2}},
			expectedCode: 3,
		},
		{
			name:         "missing report",
			result:       &models.SaveResponse{},
			expectedCode: 3,
		},
		{
			name:         "fatal error",
			err:          errors.New("failed to update course metadata"),
			expectedCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, exitCode(tt.result, tt.err))
		})
	}
}

func TestReadDraft(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "draft.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{"title":"Go","level":"BEGINNER","lessons":[{"id":7,"title":"Intro"}]}`), 0o600))
	draft, err := readDraft(valid)
	require.NoError(t, err)
	assert.Equal(t, "Go", draft.Title)
	require.Len(t, draft.Lessons, 1)
	assert.Equal(t, models.ID("7"), draft.Lessons[0].ID)

	invalid := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{`), 0o600))
	_, err = readDraft(invalid)
	assert.Error(t, err)

	_, err = readDraft(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer

	printReport(&buf, &models.SyncReport{CourseID: "c1", Mode: models.SyncModeUpdate, Converged: true})
	assert.JSONEq(t, `{"courseId":"c1","mode":"update","operations":null,"failures":0,"converged":true}`, buf.String())

	buf.Reset()
	printReport(&buf, nil)
	assert.Empty(t, buf.String())
}
