package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/courseadmin/dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL, 2*time.Second, "sid=default", zap.NewNop())
}

func TestClient_Get(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedError  bool
		expectedStatus int
		expectedMsg    string
		expectedTitle  string
	}{
		{
			name:          "enveloped data",
			status:        http.StatusOK,
			body:          `{"statusCode":200,"message":"ok","data":{"id":1,"title":"Go"}}`,
			expectedTitle: "Go",
		},
		{
			name:          "bare object",
			status:        http.StatusOK,
			body:          `{"id":"c1","title":"Rust"}`,
			expectedTitle: "Rust",
		},
		{
			name:   "null data",
			status: http.StatusOK,
			body:   `{"statusCode":200,"message":"ok","data":null}`,
		},
		{
			name:           "error with message",
			status:         http.StatusBadRequest,
			body:           `{"statusCode":400,"message":"title must not be empty"}`,
			expectedError:  true,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "title must not be empty",
		},
		{
			name:           "error with message list",
			status:         http.StatusUnprocessableEntity,
			body:           `{"statusCode":422,"message":["a is bad","b is bad"]}`,
			expectedError:  true,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "a is bad; b is bad",
		},
		{
			name:           "error without body",
			status:         http.StatusNotFound,
			body:           ``,
			expectedError:  true,
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Not Found",
		},
		{
			name:          "invalid json",
			status:        http.StatusOK,
			body:          `<html></html>`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/courses/1", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			var course models.Course
			err := c.Get(context.Background(), "/courses/1", &course)

			if !tt.expectedError {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedTitle, course.Title)
				return
			}

			require.Error(t, err)
			if tt.expectedStatus != 0 {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.expectedStatus, apiErr.StatusCode)
				assert.Equal(t, tt.expectedMsg, apiErr.Message)
			}
		})
	}
}

func TestClient_SessionCookie(t *testing.T) {
	var cookies []string
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cookies = append(cookies, r.Header.Get("Cookie"))
		w.Write([]byte(`{"data":[]}`))
	})

	var out []models.Course
	require.NoError(t, c.Get(context.Background(), "/courses", &out))
	require.NoError(t, c.Get(WithSession(context.Background(), "sid=user"), "/courses", &out))

	assert.Equal(t, []string{"sid=default", "sid=user"}, cookies)
}

func TestClient_RequestID(t *testing.T) {
	var ids []string
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"data":[]}`))
	})

	var out []models.Course
	require.NoError(t, c.Get(context.Background(), "/courses", &out))
	require.NoError(t, c.Get(WithRequestID(context.Background(), "req-42"), "/courses", &out))

	assert.Equal(t, []string{"", "req-42"}, ids)
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestClient_PostAndPatch(t *testing.T) {
	var methods []string
	var bodies []string
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data":{"id":7}}`))
	})

	var created models.Course
	require.NoError(t, c.Post(context.Background(), "/courses", map[string]string{"title": "Go"}, &created))
	require.NoError(t, c.Patch(context.Background(), "/courses/7", map[string]bool{"isPublished": true}, nil))

	assert.Equal(t, models.ID("7"), created.ID)
	assert.Equal(t, []string{http.MethodPost, http.MethodPatch}, methods)
	assert.JSONEq(t, `{"title":"Go"}`, bodies[0])
	assert.JSONEq(t, `{"isPublished":true}`, bodies[1])
}

func TestClient_DoMultipart(t *testing.T) {
	c := setupTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "Go", r.FormValue("title"))

		file, header, err := r.FormFile("thumbnail")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)

		assert.Equal(t, "thumb.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte{1, 2, 3}, data)
		w.Write([]byte(`{"thumbnail":"https://cdn/x.png"}`))
	})

	body, err := c.DoMultipart(context.Background(), http.MethodPost, "/courses/1/thumbnail",
		map[string]string{"title": "Go"},
		map[string]*models.UploadFile{"thumbnail": {Filename: "thumb.png", ContentType: "image/png", Data: []byte{1, 2, 3}}},
	)

	require.NoError(t, err)
	assert.JSONEq(t, `{"thumbnail":"https://cdn/x.png"}`, string(body))
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := New(srv.URL, time.Second, "", zap.NewNop())

	err := c.Delete(context.Background(), "/courses/1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, 0, StatusCode(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: http.StatusNotFound, Message: "Not Found"}))
	assert.False(t, IsNotFound(errors.New("other")))
}
