package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *fakeStores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fakes := newFakeStores()
	handler := New(zerolog.Nop(), fakes, fakes)

	router := gin.New()
	router.Use(handler.HandleRequestIDMiddleware)
	router.GET("/tasks", handler.HandleListTasks)
	router.POST("/tasks", handler.HandleCreateTask)
	router.PUT("/tasks/:id", handler.HandleUpdateTask)
	router.DELETE("/tasks/:id", handler.HandleDeleteTask)
	router.PUT("/tasks/:id/done", handler.HandleMarkDone)
	router.DELETE("/tasks/:id/done", handler.HandleUnmarkDone)

	return router, fakes
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func createTask(t *testing.T, router *gin.Engine, body string) int64 {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/tasks", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rec, &created)
	return created.ID
}
