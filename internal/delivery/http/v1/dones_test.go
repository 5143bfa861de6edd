package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkDone(t *testing.T) {
	router, _ := newTestRouter(t)
	taskID := createTask(t, router, `{"title":"laundry"}`)

	rec := doRequest(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d/done", taskID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var done struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rec, &done)
	require.Equal(t, taskID, done.ID)

	rec = doRequest(t, router, http.MethodGet, "/tasks", "")
	var list []listItem
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)
	require.True(t, list[0].Done)
}

func TestMarkDoneTwice(t *testing.T) {
	router, _ := newTestRouter(t)
	taskID := createTask(t, router, `{"title":"laundry"}`)
	path := fmt.Sprintf("/tasks/%d/done", taskID)

	rec := doRequest(t, router, http.MethodPut, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Not idempotent: the second call must fail.
	rec = doRequest(t, router, http.MethodPut, path, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkDoneMissingTask(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/tasks/42/done", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnmarkDoneTwice(t *testing.T) {
	router, _ := newTestRouter(t)
	taskID := createTask(t, router, `{"title":"laundry"}`)
	path := fmt.Sprintf("/tasks/%d/done", taskID)

	rec := doRequest(t, router, http.MethodPut, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())

	rec = doRequest(t, router, http.MethodDelete, path, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnmarkNeverDone(t *testing.T) {
	router, _ := newTestRouter(t)
	taskID := createTask(t, router, `{"title":"laundry"}`)

	rec := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/tasks/%d/done", taskID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDoneFlagTracksHistory(t *testing.T) {
	router, _ := newTestRouter(t)
	taskID := createTask(t, router, `{"title":"laundry"}`)
	path := fmt.Sprintf("/tasks/%d/done", taskID)

	doneFlag := func() bool {
		rec := doRequest(t, router, http.MethodGet, "/tasks", "")
		var list []listItem
		decodeBody(t, rec, &list)
		require.Len(t, list, 1)
		return list[0].Done
	}

	require.False(t, doneFlag())

	doRequest(t, router, http.MethodPut, path, "")
	require.True(t, doneFlag())

	doRequest(t, router, http.MethodDelete, path, "")
	require.False(t, doneFlag())

	doRequest(t, router, http.MethodPut, path, "")
	require.True(t, doneFlag())
}

func TestDeleteTaskCascadesDoneMarker(t *testing.T) {
	router, fakes := newTestRouter(t)
	taskID := createTask(t, router, `{"title":"laundry"}`)

	rec := doRequest(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d/done", taskID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/tasks/%d", taskID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, fakes.dones)

	// The marker went away with the task, so unmarking is a 404,
	// not a dangling success.
	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/tasks/%d/done", taskID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
