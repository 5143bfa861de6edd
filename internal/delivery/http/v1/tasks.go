package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rdmitr/todo-api/internal/models"
	"github.com/rdmitr/todo-api/internal/stores"
)

type taskRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,max=1024"`
	DueDate *Date   `json:"due_date,omitempty"`
}

func (r taskRequest) storeParams() stores.TaskParams {
	params := stores.TaskParams{Title: r.Title}
	if r.DueDate != nil {
		dueDate := r.DueDate.Time
		params.DueDate = &dueDate
	}
	return params
}

type taskResponse struct {
	ID      int64   `json:"id"`
	Title   *string `json:"title"`
	DueDate *Date   `json:"due_date"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:      task.ID,
		Title:   task.Title,
		DueDate: newDateResponse(task.DueDate),
	}
}

type listTasksItem struct {
	ID      int64   `json:"id"`
	Title   *string `json:"title"`
	DueDate *Date   `json:"due_date"`
	Done    bool    `json:"done"`
}

func newDateResponse(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	return &Date{Time: *t}
}

func parseTaskID(c *gin.Context) (int64, bool) {
	// A non-numeric id can never name an existing task.
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abort(c, newNotFoundError("task not found"))
		return 0, false
	}
	return id, true
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasksWithDone(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	response := make([]listTasksItem, len(tasks))
	for i, task := range tasks {
		response[i] = listTasksItem{
			ID:      task.ID,
			Title:   task.Title,
			DueDate: newDateResponse(task.DueDate),
			Done:    task.Done,
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abortWithValidationError(c, err)
		return
	}

	task, err := h.tasks.CreateTask(c, req.storeParams())
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abortWithValidationError(c, err)
		return
	}

	_, err = h.tasks.GetTask(c, taskID)
	if err != nil {
		if errors.Is(err, stores.ErrTaskNotFound) {
			abort(c, newNotFoundError("task not found"))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to select task")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	task, err := h.tasks.UpdateTask(c, taskID, req.storeParams())
	if err != nil {
		if errors.Is(err, stores.ErrTaskNotFound) {
			abort(c, newNotFoundError("task not found"))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to update task")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, taskID)
	if err != nil {
		if errors.Is(err, stores.ErrTaskNotFound) {
			abort(c, newNotFoundError("task not found"))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
