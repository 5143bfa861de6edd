package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rdmitr/todo-api/internal/stores"
)

type doneResponse struct {
	ID int64 `json:"id"`
}

// HandleMarkDone is deliberately not idempotent: marking an already
// done task fails with 400 so out-of-sync clients notice.
func (h *handlerImpl) HandleMarkDone(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	_, err := h.dones.GetDone(c, taskID)
	if err == nil {
		abort(c, newBadRequestError("task is already marked as done"))
		return
	}
	if !errors.Is(err, stores.ErrDoneNotFound) {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to select done marker")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	done, err := h.dones.CreateDone(c, taskID)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrDoneAlreadyExists):
			abort(c, newBadRequestError("task is already marked as done"))
		case errors.Is(err, stores.ErrTaskNotFound):
			abort(c, newNotFoundError("task not found"))
		default:
			h.logger.Error().
				Err(err).
				Int64("task_id", taskID).
				Msg("failed to create done marker")
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, doneResponse{ID: done.ID})
}

// HandleUnmarkDone mirrors HandleMarkDone's asymmetry: unmarking a
// task that is not done fails with 404.
func (h *handlerImpl) HandleUnmarkDone(c *gin.Context) {
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	_, err := h.dones.GetDone(c, taskID)
	if err != nil {
		if errors.Is(err, stores.ErrDoneNotFound) {
			abort(c, newNotFoundError("done marker not found"))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to select done marker")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	err = h.dones.DeleteDone(c, taskID)
	if err != nil {
		if errors.Is(err, stores.ErrDoneNotFound) {
			abort(c, newNotFoundError("done marker not found"))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete done marker")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
