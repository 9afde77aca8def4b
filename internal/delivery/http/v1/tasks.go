package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	wl, err := h.weeklists.AddTask(c, principal, c.Param("weeklistId"), req.Task)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"message":         "task created successfully",
		"updatedWeeklist": wl,
	})
}

type markTaskRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

func (h *handlerImpl) HandleMarkTask(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	var req markTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	wl, err := h.weeklists.MarkTask(c, principal,
		c.Param("weeklistId"), c.Param("taskId"), *req.IsCompleted)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to mark task")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "task updated successfully",
		"updatedWeeklist": wl,
	})
}

type editTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

func (h *handlerImpl) HandleEditTask(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	var req editTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	wl, err := h.weeklists.EditTask(c, principal,
		c.Param("weeklistId"), c.Param("taskId"), req.Task)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to edit task")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "task updated successfully",
		"updatedWeeklist": wl,
	})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	wl, err := h.weeklists.DeleteTask(c, principal,
		c.Param("weeklistId"), c.Param("taskId"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete task")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "task deleted successfully",
		"updatedWeeklist": wl,
	})
}
