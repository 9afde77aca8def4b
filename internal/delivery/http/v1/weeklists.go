package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-weeklist/internal/models"
	"github.com/adanyl0v/go-weeklist/internal/services"
	"github.com/adanyl0v/go-weeklist/internal/weeklist"
)

type createWeeklistRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *handlerImpl) HandleCreateWeeklist(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	var req createWeeklistRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	wl, err := h.weeklists.Create(c, principal, req.Name)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create weeklist")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "weeklist created successfully",
		"newWeekList": wl,
	})
}

func (h *handlerImpl) HandleGetWeeklist(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	wl, err := h.weeklists.GetByID(c, principal, c.Param("weeklistId"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get weeklist")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"weeklist": wl,
	})
}

type updateWeeklistRequest struct {
	Name *string `json:"name,omitempty"`
}

func (h *handlerImpl) HandleUpdateWeeklist(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	var req updateWeeklistRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	wl, err := h.weeklists.Update(c, principal, c.Param("weeklistId"), services.WeeklistPatch{
		Name: req.Name,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to update weeklist")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "weeklist updated successfully",
		"updatedWeeklist": wl,
	})
}

func (h *handlerImpl) HandleDeleteWeeklist(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	err := h.weeklists.Delete(c, principal, c.Param("weeklistId"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete weeklist")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "weeklist deleted successfully",
	})
}

func (h *handlerImpl) HandleDeleteTasks(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	wl, err := h.weeklists.ClearTasks(c, principal, c.Param("weeklistId"))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to delete tasks")
		abort(c, fromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "tasks deleted successfully",
		"updatedWeeklist": wl,
	})
}

type activeWeeklistResponse struct {
	*models.Weeklist
	TimeLeft weeklist.TimeLeft `json:"timeLeft"`
}

func (h *handlerImpl) HandleListActiveWeeklists(c *gin.Context) {
	principal, ok := h.mustPrincipal(c)
	if !ok {
		return
	}

	active, err := h.weeklists.ListActive(c, principal)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list active weeklists")
		abort(c, fromServiceError(err))
		return
	}

	response := make([]activeWeeklistResponse, len(active))
	for i, item := range active {
		response[i] = activeWeeklistResponse{
			Weeklist: item.Weeklist,
			TimeLeft: item.TimeLeft,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"activeWeeklists": response,
	})
}
