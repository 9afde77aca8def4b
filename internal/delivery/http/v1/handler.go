package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-weeklist/internal/services"
)

type Handler interface {
	HandleSignup(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)
	HandleHealth(c *gin.Context)

	HandleCreateWeeklist(c *gin.Context)
	HandleGetWeeklist(c *gin.Context)
	HandleUpdateWeeklist(c *gin.Context)
	HandleDeleteWeeklist(c *gin.Context)
	HandleDeleteTasks(c *gin.Context)
	HandleListActiveWeeklists(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleMarkTask(c *gin.Context)
	HandleEditTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger    zerolog.Logger
	auth      services.AuthService
	weeklists services.WeeklistService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	weeklistService services.WeeklistService,
) Handler {
	return &handlerImpl{
		logger:    logger,
		auth:      authService,
		weeklists: weeklistService,
	}
}
