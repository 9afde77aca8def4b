package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-weeklist/internal/config"
	v1 "github.com/adanyl0v/go-weeklist/internal/delivery/http/v1"
	"github.com/adanyl0v/go-weeklist/internal/repository"
	"github.com/adanyl0v/go-weeklist/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	jwtCfg := config.Global().JWT

	userRepository := repository.NewUserRepository(globalLogger, globalPostgresPool)
	weeklistRepository := repository.NewWeeklistRepository(globalLogger, globalPostgresPool)

	authService := services.NewAuthService(
		globalLogger,
		userRepository,
		jwtCfg.Issuer,
		[]byte(jwtCfg.SigningKey),
		jwtCfg.TokenTTL,
		nil,
	)
	weeklistService := services.NewWeeklistService(globalLogger, weeklistRepository, nil)

	v1Handler := v1.New(globalLogger, authService, weeklistService)

	router = router.Group("/api/v1")
	router.GET("/health", v1Handler.HandleAuthMiddleware, v1Handler.HandleHealth)

	userRouter := router.Group("/user")
	userRouter.POST("/signup", v1Handler.HandleSignup)
	userRouter.POST("/login", v1Handler.HandleLogin)

	weeklistRouter := router.Group("/weeklist")
	weeklistRouter.Use(v1Handler.HandleAuthMiddleware)
	weeklistRouter.POST("/create", v1Handler.HandleCreateWeeklist)
	weeklistRouter.GET("/active-weeklists", v1Handler.HandleListActiveWeeklists)
	weeklistRouter.GET("/:weeklistId", v1Handler.HandleGetWeeklist)
	weeklistRouter.PUT("/:weeklistId/update", v1Handler.HandleUpdateWeeklist)
	weeklistRouter.DELETE("/:weeklistId/delete-weeklist", v1Handler.HandleDeleteWeeklist)
	weeklistRouter.DELETE("/:weeklistId/delete-tasks", v1Handler.HandleDeleteTasks)
	weeklistRouter.POST("/:weeklistId/newtask", v1Handler.HandleCreateTask)
	weeklistRouter.PUT("/:weeklistId/:taskId/mark", v1Handler.HandleMarkTask)
	weeklistRouter.PUT("/:weeklistId/:taskId/edit-task", v1Handler.HandleEditTask)
	weeklistRouter.DELETE("/:weeklistId/:taskId/delete-task", v1Handler.HandleDeleteTask)
}
