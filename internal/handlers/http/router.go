package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/users-api/docs" // registra a especificação swagger
	"github.com/rafabene/users-api/internal/domain/ports"
	"github.com/rafabene/users-api/internal/handlers/middleware"
	"github.com/rafabene/users-api/internal/infrastructure/config"
	"github.com/rafabene/users-api/internal/infrastructure/i18n"
)

// RouterDeps agrupa o que o roteador precisa
type RouterDeps struct {
	Config        *config.Config
	Logger        ports.Logger
	I18n          *i18n.Service
	UserHandler   *UserHandler
	HealthHandler *HealthHandler
}

// NewRouter monta o gin.Engine com middlewares e rotas
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))

	// Middleware global para adicionar base URL ao contexto
	baseURL := deps.Config.Server.BaseURL
	router.Use(func(c *gin.Context) {
		c.Set("base_url", baseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())
	router.Use(middleware.CORS(deps.Config.CORS.AllowedOrigins))

	router.GET("/", deps.HealthHandler.Welcome)
	router.GET("/health", deps.HealthHandler.CheckHealth)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", deps.UserHandler.CreateUser)
			users.GET("", deps.UserHandler.ListUsers)
			users.GET("/:id", deps.UserHandler.GetUser)
			users.PATCH("/:id", deps.UserHandler.UpdateUser)
			users.PUT("/:id", deps.UserHandler.UpdateUser)
			users.DELETE("/:id", deps.UserHandler.DeactivateUser)
		}
	}

	return router
}
