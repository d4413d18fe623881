package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/odolbodol/adboard/docs"
	v1 "github.com/odolbodol/adboard/internal/api/handler/v1"
	"github.com/odolbodol/adboard/internal/api/middleware"
	"github.com/odolbodol/adboard/internal/config"
	"github.com/odolbodol/adboard/internal/repository"
	"github.com/odolbodol/adboard/internal/repository/dao"
	"github.com/odolbodol/adboard/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	adHandler := s.initAdHandler(db)
	s.MountHandlers(adHandler)

	return s
}

func (s *Server) initAdHandler(db *gorm.DB) *v1.AdHandler {
	adDAO := dao.NewAdDAO(db)
	repo := repository.NewAdRepository(adDAO)
	svc := service.NewAdService(repo)
	handler := v1.NewAdHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(adHandler *v1.AdHandler) {
	const basePath = "/api"

	ads := s.Router.Group(basePath)
	{
		ads.POST("/ads", adHandler.HandleCreateAd)
		ads.GET("/ads", adHandler.HandleListAds)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Odol-Bodol Ad Board API"
	docs.SwaggerInfo.Description = "Classifieds board for exchanging or selling items."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
