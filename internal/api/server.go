package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/parisbureaux/bureaux-api/docs"
	v1 "github.com/parisbureaux/bureaux-api/internal/api/handler/v1"
	"github.com/parisbureaux/bureaux-api/internal/api/middleware"
	"github.com/parisbureaux/bureaux-api/internal/config"
	"github.com/parisbureaux/bureaux-api/internal/repository"
	"github.com/parisbureaux/bureaux-api/internal/repository/dao"
	"github.com/parisbureaux/bureaux-api/internal/service"
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

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	officeHandler := s.initOfficeHandler(db)
	slugHandler := s.initSlugHandler(db)
	importHandler := s.initImportHandler(db)
	leadHandler := s.initLeadHandler(db)
	serviceHandler := s.initServiceHandler(db)
	statsHandler := s.initStatsHandler(db)
	s.MountHandlers(authHandler, userHandler, officeHandler, slugHandler, importHandler, leadHandler, serviceHandler, statsHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initOfficeHandler(db *gorm.DB) *v1.OfficeHandler {
	officeDAO := dao.NewOfficeDAO(db)
	repo := repository.NewOfficeRepository(officeDAO)
	svc := service.NewOfficeService(repo)
	handler := v1.NewOfficeHandler(svc)

	return handler
}

func (s *Server) initSlugHandler(db *gorm.DB) *v1.SlugHandler {
	officeDAO := dao.NewOfficeDAO(db)
	repo := repository.NewOfficeRepository(officeDAO)
	svc := service.NewSlugService(repo)
	handler := v1.NewSlugHandler(svc)

	return handler
}

func (s *Server) initImportHandler(db *gorm.DB) *v1.ImportHandler {
	officeDAO := dao.NewOfficeDAO(db)
	repo := repository.NewOfficeRepository(officeDAO)
	svc := service.NewImportService(repo)
	handler := v1.NewImportHandler(svc)

	return handler
}

func (s *Server) initLeadHandler(db *gorm.DB) *v1.LeadHandler {
	leadDAO := dao.NewLeadDAO(db)
	repo := repository.NewLeadRepository(leadDAO)
	officeRepo := repository.NewOfficeRepository(dao.NewOfficeDAO(db))
	svc := service.NewLeadService(repo, officeRepo)
	handler := v1.NewLeadHandler(svc)

	return handler
}

func (s *Server) initServiceHandler(db *gorm.DB) *v1.ServiceHandler {
	serviceDAO := dao.NewServiceDAO(db)
	repo := repository.NewServiceRepository(serviceDAO)
	svc := service.NewCatalogService(repo)
	handler := v1.NewServiceHandler(svc)

	return handler
}

func (s *Server) initStatsHandler(db *gorm.DB) *v1.StatsHandler {
	officeRepo := repository.NewOfficeRepository(dao.NewOfficeDAO(db))
	leadRepo := repository.NewLeadRepository(dao.NewLeadDAO(db))
	svc := service.NewStatsService(officeRepo, leadRepo)
	handler := v1.NewStatsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	officeHandler *v1.OfficeHandler,
	slugHandler *v1.SlugHandler,
	importHandler *v1.ImportHandler,
	leadHandler *v1.LeadHandler,
	serviceHandler *v1.ServiceHandler,
	statsHandler *v1.StatsHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/offices", officeHandler.HandleListOffices)
		public.GET("/offices/:slug", officeHandler.HandleGetOffice)
		public.GET("/services", serviceHandler.HandleListServices)
		public.POST("/leads", leadHandler.HandleCreateLead)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.POST("/slug/verify", slugHandler.HandleVerifySlug)

		admin.POST("/offices/import", importHandler.HandleImportOffices)
		admin.POST("/offices/import/xlsx", importHandler.HandleImportOfficesWorkbook)
		admin.GET("/offices/import/template", importHandler.HandleImportTemplate)

		admin.GET("/admin/offices", officeHandler.HandleListAllOffices)
		admin.GET("/admin/offices/:officeID", officeHandler.HandleGetOfficeByID)
		admin.POST("/admin/offices", officeHandler.HandleCreateOffice)
		admin.PUT("/admin/offices/:officeID", officeHandler.HandleUpdateOffice)
		admin.DELETE("/admin/offices/:officeID", officeHandler.HandleDeleteOffice)
		admin.POST("/admin/offices/:officeID/publish", officeHandler.HandlePublishOffice)
		admin.POST("/admin/offices/:officeID/unpublish", officeHandler.HandleUnpublishOffice)

		admin.GET("/admin/leads", leadHandler.HandleListLeads)
		admin.PATCH("/admin/leads/:leadID/status", leadHandler.HandleUpdateLeadStatus)

		admin.POST("/admin/services", serviceHandler.HandleCreateService)
		admin.GET("/admin/services/:serviceID", serviceHandler.HandleGetService)
		admin.PUT("/admin/services/:serviceID", serviceHandler.HandleUpdateService)
		admin.DELETE("/admin/services/:serviceID", serviceHandler.HandleDeleteService)

		admin.GET("/admin/stats/dashboard", statsHandler.HandleDashboard)
		admin.GET("/admin/users/:userID", userHandler.HandleGetUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "API Bureaux Paris"
	docs.SwaggerInfo.Description = "Office rental brokerage API for Paris listings."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
