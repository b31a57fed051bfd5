package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"propertyHub/configs"
	"propertyHub/internal/enums"
	"propertyHub/internal/handlers"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx     context.Context
	configs *configs.Config
	router  *gin.Engine
	handler *handlers.RestHandler
}

func NewHttpServer(ctx context.Context, configs *configs.Config, handler *handlers.RestHandler) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:     ctx,
			configs: configs,
			handler: handler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := hs.router.Group("/api")

	api.POST("/register", hs.handler.Register)
	api.POST("/login", hs.handler.Login)

	authenticated := api.Group("", hs.handler.MustAuthenticateMiddleware())

	messages := authenticated.Group("/messages")
	{
		messages.POST("", hs.handler.SendMessage)
		messages.GET("", hs.handler.GetMessagesBetween)
		messages.PUT("/read", hs.handler.MarkMessagesRead)
		messages.GET("/conversations", hs.handler.GetConversations)
		messages.GET("/unread-count", hs.handler.GetUnreadCount)
	}

	properties := authenticated.Group("/properties")
	{
		properties.POST("", hs.handler.RequireRolesMiddleware(enums.ROLE_LANDLORD, enums.ROLE_ADMIN), hs.handler.CreateProperty)
		properties.GET("", hs.handler.GetProperties)
		properties.GET("/:id", hs.handler.GetProperty)
		properties.PUT("/:id", hs.handler.UpdateProperty)
		properties.DELETE("/:id", hs.handler.DeleteProperty)
		properties.PUT("/:id/assign-tenant", hs.handler.RequireRolesMiddleware(enums.ROLE_LANDLORD, enums.ROLE_ADMIN), hs.handler.AssignTenant)
	}

	maintenance := authenticated.Group("/maintenance-requests")
	{
		maintenance.POST("", hs.handler.CreateMaintenanceRequest)
		maintenance.GET("", hs.handler.ListMaintenanceRequests)
		maintenance.GET("/:id", hs.handler.GetMaintenanceRequest)
		maintenance.PUT("/:id/status", hs.handler.UpdateMaintenanceStatus)
	}

	users := authenticated.Group("/users")
	{
		users.GET("/me", hs.handler.GetMyProfile)
		users.PUT("/me", hs.handler.UpdateMyProfile)
		users.GET("/my-tenants", hs.handler.RequireRolesMiddleware(enums.ROLE_LANDLORD), hs.handler.GetLandlordTenants)
		users.GET("", hs.handler.RequireRolesMiddleware(enums.ROLE_ADMIN), hs.handler.GetAllUsers)
		users.GET("/:id", hs.handler.RequireRolesMiddleware(enums.ROLE_ADMIN), hs.handler.GetSingleUser)
		users.PUT("/:id", hs.handler.RequireRolesMiddleware(enums.ROLE_ADMIN), hs.handler.UpdateUser)
		users.DELETE("/:id", hs.handler.RequireRolesMiddleware(enums.ROLE_ADMIN), hs.handler.DeleteUser)
	}

	files := authenticated.Group("/files")
	{
		files.POST("", hs.handler.UploadFile)
		files.GET("", hs.handler.ListFiles)
		files.DELETE("/:id", hs.handler.DeleteFile)
	}

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", hs.handler.RequireRolesMiddleware(enums.ROLE_ADMIN), hs.handler.GetNotifications)
		notifications.GET("/me", hs.handler.GetMyNotifications)
	}
}

func (hs *HttpServer) startServer() *http.Server {
	port := hs.configs.Viper.GetInt("server.port")
	if port == 0 {
		port = 8000
	}
	addr := fmt.Sprintf(":%d", port)

	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %v", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
