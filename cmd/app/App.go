package app

import (
	"context"
	"propertyHub/configs"
	"propertyHub/internal/handlers"
	"propertyHub/internal/repositories"
	"propertyHub/internal/servers/database"
	"propertyHub/internal/servers/http"
	"propertyHub/internal/services"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)

	authRepo := repositories.NewAuthenticationRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	maintenanceRepo := repositories.NewMaintenanceRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	fileRepo := repositories.NewFileRepository(db)

	notificationService := services.NewNotificationService(notificationRepo, app.redis, app.ctx, app.configs)
	authService := services.NewAuthenticationService(authRepo, app.configs)
	authService.SetNotificationService(notificationService)
	accessService := services.NewAccessService(authRepo, propertyRepo)
	messagingService := services.NewMessagingService(messageRepo, authRepo, accessService, notificationService)
	propertyService := services.NewPropertyService(propertyRepo, authRepo, notificationService)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, propertyRepo, notificationService)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)
	fileService := services.NewFileService(fileRepo, propertyRepo, fileManagerService, notificationService)

	restHandler := handlers.NewRestHandler(
		authService,
		messagingService,
		propertyService,
		maintenanceService,
		fileService,
		notificationService,
	)

	http.NewHttpServer(app.ctx, app.configs, restHandler).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.address"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
