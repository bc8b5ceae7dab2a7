package routes

import (
	"time"

	"fileshare-api/internal/auth"
	"fileshare-api/internal/config"
	"fileshare-api/internal/database"
	"fileshare-api/internal/handlers"
	"fileshare-api/internal/registry"
	"fileshare-api/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
)

func SetupRoutes(app *fiber.App) {
	// API routes group
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Monitor route
	app.Get("/metrics", monitor.New())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "fileshare-api",
			"timestamp": time.Now().UTC(),
		})
	})

	// Core wiring: blob backend + registry over the shared DB
	backend := storage.NewDisk(config.GetConfig().Fileshare.Storage.UploadDir)
	reg := registry.New(database.DB, backend)

	fileHandler := handlers.NewFileHandler(reg)
	commentHandler := handlers.NewCommentHandler(reg)

	// Every file route requires an authenticated principal
	files := v1.Group("/files", auth.Middleware([]byte(pkgConfig.GetEnv("AUTH_JWT_SECRET"))))
	files.Post("/", fileHandler.UploadFile)
	files.Get("/", fileHandler.ListFiles)
	files.Get("/:id", fileHandler.GetFile)
	files.Get("/:id/download", fileHandler.DownloadFile)
	files.Delete("/:id", fileHandler.DeleteFile)
	files.Post("/:id/comments", commentHandler.CreateComment)
	files.Get("/:id/comments", commentHandler.ListComments)
}
