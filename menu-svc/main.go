package main

import (
	"log"

	"ravintola-sinet/config"
	httpapi "ravintola-sinet/menu-svc/internal/api/http"
	"ravintola-sinet/menu-svc/internal/service"
	"ravintola-sinet/menu-svc/internal/storage"
)

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	handler := httpapi.NewHandler(
		service.NewCategoryService(repository),
		service.NewMenuService(repository, repository),
		service.NewContactService(repository),
	)
	handler.UploadDir = config.GetEnv("UPLOAD_DIR", httpapi.DefaultUploadDir)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler))
}
