package api

import (
	"context"

	"github.com/rpupo63/portfolio-cms-backend/config"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog/log"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	adminPassword := config.GetString(cfg, "ADMIN_PASSWORD", "")
	jwtSecret := []byte(config.GetString(cfg, "JWT_SECRET", ""))

	uploader, err := services.NewImageUploader(context.Background(), cfg)
	if err != nil {
		log.Warn().Err(err).Msg("image uploads disabled")
	}

	return &routeHandlers{
		authHandler:          newAuthHandler(adminPassword, jwtSecret),
		projectHandler:       newProjectHandler(database.ProjectRepo()),
		blogHandler:          newBlogHandler(database.BlogRepo()),
		certificationHandler: newCertificationHandler(database.CertificationRepo()),
		emailHandler:         newEmailHandler(database.EmailRepo(), services.NewContactNotifier(cfg)),
		categoryHandler:      newCategoryHandler(database.CategoryRepo()),
		assistHandler:        newAssistHandler(services.NewAssistClient(cfg)),
		uploadHandler:        newUploadHandler(uploader),
	}
}
