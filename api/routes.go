package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints and the token-guarded admin endpoints
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes: content reads, the contact form and admin login
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/certifications", handlers.certificationHandler.getAllCertifications())
		r.Get("/categories", handlers.categoryHandler.getCategories())
		r.Post("/contact", handlers.emailHandler.submitContact())
		r.Post("/auth/login", handlers.authHandler.login())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects", handlers.projectHandler.updateProject())
		r.Delete("/projects", handlers.projectHandler.deleteProject())

		r.Post("/blogs", handlers.blogHandler.createBlog())
		r.Put("/blogs", handlers.blogHandler.updateBlog())
		r.Delete("/blogs", handlers.blogHandler.deleteBlog())

		r.Post("/certifications", handlers.certificationHandler.createCertification())
		r.Put("/certifications", handlers.certificationHandler.updateCertification())
		r.Delete("/certifications", handlers.certificationHandler.deleteCertification())

		r.Get("/emails", handlers.emailHandler.getAllEmails())
		r.Post("/emails", handlers.emailHandler.createEmail())
		r.Delete("/emails", handlers.emailHandler.deleteEmail())

		r.Post("/categories", handlers.categoryHandler.addCategory())

		r.Post("/assist/text", handlers.assistHandler.generateText())
		r.Post("/assist/describe-image", handlers.assistHandler.describeImage())

		r.Post("/upload", handlers.uploadHandler.uploadImage())
	})
}
