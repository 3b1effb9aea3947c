package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler          authHandler
	projectHandler       projectHandler
	blogHandler          blogHandler
	certificationHandler certificationHandler
	emailHandler         emailHandler
	categoryHandler      categoryHandler
	assistHandler        assistHandler
	uploadHandler        uploadHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error string `json:"error" example:"Internal Server Error"`
	Field string `json:"field,omitempty" example:"title"`
	Cause string `json:"cause,omitempty" example:"Underlying error cause"`
}
