package routers

import (
	"interviewpro/api/internal/handlers"
	"interviewpro/api/internal/middleware"
	"interviewpro/api/internal/models"

	"github.com/go-chi/chi/v5"
)

func QuestionRoutes(router *chi.Mux, questionHandler *handlers.QuestionHandler, jwtSecret string) {
	router.Route("/api/v1/questions", func(r chi.Router) {
		r.Get("/", questionHandler.ListHandler)
		r.Get("/{id}", questionHandler.GetHandler)
		// writes require an authenticated caller
		r.With(middleware.Authenticate(jwtSecret), middleware.ValidateRequest[*models.CreateQuestionRequest]()).
			Post("/", questionHandler.CreateHandler)
	})
}
