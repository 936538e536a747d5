package routers

import (
	"interviewpro/api/internal/handlers"
	"interviewpro/api/internal/middleware"
	"interviewpro/api/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, jwtSecret string) {
	router.Route("/api/v1/interview", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.With(middleware.ValidateRequest[*models.StartInterviewRequest]()).Post("/start", interviewHandler.StartHandler)
		r.With(middleware.ValidateRequest[*models.ChatRequest]()).Post("/chat", interviewHandler.ChatHandler)
		r.With(middleware.ValidateRequest[*models.EvaluateRequest]()).Post("/evaluate", interviewHandler.EvaluateHandler)
		r.Get("/analytics", interviewHandler.AnalyticsHandler)
	})
}
