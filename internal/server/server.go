package server

import (
	"context"
	"net/http"
	"time"

	"fitcoach/internal/models"
	"fitcoach/internal/planner"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// MealStore учёт приёмов пищи
type MealStore interface {
	Create(ctx context.Context, meal *models.Meal) (int, error)
	DailyTotals(ctx context.Context, telegramID int64, day time.Time) (models.DailyNutrition, error)
}

// WaterStore учёт воды
type WaterStore interface {
	Add(ctx context.Context, telegramID int64, amountML int) error
	DailyTotal(ctx context.Context, telegramID int64, day time.Time) (int, error)
}

// Server HTTP API для WebApp
type Server struct {
	planner *planner.Service
	meals   MealStore
	water   WaterStore
	log     zerolog.Logger
	router  chi.Router
}

// New создаёт сервер со всеми маршрутами
func New(p *planner.Service, meals MealStore, water WaterStore, log zerolog.Logger) *Server {
	s := &Server{
		planner: p,
		meals:   meals,
		water:   water,
		log:     log.With().Str("component", "http").Logger(),
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Адаптация без сохранения, авторизация не нужна
	s.router.Post("/api/workout-plan/adapt", s.handleAdapt)

	s.router.Group(func(r chi.Router) {
		r.Use(TelegramUser)
		r.Post("/api/workout-plan/generate", s.handleGenerate)
		r.Get("/api/workout-plan", s.handleLatestPlan)
		r.Put("/api/preferences", s.handleSavePreferences)
		r.Get("/api/nutrition/daily", s.handleDailyNutrition)
		r.Post("/api/nutrition/meals", s.handleAddMeal)
		r.Post("/api/nutrition/water", s.handleAddWater)
	})
}
