package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"
)

func (s *Server) handleAdapt(w http.ResponseWriter, r *http.Request) {
	var prefs models.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.planner.Adapt(prefs))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	id := telegramID(r)

	var prefs models.UserPreferences
	err := json.NewDecoder(r.Body).Decode(&prefs)
	switch {
	case errors.Is(err, io.EOF):
		// тела нет - берём сохранённую анкету
		prefs, _, err = s.planner.Preferences(r.Context(), id)
		if err != nil {
			s.log.Error().Err(err).Int64("telegram_id", id).Msg("Ошибка загрузки анкеты")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	case err != nil:
		writeError(w, http.StatusBadRequest, "некорректный JSON: "+err.Error())
		return
	}

	plan, err := s.planner.Generate(r.Context(), id, prefs)
	if err != nil {
		s.log.Error().Err(err).Int64("telegram_id", id).Msg("Ошибка генерации плана")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleLatestPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.planner.Latest(r.Context(), telegramID(r))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "план ещё не составлен")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleSavePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON: "+err.Error())
		return
	}
	if err := s.planner.SavePreferences(r.Context(), telegramID(r), prefs); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handleDailyNutrition(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date должен быть в формате YYYY-MM-DD")
			return
		}
		day = parsed
	}

	id := telegramID(r)
	totals, err := s.meals.DailyTotals(r.Context(), id, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	totals.WaterML, err = s.water.DailyTotal(r.Context(), id, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (s *Server) handleAddMeal(w http.ResponseWriter, r *http.Request) {
	var meal models.Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON: "+err.Error())
		return
	}
	meal.Name = strings.TrimSpace(meal.Name)
	if meal.Name == "" {
		writeError(w, http.StatusBadRequest, "name обязателен")
		return
	}
	if meal.Source == "" {
		meal.Source = models.MealSourceManual
	}
	if !meal.Source.Valid() {
		writeError(w, http.StatusBadRequest, "source должен быть photo, text или manual")
		return
	}
	if meal.Calories < 0 || meal.Protein < 0 || meal.Fat < 0 || meal.Carbs < 0 {
		writeError(w, http.StatusBadRequest, "КБЖУ не может быть отрицательным")
		return
	}
	meal.TelegramID = telegramID(r)

	if _, err := s.meals.Create(r.Context(), &meal); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, meal)
}

func (s *Server) handleAddWater(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AmountML int `json:"amount_ml"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "некорректный JSON: "+err.Error())
		return
	}
	if body.AmountML <= 0 {
		writeError(w, http.StatusBadRequest, "amount_ml должен быть положительным")
		return
	}
	if err := s.water.Add(r.Context(), telegramID(r), body.AmountML); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
