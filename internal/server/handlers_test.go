package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitcoach/internal/i18n"
	"fitcoach/internal/models"
	"fitcoach/internal/planner"
	"fitcoach/internal/programs"
	"fitcoach/internal/repository"

	"github.com/rs/zerolog"
)

type memPrefs struct {
	data map[int64]models.UserPreferences
}

func (m *memPrefs) Save(_ context.Context, id int64, p models.UserPreferences) error {
	m.data[id] = p
	return nil
}

func (m *memPrefs) Get(_ context.Context, id int64) (models.UserPreferences, error) {
	p, ok := m.data[id]
	if !ok {
		return p, repository.ErrNotFound
	}
	return p, nil
}

type memPlans struct {
	plans []*models.WorkoutPlan
	err   error
}

func (m *memPlans) Create(_ context.Context, p *models.WorkoutPlan) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	p.ID = "11111111-2222-3333-4444-555555555555"
	m.plans = append(m.plans, p)
	return p.ID, nil
}

func (m *memPlans) GetLatest(_ context.Context, id int64) (*models.WorkoutPlan, error) {
	for i := len(m.plans) - 1; i >= 0; i-- {
		if m.plans[i].TelegramID == id {
			return m.plans[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

type memNutrition struct {
	meals   []models.Meal
	waterML int
	lastDay time.Time
}

func (m *memNutrition) Create(_ context.Context, meal *models.Meal) (int, error) {
	m.meals = append(m.meals, *meal)
	meal.ID = len(m.meals)
	return meal.ID, nil
}

func (m *memNutrition) DailyTotals(_ context.Context, _ int64, day time.Time) (models.DailyNutrition, error) {
	m.lastDay = day
	out := models.DailyNutrition{Date: day.Format(time.DateOnly), Meals: len(m.meals)}
	for _, meal := range m.meals {
		out.Calories += meal.Calories
		out.Protein += meal.Protein
	}
	return out, nil
}

func (m *memNutrition) Add(_ context.Context, _ int64, amount int) error {
	m.waterML += amount
	return nil
}

func (m *memNutrition) DailyTotal(_ context.Context, _ int64, _ time.Time) (int, error) {
	return m.waterML, nil
}

type testEnv struct {
	srv       *Server
	prefs     *memPrefs
	plans     *memPlans
	nutrition *memNutrition
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	catalog, err := programs.DefaultCatalog(zerolog.Nop())
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	env := &testEnv{
		prefs:     &memPrefs{data: map[int64]models.UserPreferences{}},
		plans:     &memPlans{},
		nutrition: &memNutrition{},
	}
	p, err := planner.New(planner.Config{
		Adapter:     programs.NewAdapter(catalog),
		Preferences: env.prefs,
		Plans:       env.plans,
		Lang:        i18n.LangRussian,
		Logger:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("planner.New() error = %v", err)
	}
	env.srv = New(p, env.nutrition, env.nutrition, zerolog.Nop())
	return env
}

func (e *testEnv) do(method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-Telegram-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

func TestHandleAdapt(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodPost, "/api/workout-plan/adapt", "",
		`{"goals":"improve_strength","experience":"intermediate","fitnessLevel":6,"availableDays":[1,3],"equipment":["barbell","bench"],"gender":"male"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var got struct {
		Discipline string `json:"discipline"`
		Tier       string `json:"tier"`
		Days       []struct {
			Weekday   int `json:"weekday"`
			Exercises []struct {
				Name   string `json:"name"`
				Volume string `json:"volume"`
			} `json:"exercises"`
		} `json:"days"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Discipline != "strength" || got.Tier != "intermediate" {
		t.Errorf("selection = %s/%s", got.Discipline, got.Tier)
	}
	if len(got.Days) != 2 || got.Days[1].Weekday != 3 {
		t.Fatalf("days = %+v", got.Days)
	}
	if got.Days[0].Exercises[0].Volume == "" {
		t.Error("volume should serialize as a string")
	}
}

func TestHandleAdapt_BadJSON(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodPost, "/api/workout-plan/adapt", "", `{"goals":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTelegramUser_Required(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name   string
		userID string
	}{
		{"missing", ""},
		{"not a number", "abc"},
		{"negative", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, "/api/workout-plan", tt.userID, "")
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestHandleGenerate_StoredPreferences(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPut, "/api/preferences", "42", `{"goals":"powerlifting","fitnessLevel":9,"gender":"female"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body)
	}

	rec = env.do(http.MethodPost, "/api/workout-plan/generate", "42", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body = %s", rec.Code, rec.Body)
	}
	var plan planner.GeneratedPlan
	if err := json.NewDecoder(rec.Body).Decode(&plan); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	// у женской силовой программы нет продвинутого шаблона
	if !plan.Fallback || plan.Program == nil || !plan.Program.Empty() {
		t.Errorf("plan = %+v", plan)
	}
	if plan.ID == "" {
		t.Error("plan ID is empty")
	}

	rec = env.do(http.MethodGet, "/api/workout-plan", "42", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("latest status = %d", rec.Code)
	}
}

func TestHandleGenerate_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.plans.err = errors.New("connection refused")

	rec := env.do(http.MethodPost, "/api/workout-plan/generate", "1", `{"goals":"build_muscle"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandleLatestPlan_NotFound(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodGet, "/api/workout-plan", "99", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestNutrition(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/nutrition/meals", "7", `{"name":"Овсянка","calories":350,"protein":12}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("meal status = %d, body = %s", rec.Code, rec.Body)
	}
	if src := env.nutrition.meals[0].Source; src != models.MealSourceManual {
		t.Errorf("meal source = %q, want manual by default", src)
	}
	rec = env.do(http.MethodPost, "/api/nutrition/water", "7", `{"amount_ml":500}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("water status = %d, body = %s", rec.Code, rec.Body)
	}

	rec = env.do(http.MethodGet, "/api/nutrition/daily?date=2026-03-10", "7", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("daily status = %d, body = %s", rec.Code, rec.Body)
	}
	var got models.DailyNutrition
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Date != "2026-03-10" || got.Meals != 1 || got.Calories != 350 || got.WaterML != 500 {
		t.Errorf("daily = %+v", got)
	}
}

func TestNutrition_Validation(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name string
		path string
		body string
	}{
		{"bad date", "/api/nutrition/daily?date=10.03.2026", ""},
		{"meal without name", "/api/nutrition/meals", `{"calories":100}`},
		{"negative calories", "/api/nutrition/meals", `{"name":"x","calories":-1}`},
		{"unknown meal source", "/api/nutrition/meals", `{"name":"x","source":"sms"}`},
		{"zero water", "/api/nutrition/water", `{"amount_ml":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := http.MethodPost
			if tt.body == "" {
				method = http.MethodGet
			}
			rec := env.do(method, tt.path, "7", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}
