package models

import "time"

// MealSource способ добавления приёма пищи
type MealSource string

const (
	MealSourcePhoto  MealSource = "photo"
	MealSourceText   MealSource = "text"
	MealSourceManual MealSource = "manual"
)

// Valid сообщает, что источник известен
func (s MealSource) Valid() bool {
	switch s {
	case MealSourcePhoto, MealSourceText, MealSourceManual:
		return true
	}
	return false
}

// Meal приём пищи
type Meal struct {
	ID         int        `json:"id"`
	TelegramID int64      `json:"telegram_id"`
	Name       string     `json:"name"`
	Source     MealSource `json:"source"`
	Calories   float64    `json:"calories"`
	Protein    float64    `json:"protein"`
	Fat        float64    `json:"fat"`
	Carbs      float64    `json:"carbs"`
	EatenAt    time.Time  `json:"eaten_at"`
}

// DailyNutrition суммарные показатели за сутки (UTC)
type DailyNutrition struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Meals    int     `json:"meals"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	WaterML  int     `json:"water_ml"`
}

// WorkoutPlan сохранённый сгенерированный план
type WorkoutPlan struct {
	ID         string          `json:"id"`
	TelegramID int64           `json:"telegram_id"`
	Program    *AdaptedProgram `json:"program"`
	Text       string          `json:"text"`
	Fallback   bool            `json:"fallback"`
	CreatedAt  time.Time       `json:"created_at"`
}
