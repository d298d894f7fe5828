package repository

import (
	"context"
	"database/sql"
	"time"

	"fitcoach/internal/models"
)

// MealRepository работает с приёмами пищи
type MealRepository struct {
	db *sql.DB
}

// NewMealRepository создаёт репозиторий приёмов пищи
func NewMealRepository(db *sql.DB) *MealRepository {
	return &MealRepository{db: db}
}

// Create добавляет приём пищи
func (r *MealRepository) Create(ctx context.Context, meal *models.Meal) (int, error) {
	if meal.EatenAt.IsZero() {
		meal.EatenAt = time.Now().UTC()
	}
	if meal.Source == "" {
		meal.Source = models.MealSourceManual
	}

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO meals (telegram_id, name, source, calories, protein, fat, carbs, eaten_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		meal.TelegramID, meal.Name, meal.Source, meal.Calories,
		meal.Protein, meal.Fat, meal.Carbs, meal.EatenAt,
	).Scan(&id)
	meal.ID = id
	return id, err
}

// DailyTotals суммирует КБЖУ за сутки UTC, в которые попадает day
func (r *MealRepository) DailyTotals(ctx context.Context, telegramID int64, day time.Time) (models.DailyNutrition, error) {
	start, end := DayWindow(day)
	totals := models.DailyNutrition{Date: start.Format(time.DateOnly)}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(calories), 0), COALESCE(SUM(protein), 0),
		       COALESCE(SUM(fat), 0), COALESCE(SUM(carbs), 0)
		FROM meals
		WHERE telegram_id = $1 AND eaten_at >= $2 AND eaten_at < $3`,
		telegramID, start, end,
	).Scan(&totals.Meals, &totals.Calories, &totals.Protein, &totals.Fat, &totals.Carbs)
	return totals, err
}

// DayWindow возвращает границы суток UTC [начало, начало следующих суток)
func DayWindow(day time.Time) (time.Time, time.Time) {
	d := day.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
