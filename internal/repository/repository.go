package repository

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// ErrNotFound запись не найдена
var ErrNotFound = errors.New("запись не найдена")

// Repository содержит все репозитории
type Repository struct {
	Preferences *PreferencesRepository
	Plan        *PlanRepository
	Meal        *MealRepository
	Water       *WaterRepository
}

// New создаёт новый экземпляр Repository
func New(db *sql.DB) *Repository {
	return &Repository{
		Preferences: NewPreferencesRepository(db),
		Plan:        NewPlanRepository(db),
		Meal:        NewMealRepository(db),
		Water:       NewWaterRepository(db),
	}
}

// Open открывает соединение с Postgres и проверяет его
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия соединения с БД: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("БД недоступна: %w", err)
	}
	return db, nil
}
