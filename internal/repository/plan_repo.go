package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"fitcoach/internal/models"

	"github.com/google/uuid"
)

// PlanRepository работает со сгенерированными планами
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository создаёт репозиторий планов
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create сохраняет план и возвращает его ID
func (r *PlanRepository) Create(ctx context.Context, plan *models.WorkoutPlan) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}

	program, err := json.Marshal(plan.Program)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации программы: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO workout_plans (id, telegram_id, program, plan_text, fallback)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		plan.ID, plan.TelegramID, string(program), plan.Text, plan.Fallback,
	).Scan(&plan.CreatedAt)
	if err != nil {
		return "", err
	}
	return plan.ID, nil
}

// GetLatest возвращает последний план пользователя
func (r *PlanRepository) GetLatest(ctx context.Context, telegramID int64) (*models.WorkoutPlan, error) {
	plan := &models.WorkoutPlan{}
	var program []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT id, telegram_id, program, plan_text, fallback, created_at
		FROM workout_plans
		WHERE telegram_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, telegramID).Scan(
		&plan.ID, &plan.TelegramID, &program, &plan.Text, &plan.Fallback, &plan.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(program, &plan.Program); err != nil {
		return nil, fmt.Errorf("повреждённая программа плана %s: %w", plan.ID, err)
	}
	return plan, nil
}
