package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// WaterRepository работает с учётом воды
type WaterRepository struct {
	db *sql.DB
}

// NewWaterRepository создаёт репозиторий учёта воды
func NewWaterRepository(db *sql.DB) *WaterRepository {
	return &WaterRepository{db: db}
}

// Add записывает выпитую воду
func (r *WaterRepository) Add(ctx context.Context, telegramID int64, amountML int) error {
	if amountML <= 0 {
		return fmt.Errorf("объём воды должен быть положительным: %d", amountML)
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO water_logs (telegram_id, amount_ml) VALUES ($1, $2)",
		telegramID, amountML,
	)
	return err
}

// DailyTotal возвращает выпитую за сутки UTC воду в мл
func (r *WaterRepository) DailyTotal(ctx context.Context, telegramID int64, day time.Time) (int, error) {
	start, end := DayWindow(day)
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_ml), 0)
		FROM water_logs
		WHERE telegram_id = $1 AND logged_at >= $2 AND logged_at < $3`,
		telegramID, start, end,
	).Scan(&total)
	return total, err
}
