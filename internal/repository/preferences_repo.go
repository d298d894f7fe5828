package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"fitcoach/internal/models"
)

// PreferencesRepository работает с анкетами пользователей
type PreferencesRepository struct {
	db *sql.DB
}

// NewPreferencesRepository создаёт репозиторий анкет
func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

// Save создаёт или обновляет анкету пользователя
func (r *PreferencesRepository) Save(ctx context.Context, telegramID int64, prefs models.UserPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("ошибка сериализации анкеты: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_preferences (telegram_id, data)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()`,
		telegramID, string(data),
	)
	return err
}

// Get возвращает анкету пользователя
func (r *PreferencesRepository) Get(ctx context.Context, telegramID int64) (models.UserPreferences, error) {
	var prefs models.UserPreferences
	var data []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM user_preferences WHERE telegram_id = $1", telegramID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return prefs, ErrNotFound
	}
	if err != nil {
		return prefs, err
	}

	if err := json.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("повреждённая анкета %d: %w", telegramID, err)
	}
	return prefs, nil
}

// ListTelegramIDs возвращает всех пользователей с заполненной анкетой
func (r *PreferencesRepository) ListTelegramIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT telegram_id FROM user_preferences ORDER BY telegram_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
