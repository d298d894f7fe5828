package planner

import (
	"context"
	"errors"
	"fmt"

	"fitcoach/internal/i18n"
	"fitcoach/internal/models"
	"fitcoach/internal/programs"
	"fitcoach/internal/repository"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// PreferencesStore хранилище анкет
type PreferencesStore interface {
	Save(ctx context.Context, telegramID int64, prefs models.UserPreferences) error
	Get(ctx context.Context, telegramID int64) (models.UserPreferences, error)
}

// PlanStore хранилище сгенерированных планов
type PlanStore interface {
	Create(ctx context.Context, plan *models.WorkoutPlan) (string, error)
	GetLatest(ctx context.Context, telegramID int64) (*models.WorkoutPlan, error)
}

// PlanWriter превращает адаптированную программу в текстовый план
type PlanWriter interface {
	Generate(ctx context.Context, program *models.AdaptedProgram, prefs models.UserPreferences) (string, error)
}

// GeneratedPlan результат генерации
type GeneratedPlan struct {
	ID       string                 `json:"id"`
	Program  *models.AdaptedProgram `json:"program"`
	Text     string                 `json:"text"`
	Fallback bool                   `json:"fallback"`
}

// Service связывает движок адаптации, генератор планов и хранилища
type Service struct {
	adapter *programs.Adapter
	writer  PlanWriter
	prefs   PreferencesStore
	plans   PlanStore
	cache   *lru.Cache[string, string]
	lang    i18n.Language
	log     zerolog.Logger
}

// Config параметры сервиса
type Config struct {
	Adapter     *programs.Adapter
	Writer      PlanWriter // nil - всегда базовый план
	Preferences PreferencesStore
	Plans       PlanStore
	CacheSize   int
	Lang        i18n.Language
	Logger      zerolog.Logger
}

// New создаёт сервис
func New(cfg Config) (*Service, error) {
	if cfg.Adapter == nil {
		return nil, errors.New("не задан адаптер программ")
	}
	if cfg.Preferences == nil || cfg.Plans == nil {
		return nil, errors.New("не заданы хранилища")
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания кэша планов: %w", err)
	}

	return &Service{
		adapter: cfg.Adapter,
		writer:  cfg.Writer,
		prefs:   cfg.Preferences,
		plans:   cfg.Plans,
		cache:   cache,
		lang:    cfg.Lang,
		log:     cfg.Logger.With().Str("component", "planner").Logger(),
	}, nil
}

// Adapt подбирает и адаптирует программу
func (s *Service) Adapt(prefs models.UserPreferences) models.AdaptedProgram {
	return s.adapter.Adapt(prefs)
}

// Preferences возвращает сохранённую анкету. found=false, если анкеты нет.
func (s *Service) Preferences(ctx context.Context, telegramID int64) (models.UserPreferences, bool, error) {
	prefs, err := s.prefs.Get(ctx, telegramID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.UserPreferences{}, false, nil
	}
	if err != nil {
		return models.UserPreferences{}, false, fmt.Errorf("ошибка загрузки анкеты: %w", err)
	}
	return prefs, true, nil
}

// SavePreferences сохраняет анкету
func (s *Service) SavePreferences(ctx context.Context, telegramID int64, prefs models.UserPreferences) error {
	if err := s.prefs.Save(ctx, telegramID, prefs); err != nil {
		return fmt.Errorf("ошибка сохранения анкеты: %w", err)
	}
	return nil
}

// Latest возвращает последний сохранённый план
func (s *Service) Latest(ctx context.Context, telegramID int64) (*models.WorkoutPlan, error) {
	return s.plans.GetLatest(ctx, telegramID)
}

// Generate адаптирует программу, получает текстовый план и сохраняет его
func (s *Service) Generate(ctx context.Context, telegramID int64, prefs models.UserPreferences) (*GeneratedPlan, error) {
	program := s.adapter.Adapt(prefs)
	text, fallback := s.planText(ctx, telegramID, &program, prefs)

	plan := &models.WorkoutPlan{
		TelegramID: telegramID,
		Program:    &program,
		Text:       text,
		Fallback:   fallback,
	}
	id, err := s.plans.Create(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения плана: %w", err)
	}

	s.log.Info().
		Int64("telegram_id", telegramID).
		Str("plan_id", id).
		Str("template", program.TemplateName).
		Int("exercises", program.ExerciseCount()).
		Bool("fallback", fallback).
		Msg("План составлен")

	return &GeneratedPlan{ID: id, Program: &program, Text: text, Fallback: fallback}, nil
}

func (s *Service) planText(ctx context.Context, telegramID int64, program *models.AdaptedProgram, prefs models.UserPreferences) (string, bool) {
	if program.Empty() || s.writer == nil {
		return s.FallbackText(program.Discipline), true
	}

	key := prefs.Fingerprint()
	if text, ok := s.cache.Get(key); ok {
		return text, false
	}

	text, err := s.writer.Generate(ctx, program, prefs)
	if err != nil {
		s.log.Warn().Err(err).Int64("telegram_id", telegramID).Msg("AI недоступен, отдаю базовый план")
		return s.FallbackText(program.Discipline), true
	}
	s.cache.Add(key, text)
	return text, false
}

// FallbackText базовый план по направлению
func (s *Service) FallbackText(d models.Discipline) string {
	return i18n.T("plan.fallback."+string(d), s.lang)
}
