package ai

import (
	"context"
	"fmt"
	"strings"

	"fitcoach/internal/models"
)

// SystemPromptPlan системный промпт для составления плана тренировок
const SystemPromptPlan = `Ты - профессиональный фитнес-тренер. Тебе дают базовую программу, уже адаптированную под
оборудование, травмы и уровень клиента. Составь на её основе понятный план на неделю:
для каждого дня - разминка, упражнения с подходами и повторами, отдых между подходами, заминка.
Не добавляй упражнения, требующие оборудования, которого у клиента нет. Отвечай на русском языке.`

// Completer выполняет запрос к языковой модели
type Completer interface {
	SimpleChat(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// PlanGenerator составляет текстовый план по адаптированной программе
type PlanGenerator struct {
	client Completer
}

// NewPlanGenerator создаёт генератор планов
func NewPlanGenerator(client Completer) *PlanGenerator {
	return &PlanGenerator{client: client}
}

// Generate отправляет адаптированную программу и пожелания клиента в модель
func (g *PlanGenerator) Generate(ctx context.Context, program *models.AdaptedProgram, prefs models.UserPreferences) (string, error) {
	prompt := BuildPlanPrompt(program, prefs)

	response, err := g.client.SimpleChat(ctx, SystemPromptPlan, prompt)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации плана: %w", err)
	}

	response = strings.TrimSpace(response)
	if response == "" {
		return "", fmt.Errorf("модель вернула пустой план")
	}
	return response, nil
}

// BuildPlanPrompt формирует запрос к модели
func BuildPlanPrompt(program *models.AdaptedProgram, prefs models.UserPreferences) string {
	var sb strings.Builder
	s := program.Summary

	sb.WriteString("ДАННЫЕ КЛИЕНТА:\n")
	sb.WriteString(fmt.Sprintf("- Цель: %s\n", valueOr(prefs.Goals, "не указана")))
	sb.WriteString(fmt.Sprintf("- Направление: %s, уровень: %s, пол: %s\n", program.Discipline, program.Tier, program.Gender))
	sb.WriteString(fmt.Sprintf("- Уровень подготовки: %d/10 (интенсивность %.0f%%)\n", s.FitnessLevel, s.IntensityMultiplier*100))
	sb.WriteString(fmt.Sprintf("- Дни тренировок: %s\n", joinInts(s.AvailableDays)))
	sb.WriteString(fmt.Sprintf("- Длительность тренировки: %s\n", s.SessionDuration))
	sb.WriteString(fmt.Sprintf("- Оборудование: %s\n", valueOr(strings.Join(s.Equipment, ", "), "нет")))
	sb.WriteString(fmt.Sprintf("- Травмы/ограничения: %s\n", valueOr(strings.Join(s.Injuries, ", "), "нет")))
	if len(s.PreferredExercises) > 0 {
		sb.WriteString(fmt.Sprintf("- Любимые упражнения: %s\n", strings.Join(s.PreferredExercises, ", ")))
	}

	if program.Empty() {
		sb.WriteString("\nБазовой программы нет. Составь план с нуля по данным клиента.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\nБАЗОВАЯ ПРОГРАММА: %s\n", program.TemplateName))
	for i, day := range program.Days {
		sb.WriteString(fmt.Sprintf("\nДень %d (день недели %d): %s\n", i+1, day.Weekday, day.Title))
		for j, ex := range day.Exercises {
			line := fmt.Sprintf("%d. %s %s", j+1, ex.Name, ex.Volume.String())
			if ex.Load != "" {
				line += " (" + ex.Load + ")"
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(s.Substitutions) > 0 {
		sb.WriteString("\nЗАМЕНЫ (не возвращай исходные упражнения):\n")
		for _, sub := range s.Substitutions {
			sb.WriteString(fmt.Sprintf("- день %d: %s -> %s (%s)\n", sub.Day, sub.Original, sub.Replacement, sub.Reason))
		}
	}

	return sb.String()
}

func valueOr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
