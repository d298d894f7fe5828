package bot

import (
	"fmt"
	"strings"

	"fitcoach/internal/i18n"
	"fitcoach/internal/models"
)

// лимит Telegram 4096 символов, оставляем запас
const maxMessageLen = 4000

// FormatProgram форматирует адаптированную программу для Telegram
func FormatProgram(program *models.AdaptedProgram, lang i18n.Language) string {
	var sb strings.Builder

	name := program.TemplateName
	if name == "" {
		name = "-"
	}
	sb.WriteString("📋 " + i18n.Tf("program.header", lang, name) + "\n")
	sb.WriteString(i18n.Tf("program.meta", lang,
		i18n.T("discipline."+string(program.Discipline), lang),
		i18n.T("tier."+string(program.Tier), lang),
		program.Summary.IntensityMultiplier*100,
	))
	sb.WriteString("\n\n")

	if program.Empty() {
		sb.WriteString(i18n.T("program.empty", lang))
		return sb.String()
	}

	for i, day := range program.Days {
		sb.WriteString(formatDay(i+1, day, lang))
		sb.WriteString("\n")
	}

	if len(program.Summary.Substitutions) > 0 {
		sb.WriteString(i18n.T("program.substitutions", lang) + "\n")
		for _, s := range program.Summary.Substitutions {
			sb.WriteString(fmt.Sprintf("• %s: %s → %s (%s)\n",
				i18n.Tf("program.day", lang, s.Day), s.Original, s.Replacement, i18n.T("reason."+s.Reason, lang)))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func formatDay(num int, day models.TrainingDay, lang i18n.Language) string {
	var sb strings.Builder

	title := fmt.Sprintf("%d. %s", num, day.Title)
	if wd := i18n.Weekday(day.Weekday, lang); wd != "" {
		title += " (" + wd + ")"
	}
	sb.WriteString(title + "\n")
	sb.WriteString("━━━━━━━━━━━━━━━━━━━━━\n")

	for j, ex := range day.Exercises {
		line := fmt.Sprintf("%d. %s\n   %s", j+1, ex.Name, ex.Volume.String())
		if ex.Load != "" {
			line += fmt.Sprintf(" | %s: %s", i18n.T("program.load", lang), ex.Load)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// splitMessage делит текст на части не длиннее limit символов, по возможности по строкам
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		parts = append(parts, strings.TrimRight(string(runes[:cut]), "\n"))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
