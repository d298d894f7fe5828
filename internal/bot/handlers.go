package bot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fitcoach/internal/excel"
	"fitcoach/internal/i18n"
	"fitcoach/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// loadPreferences возвращает анкету пользователя или пустую (движок подставит значения по умолчанию).
// ok=false, если хранилище недоступно: пользователю уже отправлена ошибка.
func (b *Bot) loadPreferences(ctx context.Context, chatID int64) (models.UserPreferences, bool) {
	prefs, found, err := b.planner.Preferences(ctx, chatID)
	if err != nil {
		b.sendError(chatID, i18n.T("bot.preferences_error", b.lang), err)
		return prefs, false
	}
	if !found {
		b.sendMessage(chatID, i18n.T("bot.no_preferences", b.lang))
	}
	return prefs, true
}

func (b *Bot) handleProgram(ctx context.Context, chatID int64) {
	prefs, ok := b.loadPreferences(ctx, chatID)
	if !ok {
		return
	}
	program := b.planner.Adapt(prefs)
	for _, part := range splitMessage(FormatProgram(&program, b.lang), maxMessageLen) {
		b.sendMessage(chatID, part)
	}
}

func (b *Bot) handlePlan(ctx context.Context, chatID int64) {
	prefs, ok := b.loadPreferences(ctx, chatID)
	if !ok {
		return
	}
	b.sendMessage(chatID, i18n.T("bot.plan_generating", b.lang))

	plan, err := b.planner.Generate(ctx, chatID, prefs)
	if err != nil {
		b.sendError(chatID, i18n.T("bot.plan_error", b.lang), err)
		return
	}
	for _, part := range splitMessage(plan.Text, maxMessageLen) {
		b.sendMessage(chatID, part)
	}
}

func (b *Bot) handleExcel(ctx context.Context, chatID int64) {
	prefs, ok := b.loadPreferences(ctx, chatID)
	if !ok {
		return
	}
	program := b.planner.Adapt(prefs)

	path := filepath.Join(b.exportDir, fmt.Sprintf("program_%d.xlsx", chatID))
	if err := excel.ExportProgram(path, &program, b.lang); err != nil {
		b.sendError(chatID, i18n.T("bot.excel_error", b.lang), err)
		return
	}
	defer os.Remove(path)

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = program.TemplateName
	if _, err := b.sender.Send(doc); err != nil {
		b.sendError(chatID, i18n.T("bot.excel_error", b.lang), err)
	}
}

// sendError отправляет сообщение об ошибке и логирует её
func (b *Bot) sendError(chatID int64, userMessage string, err error) {
	if err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("Ошибка обработки команды")
	}
	b.sendMessage(chatID, userMessage)
}

// sendMessage отправляет сообщение с логированием ошибки
func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.sender.Send(msg)
	if err != nil {
		b.log.Warn().Err(err).Int64("chat_id", chatID).Msg("Не удалось отправить сообщение")
	}
	return err
}
