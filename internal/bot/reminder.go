package bot

import (
	"context"
	"fmt"

	"fitcoach/internal/i18n"

	"github.com/robfig/cron"
)

// RecipientLister возвращает пользователей для рассылки
type RecipientLister interface {
	ListTelegramIDs(ctx context.Context) ([]int64, error)
}

// StartWeeklyReminder запускает еженедельное напоминание по cron-расписанию (с секундами)
func (b *Bot) StartWeeklyReminder(spec string, recipients RecipientLister) (*cron.Cron, error) {
	c := cron.New()
	err := c.AddFunc(spec, func() {
		b.sendWeeklyReminder(context.Background(), recipients)
	})
	if err != nil {
		return nil, fmt.Errorf("некорректное расписание напоминаний %q: %w", spec, err)
	}
	c.Start()

	b.log.Info().Str("spec", spec).Msg("Запущен сервис напоминаний")
	return c, nil
}

// sendWeeklyReminder рассылает напоминание, возвращает число доставленных
func (b *Bot) sendWeeklyReminder(ctx context.Context, recipients RecipientLister) int {
	ids, err := recipients.ListTelegramIDs(ctx)
	if err != nil {
		b.log.Error().Err(err).Msg("Ошибка получения списка пользователей для напоминания")
		return 0
	}

	text := i18n.T("bot.reminder", b.lang)
	sent := 0
	for _, id := range ids {
		if err := b.sendMessage(id, text); err == nil {
			sent++
		}
	}
	b.log.Info().Int("sent", sent).Int("total", len(ids)).Msg("Напоминания отправлены")
	return sent
}
