package bot

import (
	"context"
	"time"

	"fitcoach/internal/i18n"
	"fitcoach/internal/planner"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// sender отправляет сообщения в Telegram (реализуется *tgbotapi.BotAPI)
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot представляет Telegram бота
type Bot struct {
	api       *tgbotapi.BotAPI
	sender    sender
	planner   *planner.Service
	lang      i18n.Language
	exportDir string
	log       zerolog.Logger
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, p *planner.Service, lang i18n.Language, exportDir string, log zerolog.Logger) *Bot {
	return &Bot{
		api:       api,
		sender:    api,
		planner:   p,
		lang:      lang,
		exportDir: exportDir,
		log:       log.With().Str("component", "bot").Logger(),
	}
}

// Start запускает обработку обновлений и блокируется до отмены ctx
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.log.Info().Str("username", b.api.Self.UserName).Msg("Бот запущен")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	b.handleUpdates(ctx, updates)
	return nil
}

func (b *Bot) handleUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}
		// генерация плана ждёт AI, остальные чаты не должны стоять в очереди
		if update.Message.IsCommand() && update.Message.Command() == "plan" {
			go b.handleMessage(ctx, update.Message)
			continue
		}
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !message.IsCommand() {
		b.sendMessage(chatID, i18n.T("bot.unknown_command", b.lang))
		return
	}

	// генерация через AI может быть долгой
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	switch message.Command() {
	case "start", "help":
		b.sendMessage(chatID, i18n.T("bot.start", b.lang))
	case "program":
		b.handleProgram(ctx, chatID)
	case "plan":
		b.handlePlan(ctx, chatID)
	case "excel":
		b.handleExcel(ctx, chatID)
	default:
		b.sendMessage(chatID, i18n.T("bot.unknown_command", b.lang))
	}
}
