package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// messageSender is the part of *tgbotapi.BotAPI the alerter uses.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramAlerter pushes operator alerts into a single Telegram chat.
type TelegramAlerter struct {
	bot    messageSender
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or operator chat is empty, operator alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

// Alert returns immediately; delivery happens in the background.
func (a *TelegramAlerter) Alert(ctx context.Context, subject, detail string) {
	text := fmt.Sprintf("*%s*\n\n%s", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, subject), tgbotapi.EscapeText(tgbotapi.ModeMarkdown, detail))
	go a.send(context.WithoutCancel(ctx), text)
}

func (a *TelegramAlerter) send(ctx context.Context, text string) {
	if a.bot == nil {
		a.logger.Debug("operator alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		a.logger.Debug("operator alert skipped (context cancelled)",
			logger.Int64("chat_id", a.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(a.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("failed to send operator alert",
			logger.Int64("chat_id", a.chatID),
			logger.String("error", err.Error()),
		)
	}
}
