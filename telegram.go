package main

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"tarot-telegram-bot/bot"
)

// telegramSender delivers bot messages through the Bot API, throttled to
// stay under Telegram's flood limits.
type telegramSender struct {
	api        *tgbotapi.BotAPI
	limiter    *rate.Limiter
	supportURL string
}

func newTelegramSender(api *tgbotapi.BotAPI, perSecond int, supportURL string) *telegramSender {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &telegramSender{
		api:        api,
		limiter:    rate.NewLimiter(limit, 1),
		supportURL: supportURL,
	}
}

func (s *telegramSender) Send(ctx context.Context, msg bot.Message) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for send slot: %w", err)
	}

	var c tgbotapi.Chattable
	if msg.PhotoPath != "" {
		photo := tgbotapi.NewPhoto(msg.ChatID, tgbotapi.FilePath(msg.PhotoPath))
		photo.Caption = msg.Text
		if msg.HTML {
			photo.ParseMode = tgbotapi.ModeHTML
		}
		photo.ReplyMarkup = s.markup(msg.Markup)
		c = photo
	} else {
		text := tgbotapi.NewMessage(msg.ChatID, msg.Text)
		if msg.HTML {
			text.ParseMode = tgbotapi.ModeHTML
		}
		text.ReplyMarkup = s.markup(msg.Markup)
		c = text
	}

	if _, err := s.api.Send(c); err != nil {
		return fmt.Errorf("send to chat %d: %w", msg.ChatID, err)
	}
	return nil
}

func (s *telegramSender) markup(m bot.Markup) interface{} {
	switch m {
	case bot.MenuMarkup:
		return menuKeyboard()
	case bot.SupportMarkup:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL(bot.SupportButtonText, s.supportURL),
			),
		)
	}
	return nil
}

func menuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(bot.MenuRows))
	for _, labels := range bot.MenuRows {
		row := make([]tgbotapi.KeyboardButton, 0, len(labels))
		for _, label := range labels {
			row = append(row, tgbotapi.NewKeyboardButton(label))
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(row...))
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	kb.InputFieldPlaceholder = bot.MenuPlaceholder
	return kb
}
