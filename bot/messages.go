package bot

import (
	"fmt"
	"html"
	"strings"

	"tarot-telegram-bot/reading"
)

// Menu button labels. Incoming text is matched against them exactly.
const (
	BtnLove    = "💗 Любовь"
	BtnMoney   = "💼 Деньги/работа"
	BtnAdvice  = "🌙 Совет дня"
	BtnSupport = "🛟 Техподдержка"

	MenuPlaceholder   = "Выбери тему 👇"
	SupportButtonText = "✉️ Написать в поддержку"
)

// MenuRows is the layout of the reply keyboard.
var MenuRows = [][]string{
	{BtnLove, BtnMoney},
	{BtnAdvice},
	{BtnSupport},
}

var topicButtons = map[string]reading.Topic{
	BtnLove:   reading.Love,
	BtnMoney:  reading.Money,
	BtnAdvice: reading.Advice,
}

const (
	startText = "✨ Приветствую тебя в мире знаков и подсказок.\n" +
		"Выбери тему и посмотри, что важно для тебя сейчас 🔮"
	startLimited  = "\n\nЛимит: 1 раз в сутки на каждую тему."
	startTestMode = "\n\n🧪 <b>Тест-режим:</b> лимитов нет, можешь нажимать сколько угодно."
	supportText   = "Техподдержка 👇"
)

// SupportURL builds the t.me link for a support account given with or
// without the leading @.
func SupportURL(username string) string {
	return "https://t.me/" + strings.TrimLeft(strings.TrimSpace(username), "@")
}

// topicFor maps a menu button, or a "/love" style command, to its topic.
func topicFor(text string) (reading.Topic, bool) {
	if topic, ok := topicButtons[text]; ok {
		return topic, true
	}
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	topic, err := reading.ParseTopic(strings.TrimPrefix(text, "/"))
	return topic, err == nil
}

func buttonFor(topic reading.Topic) string {
	for text, t := range topicButtons {
		if t == topic {
			return text
		}
	}
	return topic.Title()
}

func formatStart(testMode bool) string {
	if testMode {
		return startText + startTestMode
	}
	return startText + startLimited
}

func formatWait(topic reading.Topic, seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	return fmt.Sprintf("⛔ На сегодня лимит по теме «%s» уже исчерпан.\n"+
		"Новый расклад будет доступен после 00:00.\n"+
		"До обновления примерно: %dч %dм", topic.Title(), h, m)
}

func formatEmptyCatalog(dir string) string {
	return "Я не вижу папку <b>cards</b> или в ней нет картинок.\n\n" +
		fmt.Sprintf("Папка должна быть тут: <code>%s</code>\n", html.EscapeString(dir)) +
		"И внутри должны лежать файлы .jpg/.png/.webp"
}

func formatDebug(dir string, exists bool, found int, testMode bool) string {
	return fmt.Sprintf("🔎 <b>DEBUG</b>\n"+
		"CARDS_DIR: <code>%s</code>\n"+
		"CARDS_DIR exists: <b>%t</b>\n"+
		"Cards found: <b>%d</b>\n"+
		"TEST_MODE: <b>%t</b>", html.EscapeString(dir), exists, found, testMode)
}

func formatDrawing(topic reading.Topic) string {
	return buttonFor(topic) + "\nТяну карту… ✨"
}

func formatCaption(label string) string {
	return fmt.Sprintf("🃏 Твоя карта: <b>%s</b>", html.EscapeString(label))
}
