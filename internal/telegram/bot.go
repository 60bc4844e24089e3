package telegram

import (
	"fmt"
	"strings"

	"go-newspulse-automation/internal/collector"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

func (b *Bot) escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

func (b *Bot) SendArticle(article collector.Article) error {
	//build message chunks
	msgText := fmt.Sprintf("🏢 *%s*\n", b.escapeMarkdown(article.Company))
	msgText += fmt.Sprintf("📰 %s\n", b.escapeMarkdown(article.Title))
	msgText += fmt.Sprintf("🔗 [Read Article](%s)\n", article.URL)

	if article.Published != "" {
		msgText += fmt.Sprintf("📅 %s\n", b.escapeMarkdown(article.Published))
	}

	sentiment := article.Sentiment
	if sentiment == "" {
		sentiment = "neutral"
	}
	msgText += fmt.Sprintf("🌡 Sentiment: %s \\(%s\\)\n",
		b.escapeMarkdown(sentiment), b.escapeMarkdown(fmt.Sprintf("%.2f", article.SentimentScore)))

	msgText += fmt.Sprintf("🤖 Relevance: %s\n", b.escapeMarkdown(fmt.Sprintf("%.2f", article.Confidence)))
	msgText += fmt.Sprintf("🔖 Source: %s\n", b.escapeMarkdown(article.Source))

	//create inline keyboard
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔗 Read Article", article.URL),
		),
	)

	msg := tgbotapi.NewMessage(b.chatID, msgText)
	msg.ParseMode = "MarkdownV2"
	msg.ReplyMarkup = keyboard

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
