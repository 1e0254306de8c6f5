package telegram

import (
	"fmt"
	"strings"
	"time"

	"tweet-fieldtype/pkg/fieldtype"
	"tweet-fieldtype/pkg/fieldtype/tweet"

	"github.com/dustin/go-humanize"
)

func renderStored(value tweet.Value, name string) string {
	msg := "✅ *Tweet saved!*\n\n"
	msg += fmt.Sprintf("🔖 *Name:* `%s`\n", name)
	msg += fmt.Sprintf("🔗 *URL:* `%s`\n", value.URL)
	if value.Contents == "" {
		msg += "\n⏳ The embed is not available yet, I'll let you know once it is fetched.\n"
	} else {
		msg += fmt.Sprintf("👤 *Author:* `%s`\n", value.AuthorURL)
		msg += "🧩 Embed fetched and stored.\n"
	}

	return msg
}

// markdownEscaper escapes user supplied text placed outside code spans.
var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "[", "\\[", "`", "\\`")

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

func renderValidationErrors(errs []fieldtype.ValidationError) string {
	msg := "🚫 *This tweet can't be saved*\n\n"
	for _, err := range errs {
		msg += fmt.Sprintf("🔸 %s\n", escapeMarkdown(err.Error()))
	}

	return msg
}

func renderShow(value tweet.Value, name string, storedAt time.Time) string {
	msg := fmt.Sprintf("🐦 `%s`\n\n", name)
	msg += fmt.Sprintf("🔗 *URL:* `%s`\n", value.URL)
	if value.AuthorURL != "" {
		msg += fmt.Sprintf("👤 *Author:* `%s`\n", value.AuthorURL)
	}
	if value.Contents == "" {
		msg += "⏳ *Embed:* pending\n"
	} else {
		msg += fmt.Sprintf("🧩 *Embed:* %s\n", humanize.Bytes(uint64(len(value.Contents))))
	}
	if !storedAt.IsZero() {
		msg += fmt.Sprintf("📅 *Saved:* %s\n", humanize.Time(storedAt))
	}

	return msg
}

func renderEmbedReady(url string) string {
	msg := "🧩 *Embed ready!*\n\n"
	msg += fmt.Sprintf("The embed for `%s` has been fetched. Type `/show` to see it.\n", url)

	return msg
}

func renderStats(count int64) string {
	return fmt.Sprintf("📊 *Stored tweets:* `%s`\n", humanize.Comma(count))
}

func getGenericErrorMessage() string {
	msg := "😔 *Oops! Something Went Wrong*\n\n"
	msg += "It looks like I couldn't complete your request. Here's what you can try:\n"
	msg += "1️⃣ Double-check the information you provided.\n"
	msg += "2️⃣ Wait a moment and try again.\n"

	return msg
}

func getMessageFromMessageType(messageType MessageType) string {
	switch messageType {
	case MessageTypeHelp:
		msg := "🤖 *Tweet Field* – Help Guide 📢\n\n"
		msg += "📝 *Commands available:*\n"
		msg += "🐦 `/tweet <url>` – Save a tweet, e.g. `/tweet https://twitter.com/user/status/123`.\n"
		msg += "👀 `/show` – Show the saved tweet.\n"
		msg += "❌ `/remove` – Remove the saved tweet.\n"
		msg += "📊 `/stats` – Number of stored tweets.\n"
		msg += "💡 `/help` – Show this help message.\n"

		return msg

	case MessageTypeUsage:
		return "ℹ️ Usage: `/tweet https://twitter.com/<author>/status/<id>`\n"

	case MessageTypeNoTweet:
		return "🤷 No tweet saved yet. Type `/tweet <url>` to save one.\n"

	case MessageTypeRemoved:
		return "👋 *Tweet removed* ❌\n"

	default:
		msg := "👋 Hi! I'm *Tweet Field* 🤖\n\n"
		msg += "Send me a Twitter status URL and I'll validate it, fetch its embed and keep it for you.\n\n"
		msg += "💬 *Need help?* Type `/help` for a list of commands."

		return msg
	}
}
