package formatter

import (
	"fmt"
	"strings"

	"github.com/mixelka/tempmailbot/pkg/models"
)

// TelegramFormatter renders pipeline results for Telegram (HTML parse mode)
type TelegramFormatter struct{}

// NewTelegramFormatter creates a new Telegram formatter
func NewTelegramFormatter() *TelegramFormatter {
	return &TelegramFormatter{}
}

// FormatMailboxCreated renders the new-mailbox confirmation
func (f *TelegramFormatter) FormatMailboxCreated(address string) string {
	return fmt.Sprintf("Почта создана:\n\n<code>%s</code>", f.escapeHTML(address))
}

// FormatCurrentMailbox renders the active address
func (f *TelegramFormatter) FormatCurrentMailbox(address string) string {
	return fmt.Sprintf("Текущая почта:\n\n<code>%s</code>", f.escapeHTML(address))
}

// FormatCodeResults renders one block per message, in inbox order
func (f *TelegramFormatter) FormatCodeResults(results []models.CodeResult) string {
	var sb strings.Builder
	sb.WriteString("🔐 <b>Коды из писем:</b>\n")

	for _, r := range results {
		code := "—"
		if r.Code != "" {
			code = fmt.Sprintf("<code>%s</code>", r.Code)
		}
		sb.WriteString(fmt.Sprintf("\n🏷 %s\n", f.escapeHTML(r.Service)))
		sb.WriteString(fmt.Sprintf("🧾 %s\n", f.escapeHTML(r.Subject)))
		sb.WriteString(fmt.Sprintf("🕒 %s\n", f.escapeHTML(r.Time)))
		sb.WriteString(fmt.Sprintf("🔐 %s\n", code))
	}

	return sb.String()
}

// FormatHistory renders the user's recently created addresses
func (f *TelegramFormatter) FormatHistory(addresses []string) string {
	if len(addresses) == 0 {
		return "Вы ещё не создавали почту."
	}

	var sb strings.Builder
	sb.WriteString("<b>Последние адреса:</b>\n\n")
	for _, addr := range addresses {
		sb.WriteString(fmt.Sprintf("<code>%s</code>\n", f.escapeHTML(addr)))
	}
	sb.WriteString("\nАктивен только последний созданный адрес.")
	return sb.String()
}

// escapeHTML escapes HTML special characters for Telegram
func (f *TelegramFormatter) escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
