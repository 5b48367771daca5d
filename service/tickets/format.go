package tickets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/deskrelay/bot-telegram/model/profile"
	"github.com/deskrelay/bot-telegram/util"
	"github.com/microcosm-cc/bluemonday"
)

const fmtLenMaxTopicName = 128

// Format renders the user-visible texts. See
// https://core.telegram.org/bots/api#html-style for the output mode.
// Every user-controlled value passes the html policy before it is
// embedded.
type Format struct {
	HtmlPolicy *bluemonday.Policy
}

func (f Format) TopicName(name, status string) (title string) {
	title = fmt.Sprintf("%s | %s", name, strings.ToUpper(status))
	title = truncateStringUtf8(title, fmtLenMaxTopicName)
	return
}

func (f Format) Card(t Ticket, userName string, p profile.Profile) (txt string) {
	var sb strings.Builder
	sb.WriteString("👤 <b>NEW TICKET OPENED</b>\n")
	sb.WriteString("━━━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("📛 <b>Name:</b> %s\n", f.HtmlPolicy.Sanitize(p.Name)))
	sb.WriteString(fmt.Sprintf("🆔 <b>User ID:</b> <code>%d</code>\n", t.UserId))
	switch userName {
	case "":
		sb.WriteString(fmt.Sprintf("🔗 <b>Username:</b> <a href=\"%s\">none</a>\n", util.UserLink(t.UserId)))
	default:
		sb.WriteString(fmt.Sprintf("🔗 <b>Username:</b> @%s\n", f.HtmlPolicy.Sanitize(userName)))
	}
	sb.WriteString(fmt.Sprintf("🎫 <b>Ticket:</b> <code>%s</code>\n", t.Id))
	sb.WriteString("━━━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("💰 <b>Wallet Balance:</b> ₹%s\n", f.HtmlPolicy.Sanitize(p.Balance)))
	sb.WriteString(fmt.Sprintf("🛒 <b>Total Sales:</b> %s\n", f.HtmlPolicy.Sanitize(p.Sales)))
	sb.WriteString(fmt.Sprintf("🏆 <b>Status:</b> %s\n", strings.ToUpper(f.HtmlPolicy.Sanitize(p.Status))))
	sb.WriteString(fmt.Sprintf("📅 <b>Joined:</b> %s\n", f.HtmlPolicy.Sanitize(p.Joined)))
	sb.WriteString(fmt.Sprintf("🤝 <b>Referrals:</b> %s\n", f.HtmlPolicy.Sanitize(p.Referrals)))
	sb.WriteString(fmt.Sprintf("🧾 <b>Purchases:</b> %s\n", f.HtmlPolicy.Sanitize(p.Purchases)))
	sb.WriteString("━━━━━━━━━━━━━━━━━━\n")
	sb.WriteString("🔔 <i>User is waiting for support...</i>")
	txt = sb.String()
	return
}

func truncateStringUtf8(s string, lenMax int) string {
	if len(s) <= lenMax {
		return s
	}
	// cut at a rune boundary
	for i := lenMax - 1; i >= 0; i-- {
		if utf8.RuneStart(s[i]) {
			return s[:i]
		}
	}
	return ""
}
