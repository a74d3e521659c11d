package forwardbot

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

const (
	AckText = "Your message has been forwarded. Thank you!"

	newMessageHeader    = "Message from %s:\n\n%s"
	editedMessageHeader = "EDITED message from %s:\n\n%s"
)

// SenderInfo renders "@username First Last (ID: n)", skipping absent parts.
// The id is always present; a missing sender renders as "(ID: unknown)".
func SenderInfo(u *User) string {
	if u == nil {
		return "(ID: unknown)"
	}

	var parts []string
	if u.Username != "" {
		parts = append(parts, "@"+html.EscapeString(u.Username))
	}
	if u.FirstName != "" || u.LastName != "" {
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		parts = append(parts, html.EscapeString(name))
	}
	parts = append(parts, "(ID: "+strconv.FormatInt(u.ID, 10)+")")
	return strings.Join(parts, " ")
}

// Summary renders the content of a new message for the fallback notification.
func Summary(c Content) string {
	switch c.Type {
	case ContentText:
		return html.EscapeString(c.Text)
	case ContentCaption:
		return "[CAPTION] " + html.EscapeString(c.Text)
	case ContentPhoto:
		return "[PHOTO]"
	case ContentDocument:
		name := c.FileName
		if name == "" {
			name = "document"
		}
		return "[DOCUMENT: " + html.EscapeString(name) + "]"
	case ContentAudio:
		return "[AUDIO]"
	case ContentVoice:
		return "[VOICE MESSAGE]"
	case ContentVideo:
		return "[VIDEO]"
	case ContentSticker:
		return "[STICKER: " + html.EscapeString(c.Emoji) + "]"
	case ContentLocation:
		return fmt.Sprintf("[LOCATION: %s, %s]", c.Latitude, c.Longitude)
	case ContentContact:
		info := c.ContactName
		if c.Phone != "" {
			info += ", " + c.Phone
		}
		return "[CONTACT: " + html.EscapeString(info) + "]"
	}
	return "[UNSUPPORTED MESSAGE TYPE]"
}

// EditedSummary only knows text and captions; everything else is reported
// as unsupported.
func EditedSummary(c Content) string {
	switch c.Type {
	case ContentText, ContentCaption:
		return Summary(c)
	}
	return "[UNSUPPORTED EDITED MESSAGE TYPE]"
}

func NewMessageNotification(m *Message) string {
	return fmt.Sprintf(newMessageHeader, SenderInfo(m.From), Summary(m.Content))
}

func EditedMessageNotification(m *Message) string {
	return fmt.Sprintf(editedMessageHeader, SenderInfo(m.From), EditedSummary(m.Content))
}
