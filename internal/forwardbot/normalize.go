package forwardbot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/naseer2426/forward-bot/internal/telegram"
)

var (
	ErrMissingChat      = errors.New("message has no chat")
	ErrMissingMessageID = errors.New("message has no message_id")
)

// ParseUpdate decodes a webhook body and normalizes it. A body with neither
// message nor edited_message yields KindOther and no error.
func ParseUpdate(body []byte) (*Update, error) {
	var update telegram.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return nil, fmt.Errorf("decode update: %w", err)
	}
	return Normalize(&update, body)
}

// Normalize converts a wire update into the tagged-union model. message wins
// over edited_message when both are present.
func Normalize(update *telegram.Update, raw json.RawMessage) (*Update, error) {
	out := &Update{Kind: KindOther, Raw: raw}

	switch {
	case update.Message != nil:
		msg, err := normalizeMessage(update.Message, true)
		if err != nil {
			return nil, fmt.Errorf("normalize message: %w", err)
		}
		out.Kind = KindNewMessage
		out.Message = msg
	case update.EditedMessage != nil:
		msg, err := normalizeMessage(update.EditedMessage, false)
		if err != nil {
			return nil, fmt.Errorf("normalize edited_message: %w", err)
		}
		out.Kind = KindEditedMessage
		out.Message = msg
	}

	return out, nil
}

func normalizeMessage(m *telegram.Message, requireID bool) (*Message, error) {
	if m.Chat == nil || m.Chat.ID == "" {
		return nil, ErrMissingChat
	}
	if requireID && m.MessageID == 0 {
		return nil, ErrMissingMessageID
	}

	msg := &Message{
		ChatID:    m.Chat.ID.String(),
		MessageID: m.MessageID,
		Content:   classify(m),
	}
	if m.From != nil {
		msg.From = &User{
			ID:        m.From.ID,
			Username:  m.From.Username,
			FirstName: m.From.FirstName,
			LastName:  m.From.LastName,
		}
	}
	return msg, nil
}

// classify picks the first matching content kind in fixed priority order.
func classify(m *telegram.Message) Content {
	switch {
	case m.Text != nil:
		return Content{Type: ContentText, Text: *m.Text}
	case m.Caption != nil:
		return Content{Type: ContentCaption, Text: *m.Caption}
	case m.Photo != nil:
		return Content{Type: ContentPhoto}
	case m.Document != nil:
		c := Content{Type: ContentDocument}
		if m.Document.FileName != nil {
			c.FileName = *m.Document.FileName
		}
		return c
	case m.Audio != nil:
		return Content{Type: ContentAudio}
	case m.Voice != nil:
		return Content{Type: ContentVoice}
	case m.Video != nil:
		return Content{Type: ContentVideo}
	case m.Sticker != nil:
		return Content{Type: ContentSticker, Emoji: m.Sticker.Emoji}
	case m.Location != nil:
		return Content{
			Type:      ContentLocation,
			Latitude:  coordinate(m.Location.Latitude),
			Longitude: coordinate(m.Location.Longitude),
		}
	case m.Contact != nil:
		name := strings.TrimSpace(m.Contact.FirstName + " " + m.Contact.LastName)
		return Content{Type: ContentContact, ContactName: name, Phone: m.Contact.PhoneNumber}
	}
	return Content{Type: ContentUnsupported}
}

func coordinate(n *json.Number) string {
	if n == nil || *n == "" {
		return "0"
	}
	return n.String()
}
