package telegram

import (
	"encoding/json"
	"fmt"
)

// Telegram API entity structs

// Update is one webhook delivery. Optional objects are pointers so that a
// missing key can be told apart from an empty one.
type Update struct {
	UpdateID      int      `json:"update_id"`
	Message       *Message `json:"message,omitempty"`
	EditedMessage *Message `json:"edited_message,omitempty"`
}

type Message struct {
	MessageID int64     `json:"message_id"`
	Text      *string   `json:"text,omitempty"`
	Chat      *Chat     `json:"chat"`
	From      *User     `json:"from,omitempty"`
	Date      int64     `json:"date"`
	EditDate  int64     `json:"edit_date,omitempty"`
	Photo     []Photo   `json:"photo,omitempty"`
	Caption   *string   `json:"caption,omitempty"`
	Document  *Document `json:"document,omitempty"`
	Audio     *File     `json:"audio,omitempty"`
	Voice     *File     `json:"voice,omitempty"`
	Video     *File     `json:"video,omitempty"`
	Sticker   *Sticker  `json:"sticker,omitempty"`
	Location  *Location `json:"location,omitempty"`
	Contact   *Contact  `json:"contact,omitempty"`
}

// Chat IDs are kept as raw JSON numbers so they round-trip without loss.
type Chat struct {
	ID        json.Number `json:"id"`
	Type      string      `json:"type"`
	FirstName string      `json:"first_name,omitempty"`
	LastName  string      `json:"last_name,omitempty"`
	Username  string      `json:"username,omitempty"`
}

type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username"`
	LanguageCode string `json:"language_code"`
}

type Photo struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int    `json:"file_size"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

type Document struct {
	FileName     *string `json:"file_name,omitempty"`
	FileID       string  `json:"file_id"`
	FileUniqueID string  `json:"file_unique_id"`
	FileSize     int     `json:"file_size"`
}

// File covers audio, voice and video attachments; only presence matters here.
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Duration     int    `json:"duration,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	FileSize     int    `json:"file_size,omitempty"`
}

type Sticker struct {
	FileID string `json:"file_id"`
	Emoji  string `json:"emoji,omitempty"`
}

type Location struct {
	Latitude  *json.Number `json:"latitude,omitempty"`
	Longitude *json.Number `json:"longitude,omitempty"`
}

type Contact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
}

type SendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type ForwardMessageRequest struct {
	ChatID     string `json:"chat_id"`
	FromChatID string `json:"from_chat_id"`
	MessageID  int64  `json:"message_id"`
}

type SetWebhookRequest struct {
	URL            string   `json:"url"`
	AllowedUpdates []string `json:"allowed_updates"`
}

// Result is the normalized outcome of a Bot API call. Transport and decode
// failures are reported through Error instead of a Go error.
type Result struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
	Error       string          `json:"error,omitempty"`
}

func (r Result) String() string {
	if r.OK {
		return "ok"
	}
	if r.Error != "" {
		return r.Error
	}
	if r.ErrorCode != 0 {
		return fmt.Sprintf("%d: %s", r.ErrorCode, r.Description)
	}
	return r.Description
}
