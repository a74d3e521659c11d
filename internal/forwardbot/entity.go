package forwardbot

import "encoding/json"

type UpdateKind int

const (
	KindOther UpdateKind = iota
	KindNewMessage
	KindEditedMessage
)

func (k UpdateKind) String() string {
	switch k {
	case KindNewMessage:
		return "message"
	case KindEditedMessage:
		return "edited_message"
	}
	return "other"
}

// Update is the normalized form of one inbound webhook delivery. Message is
// nil for KindOther.
type Update struct {
	Kind    UpdateKind
	Message *Message
	Raw     json.RawMessage
}

type Message struct {
	ChatID    string
	MessageID int64
	From      *User
	Content   Content
}

type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

type ContentType int

const (
	ContentUnsupported ContentType = iota
	ContentText
	ContentCaption
	ContentPhoto
	ContentDocument
	ContentAudio
	ContentVoice
	ContentVideo
	ContentSticker
	ContentLocation
	ContentContact
)

// Content holds whichever fields the content type needs; the rest stay zero.
type Content struct {
	Type ContentType

	// ContentText, ContentCaption
	Text string

	// ContentDocument; empty when the platform sent no file name
	FileName string

	// ContentSticker
	Emoji string

	// ContentLocation, kept as sent by the platform
	Latitude  string
	Longitude string

	// ContentContact
	ContactName string
	Phone       string
}
