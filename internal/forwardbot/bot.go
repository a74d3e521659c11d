package forwardbot

import (
	"log"
	"runtime/debug"

	"github.com/naseer2426/forward-bot/internal/config"
	"github.com/naseer2426/forward-bot/internal/telegram"
)

const parseModeHTML = "HTML"

// Messenger is the subset of the Telegram client the bot relays through.
type Messenger interface {
	SendMessage(requestID, chatID, text, parseMode string) telegram.Result
	ForwardMessage(requestID, fromChatID string, messageID int64) telegram.Result
}

var _ Messenger = &telegram.TelegramAPI{}

type Bot struct {
	ownerChatID string
	messenger   Messenger
}

func NewBot(cfg *config.Config, messenger Messenger) *Bot {
	return &Bot{
		ownerChatID: cfg.OwnerChatID,
		messenger:   messenger,
	}
}

// ProcessWebhookUpdate handles one raw webhook body. Every failure, panics
// included, is logged and swallowed so the webhook can still answer ok.
func (b *Bot) ProcessWebhookUpdate(requestID string, body []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] error processing webhook update: %v\n%s", requestID, r, debug.Stack())
		}
	}()

	update, err := ParseUpdate(body)
	if err != nil {
		log.Printf("[%s] error processing webhook update: %v", requestID, err)
		return
	}
	b.HandleUpdate(requestID, update)
}

func (b *Bot) HandleUpdate(requestID string, update *Update) {
	switch update.Kind {
	case KindNewMessage:
		b.handleNewMessage(requestID, update.Message)
	case KindEditedMessage:
		b.handleEditedMessage(requestID, update.Message)
	default:
		log.Printf("[%s] received unsupported update type: %s", requestID, update.Raw)
	}
}

// handleNewMessage forwards to the owner, falling back to a text summary,
// then acknowledges the sender whichever path was taken.
func (b *Bot) handleNewMessage(requestID string, msg *Message) {
	forwarded := b.messenger.ForwardMessage(requestID, msg.ChatID, msg.MessageID)
	if !forwarded.OK {
		log.Printf("[%s] failed to forward message: %s", requestID, forwarded)
		b.messenger.SendMessage(requestID, b.ownerChatID, NewMessageNotification(msg), parseModeHTML)
	}

	b.messenger.SendMessage(requestID, msg.ChatID, AckText, "")
}

// Edits cannot be forwarded, and the editor gets no acknowledgment.
func (b *Bot) handleEditedMessage(requestID string, msg *Message) {
	b.messenger.SendMessage(requestID, b.ownerChatID, EditedMessageNotification(msg), parseModeHTML)
}
