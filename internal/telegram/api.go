package telegram

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/naseer2426/forward-bot/internal/config"
)

// AllowedUpdates is the set of update kinds requested on webhook registration.
var AllowedUpdates = []string{"message", "edited_message", "callback_query"}

type TelegramAPI struct {
	token       string
	ownerChatID string
	webhookURL  string
	baseURL     string
	client      *resty.Client
}

func NewTelegramAPI(cfg *config.Config) *TelegramAPI {
	return &TelegramAPI{
		token:       cfg.BotToken,
		ownerChatID: cfg.OwnerChatID,
		webhookURL:  cfg.WebhookURL(),
		baseURL:     cfg.APIURL,
		client:      resty.New(),
	}
}

// SendMessage sends a message to a Telegram chat. parseMode may be empty.
func (t *TelegramAPI) SendMessage(requestID, chatID, text, parseMode string) Result {
	result := t.call(requestID, "sendMessage", SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if result.Error != "" {
		log.Printf("[%s] error sending message: %s", requestID, result.Error)
	}
	return result
}

// ForwardMessage forwards a message verbatim to the owner's chat.
func (t *TelegramAPI) ForwardMessage(requestID, fromChatID string, messageID int64) Result {
	result := t.call(requestID, "forwardMessage", ForwardMessageRequest{
		ChatID:     t.ownerChatID,
		FromChatID: fromChatID,
		MessageID:  messageID,
	})
	if result.Error != "" {
		log.Printf("[%s] error forwarding message: %s", requestID, result.Error)
	}
	return result
}

// SetWebhook registers <base url>/webhook/<secret> with Telegram.
func (t *TelegramAPI) SetWebhook(requestID string) bool {
	if t.webhookURL == "" {
		log.Printf("[%s] cannot set webhook: BASE_URL not configured", requestID)
		return false
	}

	result := t.call(requestID, "setWebhook", SetWebhookRequest{
		URL:            t.webhookURL,
		AllowedUpdates: AllowedUpdates,
	})
	if !result.OK {
		log.Printf("[%s] failed to set webhook: %s", requestID, result)
		return false
	}
	log.Printf("[%s] webhook set up successfully", requestID)
	return true
}

// GetWebhookInfo returns Telegram's webhook status payload as-is.
func (t *TelegramAPI) GetWebhookInfo(requestID string) map[string]any {
	body, err := t.do(requestID, "getWebhookInfo", nil)
	if err != nil {
		log.Printf("[%s] error getting webhook info: %v", requestID, err)
		return map[string]any{"ok": false, "error": err.Error()}
	}

	var info map[string]any
	if err := json.Unmarshal(body, &info); err != nil {
		log.Printf("[%s] error getting webhook info: %v", requestID, err)
		return map[string]any{"ok": false, "error": err.Error()}
	}
	return info
}

func (t *TelegramAPI) DeleteWebhook(requestID string) bool {
	result := t.call(requestID, "deleteWebhook", nil)
	if !result.OK {
		log.Printf("[%s] failed to delete webhook: %s", requestID, result)
		return false
	}
	log.Printf("[%s] webhook deleted successfully", requestID)
	return true
}

// WithBaseURL sets a custom API base URL (for testing).
func (t *TelegramAPI) WithBaseURL(baseURL string) *TelegramAPI {
	t.baseURL = strings.TrimSuffix(baseURL, "/")
	return t
}

func (t *TelegramAPI) call(requestID, method string, payload any) Result {
	body, err := t.do(requestID, method, payload)
	if err != nil {
		return Result{Error: err.Error()}
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return Result{Error: fmt.Sprintf("failed to decode %s response: %v", method, err)}
	}
	return result
}

// do posts payload as JSON, or issues a GET when payload is nil.
func (t *TelegramAPI) do(requestID, method string, payload any) ([]byte, error) {
	token := t.token
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	url := fmt.Sprintf("%s/bot%s/%s", t.baseURL, token, method)
	req := t.client.R().SetHeader("X-Request-ID", requestID)

	var (
		resp *resty.Response
		err  error
	)
	if payload != nil {
		resp, err = req.
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(url)
	} else {
		resp, err = req.Get(url)
	}
	if err != nil {
		// transport errors embed the request URL, which carries the token
		return nil, fmt.Errorf("http call to telegram failed: %s", strings.ReplaceAll(err.Error(), token, "<token>"))
	}

	return resp.Body(), nil
}
