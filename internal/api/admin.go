package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/naseer2426/forward-bot/internal/telegram"
)

// TelegramAdmin is the part of the Telegram client the operator endpoints use.
type TelegramAdmin interface {
	SendMessage(requestID, chatID, text, parseMode string) telegram.Result
	SetWebhook(requestID string) bool
	GetWebhookInfo(requestID string) map[string]any
	DeleteWebhook(requestID string) bool
}

var _ TelegramAdmin = &telegram.TelegramAPI{}

type Admin struct {
	TelegramAPI TelegramAdmin
}

// GetMyID sends the chat id back to that chat so the operator can copy it
// into OWNER_CHAT_ID.
func (a *Admin) GetMyID(c *gin.Context) {
	requestID := requestid.Get(c)
	chatID := c.Param("chatId")

	text := fmt.Sprintf("Your Telegram Chat ID is: %s\n\nSet this ID as the OWNER_CHAT_ID environment variable.", chatID)
	result := a.TelegramAPI.SendMessage(requestID, chatID, text, "")
	if !result.OK {
		log.Printf("[%s] error sending chat ID info: %s", requestID, result)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Failed to send message: %s", result),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": fmt.Sprintf("Sent ID information to chat: %s", chatID),
	})
}

func (a *Admin) SetupWebhook(c *gin.Context) {
	if !a.TelegramAPI.SetWebhook(requestid.Get(c)) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to set up webhook",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Webhook set up successfully",
	})
}

func (a *Admin) WebhookInfo(c *gin.Context) {
	c.JSON(http.StatusOK, a.TelegramAPI.GetWebhookInfo(requestid.Get(c)))
}

func (a *Admin) DeleteWebhook(c *gin.Context) {
	if !a.TelegramAPI.DeleteWebhook(requestid.Get(c)) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete webhook",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Webhook deleted successfully",
	})
}
