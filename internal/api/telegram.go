package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// UpdateProcessor consumes one raw webhook body. It must not fail.
type UpdateProcessor interface {
	ProcessWebhookUpdate(requestID string, body []byte)
}

type TelegramWebhook struct {
	Bot UpdateProcessor
}

// TelegramWebhook accepts an update and always reports ok once the body is a
// JSON object; processing outcome is not reflected in the response.
func (t *TelegramWebhook) TelegramWebhook(c *gin.Context) {
	requestID := requestid.Get(c)
	body, err := t.parseBody(c)
	if err != nil {
		log.Printf("[%s] received non-JSON data on webhook: %v", requestID, err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	t.Bot.ProcessWebhookUpdate(requestID, body)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (t *TelegramWebhook) parseBody(c *gin.Context) ([]byte, error) {
	bodyBytes, err := c.GetRawData()
	if err != nil {
		return nil, errors.New("failed to read body")
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(bodyBytes, &object); err != nil || object == nil {
		return nil, errors.New("invalid payload: expected a JSON object")
	}
	return bodyBytes, nil
}
