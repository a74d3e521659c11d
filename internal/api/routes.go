package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every endpoint on router. The webhook path uses a
// catch-all so that "/webhook/" also resolves when no secret is configured.
func RegisterRoutes(router *gin.Engine, webhookSecret string, hook *TelegramWebhook, admin *Admin) {
	router.GET("/", HealthCheck)
	router.POST("/webhook/*secret", RequireWebhookSecret(webhookSecret), hook.TelegramWebhook)

	router.GET("/get-my-id/:chatId", admin.GetMyID)
	router.GET("/setup-webhook", admin.SetupWebhook)
	router.GET("/webhook-info", admin.WebhookInfo)
	router.GET("/delete-webhook", admin.DeleteWebhook)
}
