package telegram

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/naseer2426/forward-bot/internal/config"
)

type recordedCall struct {
	Method string
	Path   string
	Body   map[string]any
}

func newFakeTelegram(t *testing.T, reply string, status int) (*httptest.Server, *[]recordedCall) {
	t.Helper()
	var calls []recordedCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := recordedCall{Method: r.Method, Path: r.URL.Path}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &call.Body); err != nil {
				t.Errorf("request body is not JSON: %s", raw)
			}
		}
		calls = append(calls, call)
		w.WriteHeader(status)
		w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestAPI(srvURL string, cfg config.Config) *TelegramAPI {
	if cfg.BotToken == "" {
		cfg.BotToken = "test-token"
	}
	return NewTelegramAPI(&cfg).WithBaseURL(srvURL)
}

func TestSendMessage(t *testing.T) {
	srv, calls := newFakeTelegram(t, `{"ok":true,"result":{"message_id":7}}`, http.StatusOK)
	api := newTestAPI(srv.URL, config.Config{})

	result := api.SendMessage("req-1", "12345", "hello", "HTML")
	if !result.OK {
		t.Fatalf("SendMessage() = %+v, want ok", result)
	}
	if string(result.Result) != `{"message_id":7}` {
		t.Errorf("result payload = %s", result.Result)
	}

	want := []recordedCall{{
		Method: http.MethodPost,
		Path:   "/bottest-token/sendMessage",
		Body:   map[string]any{"chat_id": "12345", "text": "hello", "parse_mode": "HTML"},
	}}
	if diff := cmp.Diff(want, *calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestSendMessageOmitsEmptyParseMode(t *testing.T) {
	srv, calls := newFakeTelegram(t, `{"ok":true}`, http.StatusOK)
	api := newTestAPI(srv.URL, config.Config{})

	api.SendMessage("req-1", "1", "plain", "")
	if _, ok := (*calls)[0].Body["parse_mode"]; ok {
		t.Errorf("parse_mode sent for plain text: %v", (*calls)[0].Body)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	srv, _ := newFakeTelegram(t, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`, http.StatusBadRequest)
	api := newTestAPI(srv.URL, config.Config{})

	result := api.SendMessage("req-1", "bad-chat", "hi", "")
	want := Result{OK: false, ErrorCode: 400, Description: "Bad Request: chat not found"}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if got := result.String(); got != "400: Bad Request: chat not found" {
		t.Errorf("String() = %q", got)
	}
}

func TestSendMessageNetworkErrorHidesToken(t *testing.T) {
	api := newTestAPI("http://127.0.0.1:1", config.Config{BotToken: "secret-token"})

	result := api.SendMessage("req-1", "1", "hi", "")
	if result.OK || result.Error == "" {
		t.Fatalf("SendMessage() = %+v, want transport failure", result)
	}
	if strings.Contains(result.Error, "secret-token") {
		t.Errorf("error leaks token: %s", result.Error)
	}
}

func TestSendMessageUndecodableResponse(t *testing.T) {
	srv, _ := newFakeTelegram(t, `<html>bad gateway</html>`, http.StatusBadGateway)
	api := newTestAPI(srv.URL, config.Config{})

	result := api.SendMessage("req-1", "1", "hi", "")
	if result.OK || !strings.Contains(result.Error, "failed to decode sendMessage response") {
		t.Errorf("SendMessage() = %+v", result)
	}
}

func TestMissingTokenSkipsNetwork(t *testing.T) {
	srv, calls := newFakeTelegram(t, `{"ok":true}`, http.StatusOK)
	api := NewTelegramAPI(&config.Config{BaseURL: "https://a.b"}).WithBaseURL(srv.URL)

	if result := api.SendMessage("req-1", "1", "hi", ""); result.OK || result.Error != "TELEGRAM_BOT_TOKEN is not set" {
		t.Errorf("SendMessage() = %+v", result)
	}
	if api.SetWebhook("req-1") {
		t.Error("SetWebhook() = true without token")
	}
	if len(*calls) != 0 {
		t.Errorf("made %d calls without a token", len(*calls))
	}
}

func TestForwardMessageTargetsOwner(t *testing.T) {
	srv, calls := newFakeTelegram(t, `{"ok":true,"result":{"message_id":99}}`, http.StatusOK)
	api := newTestAPI(srv.URL, config.Config{OwnerChatID: "777"})

	if result := api.ForwardMessage("req-1", "-100123", 55); !result.OK {
		t.Fatalf("ForwardMessage() = %+v", result)
	}

	want := []recordedCall{{
		Method: http.MethodPost,
		Path:   "/bottest-token/forwardMessage",
		Body:   map[string]any{"chat_id": "777", "from_chat_id": "-100123", "message_id": float64(55)},
	}}
	if diff := cmp.Diff(want, *calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestSetWebhook(t *testing.T) {
	srv, calls := newFakeTelegram(t, `{"ok":true,"result":true,"description":"Webhook was set"}`, http.StatusOK)
	api := newTestAPI(srv.URL, config.Config{BaseURL: "https://bot.example.com/", WebhookSecret: "s3cret"})

	if !api.SetWebhook("req-1") {
		t.Fatal("SetWebhook() = false")
	}

	want := []recordedCall{{
		Method: http.MethodPost,
		Path:   "/bottest-token/setWebhook",
		Body: map[string]any{
			"url":             "https://bot.example.com/webhook/s3cret",
			"allowed_updates": []any{"message", "edited_message", "callback_query"},
		},
	}}
	if diff := cmp.Diff(want, *calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestSetWebhookWithoutBaseURL(t *testing.T) {
	srv, calls := newFakeTelegram(t, `{"ok":true}`, http.StatusOK)
	api := newTestAPI(srv.URL, config.Config{WebhookSecret: "s"})

	if api.SetWebhook("req-1") {
		t.Error("SetWebhook() = true without BASE_URL")
	}
	if len(*calls) != 0 {
		t.Errorf("made %d calls without BASE_URL", len(*calls))
	}
}

func TestSetWebhookRejected(t *testing.T) {
	srv, _ := newFakeTelegram(t, `{"ok":false,"error_code":400,"description":"Bad Request: bad webhook"}`, http.StatusBadRequest)
	api := newTestAPI(srv.URL, config.Config{BaseURL: "http://insecure"})

	if api.SetWebhook("req-1") {
		t.Error("SetWebhook() = true on rejection")
	}
}

func TestGetWebhookInfo(t *testing.T) {
	srv, calls := newFakeTelegram(t, `{"ok":true,"result":{"url":"https://a.b/webhook/s","pending_update_count":0}}`, http.StatusOK)
	api := newTestAPI(srv.URL, config.Config{})

	got := api.GetWebhookInfo("req-1")
	want := map[string]any{
		"ok":     true,
		"result": map[string]any{"url": "https://a.b/webhook/s", "pending_update_count": float64(0)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetWebhookInfo() mismatch (-want +got):\n%s", diff)
	}
	if (*calls)[0].Method != http.MethodGet {
		t.Errorf("method = %s, want GET", (*calls)[0].Method)
	}
}

func TestGetWebhookInfoFailure(t *testing.T) {
	api := newTestAPI("http://127.0.0.1:1", config.Config{})

	got := api.GetWebhookInfo("req-1")
	if got["ok"] != false {
		t.Errorf("ok = %v, want false", got["ok"])
	}
	if _, ok := got["error"].(string); !ok {
		t.Errorf("error = %v, want a string", got["error"])
	}
}

func TestDeleteWebhook(t *testing.T) {
	srv, calls := newFakeTelegram(t, `{"ok":true,"result":true}`, http.StatusOK)
	api := newTestAPI(srv.URL, config.Config{})

	if !api.DeleteWebhook("req-1") {
		t.Fatal("DeleteWebhook() = false")
	}
	if got := (*calls)[0]; got.Method != http.MethodGet || got.Path != "/bottest-token/deleteWebhook" {
		t.Errorf("call = %+v", got)
	}
}

func TestDeleteWebhookFailure(t *testing.T) {
	srv, _ := newFakeTelegram(t, `{"ok":false,"error_code":401,"description":"Unauthorized"}`, http.StatusUnauthorized)
	api := newTestAPI(srv.URL, config.Config{})

	if api.DeleteWebhook("req-1") {
		t.Error("DeleteWebhook() = true on failure")
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		result Result
		want   string
	}{
		{Result{OK: true}, "ok"},
		{Result{Error: "boom"}, "boom"},
		{Result{ErrorCode: 403, Description: "Forbidden"}, "403: Forbidden"},
		{Result{Description: "odd"}, "odd"},
	}
	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.result, got, tt.want)
		}
	}
}
