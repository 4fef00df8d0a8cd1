package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"accstore-be/internal/logger"

	"go.uber.org/zap"
)

const (
	telegramBaseURL = "https://api.telegram.org"
	sendTimeout     = 10 * time.Second
)

var ErrSinkNotConfigured = errors.New("telegram sink is not configured")

type telegramSink struct {
	token      string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

// NewTelegramSink relays messages to the configured orders chat via the
// Bot API. An empty token yields a sink that fails every send; checkout
// treats that as a logged, non-fatal condition.
func NewTelegramSink(token, chatID string) Sink {
	if token == "" || chatID == "" {
		logger.L().Warn("telegram sink missing token or chat id, notifications disabled")
	}

	return &telegramSink{
		token:   token,
		chatID:  chatID,
		baseURL: telegramBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (t *telegramSink) Send(ctx context.Context, text string) error {
	if t.token == "" || t.chatID == "" {
		return ErrSinkNotConfigured
	}

	log := logger.FromCtx(ctx).With(
		zap.String("sink", "telegram"),
		zap.String("chat_id", t.chatID),
	)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	body := map[string]interface{}{
		"chat_id": t.chatID,
		"text":    text,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Error("telegram request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read telegram response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("telegram returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return fmt.Errorf("telegram error: %s", string(respBody))
	}

	var res struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal(respBody, &res); err != nil {
		return fmt.Errorf("failed to decode telegram response: %w", err)
	}
	if !res.OK {
		return fmt.Errorf("telegram rejected message: %s", string(respBody))
	}

	log.Info("order notification delivered")
	return nil
}
