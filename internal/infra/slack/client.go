// Package slack speaks the chat platform's wire formats: the outbound
// views.open/views.update API and the inbound interactivity payload.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"slack-charity-donate/internal/domain"
	"slack-charity-donate/internal/infra/metrics"
	"slack-charity-donate/internal/view"
)

// Client posts view calls to the Slack Web API with bearer authentication.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
	log     *zerolog.Logger
}

func NewClient(token, baseURL string, logger *zerolog.Logger) *Client {
	return &Client{
		token:   token,
		baseURL: baseURL,
		client:  &http.Client{},
		log:     logger,
	}
}

type openRequest struct {
	TriggerID string    `json:"trigger_id"`
	View      view.View `json:"view"`
}

type updateRequest struct {
	ViewID string    `json:"view_id"`
	View   view.View `json:"view"`
}

// apiResponse is the minimal Slack Web API envelope.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// OpenView implements adapter.SlackClient.
func (c *Client) OpenView(ctx context.Context, triggerID string, v view.View) error {
	return c.post(ctx, "views.open", openRequest{TriggerID: triggerID, View: v})
}

// UpdateView implements adapter.SlackClient.
func (c *Client) UpdateView(ctx context.Context, viewID string, v view.View) error {
	return c.post(ctx, "views.update", updateRequest{ViewID: viewID, View: v})
}

func (c *Client) post(ctx context.Context, method string, payload any) (err error) {
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.IncViewCall(method, outcome)
	}()

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	url := c.baseURL + "/" + method
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send %s request: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var env apiResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("unmarshal %s response: %w, body: %s", method, err, string(body))
	}
	if !env.OK {
		return fmt.Errorf("%w: %s: %s", domain.ErrSlackAPI, method, env.Error)
	}

	c.log.Debug().Str("method", method).Msg("slack call ok")
	return nil
}
