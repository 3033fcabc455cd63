// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jeranaias/intentdesk-tui/internal/model"
)

// Intents fetches every finalized intent (the community feed bootstrap).
func (c *Client) Intents(ctx context.Context) ([]model.Intent, error) {
	var intents []model.Intent
	if err := c.getJSON(ctx, c.baseURL+"/intents", &intents); err != nil {
		return nil, err
	}
	return intents, nil
}

// UserIntents fetches the intents belonging to one user (the personal feed).
func (c *Client) UserIntents(ctx context.Context, userID string) ([]model.Intent, error) {
	var intents []model.Intent
	endpoint := c.baseURL + "/intents/" + url.PathEscape(userID)
	if err := c.getJSON(ctx, endpoint, &intents); err != nil {
		return nil, err
	}
	return intents, nil
}

// Chat sends one conversation turn and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp ChatResponse
	if err := c.do(httpReq, &resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// do executes a request, maps non-2xx statuses to *APIError, and decodes a
// size-capped JSON body into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, MaxResponseSize)
	data, err := io.ReadAll(limited)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
			apiErr.Message = eb.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
