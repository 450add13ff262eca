package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout = 60 * time.Second

	// requestID — id единственного JSON-RPC запроса за время жизни процесса.
	requestID = 1

	// maxErrorBody — лимит тела ответа в HTTPError, в символах.
	maxErrorBody = 300

	userAgent = "FlowStudio-MCP/1.0"
)

// Config — параметры клиента MCP.
type Config struct {
	Endpoint     string
	APIKey       string
	InvocationID string
	Timeout      time.Duration
	Logger       *slog.Logger
}

// Client — HTTP-клиент MCP-сервера FlowStudio.
//
// Каждый вызов — один POST с конвертом JSON-RPC 2.0 и аутентификацией
// через заголовок x-api-key. Сессий и handshake у сервера нет.
type Client struct {
	endpoint     string
	apiKey       string
	invocationID string
	logger       *slog.Logger
	httpClient   *http.Client
}

// NewClient создаёт клиент MCP.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint:     cfg.Endpoint,
		apiKey:       cfg.APIKey,
		invocationID: cfg.InvocationID,
		logger:       logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListFlows запрашивает flows через tools/list и возвращает payload
// после повторного декодирования текста первого блока контента.
func (c *Client) ListFlows(ctx context.Context) (json.RawMessage, error) {
	result, err := c.Call(ctx, MethodListTools, struct{}{})
	if err != nil {
		return nil, err
	}
	return decodeEmbedded(result)
}

// Call выполняет один вызов JSON-RPC и возвращает сырой result.
//
// HTTP-статус >= 400 — *HTTPError, присутствующее поле "error"
// (включая null) — *RPCError, ответ без result — ErrMissingResult.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	payload, err := json.Marshal(request{
		JSONRPC: jsonRPCVersion,
		ID:      requestID,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)
	if c.invocationID != "" {
		req.Header.Set("X-Request-Id", c.invocationID)
	}

	c.logger.Debug("calling MCP server", "method", method, "endpoint", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("received response", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode >= 400 {
		return nil, &HTTPError{
			Status: resp.StatusCode,
			Body:   truncate(string(body), maxErrorBody),
		}
	}

	var envelope response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if envelope.Error != nil {
		rpcErr := &RPCError{Detail: envelope.Error}
		var obj rpcErrorObject
		if json.Unmarshal(envelope.Error, &obj) == nil {
			rpcErr.Code = obj.Code
			rpcErr.Message = obj.Message
		}
		return nil, rpcErr
	}

	if envelope.Result == nil {
		return nil, ErrMissingResult
	}

	return envelope.Result, nil
}

// decodeEmbedded извлекает payload из result вызова tools/*.
//
// Сервер кладёт JSON в текст блока контента как строку, поэтому
// текст декодируется повторно и возвращается дословно.
func decodeEmbedded(result json.RawMessage) (json.RawMessage, error) {
	var cr callResult
	if err := json.Unmarshal(result, &cr); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}

	if len(cr.Content) == 0 {
		return nil, ErrNoContent
	}

	text := []byte(cr.Content[0].Text)
	if !json.Valid(text) {
		return nil, ErrInvalidPayload
	}

	return json.RawMessage(text), nil
}

// truncate обрезает строку до maxRunes символов.
func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
