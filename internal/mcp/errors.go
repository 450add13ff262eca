package mcp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Ошибки разбора ответа MCP-сервера.
var (
	// ErrMissingResult — в ответе нет ни result, ни error.
	ErrMissingResult = errors.New("response has no result")
	// ErrNoContent — result без блоков контента.
	ErrNoContent = errors.New("response has no content blocks")
	// ErrInvalidPayload — текст блока контента не является валидным JSON.
	ErrInvalidPayload = errors.New("content text is not valid JSON")
)

// HTTPError — ответ транспортного уровня со статусом >= 400.
// Body усечён до maxErrorBody символов.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// RPCError — ответ с присутствующим полем "error" (включая null).
// Detail хранит значение поля дословно, Code и Message заполняются
// best-effort из стандартной формы {code, message}.
type RPCError struct {
	Code    int
	Message string
	Detail  json.RawMessage
}

func (e *RPCError) Error() string {
	return "JSON-RPC ERROR: " + indentJSON(e.Detail)
}

// indentJSON переформатирует JSON с отступом в два пробела, не меняя
// порядок ключей и форму чисел. Невалидный вход возвращается как есть.
func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
