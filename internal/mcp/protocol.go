package mcp

import "encoding/json"

// jsonRPCVersion — версия протокола в каждом конверте.
const jsonRPCVersion = "2.0"

// Методы MCP.
const (
	// MethodListTools — запрос списка tools. FlowStudio публикует
	// каждый flow как MCP tool, поэтому ответ содержит flows.
	MethodListTools = "tools/list"
)

// request — конверт запроса JSON-RPC 2.0.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// response — конверт ответа JSON-RPC 2.0.
//
// Result и Error хранятся как сырые байты: Error != nil означает,
// что ключ "error" присутствовал в ответе, в том числе со значением
// null. Result декодируется отдельно в зависимости от метода.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error"`
}

// rpcErrorObject — стандартная форма значения поля "error".
// Разбирается best-effort: сервер может вернуть произвольный JSON.
type rpcErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// callResult — результат вызова tools/*: список блоков контента.
type callResult struct {
	Content []contentBlock `json:"content"`
}

// contentBlock — блок контента MCP-ответа.
//
// Для tools/list поле Text содержит JSON, закодированный как строка:
// его нужно декодировать повторно, чтобы получить payload.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
