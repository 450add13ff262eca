// Package mcp реализует клиент MCP-сервера FlowStudio.
//
// Структура:
//   - protocol.go — конверты JSON-RPC 2.0 и типы result
//   - client.go   — HTTP-клиент (один POST на вызов, x-api-key)
//   - errors.go   — ошибки транспорта и протокола
//
// Сервер возвращает payload внутри блока контента в виде строки
// с JSON, поэтому клиент декодирует текст повторно. Payload дальше
// не интерпретируется — классификацией занимается пакет domain.
package mcp
