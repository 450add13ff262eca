// Package cli реализует инструмент командной строки flowstudio-cli.
//
// # Обзор
//
// CLI — клиентская утилита для MCP-сервера FlowStudio. Один запуск —
// один вызов tools/list: утилита запрашивает список flows, сохраняет
// снапшот payload на диск и печатает результат.
//
// # Ключевые компоненты
//
// ## Root command
//
// Единственная команда без подкоманд. RunE собирает Config (ключ из
// окружения, флаги, invocation id) и передаёт его в run — весь цикл
// тестируется без реального окружения процесса.
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблица flows с фиксированными колонками — по умолчанию
//   - JSON (payload целиком с отступами) — с флагом --json
//
// Данные выводятся в stdout, диагностика — в stderr.
// Это позволяет использовать pipe: flowstudio-cli --json | jq .
//
// # Ошибки и коды выхода
//
// run возвращает типизированные ошибки, чей текст — готовая
// диагностика (NO TOKEN SET, HTTP <status>: ..., JSON-RPC ERROR: ...,
// ERROR: ...). main печатает её в stderr и выходит с кодом 1.
package cli
