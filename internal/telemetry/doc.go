// Package telemetry обеспечивает наблюдаемость утилиты.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Логи пишутся в stderr, чтобы не мешать данным в stdout.
// Уровень управляется LOG_LEVEL (или флагом --verbose),
// формат — LOG_FORMAT.
package telemetry
