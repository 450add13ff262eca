package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Write сохраняет payload в файл path с отступом в два пробела.
// Существующий файл перезаписывается целиком.
func Write(path string, payload []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return fmt.Errorf("failed to format snapshot: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
