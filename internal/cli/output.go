package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/shaiso/flowstudio-cli/internal/domain"
)

// Ширины колонок таблицы flows, в знакоместах терминала.
const (
	idWidth      = 12
	stateWidth   = 10
	triggerWidth = 15

	// maxDumpRunes — лимит дампа payload неизвестной формы, в символах.
	maxDumpRunes = 2000
)

// Стили ячейки state по категориям жизненного цикла.
var (
	activeStyle  = color.New(color.FgGreen)
	stoppedStyle = color.New(color.FgYellow)
	failedStyle  = color.New(color.FgRed)
)

// Output управляет форматированием вывода CLI.
//
// Данные пишутся в stdout; диагностика идёт отдельным путём —
// через возвращаемые ошибки и stderr. В режиме jsonMode вместо
// таблицы и дампа выводится payload целиком с отступами.
type Output struct {
	jsonMode bool
	w        io.Writer
}

// NewOutput создаёт Output. Если jsonMode=true, данные выводятся в JSON.
func NewOutput(jsonMode bool) *Output {
	return &Output{
		jsonMode: jsonMode,
		w:        os.Stdout,
	}
}

// Flows выводит список flows: таблицу или JSON в зависимости от режима.
func (o *Output) Flows(flows []domain.Flow, raw json.RawMessage) {
	if o.jsonMode {
		o.JSON(raw)
		return
	}

	fmt.Fprintf(o.w, "Total flows: %d\n\n", len(flows))
	for _, f := range flows {
		fmt.Fprintln(o.w, flowRow(f))
	}
}

// Dump выводит payload неизвестной формы: с отступами,
// не больше maxDumpRunes символов.
func (o *Output) Dump(raw json.RawMessage) {
	if o.jsonMode {
		o.JSON(raw)
		return
	}
	fmt.Fprintln(o.w, truncate(indentJSON(raw), maxDumpRunes))
}

// JSON выводит payload с отступами без усечения.
func (o *Output) JSON(raw json.RawMessage) {
	fmt.Fprintln(o.w, indentJSON(raw))
}

// flowRow форматирует одну строку таблицы.
//
// Ячейка state раскрашивается после выравнивания: escape-коды
// не должны участвовать в подсчёте ширины колонки.
func flowRow(f domain.Flow) string {
	id := runewidth.Truncate(f.ID, idWidth, "")
	state := runewidth.FillRight(f.State, stateWidth)
	if style := stateStyle(f.State); style != nil {
		state = style.Sprint(state)
	}
	trigger := runewidth.FillRight(f.TriggerType, triggerWidth)

	return fmt.Sprintf("  %s..  | %s | %s | %s", id, state, trigger, f.DisplayName)
}

// stateStyle возвращает стиль для значения state, nil — без подсветки.
func stateStyle(state string) *color.Color {
	switch state {
	case "active", "enabled", "running":
		return activeStyle
	case "failed", "error", "errored":
		return failedStyle
	case "paused", "stopped", "suspended", "draft", "disabled":
		return stoppedStyle
	}
	return nil
}

// indentJSON переформатирует JSON с отступом в два пробела, не меняя
// порядок ключей. Невалидный вход возвращается как есть.
func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// truncate обрезает строку до maxRunes символов.
func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
