package domain

import (
	"bytes"
	"encoding/json"
)

// Kind — вид внутреннего payload после классификации.
type Kind int

const (
	// KindFlows — payload является списком flows.
	KindFlows Kind = iota

	// KindError — payload содержит поле "error" (ошибка сервиса).
	KindError

	// KindOpaque — любой другой JSON; выводится как есть.
	KindOpaque
)

// Payload — классифицированный внутренний payload ответа tools/list.
//
// Активен ровно один вариант (Kind); заполнено соответствующее поле.
type Payload struct {
	Kind  Kind
	Flows []Flow          // KindFlows: разобранные записи
	Error json.RawMessage // KindError: значение поля "error"
}

// Classify определяет вид payload одним проходом: список flows,
// запись об ошибке или произвольное значение.
//
// Наличие ключа "error" в объекте считается ошибкой сервиса даже
// при значении null.
func Classify(raw json.RawMessage) Payload {
	p := Payload{Kind: KindOpaque}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return p
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return p
		}
		flows := make([]Flow, len(items))
		for i, item := range items {
			flows[i] = flowFromRaw(item)
		}
		p.Kind = KindFlows
		p.Flows = flows
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return p
		}
		if detail, ok := obj["error"]; ok {
			p.Kind = KindError
			p.Error = detail
		}
	}

	return p
}

// flowFromRaw разбирает один элемент списка. Элемент, не являющийся
// объектом, даёт запись со всеми полями Unknown.
func flowFromRaw(raw json.RawMessage) Flow {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return Flow{ID: Unknown, DisplayName: Unknown, State: Unknown, TriggerType: Unknown}
	}
	return FlowFromMap(m)
}

// ServiceError — ошибка, которую сервис вернул внутри payload
// (поле "error" во внутреннем объекте). Единственный путь ошибки,
// достижимый после успешного внешнего вызова.
type ServiceError struct {
	// Detail — значение поля "error" как есть.
	Detail json.RawMessage
}

// Error реализует интерфейс error.
func (e *ServiceError) Error() string {
	return "ERROR: " + indentJSON(e.Detail)
}

// indentJSON форматирует JSON с отступом в два пробела; невалидные
// байты возвращаются как есть.
func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
