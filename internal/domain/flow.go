package domain

// Flow — automation workflow из FlowStudio.
//
// Запись приходит из MCP-ответа tools/list. Сервис не гарантирует
// состав полей: любое из них может отсутствовать. Отсутствующее
// (или нестроковое) значение отображается как Unknown; присутствующая
// пустая строка остаётся пустой.
type Flow struct {
	// ID — идентификатор flow в FlowStudio.
	ID string `json:"id"`

	// DisplayName — человекочитаемое имя flow.
	DisplayName string `json:"displayName"`

	// State — состояние жизненного цикла ("active", "suspended", ...).
	State string `json:"state"`

	// TriggerType — тип триггера ("schedule", "manual", "webhook", ...).
	TriggerType string `json:"triggerType"`
}

// Unknown — placeholder для отсутствующих полей flow.
const Unknown = "?"

// FlowFromMap собирает Flow из распарсенного JSON-объекта.
func FlowFromMap(m map[string]any) Flow {
	return Flow{
		ID:          getString(m, "id", Unknown),
		DisplayName: getString(m, "displayName", Unknown),
		State:       getString(m, "state", Unknown),
		TriggerType: getString(m, "triggerType", Unknown),
	}
}

// getString извлекает строку из map с default значением.
func getString(m map[string]any, key, defaultVal string) string {
	if val, ok := m[key]; ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return defaultVal
}
