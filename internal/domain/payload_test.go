package domain

import (
	"encoding/json"
	"testing"
)

func TestClassify_FlowList(t *testing.T) {
	raw := json.RawMessage(`[
		{"id": "flow-1", "displayName": "Daily Sync", "state": "active", "triggerType": "schedule"},
		{"id": "flow-2", "state": "paused"},
		{"id": 42, "displayName": "", "state": true, "triggerType": "manual"}
	]`)

	p := Classify(raw)
	if p.Kind != KindFlows {
		t.Fatalf("expected KindFlows, got %v", p.Kind)
	}
	if len(p.Flows) != 3 {
		t.Fatalf("expected 3 flows, got %d", len(p.Flows))
	}

	// Все поля присутствуют
	first := p.Flows[0]
	if first.ID != "flow-1" || first.DisplayName != "Daily Sync" {
		t.Errorf("unexpected first flow: %+v", first)
	}
	if first.State != "active" || first.TriggerType != "schedule" {
		t.Errorf("unexpected first flow: %+v", first)
	}

	// Отсутствующие поля — Unknown
	second := p.Flows[1]
	if second.DisplayName != Unknown || second.TriggerType != Unknown {
		t.Errorf("missing fields should be %q, got %+v", Unknown, second)
	}
	if second.State != "paused" {
		t.Errorf("expected paused, got %q", second.State)
	}

	// Нестроковые значения — Unknown, пустая строка остаётся пустой
	third := p.Flows[2]
	if third.ID != Unknown || third.State != Unknown {
		t.Errorf("non-string fields should be %q, got %+v", Unknown, third)
	}
	if third.DisplayName != "" {
		t.Errorf("empty string should stay empty, got %q", third.DisplayName)
	}
}

func TestClassify_EmptyList(t *testing.T) {
	p := Classify(json.RawMessage(`[]`))
	if p.Kind != KindFlows {
		t.Fatalf("expected KindFlows, got %v", p.Kind)
	}
	if len(p.Flows) != 0 {
		t.Errorf("expected 0 flows, got %d", len(p.Flows))
	}
}

func TestClassify_NonObjectElements(t *testing.T) {
	p := Classify(json.RawMessage(`[null, "text", 7]`))
	if p.Kind != KindFlows {
		t.Fatalf("expected KindFlows, got %v", p.Kind)
	}
	if len(p.Flows) != 3 {
		t.Fatalf("expected 3 flows, got %d", len(p.Flows))
	}

	for i, f := range p.Flows {
		if f.ID != Unknown || f.DisplayName != Unknown || f.State != Unknown || f.TriggerType != Unknown {
			t.Errorf("element %d: expected all fields %q, got %+v", i, Unknown, f)
		}
	}
}

func TestClassify_LeadingWhitespace(t *testing.T) {
	p := Classify(json.RawMessage("\n\t [ ]"))
	if p.Kind != KindFlows {
		t.Errorf("expected KindFlows, got %v", p.Kind)
	}
}

func TestClassify_ErrorObject(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		detail string
	}{
		{
			name:   "string detail",
			raw:    `{"error": "quota exceeded"}`,
			detail: `"quota exceeded"`,
		},
		{
			name:   "object detail keeps bytes verbatim",
			raw:    `{"error":{"b":1,"a":2}}`,
			detail: `{"b":1,"a":2}`,
		},
		{
			// Наличие ключа считается ошибкой даже при значении null
			name:   "null detail",
			raw:    `{"error": null}`,
			detail: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Classify(json.RawMessage(tt.raw))
			if p.Kind != KindError {
				t.Fatalf("expected KindError, got %v", p.Kind)
			}
			if string(p.Error) != tt.detail {
				t.Errorf("expected detail %s, got %s", tt.detail, p.Error)
			}
		})
	}
}

func TestClassify_Opaque(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"object without error key", `{"hello": "world"}`},
		{"string", `"just text"`},
		{"number", `123`},
		{"bool", `true`},
		{"null", `null`},
		{"empty input", ``},
		{"broken object", `{]`},
		{"broken array", `[1, 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Classify(json.RawMessage(tt.raw))
			if p.Kind != KindOpaque {
				t.Errorf("expected KindOpaque, got %v", p.Kind)
			}
		})
	}
}

func TestFlowFromMap_Empty(t *testing.T) {
	f := FlowFromMap(map[string]any{})
	if f.ID != Unknown || f.DisplayName != Unknown || f.State != Unknown || f.TriggerType != Unknown {
		t.Errorf("expected all fields %q, got %+v", Unknown, f)
	}
}

func TestServiceError_Error(t *testing.T) {
	// Строка — как есть, в кавычках
	err := &ServiceError{Detail: json.RawMessage(`"quota exceeded"`)}
	if err.Error() != `ERROR: "quota exceeded"` {
		t.Errorf("unexpected message: %q", err.Error())
	}

	// Объект — с отступами
	err = &ServiceError{Detail: json.RawMessage(`{"code":403,"message":"forbidden"}`)}
	want := `ERROR: {
  "code": 403,
  "message": "forbidden"
}`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
