package resource

import (
	"encoding/json"
	"testing"
)

func TestRecordID(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string id", `{"id": "abc123"}`, "abc123"},
		{"numeric id", `{"id": 42}`, "42"},
		{"missing id", `{"title": "x"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec Record
			if err := json.Unmarshal([]byte(tt.body), &rec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := rec.ID(); got != tt.want {
				t.Errorf("ID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordStrings(t *testing.T) {
	var rec Record
	body := `{"images": ["https://a.jpg", "https://b.jpg"], "title": "x"}`
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	images := rec.Strings("images")
	if len(images) != 2 || images[0] != "https://a.jpg" {
		t.Errorf("Strings = %v", images)
	}
	if rec.Strings("title") != nil {
		t.Error("non-list field should yield nil")
	}
	if rec.Strings("missing") != nil {
		t.Error("missing field should yield nil")
	}
}
