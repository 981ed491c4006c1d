package gatewayclient

import "testing"

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		expr    string
		want    string
		wantErr bool
	}{
		{"string", `{"framework_id":"abc"}`, "$.framework_id", "abc", false},
		{"number", `{"id":1234567}`, "$.id", "1234567", false},
		{"array of one", `{"ids":["x"]}`, "$.ids", "x", false},
		{"missing", `{"other":1}`, "$.framework_id", "", true},
		{"empty string", `{"framework_id":""}`, "$.framework_id", "", true},
		{"not json", `<html>`, "$.framework_id", "", true},
		{"empty expr", `{}`, " ", "", true},
		{"object", `{"id":{"a":1}}`, "$.id", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID([]byte(tt.body), tt.expr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
