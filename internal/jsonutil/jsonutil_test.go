package jsonutil

import (
	"errors"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestGetString(t *testing.T) {
	m := map[string]any{
		"str":  "value",
		"num":  42.0,
		"bool": true,
		"nil":  nil,
	}

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"str", "value", true},
		{"num", "", false},
		{"bool", "", false},
		{"nil", "", false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := GetString(m, tt.key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("GetString() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRequireStrings(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantMissing bool
		wantErr     bool
	}{
		{"all present", `{"content":"c","author":"a"}`, false, false},
		{"extra keys ignored", `{"content":"c","author":"a","tags":["x"],"length":1}`, false, false},
		{"empty strings count as present", `{"content":"","author":""}`, false, false},
		{"missing author", `{"content":"c"}`, true, true},
		{"wrong type", `{"content":"c","author":7}`, true, true},
		{"null payload", `null`, true, true},
		{"not an object", `["content","author"]`, false, true},
		{"malformed", `{"content":`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireStrings([]byte(tt.data), "content", "author")
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequireStrings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, ErrMissingKey); got != tt.wantMissing {
				t.Errorf("errors.Is(err, ErrMissingKey) = %v, want %v (err=%v)", got, tt.wantMissing, err)
			}
		})
	}
}
