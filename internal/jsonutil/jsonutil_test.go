package jsonutil

import (
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
	m := map[string]interface{}{
		"str":  "value",
		"num":  42.0,
		"bool": true,
		"nil":  nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "value"},
		{"num", ""},
		{"bool", ""},
		{"nil", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetString(m, tt.key); got != tt.want {
				t.Errorf("GetString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetInt(t *testing.T) {
	m := map[string]interface{}{
		"whole":    42.0,
		"decimal":  3.9,
		"negative": -7.0,
		"str":      "42",
	}

	tests := []struct {
		key  string
		want int
	}{
		{"whole", 42},
		{"decimal", 3},
		{"negative", -7},
		{"str", 0},
		{"missing", 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetInt(m, tt.key); got != tt.want {
				t.Errorf("GetInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

type testColor int

const (
	colorRed testColor = iota
	colorBlue
)

func (c testColor) String() string {
	if c == colorBlue {
		return "blue"
	}
	return "red"
}

func parseTestColor(s string) (testColor, error) {
	switch s {
	case "red":
		return colorRed, nil
	case "blue":
		return colorBlue, nil
	}
	return colorRed, BadEnumValue("color", s)
}

func TestEnumRoundTrip(t *testing.T) {
	data, err := MarshalEnum(colorBlue)
	if err != nil {
		t.Fatalf("MarshalEnum() error = %v", err)
	}
	if string(data) != `"blue"` {
		t.Errorf("MarshalEnum() = %s, want %q", data, `"blue"`)
	}

	got, err := UnmarshalEnum(data, parseTestColor)
	if err != nil {
		t.Fatalf("UnmarshalEnum() error = %v", err)
	}
	if got != colorBlue {
		t.Errorf("UnmarshalEnum() = %v, want %v", got, colorBlue)
	}
}

func TestUnmarshalEnumErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown value", `"green"`},
		{"not a string", `42`},
		{"invalid JSON", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalEnum([]byte(tt.data), parseTestColor); err == nil {
				t.Errorf("UnmarshalEnum(%q) expected error, got nil", tt.data)
			}
		})
	}
}
