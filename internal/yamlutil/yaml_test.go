package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	type doc struct {
		Title  string `yaml:"title"`
		Author string `yaml:"author"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "valid mapping", data: []byte("title: Hello\nauthor: Jo\n")},
		{name: "empty data", data: nil, wantErr: ErrNilData},
		{name: "malformed yaml", data: []byte("title: [unclosed\n"), wantErr: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out doc
			err := Unmarshal(tt.data, &out)
			switch tt.name {
			case "valid mapping":
				if err != nil {
					t.Fatalf("Unmarshal() error: %v", err)
				}
				if out.Title != "Hello" || out.Author != "Jo" {
					t.Errorf("decoded = %+v, want title/author", out)
				}
			case "empty data":
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
			case "malformed yaml":
				if err == nil {
					t.Error("Unmarshal() = nil, want parse error")
				}
				if err != nil && !strings.HasPrefix(err.Error(), "yamlutil:") {
					t.Errorf("error %q missing package prefix", err)
				}
			}
		})
	}
}

func TestUnmarshalNilDestination(t *testing.T) {
	t.Parallel()

	if err := Unmarshal([]byte("a: 1\n"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("Unmarshal() error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshalInputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("key: " + strings.Repeat("x", MaxInputSize))
	var out map[string]string
	if err := Unmarshal(data, &out); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}
