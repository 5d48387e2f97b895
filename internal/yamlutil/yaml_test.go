package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	type meta struct {
		Title  string `yaml:"title"`
		Author string `yaml:"author"`
	}

	t.Run("valid document", func(t *testing.T) {
		var m meta
		err := Unmarshal([]byte("title: Report\nauthor: Ada\n"), &m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Title != "Report" || m.Author != "Ada" {
			t.Errorf("got %+v", m)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		var m meta
		err := Unmarshal([]byte("title: Report\ndate: 2024-01-01\n"), &m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Title != "Report" {
			t.Errorf("title = %q", m.Title)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		var m meta
		if err := Unmarshal(nil, &m); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		if err := Unmarshal([]byte("title: x\n"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("input too large", func(t *testing.T) {
		var m meta
		data := bytes.Repeat([]byte("a"), MaxInputSize+1)
		if err := Unmarshal(data, &m); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		var m meta
		if err := Unmarshal([]byte("title: [unclosed\n"), &m); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}
