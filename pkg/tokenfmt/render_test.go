package tokenfmt

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tokenfmt/tokenfmt/pkg/culture"
)

// temperature implements Formattable: "C" renders Celsius, "F" Fahrenheit.
type temperature float64

func (c temperature) FormatToken(spec string, provider *culture.Provider) (string, error) {
	switch spec {
	case "", "C":
		return fmt.Sprintf("%.1f°C", float64(c)), nil
	case "F":
		return fmt.Sprintf("%.1f°F", float64(c)*9/5+32), nil
	default:
		return "", fmt.Errorf("unknown temperature specifier %q", spec)
	}
}

func TestFormattableValues(t *testing.T) {
	src := map[string]any{"temp": temperature(21.5)}

	t.Run("specifier dispatches to the value", func(t *testing.T) {
		got, err := Format("{temp:F}", src)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "70.7°F" {
			t.Errorf("got %q, want %q", got, "70.7°F")
		}
	})

	t.Run("no specifier uses default representation", func(t *testing.T) {
		got, err := Format("{temp}", src)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if got != "21.5" {
			t.Errorf("got %q, want %q", got, "21.5")
		}
	})

	t.Run("value errors propagate", func(t *testing.T) {
		_, err := Format("{temp:K}", src)
		if err == nil {
			t.Fatal("expected an error from the Formattable value")
		}
	})
}

func TestTimeFormatting(t *testing.T) {
	when := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	src := map[string]any{"when": when}

	got, err := Format("{when:2006-01-02}", src)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "2024-03-15" {
		t.Errorf("got %q, want %q", got, "2024-03-15")
	}

	got, err = Format("{when}", src)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "2024-03-15T09:30:00Z" {
		t.Errorf("got %q, want %q", got, "2024-03-15T09:30:00Z")
	}
}

func TestSpecErrorPropagates(t *testing.T) {
	_, err := Format("{V:Q9}", map[string]any{"V": 5})
	var specErr *culture.SpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("expected *culture.SpecError, got %v", err)
	}
}

type loud string

func (l loud) String() string { return string(l) + "!" }

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "s", "s"},
		{"bytes", []byte("raw"), "raw"},
		{"bool", false, "false"},
		{"int", -3, "-3"},
		{"int64", int64(9000000000), "9000000000"},
		{"float64 trims", 1.50, "1.5"},
		{"float32", float32(0.25), "0.25"},
		{"stringer", loud("hey"), "hey!"},
		{"slice fallback", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringify(tt.value); got != tt.expected {
				t.Errorf("stringify(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}
