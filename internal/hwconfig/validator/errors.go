// Package validator checks hardware configuration documents against the
// MCU naming, core type and peripheral assignment rules.
package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thoreinstein/mcucheck/internal/errors"
)

// Sentinel errors, one per failure kind.
var (
	// ErrMissingField indicates a required top-level field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidFormat indicates a value does not match its naming pattern.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidValue indicates a value is outside its allowed set or range.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidShape indicates a value has the wrong JSON type for its position.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrMissingKeys indicates a peripheral instance lacks required keys.
	ErrMissingKeys = errors.New("missing keys")
)

// Kind classifies a validation failure.
type Kind int

const (
	KindMissingField Kind = iota
	KindInvalidFormat
	KindInvalidValue
	KindInvalidShape
	KindMissingKeys
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "MissingField"
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindInvalidValue:
		return "InvalidValue"
	case KindInvalidShape:
		return "InvalidShape"
	case KindMissingKeys:
		return "MissingKeys"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissingField:
		return ErrMissingField
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindInvalidValue:
		return ErrInvalidValue
	case KindInvalidShape:
		return ErrInvalidShape
	case KindMissingKeys:
		return ErrMissingKeys
	default:
		return nil
	}
}

// ValidationError describes the first rule a configuration violated.
type ValidationError struct {
	// Kind classifies the failure.
	Kind Kind

	// Peripheral is the peripheral list key ("gpio", "uart", "i2c",
	// "timers"). Empty for top-level failures.
	Peripheral string

	// Index is the position of the instance within its peripheral list.
	// Only meaningful when Peripheral is set.
	Index int

	// Field is the offending key. Empty when the failure concerns a whole
	// peripheral list or instance.
	Field string

	// Value is the offending value, nil when the key is absent.
	Value any

	// Missing lists absent keys for KindMissingKeys, in rule order.
	Missing []string

	// Message is a human-readable description of the rule.
	Message string
}

// Path locates the failure inside the document, e.g. "mcu" or
// "peripherals.uart[1].baudrate".
func (e *ValidationError) Path() string {
	if e.Peripheral == "" {
		return e.Field
	}
	path := fmt.Sprintf("peripherals.%s[%d]", e.Peripheral, e.Index)
	if e.Field != "" {
		path += "." + e.Field
	}
	return path
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	switch e.Kind {
	case KindMissingField:
		fmt.Fprintf(&sb, " '%s'", e.Field)
	case KindMissingKeys:
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e.Missing, ", "))
	case KindInvalidShape:
		fmt.Fprintf(&sb, " (got %s)", typeName(e.Value))
	default:
		sb.WriteString(": ")
		sb.WriteString(FormatValue(e.Value))
	}

	if e.Peripheral != "" {
		fmt.Fprintf(&sb, " at %s", e.Path())
	}
	return sb.String()
}

// Unwrap returns the sentinel error for the failure kind.
func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// FormatValue renders a decoded JSON value for diagnostics. Strings are
// printed bare, everything else as compact JSON.
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// typeName names the JSON type of a decoded value.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, int, int64, uint64, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
