package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/internal/hwconfig"
	"github.com/thoreinstein/mcucheck/internal/hwconfig/validator"
	"github.com/thoreinstein/mcucheck/internal/printer"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func loadErr(t *testing.T, content *string) error {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0644))
	}
	_, err := hwconfig.Load(path)
	require.Error(t, err)
	return err
}

func TestDiagnose(t *testing.T) {
	malformed := `{"mcu": }`

	tests := []struct {
		name      string
		err       error
		wantKind  string
		wantField string
		wantValue any
	}{
		{
			name:     "file not found",
			err:      loadErr(t, nil),
			wantKind: KindFileNotFound,
		},
		{
			name:     "malformed JSON",
			err:      loadErr(t, &malformed),
			wantKind: KindMalformedJSON,
		},
		{
			name:     "other I/O error",
			err:      errors.Mark(errors.New("permission denied"), hwconfig.ErrIO),
			wantKind: KindOtherIO,
		},
		{
			name: "validation error",
			err: &validator.ValidationError{
				Kind: validator.KindInvalidValue, Peripheral: "uart", Index: 0, Field: "baudrate",
				Value: json.Number("0"), Message: "invalid UART baudrate",
			},
			wantKind:  "InvalidValue",
			wantField: "peripherals.uart[0].baudrate",
			wantValue: json.Number("0"),
		},
		{
			name:     "encoding error",
			err:      errors.Mark(errors.New("null at notes has no TOML representation"), printer.ErrEncode),
			wantKind: KindEncoding,
		},
		{
			name:     "unclassified error",
			err:      errors.New("boom"),
			wantKind: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diagnose(tt.err, "config.json")
			assert.False(t, d.Valid)
			assert.Equal(t, tt.wantKind, d.Kind)
			assert.Equal(t, tt.wantField, d.Field)
			assert.Equal(t, tt.wantValue, d.Value)
			assert.Equal(t, "config.json", d.File)
			assert.Equal(t, tt.err.Error(), d.Message)
		})
	}
}

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	err := validator.Validate(map[string]any{"mcu": "STM32F4"})

	require.NoError(t, New(&buf, FormatText).Report(err, "config.json"))
	assert.Equal(t, "Error: missing required field 'core-type'\n", buf.String())
}

func TestReporter_Text_SingleLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText).Report(errors.New("first\nsecond"), ""))
	assert.Equal(t, "Error: first second\n", buf.String())
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := &validator.ValidationError{
		Kind:       validator.KindMissingKeys,
		Peripheral: "gpio",
		Index:      1,
		Missing:    []string{"speed"},
		Message:    "invalid GPIO config, missing keys",
	}

	require.NoError(t, New(&buf, FormatJSON).Report(err, "board.json"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, false, got["valid"])
	assert.Equal(t, "MissingKeys", got["kind"])
	assert.Equal(t, "board.json", got["file"])
	assert.Equal(t, "peripherals.gpio[1]", got["field"])
	assert.Equal(t, []any{"speed"}, got["missing"])
	assert.NotContains(t, got, "value")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestReporter_NilError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON).Report(nil, "config.json"))
	assert.Empty(t, buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("html")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
