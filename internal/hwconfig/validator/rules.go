package validator

import (
	"encoding/json"
	"math/big"
	"regexp"
	"slices"
)

// Naming patterns. Each is anchored at the start only, so a valid prefix
// followed by anything else still matches ("STM32F401-extra").
var (
	mcuPattern       = regexp.MustCompile(`^STM32[A-Z][0-9]+`)
	corePattern      = regexp.MustCompile(`^ARM Cortex M[0-9]+[A-Z]*`)
	pinPattern       = regexp.MustCompile(`^P[A-Z][0-9]+`)
	usartPattern     = regexp.MustCompile(`^USART[0-9]+`)
	i2cPattern       = regexp.MustCompile(`^I2C[0-9]+`)
	timerPattern     = regexp.MustCompile(`^TIM[0-9]+`)
	frequencyPattern = regexp.MustCompile(`^[0-9]+[kM]?Hz`)
)

// check reports whether a decoded value satisfies a rule.
type check func(v any) bool

// rule binds one key to its check and the failure it produces.
type rule struct {
	field   string
	kind    Kind
	message string
	check   check
}

// peripheralRules describes one peripheral list under "peripherals".
type peripheralRules struct {
	key      string
	label    string
	required []string
	rules    []rule
}

// requiredFields are the top-level keys every configuration must carry.
var requiredFields = []string{"mcu", "core-type", "Floating point", "peripherals"}

// topLevelRules run after the required fields are known to be present.
var topLevelRules = []rule{
	{field: "mcu", kind: KindInvalidFormat, message: "invalid MCU format", check: matches(mcuPattern)},
	{field: "core-type", kind: KindInvalidFormat, message: "invalid core-type format", check: matches(corePattern)},
	{field: "Floating point", kind: KindInvalidValue, message: "invalid Floating point value", check: oneOf("True", "False")},
}

// peripheralKinds lists the peripheral lists in the order they are checked.
var peripheralKinds = []peripheralRules{
	{
		key:      "gpio",
		label:    "GPIO",
		required: []string{"pin", "direction", "pull", "speed", "alt_function"},
		rules: []rule{
			{field: "pin", kind: KindInvalidFormat, message: "invalid GPIO pin format", check: matches(pinPattern)},
			{field: "direction", kind: KindInvalidValue, message: "invalid GPIO direction", check: oneOf("input", "output")},
			{field: "pull", kind: KindInvalidValue, message: "invalid GPIO pull", check: oneOf("none", "up", "down")},
			{field: "speed", kind: KindInvalidValue, message: "invalid GPIO speed", check: oneOf("low", "medium", "high")},
			{field: "alt_function", kind: KindInvalidShape, message: "GPIO alt_function must be a list", check: isList},
		},
	},
	{
		key:      "uart",
		label:    "UART",
		required: []string{"interface", "baudrate", "tx_pin", "rx_pin", "parity"},
		rules: []rule{
			{field: "interface", kind: KindInvalidFormat, message: "invalid UART interface", check: matches(usartPattern)},
			{field: "baudrate", kind: KindInvalidValue, message: "invalid UART baudrate", check: integerAtLeast(1)},
			{field: "tx_pin", kind: KindInvalidFormat, message: "invalid UART pin format", check: matches(pinPattern)},
			{field: "rx_pin", kind: KindInvalidFormat, message: "invalid UART pin format", check: matches(pinPattern)},
			{field: "parity", kind: KindInvalidValue, message: "invalid UART parity", check: oneOf("none", "even", "odd")},
		},
	},
	{
		key:      "i2c",
		label:    "I2C",
		required: []string{"interface", "scl_pin", "sda_pin", "speed"},
		rules: []rule{
			{field: "interface", kind: KindInvalidFormat, message: "invalid I2C interface", check: matches(i2cPattern)},
			{field: "scl_pin", kind: KindInvalidFormat, message: "invalid I2C pin format", check: matches(pinPattern)},
			{field: "sda_pin", kind: KindInvalidFormat, message: "invalid I2C pin format", check: matches(pinPattern)},
			{field: "speed", kind: KindInvalidValue, message: "invalid I2C speed", check: oneOf("100kHz", "400kHz")},
		},
	},
	{
		key:      "timers",
		label:    "timer",
		required: []string{"timer", "prescaler", "frequency", "mode"},
		rules: []rule{
			{field: "timer", kind: KindInvalidFormat, message: "invalid timer name", check: matches(timerPattern)},
			{field: "prescaler", kind: KindInvalidValue, message: "invalid timer prescaler", check: integerAtLeast(0)},
			{field: "frequency", kind: KindInvalidFormat, message: "invalid timer frequency", check: matches(frequencyPattern)},
			{field: "mode", kind: KindInvalidValue, message: "invalid timer mode", check: oneOf("counter", "pwm")},
		},
	},
}

// matches accepts strings with a prefix matching re. Non-strings fail.
func matches(re *regexp.Regexp) check {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}

// oneOf accepts exactly one of the given strings, case-sensitively.
func oneOf(allowed ...string) check {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && slices.Contains(allowed, s)
	}
}

func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// integerAtLeast accepts integers >= floor. Booleans and numbers written
// with a fraction or exponent are not integers.
func integerAtLeast(floor int64) check {
	return func(v any) bool {
		n, ok := integerValue(v)
		return ok && n.Cmp(big.NewInt(floor)) >= 0
	}
}

// integerValue extracts an integer of any magnitude from a decoded value.
func integerValue(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case json.Number:
		return new(big.Int).SetString(n.String(), 10)
	case int:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	default:
		return nil, false
	}
}
