package validator

import (
	"log/slog"
)

// Option configures a Validator.
type Option func(*Validator)

// Validator checks hardware configurations.
type Validator struct {
	logger *slog.Logger
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithLogger sets the logger used to trace each checked instance.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Validate checks a decoded configuration document.
//
// Checks run in a fixed order and stop at the first violation: required
// top-level fields, the mcu, core-type and Floating point values, the shape
// of peripherals, then every gpio, uart, i2c and timers instance in
// document order. The returned error is nil or a *ValidationError.
func (v *Validator) Validate(root any) error {
	cfg, ok := root.(map[string]any)
	if !ok {
		return &ValidationError{
			Kind:    KindInvalidShape,
			Field:   "configuration",
			Value:   root,
			Message: "configuration must be an object",
		}
	}

	for _, field := range requiredFields {
		if _, ok := cfg[field]; !ok {
			return &ValidationError{
				Kind:    KindMissingField,
				Field:   field,
				Message: "missing required field",
			}
		}
	}

	for _, r := range topLevelRules {
		if value := cfg[r.field]; !r.check(value) {
			return &ValidationError{
				Kind:    r.kind,
				Field:   r.field,
				Value:   value,
				Message: r.message,
			}
		}
	}

	peripherals, ok := cfg["peripherals"].(map[string]any)
	if !ok {
		return &ValidationError{
			Kind:    KindInvalidShape,
			Field:   "peripherals",
			Value:   cfg["peripherals"],
			Message: "'peripherals' must be an object",
		}
	}

	for _, kind := range peripheralKinds {
		if err := v.validateKind(kind, peripherals); err != nil {
			return err
		}
	}

	return nil
}

// validateKind checks every instance of one peripheral list.
// An absent list has no instances.
func (v *Validator) validateKind(kind peripheralRules, peripherals map[string]any) error {
	raw, present := peripherals[kind.key]
	if !present {
		return nil
	}

	instances, ok := raw.([]any)
	if !ok {
		return &ValidationError{
			Kind:    KindInvalidShape,
			Field:   "peripherals." + kind.key,
			Value:   raw,
			Message: "'peripherals." + kind.key + "' must be a list",
		}
	}

	for i, raw := range instances {
		v.logger.Debug("checking peripheral", "kind", kind.key, "index", i)
		if err := validateInstance(kind, i, raw); err != nil {
			return err
		}
	}

	return nil
}

// validateInstance checks one peripheral instance: required keys first,
// then each rule in order.
func validateInstance(kind peripheralRules, index int, raw any) error {
	instance, ok := raw.(map[string]any)
	if !ok {
		return &ValidationError{
			Kind:       KindInvalidShape,
			Peripheral: kind.key,
			Index:      index,
			Value:      raw,
			Message:    "invalid " + kind.label + " config, instance must be an object",
		}
	}

	var missing []string
	for _, key := range kind.required {
		if _, ok := instance[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{
			Kind:       KindMissingKeys,
			Peripheral: kind.key,
			Index:      index,
			Missing:    missing,
			Message:    "invalid " + kind.label + " config, missing keys",
		}
	}

	for _, r := range kind.rules {
		if value := instance[r.field]; !r.check(value) {
			return &ValidationError{
				Kind:       r.kind,
				Peripheral: kind.key,
				Index:      index,
				Field:      r.field,
				Value:      value,
				Message:    r.message,
			}
		}
	}

	return nil
}

// Validate checks root with a default Validator.
func Validate(root any) error {
	return New().Validate(root)
}

// Summary counts the peripheral instances in a configuration.
type Summary struct {
	GPIO   int
	UART   int
	I2C    int
	Timers int
}

// Summarize counts the instances of each peripheral list in root.
// Lists that are absent or not lists count as zero.
func Summarize(root any) Summary {
	cfg, _ := root.(map[string]any)
	peripherals, _ := cfg["peripherals"].(map[string]any)

	count := func(key string) int {
		list, _ := peripherals[key].([]any)
		return len(list)
	}

	return Summary{
		GPIO:   count("gpio"),
		UART:   count("uart"),
		I2C:    count("i2c"),
		Timers: count("timers"),
	}
}

// LogValue implements slog.LogValuer.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("gpio", s.GPIO),
		slog.Int("uart", s.UART),
		slog.Int("i2c", s.I2C),
		slog.Int("timers", s.Timers),
	)
}
