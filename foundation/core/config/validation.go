// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements validation for configuration values including type
//              checking, range validation, required fields, patterns, and
//              binding configuration sections to Go structs.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14
//
// Change History:
// - 2026-07-14 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	rwerror "github.com/msto63/mRW/foundation/core/error"
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate validates the configuration against the provided rules.
// Missing optional fields receive their rule's default, so the write
// lock is held for the whole pass.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	for key, rule := range rules {
		if err := c.validateField(key, rule); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field against its rule
func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)

	// Check required fields
	if rule.Required && value == nil {
		return fmt.Errorf("required field '%s' is missing", key)
	}

	// Apply default if value is missing
	if value == nil {
		if rule.Default != nil {
			c.setValueUnsafe(key, rule.Default)
		}
		return nil
	}

	// Type validation
	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	// Bounds validation
	if rule.Min != nil || rule.Max != nil {
		if err := validateBounds(key, value, rule.Min, rule.Max); err != nil {
			return err
		}
	}

	// Pattern validation
	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	return nil
}

// setValueUnsafe sets a value without locking (caller must hold the lock)
func (c *Config) setValueUnsafe(key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			next = make(map[string]interface{})
			current[k] = next
			current = next
		}
	}
}

// validateType checks if a value matches the expected type
func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		switch v := value.(type) {
		case int, int64:
			// OK
		case float64:
			// TOML parses all numbers as float64 in some paths, accept whole numbers
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s' must be an integer, got float %v", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "float":
		switch value.(type) {
		case float64, float32, int, int64:
			// OK, ints are acceptable floats
		default:
			return fmt.Errorf("field '%s' must be a float, got %T", key, value)
		}
	case "duration":
		switch v := value.(type) {
		case string:
			if _, err := time.ParseDuration(v); err != nil {
				return fmt.Errorf("field '%s' must be a valid duration: %v", key, err)
			}
		case time.Duration, int, int64:
			// OK
		default:
			return fmt.Errorf("field '%s' must be a duration, got %T", key, value)
		}
	case "[]string":
		switch value.(type) {
		case []string, []interface{}:
			// OK
		default:
			return fmt.Errorf("field '%s' must be a string array, got %T", key, value)
		}
	default:
		return fmt.Errorf("unknown validation type '%s' for field '%s'", expectedType, key)
	}

	return nil
}

// validateBounds checks if a value is within the specified bounds
func validateBounds(key string, value interface{}, min, max interface{}) error {
	if min != nil {
		if err := validateMin(key, value, min); err != nil {
			return err
		}
	}

	if max != nil {
		if err := validateMax(key, value, max); err != nil {
			return err
		}
	}

	return nil
}

// validateMin checks the minimum bound for a value
func validateMin(key string, value, min interface{}) error {
	switch v := value.(type) {
	case int:
		minVal, err := toInt64(min)
		if err != nil {
			return fmt.Errorf("invalid min bound for field '%s': %v", key, err)
		}
		if int64(v) < minVal {
			return fmt.Errorf("field '%s' must be at least %d, got %d", key, minVal, v)
		}
	case int64:
		minVal, err := toInt64(min)
		if err != nil {
			return fmt.Errorf("invalid min bound for field '%s': %v", key, err)
		}
		if v < minVal {
			return fmt.Errorf("field '%s' must be at least %d, got %d", key, minVal, v)
		}
	case float64:
		minVal, err := toFloat64(min)
		if err != nil {
			return fmt.Errorf("invalid min bound for field '%s': %v", key, err)
		}
		if v < minVal {
			return fmt.Errorf("field '%s' must be at least %v, got %v", key, minVal, v)
		}
	case string:
		minVal, err := toInt64(min)
		if err != nil {
			return fmt.Errorf("invalid min length for field '%s': %v", key, err)
		}
		if int64(len(v)) < minVal {
			return fmt.Errorf("field '%s' must have at least %d characters, got %d", key, minVal, len(v))
		}
	case []interface{}:
		minVal, err := toInt64(min)
		if err != nil {
			return fmt.Errorf("invalid min length for field '%s': %v", key, err)
		}
		if int64(len(v)) < minVal {
			return fmt.Errorf("field '%s' must have at least %d elements, got %d", key, minVal, len(v))
		}
	}

	return nil
}

// validateMax checks the maximum bound for a value
func validateMax(key string, value, max interface{}) error {
	switch v := value.(type) {
	case int:
		maxVal, err := toInt64(max)
		if err != nil {
			return fmt.Errorf("invalid max bound for field '%s': %v", key, err)
		}
		if int64(v) > maxVal {
			return fmt.Errorf("field '%s' must be at most %d, got %d", key, maxVal, v)
		}
	case int64:
		maxVal, err := toInt64(max)
		if err != nil {
			return fmt.Errorf("invalid max bound for field '%s': %v", key, err)
		}
		if v > maxVal {
			return fmt.Errorf("field '%s' must be at most %d, got %d", key, maxVal, v)
		}
	case float64:
		maxVal, err := toFloat64(max)
		if err != nil {
			return fmt.Errorf("invalid max bound for field '%s': %v", key, err)
		}
		if v > maxVal {
			return fmt.Errorf("field '%s' must be at most %v, got %v", key, maxVal, v)
		}
	case string:
		maxVal, err := toInt64(max)
		if err != nil {
			return fmt.Errorf("invalid max length for field '%s': %v", key, err)
		}
		if int64(len(v)) > maxVal {
			return fmt.Errorf("field '%s' must have at most %d characters, got %d", key, maxVal, len(v))
		}
	case []interface{}:
		maxVal, err := toInt64(max)
		if err != nil {
			return fmt.Errorf("invalid max length for field '%s': %v", key, err)
		}
		if int64(len(v)) > maxVal {
			return fmt.Errorf("field '%s' must have at most %d elements, got %d", key, maxVal, len(v))
		}
	}

	return nil
}

// validatePattern checks if a string value matches a regex pattern
func validatePattern(key string, value interface{}, pattern string) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' must be a string for pattern validation, got %T", key, value)
	}

	matched, err := regexp.MatchString(pattern, str)
	if err != nil {
		return fmt.Errorf("invalid pattern for field '%s': %v", key, err)
	}

	if !matched {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, str, pattern)
	}

	return nil
}

// toInt64 converts an interface value to int64
func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", value)
	}
}

// toFloat64 converts an interface value to float64
func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// BindToStruct binds a configuration section to a struct using reflection.
// Struct fields are matched via their "config" tag, falling back to the
// lowercase field name.
func (c *Config) BindToStruct(sectionKey string, target interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.IsNil() {
		return rwerror.New("target must be a non-nil pointer to a struct").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.BindToStruct").
			WithDetail("section", sectionKey)
	}

	structValue := targetValue.Elem()
	if structValue.Kind() != reflect.Struct {
		return rwerror.New("target must point to a struct").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.BindToStruct").
			WithDetail("section", sectionKey).
			WithDetail("kind", structValue.Kind().String())
	}

	var section map[string]interface{}
	if sectionKey == "" {
		section = c.data
	} else {
		raw := c.getValue(sectionKey)
		if raw == nil {
			// Missing section leaves the struct at its zero or preset values
			return nil
		}
		var ok bool
		section, ok = raw.(map[string]interface{})
		if !ok {
			return rwerror.New(fmt.Sprintf("config key '%s' is not a section", sectionKey)).
				WithCode(rwerror.CodeInvalidInput).
				WithOperation("config.BindToStruct").
				WithDetail("section", sectionKey).
				WithDetail("type", fmt.Sprintf("%T", raw))
		}
	}

	structType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		// Determine config key from tag or field name
		configKey := field.Tag.Get("config")
		if configKey == "-" {
			continue
		}
		if configKey == "" {
			configKey = strings.ToLower(field.Name)
		}

		raw, exists := section[configKey]
		if !exists {
			continue
		}

		if err := setFieldValue(fieldValue, raw); err != nil {
			return rwerror.Wrap(err, fmt.Sprintf("failed to bind field '%s'", field.Name)).
				WithCode(rwerror.CodeInvalidInput).
				WithOperation("config.BindToStruct").
				WithDetail("section", sectionKey).
				WithDetail("field", field.Name).
				WithDetail("configKey", configKey)
		}
	}

	return nil
}

// setFieldValue sets a struct field from a configuration value
func setFieldValue(fieldValue reflect.Value, raw interface{}) error {
	switch fieldValue.Kind() {
	case reflect.String:
		str, ok := raw.(string)
		if !ok {
			str = fmt.Sprintf("%v", raw)
		}
		fieldValue.SetString(str)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// time.Duration is an int64 kind but parses from strings
		if fieldValue.Type() == reflect.TypeOf(time.Duration(0)) {
			if str, ok := raw.(string); ok {
				duration, err := time.ParseDuration(str)
				if err != nil {
					return fmt.Errorf("invalid duration '%s': %v", str, err)
				}
				fieldValue.SetInt(int64(duration))
				return nil
			}
		}
		intVal, err := toInt64(raw)
		if err != nil {
			return err
		}
		fieldValue.SetInt(intVal)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		intVal, err := toInt64(raw)
		if err != nil {
			return err
		}
		if intVal < 0 {
			return fmt.Errorf("cannot set negative value %d on unsigned field", intVal)
		}
		fieldValue.SetUint(uint64(intVal))

	case reflect.Float32, reflect.Float64:
		floatVal, err := toFloat64(raw)
		if err != nil {
			return err
		}
		fieldValue.SetFloat(floatVal)

	case reflect.Bool:
		boolVal, ok := raw.(bool)
		if !ok {
			if str, isStr := raw.(string); isStr {
				parsed, err := strconv.ParseBool(str)
				if err != nil {
					return fmt.Errorf("invalid boolean '%s': %v", str, err)
				}
				boolVal = parsed
			} else {
				return fmt.Errorf("cannot convert %T to bool", raw)
			}
		}
		fieldValue.SetBool(boolVal)

	case reflect.Slice:
		if fieldValue.Type().Elem().Kind() == reflect.String {
			switch v := raw.(type) {
			case []string:
				fieldValue.Set(reflect.ValueOf(v))
			case []interface{}:
				strs := make([]string, len(v))
				for i, item := range v {
					strs[i] = fmt.Sprintf("%v", item)
				}
				fieldValue.Set(reflect.ValueOf(strs))
			default:
				return fmt.Errorf("cannot convert %T to []string", raw)
			}
		} else {
			return fmt.Errorf("unsupported slice element type %s", fieldValue.Type().Elem().Kind())
		}

	default:
		return fmt.Errorf("unsupported field kind %s", fieldValue.Kind())
	}

	return nil
}
