package watson

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	knownKeysCache sync.Map

	timeType = reflect.TypeOf(time.Time{})
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(fieldName)
	})

	return validate
}

// fieldName reports a struct field by its wire name.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "schema"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}

// ValidateOptions checks the required fields of a method's options before any
// network call is made.
func ValidateOptions(options interface{}) error {
	value := reflect.ValueOf(options)
	if !value.IsValid() || (value.Kind() == reflect.Ptr && value.IsNil()) {
		return ErrMissingOptions
	}

	err := validatorInstance().Struct(options)
	if err != nil {
		return validationError(err, ErrMissingParameter, "")
	}

	return validateElements(value, "", ErrMissingParameter)
}

// UnmarshalModel decodes data into result and checks its required fields.
func UnmarshalModel(data []byte, result interface{}) error {
	err := json.Unmarshal(data, result)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	target := reflect.Indirect(reflect.ValueOf(result))

	if target.Kind() == reflect.Struct {
		err = validatorInstance().Struct(result)
		if err != nil {
			return validationError(err, ErrInvalidModel, "")
		}
	}

	return validateElements(target, "", ErrInvalidModel)
}

// validateElements checks the models held in slices, arrays and maps below
// value. The validator only visits those for fields tagged dive, so every
// element is validated here and walked in turn.
func validateElements(value reflect.Value, path string, sentinel error) error {
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}

		value = value.Elem()
	}

	switch value.Kind() { //nolint:exhaustive // only containers hold models
	case reflect.Struct:
		valueType := value.Type()

		for i := range valueType.NumField() {
			field := valueType.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldPath := path
			if !field.Anonymous {
				fieldPath = joinPath(path, fieldName(field))
			}

			err := validateElements(value.Field(i), fieldPath, sentinel)
			if err != nil {
				return err
			}
		}

	case reflect.Slice, reflect.Array:
		if !holdsModels(value.Type().Elem()) {
			return nil
		}

		for i := range value.Len() {
			err := validateElement(value.Index(i), fmt.Sprintf("%s[%d]", path, i), sentinel)
			if err != nil {
				return err
			}
		}

	case reflect.Map:
		if !holdsModels(value.Type().Elem()) {
			return nil
		}

		iter := value.MapRange()
		for iter.Next() {
			err := validateElement(iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key().Interface()), sentinel)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func validateElement(element reflect.Value, path string, sentinel error) error {
	for element.Kind() == reflect.Ptr {
		if element.IsNil() {
			return nil
		}

		element = element.Elem()
	}

	if element.Kind() == reflect.Struct && element.Type() != timeType {
		err := validatorInstance().Struct(element.Interface())
		if err != nil {
			return validationError(err, sentinel, path)
		}
	}

	return validateElements(element, path, sentinel)
}

// holdsModels reports whether values of t can contain structs to validate.
func holdsModels(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() { //nolint:exhaustive // containers and structs only
	case reflect.Struct:
		return t != timeType
	case reflect.Slice, reflect.Array, reflect.Map:
		return holdsModels(t.Elem())
	default:
		return false
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}

// DecodeModel decodes data into a new T and checks its required fields.
func DecodeModel[T any](data []byte) (*T, error) {
	var result T

	err := UnmarshalModel(data, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// MarshalModel encodes a model, including any additional properties.
func MarshalModel(model interface{}) ([]byte, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return data, nil
}

// ConvertModel re-shapes a model into a generic map, the form used for
// untyped request bodies.
func ConvertModel(model interface{}) (map[string]interface{}, error) {
	data, err := MarshalModel(model)
	if err != nil {
		return nil, err
	}

	var converted map[string]interface{}

	err = json.Unmarshal(data, &converted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return converted, nil
}

func validationError(err error, sentinel error, path string) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	missing := make([]string, 0, len(validationErrs))
	invalid := make([]string, 0)

	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required", "min":
			missing = append(missing, fieldErr.Namespace())
		default:
			invalid = append(invalid, fmt.Sprintf("%s (%s)", fieldErr.Namespace(), fieldErr.Tag()))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", sentinel, strings.Join(trimNamespaces(missing, path), ", "))
	}

	return fmt.Errorf("%w: %s", ErrInvalidParameter, strings.Join(trimNamespaces(invalid, path), ", "))
}

// trimNamespaces drops the leading type name from validator namespaces and
// roots them at path.
func trimNamespaces(names []string, path string) []string {
	for i, name := range names {
		if idx := strings.Index(name, "."); idx >= 0 {
			name = name[idx+1:]
		}

		names[i] = joinPath(path, name)
	}

	return names
}

// AdditionalProperties holds JSON keys a model does not declare.
type AdditionalProperties struct {
	Extra map[string]interface{} `json:"-" yaml:"-"`
}

// SetProperty stores an additional property.
func (a *AdditionalProperties) SetProperty(key string, value interface{}) {
	if a.Extra == nil {
		a.Extra = make(map[string]interface{})
	}

	a.Extra[key] = value
}

// GetProperty returns an additional property or nil.
func (a *AdditionalProperties) GetProperty(key string) interface{} {
	return a.Extra[key]
}

// GetProperties returns all additional properties.
func (a *AdditionalProperties) GetProperties() map[string]interface{} {
	return a.Extra
}

// DecodeWithResidual decodes data into target and moves every key target does
// not declare into extra. target must not implement json.Unmarshaler itself;
// callers pass a converted alias type.
func DecodeWithResidual(data []byte, target interface{}, extra *map[string]interface{}) error {
	*extra = nil

	err := json.Unmarshal(data, target)
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage

	err = json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	known := knownKeys(reflect.TypeOf(target))

	for key, value := range raw {
		if _, ok := known[key]; ok {
			continue
		}

		var decoded interface{}

		err = json.Unmarshal(value, &decoded)
		if err != nil {
			return err
		}

		if *extra == nil {
			*extra = make(map[string]interface{})
		}

		(*extra)[key] = decoded
	}

	return nil
}

// EncodeWithResidual encodes value and merges extra into the resulting object.
// Declared keys win over additional properties with the same name.
func EncodeWithResidual(value interface{}, extra map[string]interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	if len(extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage

	err = json.Unmarshal(data, &merged)
	if err != nil {
		return nil, err
	}

	for key, property := range extra {
		if _, exists := merged[key]; exists {
			continue
		}

		encoded, err := json.Marshal(property)
		if err != nil {
			return nil, err
		}

		merged[key] = encoded
	}

	return json.Marshal(merged)
}

// knownKeys returns the JSON keys declared by a struct type.
func knownKeys(t reflect.Type) map[string]struct{} {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if cached, ok := knownKeysCache.Load(t); ok {
		keys, _ := cached.(map[string]struct{})

		return keys
	}

	keys := make(map[string]struct{})
	collectKeys(t, keys)
	knownKeysCache.Store(t, keys)

	return keys
}

func collectKeys(t reflect.Type, keys map[string]struct{}) {
	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		name := strings.SplitN(tag, ",", 2)[0]

		if name == "-" {
			continue
		}

		if field.Anonymous && name == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}

			if embedded.Kind() == reflect.Struct {
				collectKeys(embedded, keys)

				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		keys[name] = struct{}{}
	}
}

// CSV is a list sent as one comma-separated query parameter.
type CSV []string

// String returns the comma-joined list.
func (c CSV) String() string {
	return strings.Join(c, ",")
}

// String returns a pointer to the given string.
func String(value string) *string {
	return &value
}

// Bool returns a pointer to the given bool.
func Bool(value bool) *bool {
	return &value
}

// Int64 returns a pointer to the given int64.
func Int64(value int64) *int64 {
	return &value
}

// Float64 returns a pointer to the given float64.
func Float64(value float64) *float64 {
	return &value
}

// StringValue dereferences a string pointer, returning "" for nil.
func StringValue(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
