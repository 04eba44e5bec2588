package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// fieldMaps caches JSON tag -> struct field index paths per struct type
var fieldMaps sync.Map

func getFieldMap(t reflect.Type) map[string][]int {
	if cached, ok := fieldMaps.Load(t); ok {
		return cached.(map[string][]int)
	}
	m := make(map[string][]int)
	collectFields(t, nil, m)
	fieldMaps.Store(t, m)
	return m
}

func collectFields(t reflect.Type, prefix []int, m map[string][]int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := append(append([]int{}, prefix...), i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(f.Type, idx, m)
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		m[strings.Split(tag, ",")[0]] = idx
	}
}

// unmarshalFlex decodes data into target (a pointer to a struct without its
// own UnmarshalJSON) accepting both native and string-encoded values.
// Spreadsheet exports and form posts send "2" and "1.85" as strings.
func unmarshalFlex(data []byte, target any) error {
	// Fast path: standard unmarshal works when all types match natively
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	v := reflect.ValueOf(target).Elem()
	v.Set(reflect.Zero(v.Type()))
	fieldMap := getFieldMap(v.Type())

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.FieldByIndex(idx)
		if !fv.CanSet() {
			continue
		}

		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		if len(rawVal) > 1 && rawVal[0] == '"' {
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				continue
			}
			if s == "" {
				continue
			}
			if err := coerceStringToField(fv, s); err != nil {
				return fmt.Errorf("field %s: %w", key, err)
			}
			continue
		}
		return fmt.Errorf("field %s: cannot decode %s", key, string(rawVal))
	}

	return nil
}

// coerceStringToField converts a string value to the field's native type.
func coerceStringToField(fv reflect.Value, s string) error {
	if fv.Kind() == reflect.Ptr {
		elem := reflect.New(fv.Type().Elem())
		if err := coerceStringToField(elem.Elem(), s); err != nil {
			return err
		}
		fv.Set(elem)
		return nil
	}

	switch fv.Kind() {
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(n)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.String:
		fv.SetString(s)
	default:
		return fmt.Errorf("unsupported kind %s", fv.Kind())
	}
	return nil
}

// UnmarshalJSON accepts string-encoded numbers.
func (r *TeamCreateRequest) UnmarshalJSON(data []byte) error {
	type Alias TeamCreateRequest
	return unmarshalFlex(data, (*Alias)(r))
}

// UnmarshalJSON accepts string-encoded numbers.
func (r *TeamUpdateRequest) UnmarshalJSON(data []byte) error {
	type Alias TeamUpdateRequest
	return unmarshalFlex(data, (*Alias)(r))
}

// UnmarshalJSON accepts string-encoded numbers and odds.
func (r *MatchCreateRequest) UnmarshalJSON(data []byte) error {
	type Alias MatchCreateRequest
	return unmarshalFlex(data, (*Alias)(r))
}

// UnmarshalJSON accepts string-encoded numbers and odds.
func (r *MatchUpdateRequest) UnmarshalJSON(data []byte) error {
	type Alias MatchUpdateRequest
	return unmarshalFlex(data, (*Alias)(r))
}
