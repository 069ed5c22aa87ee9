/*
Copyright 2026 The EventGate Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	kitstrings "github.com/eventgate/kit/strings"
)

// StringDecoder is implemented by types that can be decoded from a string value,
// such as enumerations.
type StringDecoder interface {
	DecodeString(value string) error
}

var (
	stringDecoderType = reflect.TypeOf((*StringDecoder)(nil)).Elem()
	durationType      = reflect.TypeOf(time.Duration(0))
	boolType          = reflect.TypeOf(true)
)

// Decode decodes input, usually a map[string]string or map[string]any, into the struct pointed to by output.
// This is an extension of mitchellh/mapstructure which also supports:
//
//   - types implementing StringDecoder
//   - durations, as Go duration strings or as a number of milliseconds
//   - truthy strings ("y", "on", "1"...) for booleans
func Decode(input any, output any) error {
	normalized, err := Normalize(input)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringDecoderHookFunc(),
			toTimeDurationHookFunc(),
			toTruthyBoolHookFunc(),
		),
		Metadata:         nil,
		Result:           output,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(normalized)
}

func stringDecoderHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || !reflect.PointerTo(t).Implements(stringDecoderType) {
			return data, nil
		}

		s := reflect.ValueOf(data).String()
		result := reflect.New(t)
		err := result.Interface().(StringDecoder).DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", t.Name(), s, err)
		}
		return result.Elem().Interface(), nil
	}
}

func toTimeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != durationType || f == durationType {
			return data, nil
		}

		switch f.Kind() {
		case reflect.String:
			s := strings.TrimSpace(reflect.ValueOf(data).String())
			if d, err := time.ParseDuration(s); err == nil {
				return d, nil
			}
			// Not a Go duration, try parsing it as a number of milliseconds
			ms, err := cast.ToInt64E(s)
			if err != nil {
				return nil, fmt.Errorf("invalid duration %q", s)
			}
			return time.Duration(ms) * time.Millisecond, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			ms, err := cast.ToInt64E(data)
			if err != nil {
				return nil, err
			}
			return time.Duration(ms) * time.Millisecond, nil
		}

		return data, nil
	}
}

func toTruthyBoolHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() == reflect.String && t == boolType {
			return kitstrings.IsTruthy(reflect.ValueOf(data).String()), nil
		}
		return data, nil
	}
}
