package binder

import (
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"github.com/ygrebnov/errorc"
)

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
)

// convert turns a raw configuration value into a value assignable to target.
// Resolution order: registered converter, direct assignability, default-type
// table for abstract targets, structural decode for structs/maps/slices,
// cast-based scalar conversion.
func (b defaultBinder) convert(raw any, target reflect.Type, opts Options) (any, error) {
	if fn, ok := opts.Converters[target]; ok {
		return fn(raw)
	}
	if raw == nil {
		return nil, nil // zero value
	}
	if reflect.TypeOf(raw).AssignableTo(target) {
		return raw, nil
	}

	switch target.Kind() {
	case reflect.Interface:
		concrete, ok := opts.DefaultTypes[target]
		if !ok {
			return nil, conversionError(ErrNoDefaultType, raw, target)
		}
		v, err := b.convert(raw, concrete, opts)
		if err != nil {
			return nil, err
		}
		if v != nil && !reflect.TypeOf(v).AssignableTo(target) {
			return nil, conversionError(ErrCannotConvert, v, target)
		}
		return v, nil

	case reflect.Pointer:
		if target.Elem().Kind() == reflect.Struct {
			return b.decode(raw, target)
		}
		elem, err := b.convert(raw, target.Elem(), opts)
		if err != nil {
			return nil, err
		}
		pv := reflect.New(target.Elem())
		pv.Elem().Set(reflect.ValueOf(elem))
		return pv.Interface(), nil

	case reflect.Struct:
		if target == timeType {
			t, err := cast.ToTimeE(raw)
			return scalar(t, target, raw, err)
		}
		return b.decode(raw, target)

	case reflect.Bool:
		v, err := cast.ToBoolE(raw)
		return scalar(v, target, raw, err)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if target == durationType {
			d, err := cast.ToDurationE(raw)
			return scalar(d, target, raw, err)
		}
		n, err := cast.ToInt64E(raw)
		if err != nil {
			return nil, conversionError(ErrCannotConvert, raw, target)
		}
		out := reflect.New(target).Elem()
		if out.OverflowInt(n) {
			return nil, conversionError(ErrCannotConvert, raw, target)
		}
		out.SetInt(n)
		return out.Interface(), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := cast.ToUint64E(raw)
		if err != nil {
			return nil, conversionError(ErrCannotConvert, raw, target)
		}
		out := reflect.New(target).Elem()
		if out.OverflowUint(n) {
			return nil, conversionError(ErrCannotConvert, raw, target)
		}
		out.SetUint(n)
		return out.Interface(), nil

	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, conversionError(ErrCannotConvert, raw, target)
		}
		out := reflect.New(target).Elem()
		out.SetFloat(f)
		return out.Interface(), nil

	case reflect.String:
		s, err := cast.ToStringE(raw)
		return scalar(s, target, raw, err)

	case reflect.Slice:
		if target.Elem().Kind() == reflect.String {
			ss, err := cast.ToStringSliceE(raw)
			if err != nil {
				return nil, conversionError(ErrCannotConvert, raw, target)
			}
			out := reflect.MakeSlice(target, len(ss), len(ss))
			for i, s := range ss {
				out.Index(i).Set(reflect.ValueOf(s).Convert(target.Elem()))
			}
			return out.Interface(), nil
		}
		return b.decode(raw, target)

	case reflect.Map:
		return b.decode(raw, target)
	}

	return nil, conversionError(ErrCannotConvert, raw, target)
}

// scalar finalizes a cast-produced value, converting to named types
// (type Port int, type Mode string) when needed.
func scalar[T any](v T, target reflect.Type, raw any, err error) (any, error) {
	if err != nil {
		return nil, conversionError(ErrCannotConvert, raw, target)
	}
	rv := reflect.ValueOf(v)
	if rv.Type() == target {
		return v, nil
	}
	return rv.Convert(target).Interface(), nil
}

// decode structurally decodes a raw node (typically map[string]any) into a
// fresh value of the target type. Input is weakly typed so string-backed
// sources bind numeric and boolean fields.
func (b defaultBinder) decode(raw any, target reflect.Type) (any, error) {
	ptrTarget := target.Kind() == reflect.Pointer
	elem := target
	if ptrTarget {
		elem = target.Elem()
	}
	out := reflect.New(elem)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out.Interface(),
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, conversionError(ErrCannotConvert, raw, target)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errorc.With(
			conversionError(ErrCannotConvert, raw, target),
			errorc.Error(ErrorFieldCause, err),
		)
	}
	if ptrTarget {
		return out.Interface(), nil
	}
	return out.Elem().Interface(), nil
}

func conversionError(sentinel error, raw any, target reflect.Type) error {
	valueType := "nil"
	if raw != nil {
		valueType = reflect.TypeOf(raw).String()
	}
	return errorc.With(
		sentinel,
		errorc.String(ErrorFieldValueType, valueType),
		errorc.String(ErrorFieldTargetType, target.String()),
	)
}
