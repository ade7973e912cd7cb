package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Converter turns a call argument into the string substituted into a path
// template or sent as a query parameter value.
type Converter func(v interface{}) (string, error)

// String converts any value to its natural string representation: strings
// and byte slices are taken verbatim, fmt.Stringers are asked for their
// String, everything else goes through fmt.Sprint.
func String(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(v), nil
	}
}

// Int converts integers, floats (truncated toward zero), booleans and
// numeric strings to a base 10 integer.
func Int(v interface{}) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
			return "", errors.Errorf("cannot convert %v to int", f)
		}
		return strconv.FormatInt(int64(f), 10), nil
	case reflect.Bool:
		if rv.Bool() {
			return "1", nil
		}
		return "0", nil
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return "", errors.Wrapf(err, "cannot convert %q to int", rv.String())
		}
		return strconv.FormatInt(n, 10), nil
	}
	return "", errors.Errorf("cannot convert %T to int", v)
}

// Uint is like Int but rejects negative values.
func Uint(v interface{}) (string, error) {
	s, err := Int(v)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(s, "-") {
		return "", errors.Errorf("cannot convert negative value %s to uint", s)
	}
	return s, nil
}

// Float converts numbers and numeric strings to the shortest decimal
// representation that round-trips.
func Float(v interface{}) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatFloat(float64(rv.Int()), 'g', -1, 64), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatFloat(float64(rv.Uint()), 'g', -1, 64), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return "", errors.Wrapf(err, "cannot convert %q to float", rv.String())
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return "", errors.Errorf("cannot convert %T to float", v)
}

// Bool converts booleans and strings accepted by strconv.ParseBool to
// "true" or "false".
func Bool(v interface{}) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.String:
		b, err := strconv.ParseBool(strings.TrimSpace(rv.String()))
		if err != nil {
			return "", errors.Wrapf(err, "cannot convert %q to bool", rv.String())
		}
		return strconv.FormatBool(b), nil
	}
	return "", errors.Errorf("cannot convert %T to bool", v)
}

// Time returns a Converter formatting time.Time values with layout.
func Time(layout string) Converter {
	return func(v interface{}) (string, error) {
		switch t := v.(type) {
		case time.Time:
			return t.Format(layout), nil
		case *time.Time:
			if t == nil {
				return "", errors.New("cannot convert nil *time.Time")
			}
			return t.Format(layout), nil
		}
		return "", errors.Errorf("cannot convert %T to time", v)
	}
}

// Duration converts time.Duration values, and strings accepted by
// time.ParseDuration, to their canonical string form.
func Duration(v interface{}) (string, error) {
	switch d := v.(type) {
	case time.Duration:
		return d.String(), nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return "", errors.Wrapf(err, "cannot convert %q to duration", d)
		}
		return parsed.String(), nil
	}
	return "", errors.Errorf("cannot convert %T to duration", v)
}

// JSON converts v to its JSON encoding.
func JSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "cannot convert to JSON")
	}
	return string(b), nil
}

// PathEscape escapes the output of c so it can be placed in a path segment.
func PathEscape(c Converter) Converter {
	return func(v interface{}) (string, error) {
		s, err := c(v)
		if err != nil {
			return "", err
		}
		return url.PathEscape(s), nil
	}
}

// QueryEscape escapes the output of c so it can be placed in a query string
// written into a path template.
func QueryEscape(c Converter) Converter {
	return func(v interface{}) (string, error) {
		s, err := c(v)
		if err != nil {
			return "", err
		}
		return url.QueryEscape(s), nil
	}
}

// Join converts every element of a slice or array with c and joins the
// results with sep. Other values are converted with c directly.
func Join(sep string, c Converter) Converter {
	return func(v interface{}) (string, error) {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return c(v)
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			s, err := c(rv.Index(i).Interface())
			if err != nil {
				return "", errors.Wrapf(err, "element %d", i)
			}
			parts[i] = s
		}
		return strings.Join(parts, sep), nil
	}
}
