package filter

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Operator names accepted in query parameters, e.g. "dayNumber.greaterThan=3".
const (
	OpEquals             = "equals"
	OpNotEquals          = "notEquals"
	OpSpecified          = "specified"
	OpIn                 = "in"
	OpNotIn              = "notIn"
	OpGreaterThan        = "greaterThan"
	OpGreaterThanOrEqual = "greaterThanOrEqual"
	OpLessThan           = "lessThan"
	OpLessThanOrEqual    = "lessThanOrEqual"
	OpContains           = "contains"
	OpDoesNotContain     = "doesNotContain"
)

var (
	baseOperators   = []string{OpEquals, OpNotEquals, OpSpecified, OpIn, OpNotIn}
	rangeOperators  = append(append([]string{}, baseOperators...), OpGreaterThan, OpGreaterThanOrEqual, OpLessThan, OpLessThanOrEqual)
	stringOperators = append(append([]string{}, baseOperators...), OpContains, OpDoesNotContain)
)

// ParseFunc converts one raw query value into T.
type ParseFunc[T any] func(string) (T, error)

func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// ParseInstant accepts RFC 3339 timestamps.
func ParseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
}

func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

func ParseString(s string) (string, error) {
	return s, nil
}

// ParseRange reads "<field>.<operator>" parameters into a RangeFilter.
// It returns nil when no parameter for field is present.
func ParseRange[T Rangeable](values url.Values, field string, parse ParseFunc[T]) (*RangeFilter[T], error) {
	if !hasAny(values, field) {
		return nil, nil
	}
	if err := checkOperators(values, field, rangeOperators); err != nil {
		return nil, err
	}

	f := &RangeFilter[T]{}
	if err := parseBase(values, field, parse, &f.Filter); err != nil {
		return nil, err
	}

	bounds := []struct {
		op     string
		target **T
	}{
		{OpGreaterThan, &f.GreaterThan},
		{OpGreaterThanOrEqual, &f.GreaterThanOrEqual},
		{OpLessThan, &f.LessThan},
		{OpLessThanOrEqual, &f.LessThanOrEqual},
	}
	for _, b := range bounds {
		v, err := parseSingle(values, field, b.op, parse)
		if err != nil {
			return nil, err
		}
		*b.target = v
	}

	return f, nil
}

// ParseBase reads the equality, null and membership parameters for field.
func ParseBase[T any](values url.Values, field string, parse ParseFunc[T]) (*Filter[T], error) {
	if !hasAny(values, field) {
		return nil, nil
	}
	if err := checkOperators(values, field, baseOperators); err != nil {
		return nil, err
	}

	f := &Filter[T]{}
	if err := parseBase(values, field, parse, f); err != nil {
		return nil, err
	}
	return f, nil
}

func ParseStringFilter(values url.Values, field string) (*StringFilter, error) {
	if !hasAny(values, field) {
		return nil, nil
	}
	if err := checkOperators(values, field, stringOperators); err != nil {
		return nil, err
	}

	f := &StringFilter{}
	if err := parseBase(values, field, ParseString, &f.Filter); err != nil {
		return nil, err
	}
	var err error
	if f.Contains, err = parseSingle(values, field, OpContains, ParseString); err != nil {
		return nil, err
	}
	if f.DoesNotContain, err = parseSingle(values, field, OpDoesNotContain, ParseString); err != nil {
		return nil, err
	}
	return f, nil
}

func parseBase[T any](values url.Values, field string, parse ParseFunc[T], f *Filter[T]) error {
	var err error
	if f.Equals, err = parseSingle(values, field, OpEquals, parse); err != nil {
		return err
	}
	if f.NotEquals, err = parseSingle(values, field, OpNotEquals, parse); err != nil {
		return err
	}
	if f.In, err = parseList(values, field, OpIn, parse); err != nil {
		return err
	}
	if f.NotIn, err = parseList(values, field, OpNotIn, parse); err != nil {
		return err
	}
	if values.Has(key(field, OpSpecified)) {
		raw := values.Get(key(field, OpSpecified))
		specified, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidFilter, key(field, OpSpecified), raw)
		}
		f.Specified = &specified
	}
	return nil
}

func parseSingle[T any](values url.Values, field, op string, parse ParseFunc[T]) (*T, error) {
	k := key(field, op)
	if !values.Has(k) {
		return nil, nil
	}
	raw := values.Get(k)
	v, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, k, raw)
	}
	return &v, nil
}

// parseList accepts both repeated parameters and comma separated values.
func parseList[T any](values url.Values, field, op string, parse ParseFunc[T]) ([]T, error) {
	k := key(field, op)
	if !values.Has(k) {
		return nil, nil
	}
	result := []T{}
	for _, raw := range values[k] {
		for _, item := range strings.Split(raw, ",") {
			if strings.TrimSpace(item) == "" {
				continue
			}
			v, err := parse(item)
			if err != nil {
				return nil, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, k, item)
			}
			result = append(result, v)
		}
	}
	return result, nil
}

func checkOperators(values url.Values, field string, allowed []string) error {
	prefix := field + "."
	for k := range values {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		op := strings.TrimPrefix(k, prefix)
		if !contains(allowed, op) {
			return fmt.Errorf("%w: unsupported operator %q for %s", ErrInvalidFilter, op, field)
		}
	}
	return nil
}

func hasAny(values url.Values, field string) bool {
	prefix := field + "."
	for k := range values {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func key(field, op string) string {
	return field + "." + op
}
