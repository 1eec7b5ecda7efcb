package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rangeable lists the value types a RangeFilter can bound.
type Rangeable interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64 | time.Time
}

// Filter holds the optional comparisons that apply to a single attribute.
// A nil field means the comparison was not requested.
type Filter[T any] struct {
	Equals    *T    `json:"equals,omitempty"`
	NotEquals *T    `json:"notEquals,omitempty"`
	Specified *bool `json:"specified,omitempty"`
	In        []T   `json:"in,omitempty"`
	NotIn     []T   `json:"notIn,omitempty"`
}

// RangeFilter adds ordered bounds to Filter.
type RangeFilter[T Rangeable] struct {
	Filter[T]
	GreaterThan        *T `json:"greaterThan,omitempty"`
	GreaterThanOrEqual *T `json:"greaterThanOrEqual,omitempty"`
	LessThan           *T `json:"lessThan,omitempty"`
	LessThanOrEqual    *T `json:"lessThanOrEqual,omitempty"`
}

// StringFilter adds case-insensitive substring matching to Filter.
type StringFilter struct {
	Filter[string]
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"doesNotContain,omitempty"`
}

type (
	LongFilter    = RangeFilter[int64]
	IntegerFilter = RangeFilter[int]
	InstantFilter = RangeFilter[time.Time]
	UUIDFilter    = Filter[uuid.UUID]
)

func (f *Filter[T]) SetEquals(v T) *Filter[T] {
	f.Equals = &v
	return f
}

func (f *Filter[T]) SetNotEquals(v T) *Filter[T] {
	f.NotEquals = &v
	return f
}

func (f *Filter[T]) SetSpecified(v bool) *Filter[T] {
	f.Specified = &v
	return f
}

func (f *Filter[T]) SetIn(values ...T) *Filter[T] {
	f.In = append([]T{}, values...)
	return f
}

func (f *Filter[T]) SetNotIn(values ...T) *Filter[T] {
	f.NotIn = append([]T{}, values...)
	return f
}

// IsEmpty reports whether no comparison is set.
func (f *Filter[T]) IsEmpty() bool {
	return f == nil || (f.Equals == nil && f.NotEquals == nil && f.Specified == nil && f.In == nil && f.NotIn == nil)
}

func (f *Filter[T]) String() string {
	if f == nil {
		return "Filter[]"
	}
	return "Filter[" + strings.Join(f.parts(), ", ") + "]"
}

func (f *Filter[T]) parts() []string {
	var parts []string
	if f.Equals != nil {
		parts = append(parts, "equals="+format(*f.Equals))
	}
	if f.NotEquals != nil {
		parts = append(parts, "notEquals="+format(*f.NotEquals))
	}
	if f.Specified != nil {
		parts = append(parts, fmt.Sprintf("specified=%t", *f.Specified))
	}
	if f.In != nil {
		parts = append(parts, "in="+formatSlice(f.In))
	}
	if f.NotIn != nil {
		parts = append(parts, "notIn="+formatSlice(f.NotIn))
	}
	return parts
}

func (f *RangeFilter[T]) SetEquals(v T) *RangeFilter[T] {
	f.Filter.SetEquals(v)
	return f
}

func (f *RangeFilter[T]) SetNotEquals(v T) *RangeFilter[T] {
	f.Filter.SetNotEquals(v)
	return f
}

func (f *RangeFilter[T]) SetSpecified(v bool) *RangeFilter[T] {
	f.Filter.SetSpecified(v)
	return f
}

func (f *RangeFilter[T]) SetIn(values ...T) *RangeFilter[T] {
	f.Filter.SetIn(values...)
	return f
}

func (f *RangeFilter[T]) SetNotIn(values ...T) *RangeFilter[T] {
	f.Filter.SetNotIn(values...)
	return f
}

func (f *RangeFilter[T]) SetGreaterThan(v T) *RangeFilter[T] {
	f.GreaterThan = &v
	return f
}

func (f *RangeFilter[T]) SetGreaterThanOrEqual(v T) *RangeFilter[T] {
	f.GreaterThanOrEqual = &v
	return f
}

func (f *RangeFilter[T]) SetLessThan(v T) *RangeFilter[T] {
	f.LessThan = &v
	return f
}

func (f *RangeFilter[T]) SetLessThanOrEqual(v T) *RangeFilter[T] {
	f.LessThanOrEqual = &v
	return f
}

// IsEmpty reports whether no comparison or bound is set.
func (f *RangeFilter[T]) IsEmpty() bool {
	return f == nil || (f.Filter.IsEmpty() &&
		f.GreaterThan == nil && f.GreaterThanOrEqual == nil && f.LessThan == nil && f.LessThanOrEqual == nil)
}

func (f *RangeFilter[T]) String() string {
	if f == nil {
		return "RangeFilter[]"
	}
	parts := f.Filter.parts()
	if f.GreaterThan != nil {
		parts = append(parts, "greaterThan="+format(*f.GreaterThan))
	}
	if f.GreaterThanOrEqual != nil {
		parts = append(parts, "greaterThanOrEqual="+format(*f.GreaterThanOrEqual))
	}
	if f.LessThan != nil {
		parts = append(parts, "lessThan="+format(*f.LessThan))
	}
	if f.LessThanOrEqual != nil {
		parts = append(parts, "lessThanOrEqual="+format(*f.LessThanOrEqual))
	}
	return "RangeFilter[" + strings.Join(parts, ", ") + "]"
}

func (f *StringFilter) SetEquals(v string) *StringFilter {
	f.Filter.SetEquals(v)
	return f
}

func (f *StringFilter) SetIn(values ...string) *StringFilter {
	f.Filter.SetIn(values...)
	return f
}

func (f *StringFilter) SetContains(v string) *StringFilter {
	f.Contains = &v
	return f
}

func (f *StringFilter) SetDoesNotContain(v string) *StringFilter {
	f.DoesNotContain = &v
	return f
}

// IsEmpty reports whether no comparison is set.
func (f *StringFilter) IsEmpty() bool {
	return f == nil || (f.Filter.IsEmpty() && f.Contains == nil && f.DoesNotContain == nil)
}

func (f *StringFilter) String() string {
	if f == nil {
		return "StringFilter[]"
	}
	parts := f.Filter.parts()
	if f.Contains != nil {
		parts = append(parts, "contains="+*f.Contains)
	}
	if f.DoesNotContain != nil {
		parts = append(parts, "doesNotContain="+*f.DoesNotContain)
	}
	return "StringFilter[" + strings.Join(parts, ", ") + "]"
}

func format(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return fmt.Sprint(v)
}

func formatSlice[T any](values []T) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = format(v)
	}
	return "[" + strings.Join(items, ",") + "]"
}
