package specification

import (
	"strings"

	"project-calendar-service/pkg/filter"

	"gorm.io/gorm/clause"
)

// BuildSpecification turns a Filter on column into a specification.
// Equals wins over everything else, then In; the remaining parts are conjoined.
func BuildSpecification[T any](f *filter.Filter[T], column string) Specification {
	if f == nil {
		return Specification{}
	}
	col := clause.Column{Name: column}

	if f.Equals != nil {
		return Where(clause.Eq{Column: col, Value: *f.Equals})
	}
	if f.In != nil {
		return Where(clause.IN{Column: col, Values: toValues(f.In)})
	}

	spec := Specification{}
	if f.Specified != nil {
		spec = spec.And(specified(col, *f.Specified))
	}
	if f.NotEquals != nil {
		spec = spec.And(clause.Neq{Column: col, Value: *f.NotEquals})
	}
	if f.NotIn != nil {
		spec = spec.And(clause.Not(clause.IN{Column: col, Values: toValues(f.NotIn)}))
	}
	return spec
}

// BuildRangeSpecification extends BuildSpecification with the ordered bounds.
// Several bounds narrow to their intersection.
func BuildRangeSpecification[T filter.Rangeable](f *filter.RangeFilter[T], column string) Specification {
	if f == nil {
		return Specification{}
	}
	if f.Equals != nil || f.In != nil {
		return BuildSpecification(&f.Filter, column)
	}
	col := clause.Column{Name: column}

	spec := BuildSpecification(&f.Filter, column)
	if f.GreaterThan != nil {
		spec = spec.And(clause.Gt{Column: col, Value: *f.GreaterThan})
	}
	if f.GreaterThanOrEqual != nil {
		spec = spec.And(clause.Gte{Column: col, Value: *f.GreaterThanOrEqual})
	}
	if f.LessThan != nil {
		spec = spec.And(clause.Lt{Column: col, Value: *f.LessThan})
	}
	if f.LessThanOrEqual != nil {
		spec = spec.And(clause.Lte{Column: col, Value: *f.LessThanOrEqual})
	}
	return spec
}

// BuildStringSpecification extends BuildSpecification with case-insensitive substring matching.
func BuildStringSpecification(f *filter.StringFilter, column string) Specification {
	if f == nil {
		return Specification{}
	}
	if f.Equals != nil || f.In != nil {
		return BuildSpecification(&f.Filter, column)
	}
	col := clause.Column{Name: column}

	spec := BuildSpecification(&f.Filter, column)
	if f.Contains != nil {
		spec = spec.And(clause.Expr{SQL: "UPPER(?) LIKE ?", Vars: []interface{}{col, likePattern(*f.Contains)}})
	}
	if f.DoesNotContain != nil {
		spec = spec.And(clause.Expr{SQL: "UPPER(?) NOT LIKE ?", Vars: []interface{}{col, likePattern(*f.DoesNotContain)}})
	}
	return spec
}

func specified(col clause.Column, isSpecified bool) clause.Expression {
	if isSpecified {
		return clause.Neq{Column: col, Value: nil}
	}
	return clause.Eq{Column: col, Value: nil}
}

func likePattern(v string) string {
	return "%" + strings.ToUpper(v) + "%"
}

func toValues[T any](values []T) []interface{} {
	result := make([]interface{}, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
