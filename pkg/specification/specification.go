package specification

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Specification is an immutable conjunction of gorm clause expressions.
// The zero value matches every row.
type Specification struct {
	exprs []clause.Expression
}

// Where starts a specification from the given expressions, skipping nil ones.
func Where(exprs ...clause.Expression) Specification {
	return Specification{}.And(exprs...)
}

// And returns a new specification that also requires every non-nil expression.
func (s Specification) And(exprs ...clause.Expression) Specification {
	next := make([]clause.Expression, 0, len(s.exprs)+len(exprs))
	next = append(next, s.exprs...)
	for _, expr := range exprs {
		if expr != nil {
			next = append(next, expr)
		}
	}
	return Specification{exprs: next}
}

// AndSpec conjoins another specification. An empty one leaves s unchanged.
func (s Specification) AndSpec(other Specification) Specification {
	return s.And(other.exprs...)
}

func (s Specification) IsEmpty() bool {
	return len(s.exprs) == 0
}

func (s Specification) Expressions() []clause.Expression {
	return append([]clause.Expression(nil), s.exprs...)
}

// Scope applies the specification as a WHERE condition, for use with db.Scopes.
func (s Specification) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s.IsEmpty() {
			return db
		}
		return db.Where(clause.And(s.exprs...))
	}
}
