package repository

import (
	"context"
	"fmt"

	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findPage counts the rows matching spec and loads the requested window of them.
// Orders are resolved through sortColumns; the primary key is always the last order
// so windows over equal sort keys stay contiguous.
func findPage[T any](
	ctx context.Context,
	db *gorm.DB,
	spec specification.Specification,
	page pagination.PageRequest,
	sortColumns map[string]string,
	primaryKey string,
) (*pagination.Page[T], error) {
	orders, err := orderColumns(page, sortColumns, primaryKey)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(spec.Scope()).Count(&total).Error; err != nil {
		return nil, err
	}

	content := []T{}
	offset := page.Offset()
	if offset >= 0 && int64(offset) < total {
		query := db.WithContext(ctx).Scopes(spec.Scope())
		for _, order := range orders {
			query = query.Order(order)
		}
		if err := query.Limit(page.Size).Offset(offset).Find(&content).Error; err != nil {
			return nil, err
		}
	}

	return pagination.NewPage(content, page, total), nil
}

func orderColumns(page pagination.PageRequest, sortColumns map[string]string, primaryKey string) ([]clause.OrderByColumn, error) {
	orders := make([]clause.OrderByColumn, 0, len(page.Sort)+1)
	sortedByKey := false
	for _, o := range page.Sort {
		column, ok := sortColumns[o.Property]
		if !ok {
			return nil, fmt.Errorf("%w: unknown property %q", pagination.ErrInvalidSort, o.Property)
		}
		if column == primaryKey {
			sortedByKey = true
		}
		orders = append(orders, clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   o.Direction == pagination.Desc,
		})
	}
	if !sortedByKey {
		orders = append(orders, clause.OrderByColumn{Column: clause.Column{Name: primaryKey}})
	}
	return orders, nil
}
