package handler

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"project-calendar-service/internal/delivery/dto"
	"project-calendar-service/pkg/filter"
	"project-calendar-service/pkg/pagination"
	"project-calendar-service/pkg/response"
	"project-calendar-service/pkg/validator"
)

const (
	pageParam = "page"
	sizeParam = "size"
	sortParam = "sort"
)

// checkCriteriaFields rejects "<field>.<operator>" parameters naming a field outside fields.
func checkCriteriaFields(values url.Values, fields []string) error {
	for k := range values {
		field, _, ok := strings.Cut(k, ".")
		if !ok {
			continue
		}
		if !slices.Contains(fields, field) {
			return fmt.Errorf("%w: unknown field %q", filter.ErrInvalidFilter, field)
		}
	}
	return nil
}

// isPaged reports whether the request asks for a page rather than the full list.
func isPaged(values url.Values) bool {
	return values.Has(pageParam) || values.Has(sizeParam) || values.Has(sortParam)
}

// parsePageRequest reads page, size and repeated sort parameters.
// A missing page or size takes its default; a present one must be valid.
func parsePageRequest(values url.Values, v *validator.CustomValidator) (pagination.PageRequest, map[string]string, error) {
	query := dto.PageQuery{Page: pagination.DefaultPage, Size: pagination.DefaultSize}

	for _, p := range []struct {
		name   string
		target *int
	}{
		{pageParam, &query.Page},
		{sizeParam, &query.Size},
	} {
		if !values.Has(p.name) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(values.Get(p.name)))
		if err != nil {
			return pagination.PageRequest{}, map[string]string{p.name: p.name + " must be a number"}, nil
		}
		*p.target = n
	}

	if err := v.Validate(&query); err != nil {
		return pagination.PageRequest{}, v.FormatValidationErrors(err), nil
	}

	var orders []pagination.Order
	for _, raw := range values[sortParam] {
		order, err := pagination.ParseOrder(raw)
		if err != nil {
			return pagination.PageRequest{}, nil, err
		}
		orders = append(orders, order)
	}

	return pagination.NewPageRequest(query.Page, query.Size, orders...), nil, nil
}

func pageMeta[T any](page *pagination.Page[T]) *response.Meta {
	return &response.Meta{
		Page:       page.Page,
		Size:       page.Size,
		Total:      page.TotalElements,
		TotalPages: page.TotalPages(),
	}
}
