package validator_test

import (
	"testing"

	"project-calendar-service/pkg/validator"

	"github.com/stretchr/testify/require"
)

type pageQuery struct {
	Page int `form:"page" validate:"gte=1"`
	Size int `json:"size" validate:"gte=1,lte=10"`
}

func TestCustomValidator_FormatValidationErrors(t *testing.T) {
	t.Parallel()

	v := validator.NewValidator()

	require.NoError(t, v.Validate(&pageQuery{Page: 1, Size: 5}))

	err := v.Validate(&pageQuery{Page: 0, Size: 11})
	require.Error(t, err)
	require.Equal(t, map[string]string{
		"page": "page must be greater than or equal to 1",
		"size": "size must be less than or equal to 10",
	}, v.FormatValidationErrors(err))
}
