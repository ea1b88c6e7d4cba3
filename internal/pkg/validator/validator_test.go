package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Category string `json:"category,omitempty" validate:"omitempty,disposal_category"`
	RouteID  string `query:"route_id" validate:"omitempty,max=4"`
	Plain    int    `validate:"omitempty,max=1"`
}

func TestValidate_FieldNames(t *testing.T) {
	err := Validate(&sample{Category: "lixo", RouteID: "too-long", Plain: 5})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make(map[string]string)
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"category": "disposal_category",
		"route_id": "max",
		"Plain":    "max",
	}, fields)
}

func TestValidate_DisposalCategory(t *testing.T) {
	for _, c := range []string{"", "ecoponto", "Reciclagem", " ECOPONTO "} {
		assert.NoError(t, Validate(&sample{Category: c}), c)
	}
	assert.Error(t, Validate(&sample{Category: "pev"}))
}
