package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name  string  `validate:"required"`
	Email string  `validate:"required,email"`
	Price float64 `validate:"gte=0"`
}

func TestStructReportsFirstFailure(t *testing.T) {
	err := Struct(form{Name: "", Email: "a@example.com", Price: 1})
	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	err = Struct(form{Name: "x", Email: "nope", Price: 1})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	err = Struct(form{Name: "x", Email: "a@example.com", Price: -1})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "price", ve.Field)
}

func TestStructPasses(t *testing.T) {
	assert.NoError(t, Struct(form{Name: "x", Email: "a@example.com", Price: 0}))
}

func TestErrorf(t *testing.T) {
	err := Errorf("quantity", "must be positive, got %d", -2)
	var ve *Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "quantity: must be positive, got -2", ve.Error())
}
