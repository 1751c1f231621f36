package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	t.Run("ValidateValue test", func(t *testing.T) {
		assert.NoError(t, ValidateValue("favorite_color", "required,slug,max=64"))

		err := ValidateValue("Favorite Color", "required,slug,max=64")
		require.Error(t, err)
		assert.Equal(t, "slug", err.(Violation).Tag)

		err = ValidateValue("9lives", "required,slug")
		require.Error(t, err)
		assert.Equal(t, "slug", err.(Violation).Tag)

		assert.NoError(t, ValidateValue("0b0f8f0a-5d2e-4d8b-9a53-2f1b0c6d7e8f", "uuid"))
		err = ValidateValue("0B0F8F0A-5D2E-4D8B-9A53-2F1B0C6D7E8F", "uuid")
		require.Error(t, err)
		assert.Equal(t, "uuid", err.(Violation).Tag)
	})

	t.Run("multiple_of test", func(t *testing.T) {
		assert.NoError(t, ValidateValue(5000, "multiple_of=1000"))
		assert.NoError(t, ValidateValue(int64(0), "multiple_of=1000"))
		assert.NoError(t, ValidateValue(1.5, "multiple_of=0.5"))

		err := ValidateValue(1500, "multiple_of=1000")
		require.Error(t, err)
		v := err.(Violation)
		assert.Equal(t, "multiple_of", v.Tag)
		assert.Contains(t, v.Description, "multiple of 1000")

		assert.Error(t, ValidateValue("1000", "multiple_of=1000"))
	})

	t.Run("ValidateStruct test", func(t *testing.T) {
		type brand struct {
			Name         string `json:"name" validate:"required,max=10"`
			ContactLimit int    `json:"contact_limit" validate:"omitempty,min=1000,multiple_of=1000"`
		}

		err := ValidateStruct(brand{Name: "a very long brand name", ContactLimit: 1200})
		require.Error(t, err)
		structError := err.(*StructError)
		require.Len(t, structError.Violations, 2)
		assert.Equal(t, "name", structError.Violations[0].Field)
		assert.Equal(t, "contact_limit", structError.Violations[1].Field)
		assert.Equal(t, "multiple_of", structError.Violations[1].Tag)

		assert.NoError(t, ValidateStruct(brand{Name: "acme", ContactLimit: 3000}))
	})
}
