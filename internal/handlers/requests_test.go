package handlers_test

import (
	"errors"
	"testing"

	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v := handlers.NewValidator()

	t.Run("login credentials", func(t *testing.T) {
		assert.NoError(t, v.Validate(&domain.Credentials{Email: "a@b.c", Password: "x"}))

		err := v.Validate(&domain.Credentials{Email: "a@b.c"})
		require.Error(t, err)
		assert.Equal(t, []string{"Password"}, handlers.FieldErrors(err))
	})

	t.Run("new job", func(t *testing.T) {
		negative := -1.0
		err := v.Validate(&domain.NewJob{
			Title:       "",
			Description: "d",
			Category:    "GARDENING",
			Price:       &negative,
		})
		require.Error(t, err)
		assert.ElementsMatch(t, []string{"Title", "Category", "Price"}, handlers.FieldErrors(err))

		assert.NoError(t, v.Validate(&domain.NewJob{
			Title:       "Logo",
			Description: "Vector logo",
			Category:    domain.CategoryDesign,
		}))
	})

	t.Run("other errors have no fields", func(t *testing.T) {
		assert.Nil(t, handlers.FieldErrors(errors.New("boom")))
	})
}
