package service

import (
	"errors"
	"fmt"
	"testing"

	"smart-sales-api/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromRepo(t *testing.T) {
	require.NoError(t, fromRepo("Product", nil))

	err := fromRepo("Product", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound))
	require.Equal(t, KindNotFound, KindOf(err))
	require.EqualError(t, err, "Product not found")

	require.Equal(t, KindValidation, KindOf(fromRepo("Customer", repository.ErrDuplicate)))
	require.Equal(t, KindValidation, KindOf(fromRepo("Sale", repository.ErrInvalidReference)))

	cause := errors.New("boom")
	err = fromRepo("Sale", cause)
	require.Equal(t, KindInternal, KindOf(err))
	require.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindInternal, KindOf(errors.New("plain")))
	require.Equal(t, KindUnauthorized, KindOf(fmt.Errorf("wrapped: %w", UnauthorizedError("no"))))
	require.Equal(t, "not_found", KindNotFound.String())
}

func TestValidationError(t *testing.T) {
	err := ValidationError("Username already exists")
	require.Equal(t, []string{"Username already exists"}, err.Messages)

	err = ValidationError("Validation failed", "a", "b")
	require.Equal(t, []string{"a", "b"}, err.Messages)
}
