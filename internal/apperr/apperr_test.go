package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("handler: %w", &NotFoundError{Entity: "product", ID: 42})

	assert.True(t, errors.Is(err, ErrNotFound))

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "product", nfe.Entity)
	assert.Equal(t, int64(42), nfe.ID)
	assert.Equal(t, "product with id 42 not found", nfe.Error())
}

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := &InsufficientStockError{ProductName: "Sambal Botol 340ml", Available: 3, Requested: 5}

	assert.Equal(t, "insufficient stock for Sambal Botol 340ml. Available: 3, Requested: 5", err.Error())
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Message: "quantity must be positive"}

	var ve *ValidationError
	assert.True(t, errors.As(fmt.Errorf("bind: %w", err), &ve))
	assert.Equal(t, "quantity must be positive", ve.Error())
}
