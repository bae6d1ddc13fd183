package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/intrari-furnizori/internal/model"
)

func TestMissingFieldError(t *testing.T) {
	err := model.NewMissingFieldError("Document", "items")

	require.Contains(t, err.Error(), "Document")
	require.Contains(t, err.Error(), "items")
	require.ErrorIs(t, err, model.ErrMissingField)
}

func TestValidationError(t *testing.T) {
	err := model.NewValidationError(model.ErrInvalidCurrency, "moneda", "GBP", "currency", "not accepted")

	require.Contains(t, err.Error(), "moneda")
	require.Contains(t, err.Error(), "GBP")
	require.Contains(t, err.Error(), "not accepted")
	require.ErrorIs(t, err, model.ErrInvalidCurrency)
}

func TestValidationError_NoValue(t *testing.T) {
	err := model.NewValidationError(model.ErrEmptyDocuments, "documente", nil, "non_empty", "no documents")

	assert.NotContains(t, err.Error(), "value=")
	assert.Contains(t, err.Error(), "rule=non_empty")
}
