package models_test

import (
	"testing"

	"jobtrack_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValidApplicationStatus(t *testing.T) {
	t.Parallel()

	for _, status := range models.AllApplicationStatuses {
		assert.True(t, models.IsValidApplicationStatus(string(status)), "status %q", status)
	}

	// Множество закрытое, сравнение с учетом регистра
	assert.False(t, models.IsValidApplicationStatus("applied"))
	assert.False(t, models.IsValidApplicationStatus("OFFER"))
	assert.False(t, models.IsValidApplicationStatus("Pending"))
	assert.False(t, models.IsValidApplicationStatus(""))
}
