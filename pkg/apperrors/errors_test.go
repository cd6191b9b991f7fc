package apperrors_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"jobtrack_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("record not found")
	wrapped := apperrors.ErrNotFound(cause, "resume", "Resume not found")

	assert.True(t, apperrors.Is(wrapped, cause))
	assert.Equal(t, apperrors.CodeNotFound, wrapped.Code)
	assert.Equal(t, http.StatusNotFound, wrapped.HTTPCode)
}

func TestAsAppError(t *testing.T) {
	t.Parallel()

	appErr, ok := apperrors.AsAppError(apperrors.ErrInvalidCredentials)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	_, ok = apperrors.AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestMarshalHidesInternalCause(t *testing.T) {
	t.Parallel()

	wrapped := apperrors.InternalError(errors.New("dsn=postgres://secret"))

	raw, err := json.Marshal(wrapped)
	require.NoError(t, err)

	// Внутренняя причина не утекает в ответ клиенту
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), string(apperrors.CodeInternalError))
}
