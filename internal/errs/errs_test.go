package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestStoreErrorKeepsCauseOutOfMessage(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	err := NewStoreError("Failed to fetch items", cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, "Failed to fetch items", err.Message)
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestHTTPErrorIsMatchesType(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Item not found", true, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestWithMessageCopies(t *testing.T) {
	code := "ITEM_INVALID"
	base := NewBadRequestError("Validation failed", true, &code, []FieldError{{Field: "name", Error: "is required"}})

	copied := base.WithMessage("Name is required")

	assert.Equal(t, "Validation failed", base.Message)
	assert.Equal(t, "Name is required", copied.Message)
	assert.Equal(t, "ITEM_INVALID", copied.Code)
	assert.Equal(t, base.Errors, copied.Errors)
	assert.True(t, copied.Override)
}
