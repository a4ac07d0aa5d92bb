package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/multitier-app/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorNoRowsNamesTable(t *testing.T) {
	err := fmt.Errorf("%sitems:%w", TablePrefix, pgx.ErrNoRows)

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Item not found", httpErr.Message)
	assert.ErrorIs(t, httpErr, pgx.ErrNoRows)
}

func TestHandleErrorNoRowsWithoutTable(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		Message:    `null value in column "name" violates not-null constraint`,
		TableName:  "items",
		ColumnName: "name",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert item: %w", pgErr)))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_REQUIRED", httpErr.Code)
	assert.Equal(t, "Name is required", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		TableName:      "items",
		ConstraintName: "items_name_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ITEM_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Item with this Name already exists", httpErr.Message)
}

func TestHandleErrorUnknownPgErrorIsGeneric(t *testing.T) {
	pgErr := &pgconn.PgError{Severity: "FATAL", Code: "53300", Message: "too many connections for role"}

	httpErr := asHTTPError(t, HandleError(pgErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), httpErr.Message)
	assert.NotContains(t, httpErr.Message, "too many connections")
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Item not found", true, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorPlainError(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset by peer")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestMapCodeAndSeverity(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, Other, MapCode("XX000"))
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("whatever"))

	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR"})
	assert.Equal(t, CheckViolation, ErrCode(converted))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("items_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("items_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
