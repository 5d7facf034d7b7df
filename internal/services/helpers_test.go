package services

import (
	"errors"
	"testing"

	apperrors "spendlog/internal/errors"
)

// asAppError unwraps err into an *AppError or fails the test.
func asAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}
