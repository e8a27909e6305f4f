package eventerrors

import (
	"net/http"

	"rikumates/internal/shared/apperror"
)

var (
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"Event not found or unauthorized",
		http.StatusNotFound,
	)

	ErrInvalidEventID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid event ID",
		http.StatusBadRequest,
	)

	// Returned when the referenced company is absent or owned by another
	// user; the two cases are not distinguished.
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found or unauthorized",
		http.StatusNotFound,
	)

	ErrInvalidScheduledAt = apperror.New(
		apperror.CodeInvalidInput,
		"scheduled_at must be a valid timestamp",
		http.StatusBadRequest,
	)
)
