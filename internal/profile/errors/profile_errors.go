package profileerrors

import (
	"net/http"

	"rikumates/internal/shared/apperror"
)

var (
	// Covers both "does not exist" and "not yours" so callers cannot probe
	// for other users' profiles.
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profile not found or unauthorized",
		http.StatusNotFound,
	)

	ErrInvalidProfileID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid profile ID",
		http.StatusBadRequest,
	)

	ErrInvalidJobHuntType = apperror.New(
		apperror.CodeInvalidInput,
		"Job hunt type must be new_grad or mid_career",
		http.StatusBadRequest,
	)
)
