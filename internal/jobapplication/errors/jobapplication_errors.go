package jobapplicationerrors

import (
	"net/http"

	"rikumates/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job application not found or unauthorized",
		http.StatusNotFound,
	)

	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job application ID",
		http.StatusBadRequest,
	)

	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found or unauthorized",
		http.StatusNotFound,
	)
)
