package companyerrors

import (
	"net/http"

	"rikumates/internal/shared/apperror"
)

var (
	// One error for both "absent" and "owned by someone else"; the API never
	// reveals which.
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found or unauthorized",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status is not a valid recruitment status",
		http.StatusBadRequest,
	)

	ErrInvalidLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Location must be one of the 47 prefectures",
		http.StatusBadRequest,
	)

	ErrInvalidWebsiteURL = apperror.New(
		apperror.CodeInvalidInput,
		"Website URL must start with http:// or https://",
		http.StatusBadRequest,
	)
)
