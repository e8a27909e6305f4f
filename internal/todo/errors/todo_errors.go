package todoerrors

import (
	"net/http"

	"rikumates/internal/shared/apperror"
)

var (
	ErrTodoNotFound = apperror.New(
		apperror.CodeNotFound,
		"Todo not found or unauthorized",
		http.StatusNotFound,
	)

	ErrInvalidTodoID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid todo ID",
		http.StatusBadRequest,
	)

	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found or unauthorized",
		http.StatusNotFound,
	)
)
