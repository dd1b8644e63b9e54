package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "inventory-system/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List       []T             `json:"list"`
	Pagination *PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	TotalCount uint64 `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
}

// SuccessOne returns a single object envelope.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, total uint64, page, limit int) error {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}

	if list == nil {
		list = make([]T, 0)
	}

	body := ListBody[T]{
		List: list,
		Pagination: &PaginationMeta{
			TotalCount: total,
			TotalPages: totalPages,
			Page:       page,
			Limit:      limit,
		},
	}

	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse maps domain errors to HTTP codes. HttpError wins when the
// controller already picked a code; otherwise the sentinel decides.
func ErrorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	msg := err.Error()

	var httpErr *apperrors.HttpError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		msg = httpErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidState):
		code = http.StatusBadRequest
	}

	var inputErr *apperrors.InvalidInputError
	if errors.As(err, &inputErr) {
		code = http.StatusUnprocessableEntity
		msg = inputErr.Message
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
	})
}
