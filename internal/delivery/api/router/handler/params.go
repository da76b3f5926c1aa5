package handler

import (
	domainerrors "storehub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses a UUID path parameter. Malformed ids are reported as not
// found by the given error, matching the lookup a well-formed id would get.
func pathID(c echo.Context, name string, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound.WithDetails("invalid " + name)
	}

	return id, nil
}

// bind decodes and validates a request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
