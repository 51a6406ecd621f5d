package http

import (
	"errors"

	"grubdash/internal/core/domain/validation"

	"github.com/labstack/echo/v4"
)

// ErrInvalidRequestBody is returned for bodies that are not a JSON envelope.
var ErrInvalidRequestBody = errors.New("Invalid request body")

type requestEnvelope struct {
	Data any `json:"data"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// bindRecord decodes {"data": {...}}. An empty body, a missing data member or
// a data member that is not an object yields an empty record, so the field
// rules report what is missing.
func bindRecord(ctx echo.Context) (validation.Record, error) {
	var envelope requestEnvelope
	if err := ctx.Bind(&envelope); err != nil {
		return nil, ErrInvalidRequestBody
	}

	record, ok := validation.AsRecord(envelope.Data)
	if !ok {
		return validation.Record{}, nil
	}
	return record, nil
}

func respond(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, dataEnvelope{Data: data})
}
