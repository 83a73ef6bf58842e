package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelogkit/lifelog-exporter/errors"
	"github.com/lifelogkit/lifelog-exporter/internal/adapter/dto/common"
)

// respondAppError writes an error as the standard error envelope. Known
// AppErrors keep their HTTP status and wire code; anything else becomes a
// 500 INTERNAL.
func respondAppError(c echo.Context, err error) error {
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	body := common.ErrorResponse{
		Error:   appErr.Message,
		Code:    appErr.Code.String(),
	}
	if len(appErr.Details) > 0 {
		body.Details = make(map[string]interface{}, len(appErr.Details))
		for k, v := range appErr.Details {
			body.Details[k] = v
		}
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, body)
}
