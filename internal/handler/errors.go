package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AbdelwaliNour/Hospital/internal/service"
	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BodyValidator checks a raw request body against a named schema
type BodyValidator interface {
	Validate(schemaName string, body []byte) ([]api.FieldError, error)
}

// respondError classifies a service error and writes the matching response
func respondError(c *gin.Context, logger *zap.Logger, err error, message string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]api.FieldError, 0, len(verr.Errors))
		for _, f := range verr.Errors {
			fields = append(fields, api.FieldError{Field: f.Field, Message: f.Message})
		}
		logger.Warn("request rejected", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    api.CodeValidationError,
			Message: "Invalid request",
			Errors:  &fields,
		})
	case errors.Is(err, service.ErrNotFound):
		logger.Warn("resource not found", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Code:    api.CodeNotFound,
			Message: "Resource not found",
			Details: stringPtr(err.Error()),
		})
	case errors.Is(err, service.ErrSlotTaken):
		logger.Warn("appointment slot conflict", zap.Error(err))
		c.JSON(http.StatusConflict, api.ErrorResponse{
			Code:    api.CodeConflict,
			Message: "The doctor already has an appointment at this date and time",
			Details: stringPtr(err.Error()),
		})
	default:
		logger.Error(message, zap.Error(err), zap.String("path", c.Request.URL.Path))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    api.CodeInternalError,
			Message: message,
		})
	}
}

// bindBody validates the raw body against schema and decodes it into dst.
// It writes a 400 response and returns false when the body is rejected.
func bindBody(c *gin.Context, validator BodyValidator, logger *zap.Logger, schema string, dst interface{}) bool {
	body, ok := readBody(c, logger)
	if !ok {
		return false
	}
	return decodeBody(c, validator, logger, schema, body, dst)
}

// bindOptionalBody is bindBody for operations whose body may be omitted
func bindOptionalBody(c *gin.Context, validator BodyValidator, logger *zap.Logger, schema string, dst interface{}) bool {
	body, ok := readBody(c, logger)
	if !ok {
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}
	return decodeBody(c, validator, logger, schema, body, dst)
}

func readBody(c *gin.Context, logger *zap.Logger) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		logger.Error("failed to read request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    api.CodeValidationError,
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return nil, false
	}
	return body, true
}

func decodeBody(c *gin.Context, validator BodyValidator, logger *zap.Logger, schema string, body []byte, dst interface{}) bool {
	fieldErrors, err := validator.Validate(schema, body)
	if err != nil {
		respondError(c, logger, err, "Failed to validate request")
		return false
	}
	if len(fieldErrors) > 0 {
		logger.Warn("invalid request body",
			zap.String("schema", schema),
			zap.Int("violations", len(fieldErrors)),
		)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    api.CodeValidationError,
			Message: "Invalid request body",
			Errors:  &fieldErrors,
		})
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		logger.Warn("failed to decode request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    api.CodeValidationError,
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return false
	}
	return true
}

// ParamErrorHandler reports unbindable path and query parameters as field errors
func ParamErrorHandler(logger *zap.Logger) func(*gin.Context, error, int) {
	return func(c *gin.Context, err error, status int) {
		logger.Warn("invalid request parameter", zap.Error(err), zap.String("path", c.Request.URL.Path))

		resp := api.ErrorResponse{
			Code:    api.CodeValidationError,
			Message: "Invalid request parameter",
		}
		var perr *api.ParamError
		if errors.As(err, &perr) {
			resp.Errors = &[]api.FieldError{{Field: perr.Name, Message: perr.Err.Error()}}
		} else {
			resp.Details = stringPtr(err.Error())
		}
		if status < http.StatusBadRequest {
			status = http.StatusBadRequest
		}
		c.JSON(status, resp)
	}
}
