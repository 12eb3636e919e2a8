package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/order-service/internal/domain/dto"
	"github.com/guttosm/order-service/internal/i18n"
	"github.com/guttosm/order-service/internal/middleware"
	"github.com/guttosm/order-service/internal/validation"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// errMalformedBody is returned by DecodeJSON for bodies that are not JSON at all.
var errMalformedBody = errors.New("malformed request body")

// DecodeJSON decodes the request body into v. An empty body decodes as {}.
// A JSON type mismatch comes back as validation.Errors holding the offending
// field plus every rule the rest of the body breaks; any other decoding
// failure wraps errMalformedBody.
func DecodeJSON(c *gin.Context, v interface{}, rules validation.RuleSet) error {
	if c.Request.Body == nil {
		return nil
	}
	err := json.NewDecoder(c.Request.Body).Decode(v)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	}
	if errs, ok := validation.Default().DecodeFailure(err, v, rules); ok {
		return errs
	}
	return errors.Join(errMalformedBody, err)
}

// ResponseBuilder writes the success and error envelopes for one request.
// Messages are given as i18n keys and localized from Accept-Language.
type ResponseBuilder struct {
	c      *gin.Context
	locale string
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c, locale: i18n.GetLocale(c)}
}

// T localizes key.
func (b *ResponseBuilder) T(key string) string {
	return i18n.GetTranslator().Translate(key, b.locale)
}

// Success sends data in the success envelope with a localized message.
func (b *ResponseBuilder) Success(statusCode int, messageKey string, data interface{}) {
	resp := getSuccessResponse()
	defer putSuccessResponse(resp)

	resp.Message = b.T(messageKey)
	resp.Code = statusCode
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// gin serializes synchronously, so the pooled value can be reused afterwards.
	b.c.JSON(statusCode, resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(messageKey string, data interface{}) {
	b.Success(http.StatusOK, messageKey, data)
}

// Error sends the error envelope with a localized message.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.send(statusCode, b.T(messageKey), nil, err)
}

// ErrorWithMessage sends the error envelope with message as is.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.send(statusCode, message, nil, err)
}

// ValidationFailed sends 422 with every field message localized.
func (b *ResponseBuilder) ValidationFailed(errs validation.Errors) {
	fields := i18n.GetTranslator().TranslateAll(errs, b.locale)
	b.send(http.StatusUnprocessableEntity, b.T(i18n.ErrKeyValidation), fields, nil)
}

func (b *ResponseBuilder) send(statusCode int, message string, fields map[string][]string, err error) {
	resp := getErrorResponse()
	defer putErrorResponse(resp)

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Code = statusCode
	resp.Errors = fields
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Attached for ErrorHandler and RequestLogger; the response is already written.
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
}
