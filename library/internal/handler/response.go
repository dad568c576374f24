package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/errs"
)

// Response is the envelope every endpoint answers with, errors included.
type Response struct {
	Timestamp  time.Time              `json:"timestamp"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Message    string                 `json:"message"`
	Status     string                 `json:"status"`
	StatusCode int                    `json:"statusCode"`
}

func (h *Handler) respond(c echo.Context, code int, message, key string, payload interface{}) error {
	return c.JSON(code, h.envelope(code, message, map[string]interface{}{key: payload}))
}

func (h *Handler) envelope(code int, message string, data map[string]interface{}) Response {
	return Response{
		Timestamp:  h.now().UTC(),
		Data:       data,
		Message:    message,
		Status:     statusName(code),
		StatusCode: code,
	}
}

// statusName turns 404 into NOT_FOUND.
func statusName(code int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
}

// HTTPErrorHandler renders domain and echo errors into the envelope.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var data map[string]interface{}

	var (
		httpErr   *echo.HTTPError
		validErr  *errs.ValidationError
		domainErr *errs.Error
	)
	switch {
	case errors.As(err, &validErr):
		code, message = http.StatusBadRequest, validErr.Error()
		data = map[string]interface{}{"violations": validErr.Violations}
	case errors.As(err, &domainErr):
		code, message = errorCode(err), domainErr.Error()
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
	}

	resp := h.envelope(code, message, data)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, resp)
	}
	if err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidArgument), errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrDeletedDependency):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
