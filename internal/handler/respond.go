package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"declutter/internal/errors"
)

// fail converts a service error into the echo error that carries the
// response body. The original error rides along as internal so the request
// logger records it without exposing it to the caller.
func fail(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// bindAndValidate decodes the JSON body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) *echo.HTTPError {
	if err := c.Bind(req); err != nil {
		// echo's error handler unwraps an internal *echo.HTTPError, so the
		// bind error must not be attached as one.
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		}).SetInternal(fmt.Errorf("bind request: %w", err))
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: validationMessage(req, err),
			Code:    "VALIDATION_ERROR",
		}).SetInternal(fmt.Errorf("validate request: %w", err))
	}
	return nil
}

// validationMessage describes failed fields by their JSON names.
func validationMessage(req interface{}, err error) string {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return "invalid request"
	}

	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fe.Field()
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
				name = tag
			}
		}
		if fe.Tag() == "required" {
			msgs = append(msgs, name+" is required")
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", name, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// pathParam returns the named path parameter percent-decoded. Echo matches
// on the raw path, so escaped characters can still be encoded.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
