package mailapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType is the "type" field of an error payload.
type ErrorType string

const (
	InvalidRequestError   ErrorType = "invalid_request_error"
	AuthenticationError   ErrorType = "authentication_error"
	RateLimitError        ErrorType = "rate_limit_error"
	APIError              ErrorType = "api_error"
	ServerError           ErrorType = "server_error"
	FailedPrecondition    ErrorType = "failed_precondition"
	ResourceAlreadyExists ErrorType = "resource_already_exists"
)

// Codes carried in the "code" field.
const (
	CodeForbidden       = "forbidden"
	CodeResourceMissing = "resource_missing"
)

// ErrorStatuses are the error statuses every operation declares.
var ErrorStatuses = []int{
	http.StatusBadRequest,
	http.StatusUnauthorized,
	http.StatusForbidden,
	http.StatusNotFound,
	http.StatusUnprocessableEntity,
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// TypesForStatus returns the error types the API sends with status.
func TypesForStatus(status int) []ErrorType {
	switch status {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound:
		return []ErrorType{InvalidRequestError}
	case http.StatusUnauthorized:
		return []ErrorType{AuthenticationError}
	case http.StatusUnprocessableEntity:
		return []ErrorType{FailedPrecondition, ResourceAlreadyExists}
	case http.StatusTooManyRequests:
		return []ErrorType{RateLimitError}
	case http.StatusInternalServerError:
		return []ErrorType{APIError}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return []ErrorType{ServerError}
	}
	return nil
}

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Type    ErrorType `json:"type" validate:"required,oneof=invalid_request_error authentication_error rate_limit_error api_error server_error failed_precondition resource_already_exists" example:"invalid_request_error" description:"Category of the error."`
	Message string    `json:"message" validate:"required" example:"bounce_danger_percent must be between 1 and 15" description:"Human readable explanation of the error."`
	Param   string    `json:"param,omitempty" example:"bounce_danger_percent" description:"Parameter the error relates to, when there is one."`
	Code    string    `json:"code,omitempty" example:"resource_missing" description:"Machine readable error code, when there is one."`
}

// PreconditionBody is the 422 payload of list operations.
type PreconditionBody struct {
	Preconditions []string `json:"preconditions" validate:"required,min=1,dive" description:"Conditions that must hold before the request can succeed." example:"brand has no verified sending domain"`
}

// Sentinels matched by *Error through errors.Is.
var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnauthenticated = errors.New("authentication failed")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("resource missing")
	ErrPrecondition    = errors.New("failed precondition")
	ErrConflict        = errors.New("resource already exists")
	ErrRateLimited     = errors.New("rate limited")
	ErrServer          = errors.New("server error")
)

// Error is an error response received from the API.
type Error struct {
	Status        int
	Type          ErrorType
	Message       string
	Param         string
	Code          string
	Preconditions []string
}

// NewError builds an Error from a decoded error payload.
func NewError(status int, body ErrorBody) *Error {
	return &Error{
		Status:  status,
		Type:    body.Type,
		Message: body.Message,
		Param:   body.Param,
		Code:    body.Code,
	}
}

// NewPreconditionError builds an Error from a list operation's 422 payload.
func NewPreconditionError(body PreconditionBody) *Error {
	return &Error{
		Status:        http.StatusUnprocessableEntity,
		Type:          FailedPrecondition,
		Message:       strings.Join(body.Preconditions, "; "),
		Preconditions: body.Preconditions,
	}
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", e.Status)
	if e.Type != "" {
		fmt.Fprintf(&sb, " %s", e.Type)
	}
	if e.Code != "" {
		fmt.Fprintf(&sb, " (%s)", e.Code)
	}
	if e.Message != "" {
		fmt.Fprintf(&sb, ": %s", e.Message)
	}
	if e.Param != "" {
		fmt.Fprintf(&sb, " [param %s]", e.Param)
	}
	return sb.String()
}

// Temporary reports whether the same request may succeed later: rate
// limiting and server side failures.
func (e *Error) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= http.StatusInternalServerError
}

// Is matches the sentinel for the error's status and type.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidRequest:
		return e.Type == InvalidRequestError && e.Status == http.StatusBadRequest
	case ErrUnauthenticated:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden || e.Code == CodeForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound || e.Code == CodeResourceMissing
	case ErrPrecondition:
		return e.Type == FailedPrecondition
	case ErrConflict:
		return e.Type == ResourceAlreadyExists
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	case ErrServer:
		return e.Status >= http.StatusInternalServerError
	}
	return false
}
