package failure_test

import (
	"errors"
	"fmt"
	"lodgy/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("malformed payload")),
			code:    http.StatusBadRequest,
			message: "malformed payload",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("invalid date"),
			code:    http.StatusBadRequest,
			message: "invalid date",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("connection refused")),
			code:    http.StatusInternalServerError,
			message: "connection refused",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking"),
			code:    http.StatusNotFound,
			message: "booking",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("property is already booked for the requested dates"),
			code:    http.StatusConflict,
			message: "property is already booked for the requested dates",
		},
		{
			name:    "InvalidState",
			err:     failure.InvalidState("cannot transition from completed to cancelled"),
			code:    http.StatusConflict,
			message: "cannot transition from completed to cancelled",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("owners cannot book their own property"),
			code:    http.StatusForbidden,
			message: "owners cannot book their own property",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			if !errors.As(tt.err, &fail) {
				t.Fatalf("expected a *failure.Failure, got %T", tt.err)
			}
			if fail.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, fail.Code)
			}
			if fail.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, fail.Message)
			}
		})
	}
}

func TestNilErrors(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected BadRequest(nil) to be nil, got %v", err)
	}
	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected InternalError(nil) to be nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error returns its code",
			err:      failure.NotFound("property"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure returns its code",
			err:      fmt.Errorf("wrapped: %w", failure.InvalidState("booking already settled")),
			expected: http.StatusConflict,
		},
		{
			name:     "plain error defaults to internal server error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := failure.Conflict("duplicate review")

	if !failure.IsCode(err, http.StatusConflict) {
		t.Error("expected IsCode to report true for matching code")
	}
	if failure.IsCode(err, http.StatusNotFound) {
		t.Error("expected IsCode to report false for a different code")
	}
	if failure.IsCode(errors.New("plain"), http.StatusInternalServerError) {
		t.Error("expected IsCode to report false for non-failure errors")
	}
}
