package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("REQUEST_NOT_FOUND", "request not found", http.StatusNotFound)
		if e.Error() != "REQUEST_NOT_FOUND: request not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Error != "request not found" || body.Code != "REQUEST_NOT_FOUND" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("wrapped cause stays out of the body", func(t *testing.T) {
		cause := errors.New("dynamodb: throttled")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if e.ToHTTPError().Error != "An internal error occurred" {
			t.Fatalf("cause leaked into body: %+v", e.ToHTTPError())
		}
	})
}
