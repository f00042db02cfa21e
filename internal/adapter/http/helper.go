package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"banking-ledger/internal/domain/apperr"
)

// statusOf maps a ledger error kind to an HTTP status.
func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.ErrValidation:
		return http.StatusBadRequest
	case apperr.ErrNotFound:
		return http.StatusNotFound
	case apperr.ErrConstraint, apperr.ErrInsufficientFunds:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func kindName(err error) string {
	switch apperr.KindOf(err) {
	case apperr.ErrValidation:
		return "validation"
	case apperr.ErrNotFound:
		return "not_found"
	case apperr.ErrConstraint:
		return "constraint"
	case apperr.ErrInsufficientFunds:
		return "insufficient_funds"
	case apperr.ErrPersistence:
		return "persistence"
	case apperr.ErrConsistency:
		return "consistency"
	}
	return ""
}

func writeError(c echo.Context, err error) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		log.Printf("http: %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(code, ErrorResponse{Error: "internal error", Kind: kindName(err)})
	}
	return c.JSON(code, ErrorResponse{Error: apperr.Reason(err), Kind: kindName(err)})
}

// bindValid binds the body into req and validates it.
// It writes the error response itself and reports whether to continue.
func bindValid(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Kind:    "validation",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func pathID(c echo.Context, name string) (uint64, bool, error) {
	var id uint64
	if err := echo.PathParamsBinder(c).MustUint64(name, &id).BindError(); err != nil || id == 0 {
		return 0, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " path param"})
	}
	return id, true, nil
}
