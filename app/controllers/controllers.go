// Package controllers holds the HTTP handlers. Controllers bind and
// validate request bodies, call a service, and map its sentinel errors onto
// the response envelope. No business logic lives here.
package controllers

import (
	"errors"
	"net/http"

	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/pkg/logger"
	"github.com/joycybakery/fournil/pkg/response"
)

// fail maps service sentinel errors onto HTTP responses. Anything
// unrecognised is a remote failure: logged with request context, surfaced
// as a generic message.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrNotAuthenticated):
		response.Unauthorized(w)
	case errors.Is(err, services.ErrEmptyCart):
		response.Error(w, http.StatusUnprocessableEntity, "Cart is empty")
	case errors.Is(err, services.ErrBadDeliveryDate):
		response.Error(w, http.StatusUnprocessableEntity, "Delivery date must be YYYY-MM-DD")
	case errors.Is(err, services.ErrInvalidTransition):
		response.Error(w, http.StatusUnprocessableEntity, "Transition not allowed")
	case errors.Is(err, services.ErrUnknownStatusValue):
		response.Error(w, http.StatusUnprocessableEntity, "Unknown status")
	case errors.Is(err, services.ErrInvalidDateRange):
		response.Error(w, http.StatusUnprocessableEntity, "End date must be on or after start date")
	case errors.Is(err, services.ErrBadCategory):
		response.Error(w, http.StatusUnprocessableEntity, "Unknown category")
	case errors.Is(err, services.ErrBadImageType):
		response.Error(w, http.StatusUnprocessableEntity, "Image must be jpeg, png or webp")
	case errors.Is(err, services.ErrBadCredentials):
		response.Unauthorized(w)
	case errors.Is(err, services.ErrEmailTaken):
		response.Error(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, services.ErrMissingFields):
		response.Error(w, http.StatusUnprocessableEntity, "Missing required fields")
	case errors.Is(err, services.ErrRelayUnconfigured):
		response.Error(w, http.StatusServiceUnavailable, "Email service not configured")
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.RemoteFailure(w)
	}
}
