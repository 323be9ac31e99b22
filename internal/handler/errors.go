package handler

import (
	"errors"
	"net/http"

	"pizza-platform/internal/entities"

	"pizza-platform/pkg/utils"
)

// writeDomainError maps sentinel errors onto the envelope taxonomy:
// missing resources are 404, illegal transitions and unavailable items are
// 409, an unreachable dependency is 503, duplicates are 400 and anything
// unrecognized stays a generic 500.
func writeDomainError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrPizzaNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotCancellable),
		errors.Is(err, entities.ErrPizzaUnavailable):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrMenuUnavailable):
		utils.WriteError(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrPizzaNameTaken),
		errors.Is(err, entities.ErrEmailTaken):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidCredentials):
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)
	default:
		return false
	}
	return true
}
