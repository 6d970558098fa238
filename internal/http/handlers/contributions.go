package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"server/internal/domain"
)

const (
	msgDuplicatePhone = "Phone number already exists in our records"
	msgSubmitFailed   = "Failed to submit contribution. Please try again."
	msgLoadFailed     = "Failed to load contributions"
)

// ContributionsCreate validates a submitted form, rejects duplicate phone
// numbers against the currently stored records, and inserts the record. The
// unique index remains the authority for races between the pre-check and the
// insert.
func (a *App) ContributionsCreate(w http.ResponseWriter, r *http.Request) {
	var input domain.ContributionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	input.Normalize()
	if err := input.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			a.error(w, http.StatusBadRequest, "validation_failed", verr.Reason)
			return
		}
		a.error(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	existing, err := a.Repo.ListAll(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("contributions: pre-check list failed")
		a.error(w, http.StatusInternalServerError, "internal", msgSubmitFailed)
		return
	}
	if domain.HasPhone(existing, input.PhoneNumber) {
		a.error(w, http.StatusConflict, "duplicate_phone", msgDuplicatePhone)
		return
	}

	created, err := a.Repo.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePhone) || strings.Contains(strings.ToLower(err.Error()), "phone") {
			a.error(w, http.StatusConflict, "duplicate_phone", msgDuplicatePhone)
			return
		}
		a.Logger.Error().Err(err).Msg("contributions: create failed")
		a.error(w, http.StatusInternalServerError, "internal", msgSubmitFailed)
		return
	}
	a.json(w, http.StatusCreated, created)
}

// ContributionsList returns every stored contribution, newest first.
func (a *App) ContributionsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Repo.ListAll(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("contributions: list failed")
		a.error(w, http.StatusInternalServerError, "internal", msgLoadFailed)
		return
	}
	if items == nil {
		items = []domain.Contribution{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// ContributionsSummary reports the running count and total amount.
func (a *App) ContributionsSummary(w http.ResponseWriter, r *http.Request) {
	count, total, err := a.Repo.Summary(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("contributions: summary failed")
		a.error(w, http.StatusInternalServerError, "internal", msgLoadFailed)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"count":        count,
		"total_amount": total,
	})
}
