package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
	"github.com/secmon-lab/ticklist/pkg/usecase"
	"github.com/secmon-lab/ticklist/pkg/utils/errutil"
	"github.com/secmon-lab/ticklist/pkg/utils/safe"
)

type checklistResponse struct {
	Checklist model.Checklist `json:"checklist"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to encode response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, body)
}

// respondError maps use-case errors to HTTP statuses. A persistence failure
// is 503: the mutation was rolled back and the client may retry.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotSaved):
		errutil.HandleHTTP(ctx, w, err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGeneratorDisabled), errors.Is(err, usecase.ErrClassifierDisabled):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotImplemented)
	case errors.Is(err, usecase.ErrNotConfirmable):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body")
	}
	return nil
}

func (s *Server) getChecklist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cl, err := s.uc.Checklist.Get(ctx, sessionFrom(ctx))
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, checklistResponse{Checklist: cl})
}

func (s *Server) addItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Texts []string `json:"texts"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	cl, err := s.uc.Checklist.AddItems(ctx, sessionFrom(ctx), req.Texts)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, checklistResponse{Checklist: cl})
}

func (s *Server) toggleItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Category string `json:"category"`
		ItemID   string `json:"itemId"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	cl, err := s.uc.Checklist.ToggleItem(ctx, sessionFrom(ctx), req.Category, types.ItemID(req.ItemID))
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, checklistResponse{Checklist: cl})
}

func (s *Server) moveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ItemID string `json:"itemId"`
		Source string `json:"source"`
		Dest   string `json:"dest"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	cl, err := s.uc.Checklist.MoveItem(ctx, sessionFrom(ctx), types.ItemID(req.ItemID), req.Source, req.Dest)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, checklistResponse{Checklist: cl})
}

func (s *Server) editItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Category string `json:"category"`
		ItemID   string `json:"itemId"`
		Text     string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	cl, err := s.uc.Checklist.EditItem(ctx, sessionFrom(ctx), req.Category, types.ItemID(req.ItemID), req.Text)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, checklistResponse{Checklist: cl})
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID := types.ItemID(chi.URLParam(r, "itemID"))
	category := r.URL.Query().Get("category")

	cl, err := s.uc.Checklist.DeleteItem(ctx, sessionFrom(ctx), category, itemID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, checklistResponse{Checklist: cl})
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cl, err := s.uc.Checklist.DeleteCategory(ctx, sessionFrom(ctx), chi.URLParam(r, "name"))
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, checklistResponse{Checklist: cl})
}

func (s *Server) clearChecklist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cl, err := s.uc.Checklist.Clear(ctx, sessionFrom(ctx))
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, checklistResponse{Checklist: cl})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Text string `json:"text"`
		URL  string `json:"url"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	var result *usecase.GenerateResult
	var err error
	switch {
	case req.URL != "":
		result, err = s.uc.Checklist.GenerateFromURL(ctx, sessionFrom(ctx), req.URL)
	case req.Text != "":
		result, err = s.uc.Checklist.GenerateFromText(ctx, sessionFrom(ctx), req.Text)
	default:
		errutil.HandleHTTP(ctx, w, goerr.New("either text or url is required"), http.StatusBadRequest)
		return
	}
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, result)
}

func (s *Server) command(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	outcome, err := s.uc.Checklist.HandleCommand(ctx, sessionFrom(ctx), req.Text)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, outcome)
}

func (s *Server) confirmCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Command model.Command `json:"command"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	outcome, err := s.uc.Checklist.ConfirmCommand(ctx, sessionFrom(ctx), req.Command)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, outcome)
}

func (s *Server) changeLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := s.uc.Checklist.ChangeLog(ctx, sessionFrom(ctx), s.changeLogLimit)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"records": records})
}
