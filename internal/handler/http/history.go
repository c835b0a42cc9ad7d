package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/sheetcharts/internal/app"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

func (h *Handler) saveHistory(w http.ResponseWriter, r *http.Request) {
	var req models.SaveHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.saveHistory", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	history, err := h.services.HistoryService.Save(r.Context(), sessionFrom(r), req)
	if err != nil {
		writeError(w, r, "*Handler.saveHistory", err)
		return
	}

	utils.WriteJSON(w, models.HistoryResponse{Success: true, History: history}, http.StatusOK)
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	h.writeHistoryList(w, r, session, session.UserID)
}

// listUserHistory serves GET /api/history/{id} where id is the owner's user id.
func (h *Handler) listUserHistory(w http.ResponseWriter, r *http.Request) {
	ownerID, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.listUserHistory", err)
		return
	}

	h.writeHistoryList(w, r, sessionFrom(r), ownerID)
}

func (h *Handler) writeHistoryList(w http.ResponseWriter, r *http.Request, session models.Session, ownerID int64) {
	history, err := h.services.HistoryService.List(r.Context(), session, ownerID)
	if err != nil {
		writeError(w, r, "*Handler.writeHistoryList", err)
		return
	}
	if history == nil {
		history = []models.History{}
	}

	utils.WriteJSON(w, models.HistoryListResponse{Success: true, History: history}, http.StatusOK)
}

func (h *Handler) historyDataset(w http.ResponseWriter, r *http.Request) {
	historyID, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.historyDataset", err)
		return
	}

	query := r.URL.Query()
	dataset, err := h.services.HistoryService.Dataset(r.Context(), models.DatasetRequest{
		UserID:    sessionFrom(r).UserID,
		HistoryID: historyID,
		XAxis:     query.Get("xAxis"),
		YAxis:     query.Get("yAxis"),
	})
	if err != nil {
		writeError(w, r, "*Handler.historyDataset", err)
		return
	}

	utils.WriteJSON(w, dataset, http.StatusOK)
}

func (h *Handler) deleteHistory(w http.ResponseWriter, r *http.Request) {
	historyID, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteHistory", err)
		return
	}

	if err = h.services.HistoryService.Delete(r.Context(), historyID, sessionFrom(r).UserID); err != nil {
		writeError(w, r, "*Handler.deleteHistory", err)
		return
	}

	writeMessage(w, http.StatusOK, app.MsgHistoryDeleted)
}
