package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/sheetcharts/internal/app"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

func (h *Handler) createAnalysis(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.createAnalysis", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}
	req.UserID = sessionFrom(r).UserID

	analysis, err := h.services.AnalysisService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.createAnalysis", err)
		return
	}

	utils.WriteJSON(w, models.AnalysisResponse{Analysis: analysis}, http.StatusOK)
}

func (h *Handler) listAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := h.services.AnalysisService.List(r.Context(), sessionFrom(r).UserID)
	if err != nil {
		writeError(w, r, "*Handler.listAnalyses", err)
		return
	}
	if analyses == nil {
		analyses = []models.Analysis{}
	}

	utils.WriteJSON(w, models.AnalysisListResponse{Analyses: analyses}, http.StatusOK)
}

func (h *Handler) renameAnalysis(w http.ResponseWriter, r *http.Request) {
	analysisID, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.renameAnalysis", err)
		return
	}

	var req models.RenameAnalysisRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.renameAnalysis", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	analysis, err := h.services.AnalysisService.Rename(r.Context(), analysisID, sessionFrom(r).UserID, req.Name)
	if err != nil {
		writeError(w, r, "*Handler.renameAnalysis", err)
		return
	}

	utils.WriteJSON(w, models.AnalysisResponse{Analysis: analysis}, http.StatusOK)
}

func (h *Handler) deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	analysisID, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteAnalysis", err)
		return
	}

	if err = h.services.AnalysisService.Delete(r.Context(), analysisID, sessionFrom(r).UserID); err != nil {
		writeError(w, r, "*Handler.deleteAnalysis", err)
		return
	}

	writeMessage(w, http.StatusOK, app.MsgAnalysisDeleted)
}

func (h *Handler) exportAnalysis(w http.ResponseWriter, r *http.Request) {
	analysisID, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.exportAnalysis", err)
		return
	}

	format := models.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = models.ExportPNG
	}

	export, err := h.services.AnalysisService.Export(r.Context(), models.ExportRequest{
		UserID:     sessionFrom(r).UserID,
		AnalysisID: analysisID,
		Format:     format,
	})
	if err != nil {
		writeError(w, r, "*Handler.exportAnalysis", err)
		return
	}

	if _, err = utils.WriteAttachment(w, export.FileName, export.ContentType, export.Content); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.exportAnalysis").Msg("writing export failed")
	}
}
