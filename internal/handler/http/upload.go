package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/sheetcharts/internal/app"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// headroom for the multipart envelope and the text fields
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, r, "*Handler.upload", fmt.Errorf("%w: %w", errFileTooLarge, err))
		default:
			writeError(w, r, "*Handler.upload", fmt.Errorf("%w: %w", errNoFileUploaded, err))
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, "*Handler.upload", fmt.Errorf("%w: %w", errNoFileUploaded, err))
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		writeError(w, r, "*Handler.upload", errFileTooLarge)
		return
	}

	result, err := h.services.UploadService.Upload(ctx, models.UploadRequest{
		UserID:   sessionFrom(r).UserID,
		FileName: header.Filename,
		Size:     header.Size,
		Axes: models.Axes{
			XAxis:     r.FormValue("xAxis"),
			YAxis:     r.FormValue("yAxis"),
			ChartType: models.ChartType(r.FormValue("chartType")),
		},
		Content: file,
	})
	if err != nil {
		writeError(w, r, "*Handler.upload", err)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{
		Message: app.MsgUploadSucceeded,
		File:    result.History,
		Columns: result.Table.Columns,
		Data:    result.Table.Records(),
	}, http.StatusCreated)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	historyID, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.download", err)
		return
	}

	history, content, err := h.services.UploadService.Download(r.Context(), historyID, sessionFrom(r).UserID)
	if err != nil {
		writeError(w, r, "*Handler.download", err)
		return
	}
	defer content.Close()

	size, err := content.Seek(0, io.SeekEnd)
	if err == nil {
		_, err = content.Seek(0, io.SeekStart)
	}
	if err != nil {
		writeError(w, r, "*Handler.download", err)
		return
	}

	format, _ := spreadsheet.FormatOf(history.FileName)
	utils.SetAttachmentHeaders(w, history.FileName, format.ContentType(), size)
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, content); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.download").Msg("streaming stored file failed")
	}
}
