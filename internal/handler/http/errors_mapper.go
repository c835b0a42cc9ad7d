package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/sheetcharts/internal/app"
	"github.com/MKhiriev/sheetcharts/internal/chart"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/service"
	"github.com/MKhiriev/sheetcharts/internal/spreadsheet"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

type httpError struct {
	status  int
	message string
}

// errorStatusMap must not contain two sentinels that one error can wrap at
// the same time: lookup order over a map is random.
var errorStatusMap = map[error]httpError{
	errInvalidJSON:                      {http.StatusBadRequest, app.MsgInvalidJSON},
	errInvalidID:                        {http.StatusBadRequest, app.MsgInvalidID},
	errNoFileUploaded:                   {http.StatusBadRequest, app.MsgNoFileUploaded},
	errFileTooLarge:                     {http.StatusRequestEntityTooLarge, app.MsgFileTooLarge},
	ErrEmptyAuthorizationHeader:         {http.StatusUnauthorized, app.MsgEmptyAuthorizationHeader},
	utils.ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgInvalidAuthorization},
	ErrAdminOnly:                        {http.StatusForbidden, app.MsgAdminOnly},

	service.ErrInvalidDataProvided:                   {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrWrongPassword:                         {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenIsExpired:                        {http.StatusUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenIsExpiredOrInvalid:               {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrTokenCreationFailed:                   {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrGoogleLoginDisabled:                   {http.StatusNotImplemented, app.MsgGoogleLoginDisabled},
	service.ErrInvalidGoogleToken:                    {http.StatusUnauthorized, app.MsgInvalidGoogleToken},
	service.ErrParsingSpreadsheet:                    {http.StatusInternalServerError, app.MsgParsingSpreadsheet},
	service.ErrNoStoredFile:                          {http.StatusNotFound, app.MsgNoStoredFile},
	service.ErrValidationNoFileName:                  {http.StatusBadRequest, app.MsgFileNameRequired},
	service.ErrValidationNoHistoryID:                 {http.StatusBadRequest, app.MsgHistoryIDRequired},
	service.ErrValidationNoAxes:                      {http.StatusBadRequest, app.MsgAxesRequired},
	service.ErrValidationNoName:                      {http.StatusBadRequest, app.MsgNameRequired},
	service.ErrValidationChartType:                   {http.StatusBadRequest, app.MsgUnsupportedChartType},
	service.ErrValidationExportFormat:                {http.StatusBadRequest, app.MsgUnsupportedExportFormat},
	service.ErrValidationUnknownColumns:              {http.StatusBadRequest, app.MsgUnknownColumns},
	service.ErrUnauthorizedAccessToDifferentUserData: {http.StatusForbidden, app.MsgAccessDenied},
	service.ErrDatabaseUnavailable:                   {http.StatusServiceUnavailable, app.MsgServiceUnavailable},

	spreadsheet.ErrUnsupportedFileType: {http.StatusBadRequest, app.MsgOnlySpreadsheetsAllowed},

	chart.ErrEmptyDataset:     {http.StatusUnprocessableEntity, app.MsgChartNotRenderable},
	chart.ErrNoPositiveValues: {http.StatusUnprocessableEntity, app.MsgChartNotRenderable},

	store.ErrEmailAlreadyExists:         {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrGoogleAccountAlreadyLinked: {http.StatusConflict, app.MsgGoogleAccountLinked},
	store.ErrUserNotFound:               {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrHistoryNotFound:            {http.StatusNotFound, app.MsgHistoryNotFound},
	store.ErrAnalysisNotFound:           {http.StatusNotFound, app.MsgAnalysisNotFound},
}

func resolveError(err error) httpError {
	for target, resolved := range errorStatusMap {
		if errors.Is(err, target) {
			return resolved
		}
	}
	return httpError{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return resolveError(err).status
}

// writeError logs err and answers with its mapped status and message.
// Unmapped errors become a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resolved := resolveError(err)

	event := logger.FromRequest(r).Warn()
	if resolved.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resolved.status).Send()

	writeMessage(w, resolved.status, resolved.message)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{
		Success: status < http.StatusBadRequest,
		Message: message,
	}, status)
}
