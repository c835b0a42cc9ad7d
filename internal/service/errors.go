package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("invalid email or password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrGoogleLoginDisabled = errors.New("google login is not configured")
	ErrInvalidGoogleToken  = errors.New("invalid google token")

	ErrParsingSpreadsheet = errors.New("error parsing spreadsheet")
	ErrNoStoredFile       = errors.New("no stored file for this history record")

	ErrValidationNoFileName     = errors.New("fileName is required")
	ErrValidationNoHistoryID    = errors.New("historyId required")
	ErrValidationNoAxes         = errors.New("xAxis and yAxis are required")
	ErrValidationNoName         = errors.New("name is required")
	ErrValidationChartType      = errors.New("unsupported chart type")
	ErrValidationExportFormat   = errors.New("format must be png or pdf")
	ErrValidationUnknownColumns = errors.New("selected columns are not in the spreadsheet")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("access denied")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrDatabaseUnavailable   = errors.New("database unavailable")
)

// client-side errors
var (
	ErrNotLoggedIn           = errors.New("not logged in, run `sheetcharts login` first")
	ErrSessionForOtherServer = errors.New("saved session belongs to a different server")
	ErrFileTooLarge          = errors.New("file too large")
	ErrRegisterOnServer      = errors.New("registration on server failed")
	ErrLoginOnServer         = errors.New("login on server failed")
)
