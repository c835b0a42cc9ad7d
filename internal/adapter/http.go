package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	token   string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress (a missing scheme means http) and
// applies adapterCfg.RequestTimeout to every request.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) BaseURL() string {
	return h.baseURL
}

// Register implements [ServerAdapter]. POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", req)
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: response carries no token", path)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/api/user/me")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Upload implements [ServerAdapter]. POST /api/upload as multipart form data
// with the file under "file" and the axes as plain fields.
func (h *httpServerAdapter) Upload(ctx context.Context, fileName string, content io.Reader, axes models.Axes) (models.UploadResponse, error) {
	var uploaded models.UploadResponse

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", fileName, content).
		SetFormData(map[string]string{
			"xAxis":     axes.XAxis,
			"yAxis":     axes.YAxis,
			"chartType": string(axes.ChartType),
		}).
		SetResult(&uploaded).
		Post("/api/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	return uploaded, nil
}

func (h *httpServerAdapter) ListHistory(ctx context.Context) ([]models.History, error) {
	var list models.HistoryListResponse

	resp, err := h.authedRequest(ctx).SetResult(&list).Get("/api/history")
	if err != nil {
		return nil, fmt.Errorf("list history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.History, nil
}

func (h *httpServerAdapter) DeleteHistory(ctx context.Context, historyID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(historyID, 10)).
		Delete("/api/history/{id}")
	if err != nil {
		return fmt.Errorf("delete history request: %w", err)
	}

	return mapHTTPError(resp)
}

// DownloadFile implements [ServerAdapter]. The body is streamed into w
// without buffering.
func (h *httpServerAdapter) DownloadFile(ctx context.Context, historyID int64, w io.Writer) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetDoNotParseResponse(true).
		SetPathParam("id", strconv.FormatInt(historyID, 10)).
		Get("/api/upload/download/{id}")
	if err != nil {
		return "", fmt.Errorf("download request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(body)
		return "", mapStatus(resp.StatusCode(), msg)
	}

	if _, err = io.Copy(w, body); err != nil {
		return "", fmt.Errorf("download body: %w", err)
	}

	return attachmentName(resp.Header().Get("Content-Disposition")), nil
}

func (h *httpServerAdapter) Dataset(ctx context.Context, historyID int64, xAxis, yAxis string) (models.DatasetResponse, error) {
	var ds models.DatasetResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(historyID, 10)).
		SetQueryParams(map[string]string{"xAxis": xAxis, "yAxis": yAxis}).
		SetResult(&ds).
		Get("/api/history/{id}/dataset")
	if err != nil {
		return models.DatasetResponse{}, fmt.Errorf("dataset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DatasetResponse{}, err
	}

	return ds, nil
}

func (h *httpServerAdapter) CreateAnalysis(ctx context.Context, req models.SaveAnalysisRequest) (models.Analysis, error) {
	var created models.AnalysisResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/analysis")
	if err != nil {
		return models.Analysis{}, fmt.Errorf("create analysis request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Analysis{}, err
	}

	return created.Analysis, nil
}

func (h *httpServerAdapter) ListAnalyses(ctx context.Context) ([]models.Analysis, error) {
	var list models.AnalysisListResponse

	resp, err := h.authedRequest(ctx).SetResult(&list).Get("/api/analysis")
	if err != nil {
		return nil, fmt.Errorf("list analyses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return list.Analyses, nil
}

func (h *httpServerAdapter) RenameAnalysis(ctx context.Context, analysisID int64, name string) (models.Analysis, error) {
	var renamed models.AnalysisResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(analysisID, 10)).
		SetBody(models.RenameAnalysisRequest{Name: name}).
		SetResult(&renamed).
		Patch("/api/analysis/{id}")
	if err != nil {
		return models.Analysis{}, fmt.Errorf("rename analysis request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Analysis{}, err
	}

	return renamed.Analysis, nil
}

func (h *httpServerAdapter) DeleteAnalysis(ctx context.Context, analysisID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(analysisID, 10)).
		Delete("/api/analysis/{id}")
	if err != nil {
		return fmt.Errorf("delete analysis request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ExportAnalysis(ctx context.Context, analysisID int64, format models.ExportFormat) (models.Export, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", format.ContentType()).
		SetPathParam("id", strconv.FormatInt(analysisID, 10)).
		SetQueryParam("format", string(format)).
		Get("/api/analysis/{id}/export")
	if err != nil {
		return models.Export{}, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Export{}, err
	}

	return models.Export{
		FileName:    attachmentName(resp.Header().Get("Content-Disposition")),
		ContentType: resp.Header().Get("Content-Type"),
		Content:     resp.Body(),
	}, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&version).Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// attachmentName returns the filename parameter of a Content-Disposition
// header, or "" when there is none.
func attachmentName(header string) string {
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
