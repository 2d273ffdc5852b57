// Package pdfservices is a client for the Adobe PDF Services REST API.
package pdfservices

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kurochkinivan/transcript_extractor/internal/config"
	"github.com/kurochkinivan/transcript_extractor/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	assetsPath     = "/assets"
	extractPDFPath = "/operation/extractpdf"
	tokenPath      = "/token"

	statusInProgress = "in progress"
	statusDone       = "done"
	statusFailed     = "failed"

	errorBodyLimit = 4096

	defaultPollInterval = 2 * time.Second
)

type Client struct {
	log          *slog.Logger
	baseURL      string
	api          *http.Client // authenticated calls to the service
	transfer     *http.Client // pre-signed upload and download URIs
	pollInterval time.Duration
	pollTimeout  time.Duration
}

func New(log *slog.Logger, cfg config.PDFServices) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	credentials := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Timeout: cfg.RequestTimeout,
	})

	api := credentials.Client(tokenCtx)
	api.Timeout = cfg.RequestTimeout
	api.Transport = &apiKeyTransport{apiKey: cfg.ClientID, base: api.Transport}

	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	return &Client{
		log:          log,
		baseURL:      baseURL,
		api:          api,
		transfer:     &http.Client{Timeout: cfg.RequestTimeout},
		pollInterval: pollInterval,
		pollTimeout:  cfg.PollTimeout,
	}
}

type createAssetRequest struct {
	MediaType string `json:"mediaType"`
}

type createAssetResponse struct {
	AssetID   string `json:"assetID"`
	UploadURI string `json:"uploadUri"`
}

// UploadAsset registers a new asset and uploads r to its pre-signed URI.
func (c *Client) UploadAsset(ctx context.Context, r io.Reader, mimeType string) (domain.AssetRef, error) {
	var asset createAssetResponse
	err := c.doJSON(ctx, http.MethodPost, c.baseURL+assetsPath, createAssetRequest{MediaType: mimeType}, &asset)
	if err != nil {
		return domain.AssetRef{}, fmt.Errorf("failed to create asset: %w", err)
	}

	if asset.AssetID == "" || asset.UploadURI == "" {
		return domain.AssetRef{}, errors.New("asset response is missing assetID or uploadUri")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, asset.UploadURI, r)
	if err != nil {
		return domain.AssetRef{}, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)

	// pre-signed URIs reject chunked bodies
	if sized, ok := r.(interface{ Stat() (os.FileInfo, error) }); ok {
		if info, err := sized.Stat(); err == nil {
			req.ContentLength = info.Size()
		}
	}

	resp, err := c.transfer.Do(req)
	if err != nil {
		return domain.AssetRef{}, fmt.Errorf("failed to upload asset: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return domain.AssetRef{}, fmt.Errorf("failed to upload asset: %w", err)
	}

	return domain.AssetRef{ID: asset.AssetID}, nil
}

type extractPDFRequest struct {
	AssetID           string               `json:"assetID"`
	ElementsToExtract []domain.ElementType `json:"elementsToExtract"`
}

// SubmitExtractionJob starts an Extract PDF job and returns its polling location.
func (c *Client) SubmitExtractionJob(
	ctx context.Context,
	asset domain.AssetRef,
	elements []domain.ElementType,
) (domain.JobHandle, error) {
	body, err := json.Marshal(extractPDFRequest{AssetID: asset.ID, ElementsToExtract: elements})
	if err != nil {
		return domain.JobHandle{}, fmt.Errorf("failed to marshal job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+extractPDFPath, bytes.NewReader(body))
	if err != nil {
		return domain.JobHandle{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.api.Do(req)
	if err != nil {
		return domain.JobHandle{}, fmt.Errorf("failed to submit job: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return domain.JobHandle{}, err
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return domain.JobHandle{}, errors.New("job response has no Location header")
	}

	return domain.JobHandle{PollingURL: location}, nil
}

type jobStatusResponse struct {
	Status   string `json:"status"`
	Resource struct {
		AssetID     string `json:"assetID"`
		DownloadURI string `json:"downloadUri"`
	} `json:"resource"`
	Error *serviceErrorBody `json:"error"`
}

// AwaitJobResult polls the job until it is done, failed or the poll timeout elapses.
func (c *Client) AwaitJobResult(ctx context.Context, job domain.JobHandle) (domain.ResultRef, error) {
	if c.pollTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.pollTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		var status jobStatusResponse
		if err := c.doJSON(ctx, http.MethodGet, job.PollingURL, nil, &status); err != nil {
			return domain.ResultRef{}, fmt.Errorf("failed to poll job: %w", err)
		}

		switch status.Status {
		case statusDone:
			if status.Resource.DownloadURI == "" {
				return domain.ResultRef{}, errors.New("finished job has no downloadUri")
			}

			return domain.ResultRef{
				AssetID:     status.Resource.AssetID,
				DownloadURI: status.Resource.DownloadURI,
			}, nil

		case statusFailed:
			if status.Error != nil {
				return domain.ResultRef{}, status.Error.toServiceError(http.StatusOK)
			}

			return domain.ResultRef{}, &ServiceError{StatusCode: http.StatusOK, Message: "job failed"}

		case statusInProgress:
			c.log.DebugContext(ctx, "job in progress", slog.Int("attempt", attempt))

		default:
			return domain.ResultRef{}, fmt.Errorf("unknown job status %q", status.Status)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return domain.ResultRef{}, fmt.Errorf("job did not finish: %w", ctx.Err())
		}
	}
}

// FetchContent downloads the result asset. The caller closes the returned body.
func (c *Client) FetchContent(ctx context.Context, result domain.ResultRef) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, result.DownloadURI, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.transfer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download asset: %w", err)
	}

	if err := checkResponse(resp); err != nil {
		return nil, errors.Join(err, resp.Body.Close())
	}

	return resp.Body, nil
}

func (c *Client) doJSON(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.api.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

type apiKeyTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("x-api-key", t.apiKey)

	return t.base.RoundTrip(req)
}
