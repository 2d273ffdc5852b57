package pdfservices

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ServiceError is a failure reported by the service, either as a non-2xx
// response or as a failed job.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("pdf services error (status %d): %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("pdf services error %s (status %d): %s", e.Code, e.StatusCode, e.Message)
}

type serviceErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (b *serviceErrorBody) toServiceError(fallbackStatus int) *ServiceError {
	status := b.Status
	if status == 0 {
		status = fallbackStatus
	}

	return &ServiceError{StatusCode: status, Code: b.Code, Message: b.Message}
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

	var body struct {
		Error *serviceErrorBody `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != nil {
		return body.Error.toServiceError(resp.StatusCode)
	}

	return &ServiceError{StatusCode: resp.StatusCode, Message: string(raw)}
}
