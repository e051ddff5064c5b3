package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// HTTPDetector calls a plate recognition sidecar over HTTP. The sidecar
// answers {"plate": "..."} with an empty string when no plate is readable.
type HTTPDetector struct {
	BaseURL string
	Client  *http.Client
}

var _ PlateDetector = &HTTPDetector{}

func NewHTTPDetector(baseURL string) *HTTPDetector {
	return &HTTPDetector{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type detectResponse struct {
	Plate string `json:"plate"`
}

func (d *HTTPDetector) Detect(ctx context.Context, image []byte, filename string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("write image payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	url := d.BaseURL + "/detect"
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("detector request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("detector error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var detectResp detectResponse
	if err := json.Unmarshal(bodyBytes, &detectResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return strings.TrimSpace(detectResp.Plate), nil
}

func (d *HTTPDetector) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", d.BaseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := d.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
