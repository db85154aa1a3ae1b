package node

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Gateway fetches content from a bee node's local HTTP API.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewGateway creates a gateway client for the API at apiAddr.
func NewGateway(apiAddr string) *Gateway {
	return &Gateway{
		baseURL:    "http://" + apiAddr,
		httpClient: http.DefaultClient,
	}
}

// SetHTTPClient sets the HTTP client (useful for testing).
func (g *Gateway) SetHTTPClient(client *http.Client) {
	g.httpClient = client
}

// Fetch downloads the content addressed by reference into destDir and
// returns the written file path. The filename comes from the
// Content-Disposition header when the node provides one, with a
// deterministic fallback otherwise.
func (g *Gateway) Fetch(ctx context.Context, reference, destDir string) (string, error) {
	url := fmt.Sprintf("%s/bzz/%s", g.baseURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", reference, resp.StatusCode)
	}

	name := filenameFromHeader(resp.Header.Get("Content-Disposition"))
	if name == "" {
		name = fmt.Sprintf("downloaded_file_%s.dat", reference)
	}

	destPath := filepath.Join(destDir, name)
	tmpPath := destPath + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}

	cleanupNeeded := true
	defer func() {
		out.Close()
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close output file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return "", fmt.Errorf("rename output file: %w", err)
	}

	cleanupNeeded = false
	return destPath, nil
}

// filenameFromHeader extracts a safe filename from a Content-Disposition
// header value. Returns empty string when no usable name is present.
func filenameFromHeader(header string) string {
	if header == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}

	name := filepath.Base(params["filename"])
	// Reject names that resolve to nothing useful or climb out of destDir
	if name == "" || name == "." || name == string(filepath.Separator) || strings.HasPrefix(name, "..") {
		return ""
	}
	return name
}
