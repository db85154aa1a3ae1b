// Package release queries the GitHub release index for the newest
// published Bee version and selects the asset matching a platform.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hivetool/beeget/internal/platform"
)

// DefaultBaseURL is the GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Release represents a GitHub release.
type Release struct {
	TagName     string  `json:"tag_name"`
	Name        string  `json:"name"`
	Draft       bool    `json:"draft"`
	Prerelease  bool    `json:"prerelease"`
	PublishedAt string  `json:"published_at"`
	Assets      []Asset `json:"assets"`
}

// Asset represents a release asset (binary).
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// Client fetches release information from GitHub.
type Client struct {
	BaseURL    string
	Owner      string
	Repo       string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a release index client for owner/repo.
func NewClient(owner, repo string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Owner:      owner,
		Repo:       repo,
		httpClient: http.DefaultClient,
		userAgent:  "beeget",
	}
}

// SetHTTPClient sets the HTTP client (useful for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Latest fetches the latest published release.
func (c *Client) Latest(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.BaseURL, c.Owner, c.Repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// GitHub API requires a user agent
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("release index returned status %d: %s", resp.StatusCode, string(body))
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding release index: %w", err)
	}

	if release.TagName == "" {
		return nil, fmt.Errorf("release index returned no published release")
	}

	return &release, nil
}

// AssetFor finds the asset for a platform. Bee assets are raw binaries
// named "<binary>-<os>-<arch>" with a ".exe" suffix on Windows, e.g.
// "bee-linux-amd64" or "bee-windows-amd64.exe". Archive-packaged variants
// of the same name are accepted as a fallback.
func (r *Release) AssetFor(info *platform.Info, binaryName string) (*Asset, error) {
	base := fmt.Sprintf("%s-%s", binaryName, info.Key())
	candidates := []string{
		base + info.ExeSuffix(),
		base + ".tar.gz",
		base + ".tgz",
		base + ".zip",
	}

	for _, want := range candidates {
		for i := range r.Assets {
			if r.Assets[i].Name == want {
				return &r.Assets[i], nil
			}
		}
	}

	return nil, fmt.Errorf("release %s has no asset %q for platform %s", r.TagName, candidates[0], info.Key())
}
