// Package update implements self-update against the GitHub releases feed.
package update

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/create-zk-app/cza/internal/errors"
	"github.com/create-zk-app/cza/internal/output"
)

// DefaultReleasesURL is the latest-release endpoint for cza.
const DefaultReleasesURL = "https://api.github.com/repos/create-zk-app/cza/releases/latest"

// binaryName is the executable name inside release archives.
const binaryName = "cza"

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Release is the subset of the GitHub release JSON the updater needs.
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// Checker queries the releases feed and applies upgrades.
type Checker struct {
	// URL is the latest-release endpoint.
	URL string

	// Client is the HTTP client used for feed and asset requests.
	Client *http.Client
}

// NewChecker creates a Checker against the default releases feed.
func NewChecker() *Checker {
	return &Checker{
		URL:    DefaultReleasesURL,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// LatestRelease fetches and decodes the latest release metadata.
func (c *Checker) LatestRelease(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release feed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			output.Warn("closing release response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release feed returned HTTP %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decoding release feed: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release feed has no tag name")
	}

	output.Debug("fetched release", "tag", release.TagName, "assets", len(release.Assets))
	return &release, nil
}

// IsNewer reports whether the latest tag is strictly newer than the
// running version. Development builds without a parseable version are
// always considered out of date.
func IsNewer(current, latest string) (bool, error) {
	latestVersion, err := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}

	currentVersion, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return true, nil
	}

	return latestVersion.GreaterThan(currentVersion), nil
}

// AssetFor picks the release asset matching the given platform.
func (r *Release) AssetFor(goos, goarch string) (Asset, bool) {
	for _, asset := range r.Assets {
		name := strings.ToLower(asset.Name)
		if strings.Contains(name, goos) && strings.Contains(name, goarch) {
			return asset, true
		}
	}
	return Asset{}, false
}

// Upgrade downloads the platform asset of the release and replaces the
// running executable.
func (c *Checker) Upgrade(ctx context.Context, release *Release) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating current executable: %w", err)
	}
	return c.upgradeTo(ctx, release, exe)
}

func (c *Checker) upgradeTo(ctx context.Context, release *Release, target string) error {
	asset, ok := release.AssetFor(runtime.GOOS, runtime.GOARCH)
	if !ok {
		return &oerrors.DetailError{
			Type:    "update failed",
			Message: fmt.Sprintf("release %s has no asset for %s/%s", release.TagName, runtime.GOOS, runtime.GOARCH),
			Hint:    "Download the release manually from the project page.",
		}
	}

	workDir, err := os.MkdirTemp("", "cza-update-*")
	if err != nil {
		return fmt.Errorf("creating download directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(workDir)
	}()

	binary, err := c.download(ctx, asset, workDir)
	if err != nil {
		return err
	}

	// Stage next to the target so the final rename stays on one
	// filesystem and is atomic.
	staged := target + ".new"
	if err := copyFile(binary, staged, 0o755); err != nil {
		return fmt.Errorf("staging new binary: %w", err)
	}
	if err := os.Rename(staged, target); err != nil {
		_ = os.Remove(staged)
		return fmt.Errorf("replacing %s: %w", target, err)
	}

	output.Debug("binary replaced", "target", target, "tag", release.TagName)
	return nil
}

// download fetches the asset into dir and returns the path of the
// contained binary, extracting tar.gz archives as needed.
func (c *Checker) download(ctx context.Context, asset Asset, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.BrowserDownloadURL, nil)
	if err != nil {
		return "", fmt.Errorf("building download request: %w", err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", asset.Name, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading %s: HTTP %d", asset.Name, resp.StatusCode)
	}

	name := strings.ToLower(asset.Name)
	if strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz") {
		return extractBinary(resp.Body, dir)
	}

	// A bare binary asset.
	path := filepath.Join(dir, binaryName)
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, out.Close()
}

// extractBinary pulls the cza executable out of a gzipped tarball.
func extractBinary(r io.Reader, dir string) (string, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return "", fmt.Errorf("reading archive: %w", err)
	}
	defer func() {
		_ = gz.Close()
	}()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || filepath.Base(hdr.Name) != binaryName {
			continue
		}

		path := filepath.Join(dir, binaryName)
		out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(out, tr); err != nil {
			_ = out.Close()
			return "", fmt.Errorf("extracting %s: %w", hdr.Name, err)
		}
		return path, out.Close()
	}

	return "", fmt.Errorf("archive does not contain a %q binary", binaryName)
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
