package gallery

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DownloadFile streams the bytes at url into a newly created file at
// destPath, overwriting any existing file. A partially written file is left
// behind on failure; there is no resumption and no integrity check.
func (c *Client) DownloadFile(url, destPath string) (string, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("invalid status code: %d", resp.StatusCode)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return destPath, nil
}

// VsixFileName is the on-disk naming convention for downloaded packages.
func VsixFileName(publisher, name, version string) string {
	return fmt.Sprintf("%s.%s-%s.vsix", publisher, name, version)
}

// DownloadExtensionVsix downloads the latest VSIX package of an extension
// into outputDir (current directory when empty) and returns the written
// path. The version is resolved once; its string names the file and its file
// list yields the download URL.
func (c *Client) DownloadExtensionVsix(publisher, name, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = "."
	}

	latest, err := c.GetExtensionVersion(publisher, name, "")
	if err != nil {
		return "", err
	}

	url, err := vsixURL(latest, publisher, name)
	if err != nil {
		return "", err
	}

	destPath := filepath.Join(outputDir, VsixFileName(publisher, name, latest.Version))
	return c.DownloadFile(url, destPath)
}
