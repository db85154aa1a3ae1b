package binary

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extractor locates the single executable payload in a downloaded asset.
//
// Bee release assets are raw binaries, but the extractor also handles
// tar.gz and zip archives so that mirrors repackaging the binary still
// install. An archive must contain exactly one candidate executable:
// a regular file with an executable mode bit (tar) or a .exe suffix (zip).
type Extractor struct{}

// NewExtractor creates a new extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the path of the executable payload from assetPath,
// writing extracted files under workDir. Raw binaries are returned as-is.
func (e *Extractor) Extract(assetPath, workDir string) (string, error) {
	name := strings.ToLower(filepath.Base(assetPath))

	switch {
	case strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz"):
		return e.extractTarGz(assetPath, workDir)
	case strings.HasSuffix(name, ".zip"):
		return e.extractZip(assetPath, workDir)
	default:
		// Raw binary asset, nothing to decompress
		return assetPath, nil
	}
}

func (e *Extractor) extractTarGz(archivePath, workDir string) (string, error) {
	archiveFile, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer archiveFile.Close()

	gzipReader, err := gzip.NewReader(archiveFile)
	if err != nil {
		return "", fmt.Errorf("create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)

	var extracted string
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read tar header: %w", err)
		}

		if header.Typeflag != tar.TypeReg {
			continue
		}
		if os.FileMode(header.Mode).Perm()&0111 == 0 {
			continue
		}

		if extracted != "" {
			return "", fmt.Errorf("archive contains more than one executable")
		}

		target := filepath.Join(workDir, filepath.Base(header.Name))
		// Base() above strips any path components, so traversal names
		// cannot escape workDir
		if err := writeFile(tarReader, target, 0755); err != nil {
			return "", err
		}
		extracted = target
	}

	if extracted == "" {
		return "", fmt.Errorf("no executable found in archive")
	}
	return extracted, nil
}

func (e *Extractor) extractZip(archivePath, workDir string) (string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer reader.Close()

	var extracted string
	for _, f := range reader.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(f.Name), ".exe") {
			continue
		}

		if extracted != "" {
			return "", fmt.Errorf("archive contains more than one executable")
		}

		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open file in zip: %w", err)
		}

		target := filepath.Join(workDir, filepath.Base(f.Name))
		err = writeFile(rc, target, 0755)
		rc.Close()
		if err != nil {
			return "", err
		}
		extracted = target
	}

	if extracted == "" {
		return "", fmt.Errorf("no executable found in archive")
	}
	return extracted, nil
}

// writeFile writes src to target with the given permissions.
func writeFile(src io.Reader, target string, mode os.FileMode) error {
	outFile, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create file %s: %w", target, err)
	}

	if _, err := io.Copy(outFile, src); err != nil {
		outFile.Close()
		return fmt.Errorf("write file %s: %w", target, err)
	}

	return outFile.Close()
}
