package pipeline

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

const manifestSuffix = ".json"

// Unpack returns the content of the first JSON entry of the zip archive at path.
// The archive itself is left in place.
func Unpack(path string) (_ string, err error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open archive %q: %w", path, err)
	}
	defer func() { err = errors.Join(err, zr.Close()) }()

	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, manifestSuffix) {
			continue
		}

		return readEntry(f)
	}

	return "", domain.ErrMissingManifest
}

func readEntry(f *zip.File) (_ string, err error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open entry %q: %w", f.Name, err)
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read entry %q: %w", f.Name, err)
	}

	return string(data), nil
}
