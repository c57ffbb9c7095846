package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/noah-isme/sigue-client/pkg/storage"
)

// Format is an export file format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case string(FormatCSV):
		return FormatCSV, nil
	case string(FormatPDF):
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use .csv or .pdf)", filepath.Ext(path))
	}
}

// Render encodes the dataset in the given format.
func Render(format Format, data Dataset, title string) ([]byte, error) {
	switch format {
	case FormatCSV:
		return NewCSVExporter().Render(data)
	case FormatPDF:
		return NewPDFExporter().Render(data, title)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// Save renders the dataset in the format implied by name and stores it,
// returning the path written.
func Save(store *storage.LocalStorage, name string, data Dataset, title string) (string, error) {
	format, err := FormatOf(name)
	if err != nil {
		return "", err
	}
	payload, err := Render(format, data, title)
	if err != nil {
		return "", err
	}
	return store.Save(name, payload)
}
