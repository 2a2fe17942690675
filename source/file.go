package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/hostelmatch/types"
)

// FromPath returns a file source chosen by extension: .csv and .tsv use CSV,
// .xlsx, .xlsm and .xltx use XLSX.
//
// Returns:
//   - types.RosterSource: File source
//   - error: Unsupported extension
func FromPath(path string) (types.RosterSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVFile(path), nil
	case ".tsv":
		return NewCSVFile(path, WithComma('\t')), nil
	case ".xlsx", ".xlsm", ".xltx":
		return NewXLSXFile(path), nil
	default:
		return nil, fmt.Errorf("unsupported roster file type %q", filepath.Ext(path))
	}
}
