package export

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportFailed      = errors.New("failed to export records")
)
