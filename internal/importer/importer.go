package importer

import (
	"io"

	"github.com/pndiaye/xaalis/internal/engine"
)

// Format names a supported backup dump format.
type Format string

const (
	FormatCSV Format = "csv"
)

// Parser reads a backup dump and produces raw notifications ready for
// the extraction pipeline.
type Parser interface {
	Parse(r io.Reader) ([]engine.RawNotification, error)
}
