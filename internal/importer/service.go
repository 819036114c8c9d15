package importer

import (
	"fmt"
	"io"

	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/importer/smsbackup"
)

type Service struct {
	csvParser Parser
}

func NewService() *Service {
	return &Service{
		csvParser: smsbackup.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]engine.RawNotification, error) {
	var parser Parser

	switch format {
	case FormatCSV:
		parser = s.csvParser
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return parser.Parse(r)
}
