package smsbackup

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	enc "github.com/pndiaye/xaalis/internal/encoding"
	"github.com/pndiaye/xaalis/internal/engine"
)

// Parser reads CSV dumps produced by SMS and notification backup apps and
// turns each row into a raw notification. It auto-detects which export
// format is being used by matching column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]engine.RawNotification, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching backup format found: expected columns for a notification or sms export")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:]), nil
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts raw notifications from data rows using the matched profile.
// Rows with an unparseable timestamp or an empty body are skipped.
func parseRows(p *Profile, cols colIndex, rows [][]string) []engine.RawNotification {
	titleIdx := cols[p.TitleCol]
	bodyIdx := cols[p.BodyCol]
	timeIdx := cols[p.TimeCol]

	senderIdx := -1
	if p.SenderCol != "" {
		senderIdx = cols[p.SenderCol]
	}

	var notifs []engine.RawNotification

	for _, row := range rows {
		receivedAt, ok := parseTimestamp(cellValue(row, timeIdx))
		if !ok {
			continue
		}

		body := cellValue(row, bodyIdx)
		if body == "" {
			continue
		}

		senderID := engine.SenderMessages
		if senderIdx >= 0 {
			senderID = cellValue(row, senderIdx)
		}

		notifs = append(notifs, engine.RawNotification{
			SenderID:   senderID,
			Title:      cellValue(row, titleIdx),
			Body:       body,
			ReceivedAt: receivedAt,
		})
	}

	return notifs
}

// parseTimestamp accepts epoch milliseconds or a "2006-01-02 15:04:05" wall time.
// Returns false for empty cells or unparseable values (footer rows, etc).
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if millis, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), true
	}

	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return time.Time{}, false
	}

	return t.UTC(), true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
