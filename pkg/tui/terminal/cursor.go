// ABOUTME: Cursor position query (CSI 6n) and parsing of the CSI row;col R report
// ABOUTME: Reads the reply byte by byte so no typed input past the report is consumed

package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mauromedda/promptline/internal/log"
	"github.com/mauromedda/promptline/pkg/tui/ansi"
)

// QueryCursor is the device status report request for the cursor position.
const QueryCursor = ansi.QueryCursor

const maxReportLen = 32

// ReadCursorReport reads a cursor position report from r. Bytes before the
// ESC that starts the report, such as keys typed while the query was in
// flight, are discarded and logged at debug level.
func ReadCursorReport(r io.Reader) (row, col int, err error) {
	var (
		buf       [1]byte
		resp      []byte
		discarded []byte
	)
	defer func() {
		if len(discarded) > 0 {
			log.Debug("terminal: discarded %d byte(s) before cursor report: %q", len(discarded), discarded)
		}
	}()
	for len(resp) < maxReportLen {
		n, err := r.Read(buf[:])
		if err != nil {
			return 0, 0, fmt.Errorf("reading cursor report: %w", err)
		}
		if n == 0 {
			continue
		}
		b := buf[0]
		if len(resp) == 0 && b != '\x1b' {
			discarded = append(discarded, b)
			continue
		}
		resp = append(resp, b)
		if b == 'R' {
			return ParseCursorReport(string(resp))
		}
	}
	return 0, 0, errors.New("cursor report too long")
}

// ParseCursorReport parses "ESC [ row ; col R".
func ParseCursorReport(s string) (row, col int, err error) {
	body, ok := strings.CutPrefix(s, "\x1b[")
	if !ok {
		return 0, 0, fmt.Errorf("cursor report %q: missing CSI", s)
	}
	body, ok = strings.CutSuffix(body, "R")
	if !ok {
		return 0, 0, fmt.Errorf("cursor report %q: missing final R", s)
	}
	rs, cs, ok := strings.Cut(body, ";")
	if !ok {
		return 0, 0, fmt.Errorf("cursor report %q: missing separator", s)
	}
	if row, err = strconv.Atoi(rs); err != nil {
		return 0, 0, fmt.Errorf("cursor report row: %w", err)
	}
	if col, err = strconv.Atoi(cs); err != nil {
		return 0, 0, fmt.Errorf("cursor report col: %w", err)
	}
	return row, col, nil
}
