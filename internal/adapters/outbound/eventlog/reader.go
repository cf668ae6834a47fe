package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/openkraft/plugval/internal/domain"
)

const maxLineBytes = 1 << 20

// Reader implements domain.EventSource for JSON-lines event logs. Blank
// lines and lines starting with '#' are skipped.
type Reader struct{}

// New creates a Reader.
func New() *Reader { return &Reader{} }

// Read parses every event in path. Any malformed or invalid line fails the
// whole read with its line number.
func (r *Reader) Read(path string) ([]domain.BuildEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []domain.BuildEvent
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ev, err := decodeEvent(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return events, nil
}

func decodeEvent(line string) (domain.BuildEvent, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.DisallowUnknownFields()

	var ev domain.BuildEvent
	if err := dec.Decode(&ev); err != nil {
		return domain.BuildEvent{}, fmt.Errorf("decoding event: %w", err)
	}
	if err := ev.Validate(); err != nil {
		return domain.BuildEvent{}, fmt.Errorf("invalid event: %w", err)
	}
	return ev, nil
}
