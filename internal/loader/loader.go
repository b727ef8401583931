// Package loader reads process batches in the line format
// "pid,arrival_time,burst_time,priority".
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"schedsim/internal/core"
)

const fieldCount = 4

var fieldNames = [fieldCount]string{"pid", "arrival_time", "burst_time", "priority"}

// LoadFile opens path and loads its process batch.
func LoadFile(path string) ([]*core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Source: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadBatch(f, path)
}

// LoadBatch parses every line of r. Blank lines are skipped; any other line
// that is not four integers fails the load with a *FormatError.
func LoadBatch(r io.Reader, source string) ([]*core.Process, error) {
	var (
		processes = make([]*core.Process, 0)
		seen      = make(map[int]int)
		scanner   = bufio.NewScanner(r)
		lineNo    int
	)

	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		p, err := parseLine(text)
		if err != nil {
			return nil, &FormatError{Source: source, Line: lineNo, Text: text, Reason: err.Error()}
		}
		if first, ok := seen[p.Pid]; ok {
			return nil, &FormatError{Source: source, Line: lineNo, Text: text,
				Reason: fmt.Sprintf("duplicate pid %d, first defined on line %d", p.Pid, first)}
		}
		seen[p.Pid] = lineNo
		processes = append(processes, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, &SourceUnavailableError{Source: source, Err: err}
	}

	slog.Debug("process batch loaded", slog.String("source", source), slog.Int("processes", len(processes)))
	return processes, nil
}

func parseLine(text string) (*core.Process, error) {
	parts := strings.Split(text, ",")
	if len(parts) != fieldCount {
		return nil, fmt.Errorf("expected %d comma-separated fields, got %d", fieldCount, len(parts))
	}

	var values [fieldCount]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%s is not an integer: %q", fieldNames[i], strings.TrimSpace(part))
		}
		values[i] = v
	}

	p := core.NewProcess(values[0], values[1], values[2], values[3])
	if p.BurstTime <= 0 {
		return nil, errors.New("burst_time must be > 0")
	}
	if p.ArrivalTime < 0 {
		return nil, errors.New("arrival_time must be >= 0")
	}
	return p, nil
}
