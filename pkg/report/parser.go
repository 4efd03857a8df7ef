package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser reassembles reports from a stream of console lines.
// Lines that are not part of a report are ignored.
type Parser struct {
	pending Report
	next    int // index of the expected report line, 0 when idle
}

// Feed consumes one line. It returns the completed report and true when line
// was the last line of a report. A report line out of sequence or with an
// invalid value returns an error and discards the partial report.
func (p *Parser) Feed(line string) (Report, bool, error) {
	line = strings.TrimSpace(line)

	idx, value := classify(line)
	if idx < 0 {
		return Report{}, false, nil
	}

	if idx == 0 {
		// a voltage line always starts a new report
		p.reset()
	} else if idx != p.next {
		expected := p.next
		p.reset()
		return Report{}, false, fmt.Errorf("unexpected report line %q (expected line %d, got %d)", line, expected, idx)
	}

	if err := p.set(idx, value); err != nil {
		p.reset()
		return Report{}, false, err
	}

	if idx == 3 {
		r := p.pending
		p.reset()
		return r, true, nil
	}
	p.next = idx + 1
	return Report{}, false, nil
}

func (p *Parser) set(idx int, value string) error {
	var err error
	switch idx {
	case 0:
		var v float64
		v, err = strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf("invalid voltage: %w", err)
		}
		p.pending.Voltage = float32(v)
	case 1:
		p.pending.High, err = parseHex("high reading", value)
	case 2:
		p.pending.Low, err = parseHex("low reading", value)
	case 3:
		p.pending.Average, err = parseHex("average", value)
	}
	return err
}

func (p *Parser) reset() {
	p.pending = Report{}
	p.next = 0
}

var prefixes = [...]string{VoltagePrefix, HighPrefix, LowPrefix, AveragePrefix}

// classify returns the report line index and the value text, or -1.
func classify(line string) (int, string) {
	for i, prefix := range prefixes {
		if v, ok := strings.CutPrefix(line, prefix); ok {
			return i, strings.TrimSpace(v)
		}
	}
	return -1, ""
}
