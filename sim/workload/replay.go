package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/iosched-sim/iosched-sim/sim"
)

// ErrTraceUnavailable is returned when the trace source cannot be opened or read.
var ErrTraceUnavailable = errors.New("trace unavailable")

// fieldsPerRecord is the number of tokens in one "id timestamp type address size" record.
const fieldsPerRecord = 5

// Trace is the parsed prefix of a request trace.
type Trace struct {
	Requests []sim.Request
	// Truncated is set when parsing stopped at a malformed record.
	Truncated bool
	// StoppedAt is the 1-based index of the first record that failed to parse.
	StoppedAt int
	// Reason describes why parsing stopped early.
	Reason string
}

// LoadTrace opens and parses the trace file at path.
func LoadTrace(path string) (*Trace, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTraceUnavailable, err)
	}
	defer func() { _ = file.Close() }()
	return ParseTrace(file)
}

// ParseTrace reads whitespace-delimited records "id timestamp type address size".
// Records are read as a token stream, so line breaks carry no meaning.
// Parsing stops at the first record that does not conform; records before it are
// kept and everything after it is dropped. Only read failures are errors.
func ParseTrace(r io.Reader) (*Trace, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	trace := &Trace{}
	fields := make([]string, 0, fieldsPerRecord)
	for {
		fields = fields[:0]
		for len(fields) < fieldsPerRecord && scanner.Scan() {
			fields = append(fields, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: reading trace: %w", ErrTraceUnavailable, err)
		}
		if len(fields) == 0 {
			break
		}
		recordIdx := len(trace.Requests) + 1
		if len(fields) < fieldsPerRecord {
			trace.stop(recordIdx, fmt.Sprintf("incomplete record: %d of %d fields", len(fields), fieldsPerRecord))
			break
		}
		req, err := parseRecord(fields)
		if err != nil {
			trace.stop(recordIdx, err.Error())
			break
		}
		trace.Requests = append(trace.Requests, req)
	}
	return trace, nil
}

func (t *Trace) stop(recordIdx int, reason string) {
	t.Truncated = true
	t.StoppedAt = recordIdx
	t.Reason = reason
	logrus.Warnf("Trace parsing stopped at record %d (%s); keeping %d records", recordIdx, reason, len(t.Requests))
}

func parseRecord(fields []string) (sim.Request, error) {
	var nums [4]int64
	names := [4]string{"id", "timestamp", "address", "size"}
	raw := [4]string{fields[0], fields[1], fields[3], fields[4]}
	for i := range raw {
		v, err := strconv.ParseInt(raw[i], 10, 64)
		if err != nil {
			return sim.Request{}, fmt.Errorf("invalid %s %q", names[i], raw[i])
		}
		nums[i] = v
	}
	if nums[3] < 0 {
		return sim.Request{}, fmt.Errorf("negative size %d", nums[3])
	}
	return sim.NewRequest(nums[0], nums[1], sim.OpKind(fields[2]), nums[2], nums[3]), nil
}

// WriteTrace writes requests in the format ParseTrace reads, one record per line.
func WriteTrace(w io.Writer, requests []sim.Request) error {
	bw := bufio.NewWriter(w)
	for _, req := range requests {
		if _, err := fmt.Fprintf(bw, "%d %d %s %d %d\n", req.ID, req.ArrivalTime, req.Op, req.Address, req.Size); err != nil {
			return fmt.Errorf("writing request %d: %w", req.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing trace: %w", err)
	}
	return nil
}

// SaveTrace writes requests to the file at path, replacing it.
func SaveTrace(path string, requests []sim.Request) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	if err := WriteTrace(file, requests); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing trace file: %w", err)
	}
	logrus.Debugf("Successfully wrote %d requests to '%s'", len(requests), path)
	return nil
}
