package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one raw data line split on tabs, not yet validated. Line is
// the 1-based line number in the source, header included in the count.
type Record struct {
	Line   int
	Fields []string
}

const maxLineBytes = 1024 * 1024

// ReadAll consumes a UTF-8 tab-separated stream, skips the single
// header line and returns the remaining lines as records. Field-count
// validation is left to the mapper so that bad rows can be rejected
// with their line number instead of aborting the read. Blank lines are
// dropped.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var recs []Record
	line := 0
	headerSeen := false
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		recs = append(recs, Record{Line: line, Fields: strings.Split(text, "\t")})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tsv: %w", err)
	}
	return recs, nil
}

// ReadFile opens path and reads it with ReadAll. Open and decode
// failures here are fatal to the run; they are the reader's to raise,
// not the mapper's.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tsv: %w", err)
	}
	defer f.Close()
	return ReadAll(f)
}
