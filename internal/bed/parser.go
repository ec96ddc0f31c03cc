// Package bed provides BED3 peak file parsing.
package bed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/inodb/vibe-peaks/internal/interval"
)

// Parser reads peaks from a BED3 file. Coordinates are 0-based half-open,
// matching the engine's interval convention, so no conversion happens here.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// NewParser creates a new BED parser for the given file.
// Supports both plain and gzipped (.bed.gz) files. Use "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bed file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read bed file: %w", err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek bed file: %w", err)
	}

	// Gzip magic number (0x1f, 0x8b)
	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReader(r),
	}
}

// Next reads the next peak from the file. Returns nil, nil when there are no
// more peaks. Blank lines, comments, track/browser lines, rows with fewer
// than three columns, unparseable coordinates, and rows with end <= start
// are silently skipped: the engine assumes it never sees malformed
// intervals, so the filtering happens here.
func (p *Parser) Next() (*interval.GenomicInterval, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &ParseError{
				Line:    p.lineNumber + 1,
				Message: fmt.Sprintf("read failed: %v", err),
			}
		}
		atEOF := err == io.EOF
		p.lineNumber++

		line = strings.TrimSpace(line)
		if peak := parseLine(line); peak != nil {
			return peak, nil
		}

		if atEOF {
			return nil, nil
		}
	}
}

// parseLine parses a single BED3 row, returning nil for rows to skip.
func parseLine(line string) *interval.GenomicInterval {
	if line == "" ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "track") ||
		strings.HasPrefix(line, "browser") {
		return nil
	}

	cols := strings.Fields(line)
	if len(cols) < 3 {
		return nil
	}

	start, err := strconv.ParseInt(cols[1], 10, 64)
	if err != nil {
		return nil
	}
	end, err := strconv.ParseInt(cols[2], 10, 64)
	if err != nil {
		return nil
	}
	if end <= start {
		return nil
	}

	return &interval.GenomicInterval{Chrom: cols[0], Start: start, End: end}
}

// ReadAll reads every remaining peak from the parser.
func (p *Parser) ReadAll() ([]interval.GenomicInterval, error) {
	var peaks []interval.GenomicInterval
	for {
		peak, err := p.Next()
		if err != nil {
			return nil, err
		}
		if peak == nil {
			return peaks, nil
		}
		peaks = append(peaks, *peak)
	}
}

// ReadFile reads all peaks from a BED3 file.
func ReadFile(path string) ([]interval.GenomicInterval, error) {
	p, err := NewParser(path)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	return p.ReadAll()
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// ParseError represents an error during BED parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bed parse error at line %d: %s", e.Line, e.Message)
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
