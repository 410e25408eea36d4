// Package pairs reads a session's bipolar contact-pair table and the
// optional localization document, and derives the best available region
// label for every pair.
//
// Table format: a header row followed by one row per pair, tab- or
// comma-separated (detected from the header). The "label" column is
// required; any of stein.region, das.region, mni.region and ind.region may
// be present. Lines starting with '#' are comments.
//
//	label	stein.region	das.region	mni.region
//	LA1-LA2	Left CA1		Left Hippocampus
//	LB3-LB4	nan	Left amygdala	Left Amygdala
package pairs

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/locatorkit/internal/mmfile"
	"github.com/joshuapare/locatorkit/pkg/types"
)

// Encoding selects how table bytes are decoded.
type Encoding int

const (
	// EncodingUTF8 decodes UTF-8, dropping a leading byte-order mark.
	EncodingUTF8 Encoding = iota
	// EncodingWindows1252 decodes Latin-1 exports from older tooling.
	EncodingWindows1252
)

func (e Encoding) String() string {
	if e == EncodingWindows1252 {
		return "windows-1252"
	}
	return "utf-8"
}

// ParseEncoding accepts "utf-8"/"utf8", "windows-1252"/"cp1252"/"latin1";
// the empty string means UTF-8.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "windows-1252", "cp1252", "latin1", "latin-1":
		return EncodingWindows1252, nil
	}
	return EncodingUTF8, fmt.Errorf("encoding %q: %w", s, types.ErrFormat)
}

// Options controls table parsing.
type Options struct {
	Encoding Encoding
}

// Pair is one row of the table.
type Pair struct {
	Label   string            // pair label, e.g. "LA1-LA2"
	Regions map[string]string // source column -> raw region text
}

// Table is a parsed pairs table.
type Table struct {
	Columns []string // normalized header names, in file order
	Pairs   []Pair
}

// Parse reads a pairs table from r.
func Parse(r io.Reader, opts Options) (*Table, error) {
	var dec transform.Transformer = xunicode.UTF8BOM.NewDecoder()
	if opts.Encoding == EncodingWindows1252 {
		dec = charmap.Windows1252.NewDecoder()
	}
	br := bufio.NewReaderSize(transform.NewReader(r, dec), MaxHeaderLineSize)

	header, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	delim := ','
	if strings.ContainsRune(header, '\t') {
		delim = '\t'
	}

	cr := csv.NewReader(io.MultiReader(strings.NewReader(header), br))
	cr.Comma = delim
	cr.Comment = CommentPrefix
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	head, err := cr.Read()
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "pairs: header", Err: err}
	}
	cols := make([]string, len(head))
	labelCol := -1
	for i, h := range head {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
		if cols[i] == ColumnLabel && labelCol < 0 {
			labelCol = i
		}
	}
	if labelCol < 0 {
		return nil, fmt.Errorf("pairs: column %q: %w", ColumnLabel, types.ErrNotFound)
	}
	cr.FieldsPerRecord = len(cols)

	sources := make(map[int]string)
	for i, c := range cols {
		for _, src := range RegionSources {
			if c == src {
				sources[i] = src
			}
		}
	}

	t := &Table{Columns: cols}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "pairs: row", Err: err}
		}
		p := Pair{
			Label:   strings.TrimSpace(rec[labelCol]),
			Regions: make(map[string]string, len(sources)),
		}
		for i, src := range sources {
			p.Regions[src] = rec[i]
		}
		t.Pairs = append(t.Pairs, p)
	}
	return t, nil
}

// readHeaderLine returns the first non-blank, non-comment line including its
// newline.
func readHeaderLine(br *bufio.Reader) (string, error) {
	for {
		line, err := br.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && trimmed[0] != CommentPrefix {
			return line, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("pairs: header row: %w", types.ErrNotFound)
			}
			return "", fmt.Errorf("pairs: reading header: %w", err)
		}
	}
}

// Open memory-maps path and parses it.
func Open(path string, opts Options) (*Table, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	t, err := Parse(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// PairLabels returns the raw pair labels in table order.
func (t *Table) PairLabels() []string {
	out := make([]string, len(t.Pairs))
	for i, p := range t.Pairs {
		out[i] = p.Label
	}
	return out
}

// HasColumn reports whether the header contained name.
func (t *Table) HasColumn(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
