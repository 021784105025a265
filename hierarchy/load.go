// Package hierarchy: persistence of mappings and the ranked node list.
package hierarchy

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

var (
	// ErrOpenInput indicates an input file could not be opened or read.
	ErrOpenInput = errors.New("hierarchy: cannot open input")

	// ErrDecodeMapping indicates the mapping file is not a JSON object
	// mapping node identifiers to arrays of node identifiers.
	ErrDecodeMapping = errors.New("hierarchy: malformed mapping file")

	// ErrDecodeRanking indicates the ranking file is not a JSON object
	// mapping node identifiers to numeric counts.
	ErrDecodeRanking = errors.New("hierarchy: malformed ranking file")
)

// Ranked pairs a node identifier with its observed frequency.
type Ranked struct {
	Node  string
	Count int64
}

// LoadMapping reads a JSON file of the form {"child": ["parent", ...], ...}
// into a Mapping. The whole file is decoded at once: mapping files are large
// but bounded, and the result lives for the entire run anyway.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenInput, path, err)
	}
	var m Mapping
	if err = sonic.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeMapping, path, err)
	}
	return m, nil
}

// SaveMapping writes m to path as a JSON object. Used by the standalone
// inversion command so a derived parent→children mapping can be persisted.
func SaveMapping(path string, m Mapping) error {
	data, err := sonic.Marshal(m)
	if err != nil {
		return fmt.Errorf("hierarchy: encode mapping: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("hierarchy: write %s: %w", path, err)
	}
	return nil
}

// LoadRanking reads a JSON file of the form {"node": count, ...} and returns
// the entries in file order. Rank order is the file order: the producer of
// the counts file sorts it, and top-N selection trusts that order, so the
// parse must preserve it. That rules out decoding into a Go map; instead the
// object is walked token by token.
func LoadRanking(path string) ([]Ranked, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenInput, path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(bufio.NewReader(f))

	// 1. The file must be a single JSON object.
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeRanking, path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: %s: top-level value is not an object", ErrDecodeRanking, path)
	}

	// 2. Walk key/value pairs in file order.
	var out []Ranked
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecodeRanking, path, err)
		}
		node, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s: non-string key", ErrDecodeRanking, path)
		}
		// Counts are usually integers but any JSON number is accepted;
		// fractional counts truncate.
		var raw json.Number
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %s: count for %q: %v", ErrDecodeRanking, path, node, err)
		}
		count, cerr := raw.Int64()
		if cerr != nil {
			fv, ferr := raw.Float64()
			if ferr != nil {
				return nil, fmt.Errorf("%w: %s: count for %q: %v", ErrDecodeRanking, path, node, ferr)
			}
			count = int64(fv)
		}
		out = append(out, Ranked{Node: node, Count: count})
	}

	// 3. Consume the closing brace so trailing garbage is rejected.
	if _, err = dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeRanking, path, err)
	}

	return out, nil
}
