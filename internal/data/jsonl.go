// ABOUTME: JSONL row loading with zero-reflection decoding via easyjson's jlexer
// ABOUTME: Lines are decoded in parallel shards and stitched back in file order

package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/mailru/easyjson/jlexer"
	"golang.org/x/sync/errgroup"
)

// LoadJSONL reads a JSON-Lines file where every line is a flat object.
// Scalar values are coerced to strings; nested values keep their JSON form.
func LoadJSONL(path string) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := splitLines(raw)
	rows := make([]Row, len(lines))
	shards := runtime.GOMAXPROCS(0)
	if shards > len(lines) {
		shards = len(lines)
	}
	if shards < 1 {
		shards = 1
	}

	// Each shard decodes a contiguous slice of lines and records the column
	// keys it saw, in order. Decoding is the hot path for large files; the
	// jlexer tokenizer avoids reflection entirely.
	shardKeys := make([][]string, shards)
	var g errgroup.Group
	chunk := (len(lines) + shards - 1) / shards
	for s := 0; s < shards; s++ {
		s := s
		lo := s * chunk
		hi := lo + chunk
		if hi > len(lines) {
			hi = len(lines)
		}
		g.Go(func() error {
			var order []string
			seen := map[string]bool{}
			for i := lo; i < hi; i++ {
				row, keys, err := decodeLine(lines[i])
				if err != nil {
					return fmt.Errorf("%s line %d: %w", path, i+1, err)
				}
				rows[i] = row
				for _, k := range keys {
					if !seen[k] {
						seen[k] = true
						order = append(order, k)
					}
				}
			}
			shardKeys[s] = order
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	src := &Source{Name: filepath.Base(path)}
	for _, order := range shardKeys {
		src.Keys = mergeKeys(src.Keys, order)
	}
	// Drop blank lines without disturbing the order of the rest.
	for _, r := range rows {
		if r != nil {
			src.Rows = append(src.Rows, r)
		}
	}
	return src, nil
}

// decodeLine parses one JSONL object. Blank lines yield a nil row.
func decodeLine(line []byte) (Row, []string, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, nil, nil
	}

	l := jlexer.Lexer{Data: line}
	row := Row{}
	var keys []string
	l.Delim('{')
	for !l.IsDelim('}') {
		key := string(l.UnsafeFieldName(false))
		l.WantColon()
		val, err := scalarString(&l)
		if err != nil {
			return nil, nil, err
		}
		row[key] = val
		keys = append(keys, key)
		l.WantComma()
	}
	l.Delim('}')
	if err := l.Error(); err != nil {
		return nil, nil, fmt.Errorf("decoding object: %w", err)
	}
	return row, keys, nil
}

// scalarString reads the next JSON value and coerces it to a string.
// Composite values are kept as compact JSON.
func scalarString(l *jlexer.Lexer) (string, error) {
	v := l.Interface()
	if err := l.Error(); err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return normKey(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10), nil
		}
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// splitLines splits raw on newlines, tolerating a missing trailing newline.
func splitLines(raw []byte) [][]byte {
	lines := bytes.Split(raw, []byte{'\n'})
	if n := len(lines); n > 0 && len(bytes.TrimSpace(lines[n-1])) == 0 {
		lines = lines[:n-1]
	}
	return lines
}
