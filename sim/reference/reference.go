// Package reference loads page reference sequences.
package reference

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ErrOpen is returned when the reference source cannot be opened.
var ErrOpen = errors.New("failed to open the file")

// Load reads the reference sequence stored at path on fs.
func Load(fs afero.Fs, path string) ([]int, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	defer func() { _ = f.Close() }()

	refs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	logrus.Debugf("Loaded %d page references from %s", len(refs), path)
	return refs, nil
}

// Parse reads whitespace-separated integers from r in order. Parsing stops
// at the first token that is not an integer; a token with a leading integer
// (e.g. "12abc") contributes that integer and then ends the sequence.
// An input with no integers yields an empty, non-nil slice.
func Parse(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	refs := make([]int, 0)
	for sc.Scan() {
		tok := sc.Text()
		n := integerPrefix(tok)
		if n == 0 {
			break
		}
		v, err := strconv.Atoi(tok[:n])
		if err != nil {
			// out of int range
			break
		}
		refs = append(refs, v)
		if n < len(tok) {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

// integerPrefix returns the length of the optionally signed decimal integer
// at the start of tok, or 0 if there is none.
func integerPrefix(tok string) int {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	start := i
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	return i
}
