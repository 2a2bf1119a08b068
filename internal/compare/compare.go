// Package compare decides whether two files hold identical bytes.
//
// The answer is one of three Results. Unknown always comes with an error
// wrapping errors.ErrCompareFailed and must never be read as either Same
// or Different.
package compare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	verrors "github.com/PolarWolf314/veil/internal/errors"
)

// Result is the outcome of a comparison.
type Result int

const (
	// Unknown means the comparison could not be completed.
	Unknown Result = iota
	// Same means the files are byte-for-byte identical.
	Same
	// Different means the files differ in length or content.
	Different
)

func (r Result) String() string {
	switch r {
	case Same:
		return "same"
	case Different:
		return "different"
	default:
		return "unknown"
	}
}

const chunkSize = 32 * 1024

// Files compares the contents of the files at a and b.
func Files(a, b string) (Result, error) {
	fa, err := os.Open(a)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %w", verrors.ErrCompareFailed, err)
	}
	defer fa.Close()

	fb, err := os.Open(b)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %w", verrors.ErrCompareFailed, err)
	}
	defer fb.Close()

	result, err := Readers(fa, fb)
	if err != nil {
		return Unknown, fmt.Errorf("%w: comparing %s and %s: %w", verrors.ErrCompareFailed, a, b, err)
	}
	return result, nil
}

// Readers compares two streams until one differs or both end.
func Readers(ra, rb io.Reader) (Result, error) {
	bufA := make([]byte, chunkSize)
	bufB := make([]byte, chunkSize)

	for {
		na, errA := io.ReadFull(ra, bufA)
		if errA != nil && !isShortRead(errA) {
			return Unknown, errA
		}
		nb, errB := io.ReadFull(rb, bufB)
		if errB != nil && !isShortRead(errB) {
			return Unknown, errB
		}

		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return Different, nil
		}
		// Equal chunks shorter than the buffer mean both streams ended.
		if na < chunkSize {
			return Same, nil
		}
	}
}

func isShortRead(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
