package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Default sentinel markers delimiting the generated region of an existing
// markdown file.
const (
	DefaultBeginMarker = "<!-- yam:begin -->"
	DefaultEndMarker   = "<!-- yam:end -->"
)

// ErrMarkerNotFound indicates a sentinel marker is missing from the
// injection target, or the end marker precedes the begin marker.
var ErrMarkerNotFound = errors.New("sentinel marker not found")

// Inject replaces the region between the begin and end markers in target
// with the generated markdown, leaving the markers and the surrounding
// hand-written content untouched. Injection is idempotent: injecting the
// same markdown twice yields the same bytes.
func Inject(target []byte, generated, begin, end string) ([]byte, error) {
	if begin == "" {
		begin = DefaultBeginMarker
	}

	if end == "" {
		end = DefaultEndMarker
	}

	bi := bytes.Index(target, []byte(begin))
	if bi < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMarkerNotFound, begin)
	}

	rest := bi + len(begin)

	ei := bytes.Index(target[rest:], []byte(end))
	if ei < 0 {
		return nil, fmt.Errorf("%w: %s after %s", ErrMarkerNotFound, end, begin)
	}

	if !strings.HasSuffix(generated, "\n") {
		generated += "\n"
	}

	var out bytes.Buffer

	out.Write(target[:rest])
	out.WriteString("\n")
	out.WriteString(generated)
	out.Write(target[rest+ei:])

	return out.Bytes(), nil
}
