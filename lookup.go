package countrynames

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	jsoniter "github.com/json-iterator/go"
)

// Lookup maps numeric ISO 3166-1 country codes to display names.
type Lookup map[int]string

// json renders the table the way the frontend expects: keys sorted by their
// string form, non-ASCII and HTML characters left as-is.
var json = jsoniter.Config{
	SortMapKeys: true,
	EscapeHTML:  false,
}.Froze()

// maxFuzzyDistance caps the edit distance accepted by CodeByName.
const maxFuzzyDistance = 3

// maxQueryLen bounds Levenshtein work for user supplied queries.
const maxQueryLen = 256

// Name returns the display name for code.
func (l Lookup) Name(code int) (string, bool) {
	name, ok := l[code]
	return name, ok
}

// Codes returns all codes in ascending order.
func (l Lookup) Codes() []int {
	codes := make([]int, 0, len(l))
	for c := range l {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

// CodeByName resolves a display name back to its code.
//
// Matching is case-insensitive and ignores surrounding whitespace. If no name
// matches exactly and maxDist > 0, the closest name within maxDist edits is
// returned; ties go to the lowest code.
func (l Lookup) CodeByName(query string, maxDist int) (int, bool) {
	q := strings.TrimSpace(query)
	if q == "" || len(q) > maxQueryLen {
		return 0, false
	}

	codes := l.Codes()
	for _, c := range codes {
		if strings.EqualFold(l[c], q) {
			return c, true
		}
	}

	maxDist = min(maxDist, maxFuzzyDistance)
	if maxDist <= 0 {
		return 0, false
	}

	lq := strings.ToLower(q)
	best, bestDist := 0, maxDist+1
	for _, c := range codes {
		d := levenshtein.ComputeDistance(lq, strings.ToLower(l[c]))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > maxDist {
		return 0, false
	}
	return best, true
}

// MarshalIndent encodes the table as a JSON object with decimal string keys
// and two-space indentation.
func (l Lookup) MarshalIndent() ([]byte, error) {
	if len(l) == 0 {
		return []byte("{}"), nil
	}
	out := make(map[string]string, len(l))
	for code, name := range l {
		out[strconv.Itoa(code)] = name
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalLookup decodes a table previously written by MarshalIndent.
// Every key must be a decimal integer.
func UnmarshalLookup(data []byte) (Lookup, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding lookup: %w", err)
	}
	l := make(Lookup, len(raw))
	for k, name := range raw {
		code, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("decoding lookup: key %q is not an integer", k)
		}
		l[code] = name
	}
	return l, nil
}
