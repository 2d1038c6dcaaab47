package countrynames

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Property keys read from each feature of the Natural Earth style collection.
const (
	propCode  = "ISO_N3"
	propAdmin = "ADMIN"
	propName  = "name"
)

// Structural errors. Any of these aborts the whole build; an unparseable
// country code on an otherwise well-formed feature does not.
var (
	ErrInvalidDocument   = errors.New("input is not valid JSON")
	ErrMissingFeatures   = errors.New("features array not found")
	ErrMalformedFeature  = errors.New("feature is not an object")
	ErrMissingProperties = errors.New("feature has no properties object")
	ErrMissingName       = errors.New("feature has neither ADMIN nor name")
)

// Report summarizes a single Build pass.
type Report struct {
	Features    int // Features seen in the collection
	Entries     int // Distinct codes in the resulting table
	Skipped     int // Features dropped because ISO_N3 was not an integer
	Overwritten int // Features that replaced a name for an already-seen code
}

// Build reads a GeoJSON feature collection and returns the code to name table.
//
// Features are processed in document order. A feature whose ISO_N3 cannot be
// read as an integer is skipped and counted in Report.Skipped. When two
// features share a code the later one wins.
func Build(doc []byte) (Lookup, Report, error) {
	var rep Report
	if !gjson.ValidBytes(doc) {
		return nil, rep, ErrInvalidDocument
	}
	features := gjson.GetBytes(doc, "features")
	if !features.IsArray() {
		return nil, rep, ErrMissingFeatures
	}

	lookup := make(Lookup)
	var err error
	features.ForEach(func(_, feature gjson.Result) bool {
		idx := rep.Features
		rep.Features++

		if !feature.IsObject() {
			err = fmt.Errorf("feature %d: %w", idx, ErrMalformedFeature)
			return false
		}
		props := feature.Get("properties")
		if !props.IsObject() {
			err = fmt.Errorf("feature %d: %w", idx, ErrMissingProperties)
			return false
		}

		code, ok := parseCode(props.Get(propCode))
		if !ok {
			rep.Skipped++
			return true
		}

		name, ok := resolveName(props)
		if !ok {
			err = fmt.Errorf("feature %d (%s %d): %w", idx, propCode, code, ErrMissingName)
			return false
		}

		if _, seen := lookup[code]; seen {
			rep.Overwritten++
		}
		lookup[code] = name
		return true
	})
	if err != nil {
		return nil, rep, err
	}

	rep.Entries = len(lookup)
	return lookup, rep, nil
}

// parseCode converts an ISO_N3 value to an integer.
//
// Numbers are truncated toward zero. Strings may carry surrounding whitespace
// and a sign but must otherwise be base-10 digits. Null, booleans, objects,
// arrays and absent values never parse.
func parseCode(v gjson.Result) (int, bool) {
	switch v.Type {
	case gjson.Number:
		if i, err := strconv.Atoi(v.Raw); err == nil {
			return i, true
		}
		f := math.Trunc(v.Num)
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int(f), true
	case gjson.String:
		i, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// resolveName prefers ADMIN when it is a non-empty string and falls back to
// name otherwise.
func resolveName(props gjson.Result) (string, bool) {
	if admin := props.Get(propAdmin); admin.Type == gjson.String && admin.Str != "" {
		return admin.Str, true
	}
	if name := props.Get(propName); name.Type == gjson.String && name.Str != "" {
		return name.Str, true
	}
	return "", false
}
