package countrynames_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/andreiashu/countrynames"
)

var sample = countrynames.Lookup{
	4:   "Afghanistan",
	250: "France",
	276: "Germany",
	384: "Côte d'Ivoire",
	840: "United States of America",
	-99: "Somaliland",
}

func TestLookup_Name(t *testing.T) {
	if got, ok := sample.Name(250); !ok || got != "France" {
		t.Errorf("Name(250) = %q, %v; want France, true", got, ok)
	}
	if got, ok := sample.Name(1); ok || got != "" {
		t.Errorf("Name(1) = %q, %v; want \"\", false", got, ok)
	}
}

func TestLookup_Codes(t *testing.T) {
	want := []int{-99, 4, 250, 276, 384, 840}
	if got := sample.Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
	if got := (countrynames.Lookup{}).Codes(); len(got) != 0 {
		t.Errorf("empty Codes() = %v, want empty", got)
	}
}

func TestLookup_CodeByName(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		maxDist int
		want    int
		wantOK  bool
	}{
		{"exact", "France", 0, 250, true},
		{"case insensitive", "united states of america", 0, 840, true},
		{"trimmed", "  germany ", 0, 276, true},
		{"unicode", "CÔTE D'IVOIRE", 0, 384, true},
		{"typo without fuzzy", "Germny", 0, 0, false},
		{"typo with fuzzy", "Germny", 1, 276, true},
		{"two typos within distance", "Afganistn", 2, 4, true},
		{"too far", "Somalia", 1, 0, false},
		{"distance is capped", "Fr", 10, 0, false},
		{"empty query", "", 2, 0, false},
		{"blank query", "   ", 2, 0, false},
		{"oversized query", strings.Repeat("a", 300), 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sample.CodeByName(tt.query, tt.maxDist)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CodeByName(%q, %d) = %d, %v; want %d, %v",
					tt.query, tt.maxDist, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLookup_CodeByNameTiesGoToLowestCode(t *testing.T) {
	l := countrynames.Lookup{
		20: "Bbc",
		10: "Abd",
	}
	// "Abc" is one edit from both names.
	if got, ok := l.CodeByName("Abc", 1); !ok || got != 10 {
		t.Errorf("CodeByName(Abc) = %d, %v; want 10, true", got, ok)
	}
}

func TestLookup_MarshalIndent(t *testing.T) {
	l := countrynames.Lookup{
		840: "United States of America",
		70:  "Bosnia & Herzegovina",
		-99: "Somaliland",
	}
	want := "{\n" +
		"  \"-99\": \"Somaliland\",\n" +
		"  \"70\": \"Bosnia & Herzegovina\",\n" +
		"  \"840\": \"United States of America\"\n" +
		"}"

	got, err := l.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	if string(got) != want {
		t.Errorf("MarshalIndent() = %q, want %q", got, want)
	}
}

func TestUnmarshalLookup(t *testing.T) {
	l, err := countrynames.UnmarshalLookup([]byte(`{"840": "United States of America", "-99": "Somaliland"}`))
	if err != nil {
		t.Fatalf("UnmarshalLookup() error = %v", err)
	}
	want := countrynames.Lookup{840: "United States of America", -99: "Somaliland"}
	if !reflect.DeepEqual(l, want) {
		t.Errorf("UnmarshalLookup() = %v, want %v", l, want)
	}

	if _, err := countrynames.UnmarshalLookup([]byte(`{"USA": "United States of America"}`)); err == nil {
		t.Error("UnmarshalLookup() with non-integer key: error = nil, want error")
	}
	if _, err := countrynames.UnmarshalLookup([]byte(`{"840": `)); err == nil {
		t.Error("UnmarshalLookup() with truncated input: error = nil, want error")
	}
}

func TestWriteThenReadLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "country_names_by_id.json")

	if err := countrynames.WriteLookup(path, sample); err != nil {
		t.Fatalf("WriteLookup() error = %v", err)
	}
	got, err := countrynames.ReadLookup(path)
	if err != nil {
		t.Fatalf("ReadLookup() error = %v", err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Errorf("ReadLookup() = %v, want %v", got, sample)
	}
}

func TestReadLookup_Missing(t *testing.T) {
	_, err := countrynames.ReadLookup(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadLookup() error = %v, want not-exist", err)
	}
}
