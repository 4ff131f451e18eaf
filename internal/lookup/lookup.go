// =============================================================================
// Library Inventory Cleaner - Lookup Documents
// =============================================================================
//
// This package loads the external lookup documents that drive category
// derivation. Each document is a JSON object mapping a bucket name (for
// example "Fiction") to the list of raw ItemCollection codes belonging to
// that bucket:
//
//   {
//     "Fiction":     ["FICBBA", "FICADV", ...],
//     "Non-Fiction": ["NFHIS", ...],
//     "Unknown":     ["XUNK"]
//   }
//
// The loaded Mapping is immutable after load: the code lists are materialized
// as sets for O(1) membership tests, and the caller-supplied bucket order is
// retained as the classification priority order. Classification is a total
// function; a code found in no bucket falls into the "Unknown" bucket.
//
// =============================================================================

package lookup

import (
	"encoding/json"
	"fmt"
	"os"
)

// UnknownBucket is the fallback bucket name for codes that match no bucket.
// Every lookup document also carries an explicit bucket of this name for
// codes known to be unclassifiable; both cases produce the same label.
const UnknownBucket = "Unknown"

// GenreBuckets is the priority-ordered bucket list of the genre lookup.
func GenreBuckets() []string {
	return []string{"Fiction", "Non-Fiction", UnknownBucket}
}

// AudienceBuckets is the priority-ordered bucket list of the audience lookup.
func AudienceBuckets() []string {
	return []string{"Adult", "Teen", "Children", UnknownBucket}
}

// LoadError reports a lookup document that is missing, unreadable, or
// malformed. Category derivation cannot proceed without the document, so
// this error is fatal to the pipeline.
type LoadError struct {
	// Path is the lookup document path.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load lookup document %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Mapping is a loaded lookup document: priority-ordered bucket names, each
// with the set of ItemCollection codes it contains.
type Mapping struct {
	buckets []string
	sets    map[string]map[string]struct{}
}

// Load reads a lookup document and materializes it as a Mapping.
//
// The buckets argument is the expected bucket list in classification
// priority order. Every expected bucket must be present in the document; a
// missing bucket means the document was authored for a different derived
// column and is treated as malformed. Bucket keys in the document that are
// not expected are ignored.
func Load(path string, buckets []string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	mapping := &Mapping{
		buckets: append([]string(nil), buckets...),
		sets:    make(map[string]map[string]struct{}, len(buckets)),
	}

	for _, bucket := range buckets {
		codes, ok := raw[bucket]
		if !ok {
			return nil, &LoadError{
				Path: path,
				Err:  fmt.Errorf("missing bucket %q", bucket),
			}
		}

		set := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			set[code] = struct{}{}
		}
		mapping.sets[bucket] = set
	}

	return mapping, nil
}

// Buckets returns the bucket names in classification priority order.
func (m *Mapping) Buckets() []string {
	return append([]string(nil), m.buckets...)
}

// Contains reports whether the named bucket's set contains code.
func (m *Mapping) Contains(bucket, code string) bool {
	_, ok := m.sets[bucket][code]
	return ok
}

// Classify returns the name of the first bucket, in priority order, whose
// set contains code. Codes found in no bucket classify as UnknownBucket, so
// Classify is total and deterministic for any input.
func (m *Mapping) Classify(code string) string {
	for _, bucket := range m.buckets {
		if _, ok := m.sets[bucket][code]; ok {
			return bucket
		}
	}
	return UnknownBucket
}
