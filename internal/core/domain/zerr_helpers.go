package domain

import (
	"sort"

	"go.trai.ch/zerr"
)

// withMeta folds a set of key/value pairs onto err via repeated zerr.With
// calls in sorted-key order, so multi-field errors don't need to be built up
// one With call at a time at every call site.
func withMeta(err error, fields map[string]any) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		err = zerr.With(err, k, fields[k])
	}
	return err
}
