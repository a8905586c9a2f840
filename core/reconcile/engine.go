package reconcile

import (
	"context"
	"fmt"
	"sort"
	"strconv"
)

// ReconcileAll loads both indices and returns one result per key in either source.
// Results are ordered by key, numerically when both keys are integers.
func ReconcileAll(ctx context.Context, adapter Adapter) (*Report, error) {
	catalogIndex, err := adapter.LoadCatalogIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load catalog index: %w", adapter.Name(), err)
	}
	storeIndex, err := adapter.LoadStoreIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load store index: %w", adapter.Name(), err)
	}

	keys := buildUnion(catalogIndex, storeIndex)
	report := &Report{Results: make([]Result, 0, len(keys))}
	for _, key := range keys {
		result := buildResult(key, catalogIndex, storeIndex, adapter)
		report.Results = append(report.Results, result)
		addToSummary(&report.Summary, result)
	}
	return report, nil
}

// buildUnion returns the sorted union of keys from both indices.
func buildUnion(catalogIndex map[string]CatalogItem, storeIndex map[string]StoreItem) []string {
	union := make(map[string]struct{}, len(catalogIndex)+len(storeIndex))
	for key := range catalogIndex {
		union[key] = struct{}{}
	}
	for key := range storeIndex {
		union[key] = struct{}{}
	}

	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
	return keys
}

func keyLess(a, b string) bool {
	ai, errA := strconv.ParseInt(a, 10, 64)
	bi, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return ai < bi
	}
	return a < b
}

func buildResult(key string, catalogIndex map[string]CatalogItem, storeIndex map[string]StoreItem, adapter Adapter) Result {
	catalogItem, inCatalog := catalogIndex[key]
	storeItem, inStore := storeIndex[key]

	result := Result{
		ID:             key,
		CatalogPresent: inCatalog,
		StorePresent:   inStore,
		Name:           adapter.ResolveName(catalogItem, storeItem),
		Metadata:       adapter.GetMetadata(catalogItem, storeItem),
		Mismatch:       []string{},
	}
	if inCatalog && inStore {
		if m := adapter.CompareFields(catalogItem, storeItem); len(m) > 0 {
			result.Mismatch = m
		}
	}
	return result
}

func addToSummary(s *Summary, r Result) {
	s.TotalItems++
	if !r.CatalogPresent {
		s.MissingCatalog++
	}
	if !r.StorePresent {
		s.MissingStore++
	}
	if len(r.Mismatch) > 0 {
		s.Mismatches++
	}
}
