// Package reconcile compares the catalog and the store key by key.
//
// The engine builds an index from each source through an Adapter, takes the
// union of their keys and reports, for every key, which source knows it and
// which fields disagree. It never writes to either source.
//
// # Architecture
//
//  1. Adapter: loads each index and knows how to name and compare entities.
//  2. Engine: ReconcileAll builds the union, the per-key results and a Summary.
//
// # Usage Example
//
//	report, err := reconcile.ReconcileAll(ctx, adapter)
//	if !report.InSync() {
//	    // catalog and store disagree
//	}
package reconcile
