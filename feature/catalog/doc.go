// Package catalog loads the seller-authored product catalog.
//
// A catalog is a TOML document with a single [seller] table and a list of
// [[seller.products]] entries:
//
//	[seller]
//	name = "Red Group"
//	group_name = "red"
//
//	[[seller.products]]
//	id = 1            # optional, links the entry to the store
//	name = "Widget"
//	price = 9.99
//	quantity = 5
//
// Products are returned in file order. A missing products list loads as an
// empty slice. Each product's StockLevel starts as its Quantity; the store
// package overwrites it during reconciliation.
//
// # Sources
//
//   - FileSource: the local filesystem (default).
//   - BucketSource: a catalog published to S3/MinIO with Publish.
//
// # Errors
//
// A missing document yields ErrNotFound and a malformed one ErrParse. Neither
// is recovered; callers abort the request.
package catalog
