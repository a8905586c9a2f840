// Package integrity reports on the consistency between the catalog and the store.
//
// It never repairs anything; every check is read-only.
//
// # Checks Provided
//
//   - Catalog: Compares catalog products with store rows by id. Reports products known to one
//     side only, stock mismatches (e.g. "stock_level: catalog=5 store=9"), catalog products
//     without an id and store products whose seller_group has no sellers row.
//   - Schema: Validates that the live tables match the store models (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/catalog : Runs the catalog drift check.
//   - GET /integrity/schema : Runs the schema check.
package integrity
