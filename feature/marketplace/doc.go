// Package marketplace implements the storefront pages.
//
// # Components
//
//   - Service: loads the catalog, opens one store connection per request and
//     runs the reconciliation and budget lookup against it.
//   - Handler: HTML pages and their JSON counterparts.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /            : every store product with its stock level.
//   - GET /buyer       : the configured buyer's balance and the reconciled catalog.
//   - GET /api/products: JSON form of /.
//   - GET /api/buyer   : JSON form of /buyer.
//
// The buyer is a single configured identity (server.buyer); there is no
// per-request buyer selection.
package marketplace
