// Package store holds the relational side of the storefront: buyers, sellers
// and products, and the rules for overlaying it onto the catalog.
//
// The store is authoritative for every mutable value. The catalog says what a
// seller offers; the store says how much of it is left and what buyers can spend.
//
// # Tables
//
//   - buyers(name PK, budget)
//   - sellers(group_name PK, balance)
//   - products(id PK, seller_group FK -> sellers.group_name, stock_level >= 0)
//
// Initialize creates missing tables and never alters existing ones.
//
// # Reconciliation
//
// Reconcile walks the catalog products in order. A product with an id found in
// the store takes the store's stock level; a product without an id, or with an
// id the store does not know, keeps the catalog value. BudgetOf returns 0 for a
// buyer the store has not seen yet. Only lookup misses are absorbed; any other
// store failure is returned and aborts the request.
//
// # Connections
//
// Handlers acquire one pooled connection per request with WithConnection and
// pass the resulting *Store explicitly to Reconcile and BudgetOf.
package store
