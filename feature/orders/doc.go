// Package orders keeps order records consistent across three systems: a
// local key-value store, a spreadsheet ledger with a primary and a
// secondary tab, and an external order-management API.
//
// Orders live in the store under two keys, the order id and the decimal
// row number, so that lookups by either handle resolve to the same
// record. The service layer exposes CRUD over those records, a bulk
// ingest that replays both ledger tabs into the store, a reconciliation
// pass that matches fetched order documents against stored ones, and a
// JSON snapshot export to object storage.
package orders
