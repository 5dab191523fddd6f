// Package sheets provides the client for the spreadsheet ledger.
//
// It wraps the Google Sheets values API with the three operations the
// reconciler needs: fetching a named range as rows of strings, appending a
// row, and overwriting a row at a 1-based position. Requests carry the
// bearer token from core/credentials.
//
// The Client interface keeps the ledger mockable for unit tests (see
// core/sheets/mocks). Non-success responses are returned as errors and never
// retried here; retry policy belongs to the caller.
package sheets
