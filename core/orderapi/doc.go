// Package orderapi provides the client for the third-party order-management
// API.
//
// Two calls are exposed: Authorize, which exchanges the application
// credentials for a short-lived session token, and OrderByNum, which fetches
// a structured order document (general info, free-text notes, line items) by
// its external numeric id. The Client interface keeps the API mockable for
// unit tests (see core/orderapi/mocks).
//
// Non-success responses are returned as errors and never retried here.
package orderapi
