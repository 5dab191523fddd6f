// Package utils provides common utility functions for the order reconciler.
// It currently covers the lenient cell parsing used when converting
// spreadsheet rows into orders: malformed numeric cells degrade to unset
// fields rather than hard failures.
package utils
