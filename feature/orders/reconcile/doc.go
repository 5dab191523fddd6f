// Package reconcile decides whether an order document fetched from the
// order-management API updates a locally stored order.
//
// # Extractors
//
// Marketplace identity is inferred heuristically: each Extractor inspects
// the document's free-text notes or sub-source field and, when its
// precondition holds, produces an ephemeral MarketplaceCandidate. The
// extractors run in a fixed priority order (DefaultExtractors); the order
// matters because the more specific note tags are substrings of the generic
// one.
//
// # Engine
//
// The Engine looks up the local order by the document's external numeric id
// (the reconciliation key) and compares its returned SKU against the
// candidate's first line item, case-insensitively. A match is terminal and
// marks the order "Full Match"; a mismatch marks it "None" and lets the
// next extractor try; a candidate without a local order short-circuits. A
// document no extractor claims is a successful no-op.
package reconcile
