package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Match type lifecycle: unset -> MatchTypeAutomatic (ingested from the
// ledger) -> MatchTypeFull or MatchTypeNone (decided by reconciliation).
// Transitions only move forward; nothing reverses a full match.
const (
	MatchTypeAutomatic = "automatic"
	MatchTypeFull      = "Full Match"
	MatchTypeNone      = "None"
)

// Order is the canonical record reconciled across the local store, the
// spreadsheet ledger and the order-management API. OrderID is the business
// identifier used as the reconciliation key; RowNumber is the position of
// the record in the ledger. Both act as keys for the same stored value.
type Order struct {
	ID          string  `json:"id"`
	Marketplace string  `json:"marketplace"`
	OrderID     string  `json:"order_id"`
	ReturnOrder *uint64 `json:"return_order"`
	ShopifyID   *string `json:"shopify_id"`

	// MarketplaceCode is the marketplace-specific identifier parsed from
	// free-text order notes during reconciliation.
	MarketplaceCode *string `json:"market_place_code"`

	ReturnedSKU *string `json:"returned_sku"`
	OfferSKU    *string `json:"offer_sku"`
	MatchedSKU  *string `json:"matched_sku"`
	MatchType   *string `json:"match_type"`
	RowNumber   *int    `json:"row_number"`

	ManualConfirmation *string `json:"manual_confirmation"`
	Status             *string `json:"status"`
	Qty                *uint32 `json:"qty"`
	MainUpdated        *string `json:"main_updated"`

	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewOrder returns an Order with a freshly generated id and timestamps.
// The id is immutable once created.
func NewOrder() *Order {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Order{
		ID:          uuid.NewString(),
		Marketplace: "shopify",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RowKey returns the secondary store key derived from the row number.
// An unset row number stringifies to the empty key; the store preserves
// that behavior rather than rejecting the write.
func (o *Order) RowKey() string {
	if o.RowNumber == nil {
		return ""
	}
	return strconv.Itoa(*o.RowNumber)
}

// MarketplaceCandidate is derived from a fetched remote order document
// during a reconciliation attempt. It is never persisted.
type MarketplaceCandidate struct {
	// SourceOrderID is the external numeric order id, stringified.
	SourceOrderID string

	Marketplace   string
	MarketplaceID string
	ShopifyID     string
	Items         []CandidateItem
}

// CandidateItem is one line item of a marketplace candidate.
type CandidateItem struct {
	SKU      string
	Quantity int
}
