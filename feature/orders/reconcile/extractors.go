package reconcile

import (
	"strconv"
	"strings"

	"order-reconciler/core/orderapi"
	"order-reconciler/feature/orders/models"
)

// MarketplaceTag is the note prefix marketplaces embed their own order id
// behind, e.g. "Marketplace Order ID - DUX123".
const MarketplaceTag = "Marketplace Order ID -"

// Extractor inspects a fetched order document and, when its precondition
// holds, produces a marketplace candidate. Extractors are evaluated in a
// fixed priority order; see DefaultExtractors.
type Extractor interface {
	// Name identifies the extractor in logs and outcomes.
	Name() string
	// TryExtract returns a candidate, or nil when the precondition fails.
	TryExtract(doc *orderapi.Order) *models.MarketplaceCandidate
}

// DefaultExtractors returns the extractors in their priority order. The
// ordering is a policy decision: the Debenhams tag is a specialization of
// the generic marketplace tag, so it must be tried first or the generic
// rule would swallow every Debenhams order.
func DefaultExtractors() []Extractor {
	return []Extractor{
		debenhamsExtractor{},
		secretSalesExtractor{},
		matalanExtractor{},
	}
}

// debenhamsExtractor matches orders whose notes carry a "DUX" tag and reads
// the marketplace id from the note's marketplace tag.
type debenhamsExtractor struct{}

func (debenhamsExtractor) Name() string { return "debenhams" }

func (debenhamsExtractor) TryExtract(doc *orderapi.Order) *models.MarketplaceCandidate {
	for _, note := range doc.Notes {
		if !strings.Contains(note.Note, "DUX") {
			continue
		}
		id := tagValue(note.Note)
		if id == "" {
			return nil
		}
		return newCandidate(doc, "Debenhams", id, shopifyRef(doc))
	}
	return nil
}

// secretSalesExtractor matches any order whose notes carry the generic
// marketplace tag.
type secretSalesExtractor struct{}

func (secretSalesExtractor) Name() string { return "secret_sales" }

func (secretSalesExtractor) TryExtract(doc *orderapi.Order) *models.MarketplaceCandidate {
	for _, note := range doc.Notes {
		if !strings.Contains(note.Note, MarketplaceTag) {
			continue
		}
		id := tagValue(note.Note)
		if id == "" {
			return nil
		}
		return newCandidate(doc, "Secret Sales", id, shopifyRef(doc))
	}
	return nil
}

// matalanExtractor matches orders routed through the Matalan sub-source and
// uses the order reference as the marketplace id.
type matalanExtractor struct{}

func (matalanExtractor) Name() string { return "matalan" }

func (matalanExtractor) TryExtract(doc *orderapi.Order) *models.MarketplaceCandidate {
	if strings.ToLower(strings.TrimSpace(doc.GeneralInfo.SubSource)) != "mirakl matalan" {
		return nil
	}
	return newCandidate(doc, "Matalan", doc.GeneralInfo.ReferenceNum, "000")
}

// tagValue returns the trimmed text after the marketplace tag, or empty
// when the note has no tag.
func tagValue(note string) string {
	_, after, found := strings.Cut(note, MarketplaceTag)
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}

// shopifyRef returns the trimmed order reference, or the "000" placeholder
// when the document carries none.
func shopifyRef(doc *orderapi.Order) string {
	ref := strings.TrimSpace(doc.GeneralInfo.ReferenceNum)
	if ref == "" {
		return "000"
	}
	return ref
}

func newCandidate(doc *orderapi.Order, marketplace, marketplaceID, shopifyID string) *models.MarketplaceCandidate {
	items := make([]models.CandidateItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, models.CandidateItem{
			SKU:      strings.ToLower(item.SKU),
			Quantity: item.Quantity,
		})
	}

	return &models.MarketplaceCandidate{
		SourceOrderID: strconv.FormatUint(doc.NumOrderID, 10),
		Marketplace:   marketplace,
		MarketplaceID: marketplaceID,
		ShopifyID:     shopifyID,
		Items:         items,
	}
}
