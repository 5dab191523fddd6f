package reconcile

import (
	"strconv"
	"strings"
	"time"

	"order-reconciler/core/orderapi"
	"order-reconciler/feature/orders/models"

	"go.uber.org/zap"
)

// Result classifies the outcome of one reconciliation attempt.
type Result string

const (
	// ResultFullMatch means a candidate's first line item matched the local
	// order's returned SKU and the order was updated.
	ResultFullMatch Result = "full_match"
	// ResultMismatch means a candidate was produced but its SKU differed;
	// the local order was marked and later extractors were still evaluated.
	ResultMismatch Result = "mismatch"
	// ResultNoCandidate means no extractor's precondition held. This is a
	// successful no-op, not an error.
	ResultNoCandidate Result = "no_candidate"
	// ResultNoLocalOrder means a candidate was produced but no local order
	// exists under the reconciliation key. Evaluation short-circuits.
	ResultNoLocalOrder Result = "no_local_order"
)

// Outcome reports how a fetched order document was reconciled.
type Outcome struct {
	Result      Result `json:"result"`
	Extractor   string `json:"extractor,omitempty"`
	Marketplace string `json:"marketplace,omitempty"`
}

// Store is the slice of the order store the engine needs.
type Store interface {
	GetSingle(key string) (*models.Order, error)
	Put(order *models.Order) error
}

// Engine decides whether and how an externally fetched order document
// updates a locally stored order. It is a best-effort heuristic matcher:
// duplicate or ambiguous SKUs are not disambiguated beyond "first line
// item, first match".
type Engine struct {
	store      Store
	extractors []Extractor
	logger     *zap.Logger
}

// NewEngine creates an engine over the given store. With no extractors the
// default priority order is used.
func NewEngine(store Store, logger *zap.Logger, extractors ...Extractor) *Engine {
	if len(extractors) == 0 {
		extractors = DefaultExtractors()
	}
	return &Engine{store: store, extractors: extractors, logger: logger}
}

// Resolve runs the extractors in priority order against the document. The
// first extractor to produce a candidate drives the update; a terminal
// decision (full match, or no local order under the reconciliation key)
// stops evaluation, a mismatch lets the next extractor try.
func (e *Engine) Resolve(doc *orderapi.Order) (*Outcome, error) {
	key := strconv.FormatUint(doc.NumOrderID, 10)
	outcome := &Outcome{Result: ResultNoCandidate}

	for _, extractor := range e.extractors {
		candidate := extractor.TryExtract(doc)
		if candidate == nil {
			continue
		}

		terminal, result, err := e.apply(key, candidate)
		if err != nil {
			return nil, err
		}

		outcome = &Outcome{
			Result:      result,
			Extractor:   extractor.Name(),
			Marketplace: candidate.Marketplace,
		}
		e.logger.Info("reconciliation attempt",
			zap.String("order_id", key),
			zap.String("extractor", extractor.Name()),
			zap.String("result", string(result)),
		)

		if terminal {
			break
		}
	}

	return outcome, nil
}

// apply compares a candidate against the local order stored under the
// reconciliation key and persists the decision.
func (e *Engine) apply(key string, candidate *models.MarketplaceCandidate) (bool, Result, error) {
	local, err := e.store.GetSingle(key)
	if err != nil {
		return false, "", err
	}
	if local == nil {
		// A matched extractor with no local record short-circuits instead
		// of falling through to the next extractor. Policy, not oversight.
		return true, ResultNoLocalOrder, nil
	}

	if e.skuMatches(local, candidate) {
		local.Marketplace = candidate.Marketplace
		local.MarketplaceCode = &candidate.MarketplaceID
		local.ShopifyID = &candidate.ShopifyID
		sku := candidate.Items[0].SKU
		local.ReturnedSKU = &sku
		matchType := models.MatchTypeFull
		local.MatchType = &matchType
		local.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		if err := e.store.Put(local); err != nil {
			return false, "", err
		}
		return true, ResultFullMatch, nil
	}

	// Match types only move forward; a full match is never downgraded by a
	// later mismatching extractor.
	if local.MatchType == nil || *local.MatchType != models.MatchTypeFull {
		matchType := models.MatchTypeNone
		local.MatchType = &matchType
		local.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		if err := e.store.Put(local); err != nil {
			return false, "", err
		}
	}
	return false, ResultMismatch, nil
}

// skuMatches compares the local order's returned SKU against the
// candidate's first line item, case-insensitively. A candidate with zero
// line items is a mismatch, never a failure.
func (e *Engine) skuMatches(local *models.Order, candidate *models.MarketplaceCandidate) bool {
	if len(candidate.Items) == 0 || local.ReturnedSKU == nil {
		return false
	}
	return strings.EqualFold(*local.ReturnedSKU, candidate.Items[0].SKU)
}
