package orders

import (
	"strconv"

	"order-reconciler/core/utils"
	"order-reconciler/feature/orders/models"
)

// Column layout of the two ledger tabs. The primary tab owns the external
// order id, the return date and the initial match-type hint; the secondary
// tab is authoritative for every other field it carries.
const (
	primaryColOrderID   = 5
	primaryColDate      = 8
	primaryColMatchType = 12
	primaryRowWidth     = 14

	secondaryColReturnOrder = 0
	secondaryColShopifyID   = 1
	secondaryColMarketplace = 2
	secondaryColReturnedSKU = 3
	secondaryColOfferSKU    = 4
	secondaryColMatchedSKU  = 5
	secondaryColMatchType   = 6
	secondaryColRowNumber   = 7
	secondaryColManualConf  = 8
	secondaryColStatus      = 9
	secondaryColQty         = 11
	secondaryColMainUpdated = 12
	secondaryRowWidth       = 13
)

// ToPrimaryRow encodes the order as a primary-tab row. Row width is fixed:
// unset fields render as empty strings, never "null" or omitted, so column
// positions never shift.
func ToPrimaryRow(o *models.Order) []string {
	row := make([]string, primaryRowWidth)
	row[primaryColOrderID] = o.OrderID
	row[primaryColDate] = o.Date
	if o.MatchType != nil {
		row[primaryColMatchType] = *o.MatchType
	}
	return row
}

// ToSecondaryRow encodes the order as a secondary-tab row, fixed width like
// ToPrimaryRow.
func ToSecondaryRow(o *models.Order) []string {
	row := make([]string, secondaryRowWidth)
	if o.ReturnOrder != nil {
		row[secondaryColReturnOrder] = strconv.FormatUint(*o.ReturnOrder, 10)
	}
	if o.ShopifyID != nil {
		row[secondaryColShopifyID] = *o.ShopifyID
	}
	row[secondaryColMarketplace] = o.Marketplace
	if o.ReturnedSKU != nil {
		row[secondaryColReturnedSKU] = *o.ReturnedSKU
	}
	if o.OfferSKU != nil {
		row[secondaryColOfferSKU] = *o.OfferSKU
	}
	if o.MatchedSKU != nil {
		row[secondaryColMatchedSKU] = *o.MatchedSKU
	}
	if o.MatchType != nil {
		row[secondaryColMatchType] = *o.MatchType
	}
	if o.RowNumber != nil {
		row[secondaryColRowNumber] = strconv.Itoa(*o.RowNumber)
	}
	if o.ManualConfirmation != nil {
		row[secondaryColManualConf] = *o.ManualConfirmation
	}
	if o.Status != nil {
		row[secondaryColStatus] = *o.Status
	}
	if o.Qty != nil {
		row[secondaryColQty] = strconv.FormatUint(uint64(*o.Qty), 10)
	}
	if o.MainUpdated != nil {
		row[secondaryColMainUpdated] = *o.MainUpdated
	}
	return row
}

// FromRow builds an Order from one primary-tab row and, when present, its
// secondary-tab row. The order gets a freshly generated id; the secondary
// row backfills every field it carries, overriding the primary's
// match-type hint whenever its own match-type cell exists (even empty).
//
// The conversion never fails: rows shorter than the expected width map to
// unset fields and numeric cells that do not parse become unset rather than
// aborting the row. rowIndex is the row's position in the fetched range;
// the authoritative row number is the one recorded in the secondary tab.
func FromRow(rowIndex int, primary, secondary []string) *models.Order {
	_ = rowIndex

	order := models.NewOrder()
	order.OrderID = utils.Cell(primary, primaryColOrderID)
	order.Date = utils.Cell(primary, primaryColDate)
	order.MatchType = utils.CellPtr(primary, primaryColMatchType)

	if secondary != nil {
		if marketplace := utils.Cell(secondary, secondaryColMarketplace); marketplace != "" {
			order.Marketplace = marketplace
		}
		order.ReturnOrder = utils.ParseUint64(utils.Cell(secondary, secondaryColReturnOrder))
		order.ShopifyID = utils.CellPtr(secondary, secondaryColShopifyID)
		order.ReturnedSKU = utils.CellPtr(secondary, secondaryColReturnedSKU)
		order.OfferSKU = utils.CellPtr(secondary, secondaryColOfferSKU)
		order.MatchedSKU = utils.CellPtr(secondary, secondaryColMatchedSKU)
		if matchType := utils.CellPtr(secondary, secondaryColMatchType); matchType != nil {
			order.MatchType = matchType
		}
		order.RowNumber = utils.ParseInt(utils.Cell(secondary, secondaryColRowNumber))
		order.ManualConfirmation = utils.CellPtr(secondary, secondaryColManualConf)
		order.Status = utils.CellPtr(secondary, secondaryColStatus)
		order.Qty = utils.ParseUint32(utils.Cell(secondary, secondaryColQty))
		order.MainUpdated = utils.CellPtr(secondary, secondaryColMainUpdated)
	}

	return order
}
