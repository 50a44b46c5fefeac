package schemas

import "github.com/shopspring/decimal"

// AddAssetRequest is the add-or-merge payload. Quantity and prices accept JSON
// numbers or numeric strings; decimal.Decimal parses the literal text, so
// values never pass through binary floating point.
type AddAssetRequest struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}
