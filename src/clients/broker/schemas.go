package broker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credentials is the decrypted secret set a client needs to talk to a broker.
type Credentials struct {
	APIKey      string
	APISecret   string
	AccessToken string
}

// Holding is one externally held position as reported by a broker. The
// average price feeds the ledger merge as the purchase price; the last traded
// price becomes the current price.
type Holding struct {
	Symbol       string          `json:"tradingsymbol"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	AveragePrice decimal.Decimal `json:"average_price"`
	LastPrice    decimal.Decimal `json:"last_price"`
}

// Trade is one executed order from a broker tradebook. Type is the broker's
// raw transaction-type string ("BUY", "sell", ...), normalized during import.
type Trade struct {
	Symbol     string          `json:"tradingsymbol"`
	Type       string          `json:"transaction_type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"average_price"`
	ExecutedAt time.Time       `json:"fill_timestamp"`
}
