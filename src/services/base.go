package services

import "errors"

var (
	ErrPortfolioNotFound      = errors.New("portfolio not found")
	ErrPositionNotFound       = errors.New("position not found")
	ErrSymbolRequired         = errors.New("asset symbol is required")
	ErrInvalidTransactionType = errors.New("transaction type must be buy or sell")
	ErrBrokerNotLinked        = errors.New("broker is not linked for this user")
	ErrCredentialUnusable     = errors.New("stored broker credential could not be decrypted")
)
