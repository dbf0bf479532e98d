/*
Package hartconst contains HART contract constants shared with off-chain code.
*/
package hartconst

import "github.com/nspcc-dev/hart-contract/common"

const (
	// Symbol is the ticker of the ledger token.
	Symbol = "HART"
	// Decimals is the fixed point precision of balances.
	Decimals = 18
	// Factor is the amount of indivisible units in one HART.
	Factor = 1_000_000_000_000_000_000

	// DefaultTransferFee is the flat transfer fee in HART (not in indivisible
	// units) applied when deploy parameters do not specify one.
	DefaultTransferFee = 10

	// DefaultNetworkID identifies the network the ledger instance belongs to
	// when deploy parameters do not specify one.
	DefaultNetworkID = 2
	// DefaultSettlementFee is the percentage of settlement value routed to the
	// fee recipient when deploy parameters do not specify one.
	DefaultSettlementFee = 20
	// MaxSettlementFee is the upper bound of the settlement fee percentage.
	MaxSettlementFee = 100
)

// Failure messages thrown by the contract.
const (
	ErrUnauthorized          = common.ErrWitnessFailed
	ErrInsufficientBalance   = "insufficient balance"
	ErrInvalidAddress        = "invalid address"
	ErrUnderpriced           = "offered value is below the asking price"
	ErrNotForSale            = "item is not for sale"
	ErrAlreadySold           = "item is already sold"
	ErrMintPaused            = "mint is paused"
	ErrBelowFeeThreshold     = "burn amount does not exceed transfer fee"
	ErrAlreadyMinted         = "burn is already minted"
	ErrUnknownBurn           = "burn not found"
	ErrDetailsMismatch       = "burn details mismatch"
	ErrInvalidDetails        = "invalid burn details hash"
	ErrSaleRejected          = "sale is rejected by listing"
	ErrSettlementInProgress  = "settlement is in progress"
	ErrReceiptNotFound       = "receipt not found"
	ErrMintNotFound          = "mint not found"
	ErrNegativeAmount        = "negative amount"
	ErrNonPositiveAmount     = "amount must be positive"
	ErrInvalidFee            = "invalid fee"
	ErrInvalidDeployArgument = "invalid deploy argument"
)

// Notification names.
const (
	TransferEvent                    = "Transfer"
	BurnEvent                        = "Burn"
	MintEvent                        = "Mint"
	BuyEvent                         = "Buy"
	MinterChangedEvent               = "MinterChanged"
	TransferFeeRecipientChangedEvent = "TransferFeeRecipientChanged"
	TransferFeeChangedEvent          = "TransferFeeChanged"
	MintPauseAddressChangedEvent     = "MintPauseAddressChanged"
	MintPauseChangedEvent            = "MintPauseChanged"
	SettlementFeeChangedEvent        = "SettlementFeeChanged"
	OwnershipTransferredEvent        = "OwnershipTransferred"
)
