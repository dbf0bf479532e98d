// Package hart contains RPC wrappers for HART contract.
package hart

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// HartBurnRecord is a contract-specific hart.BurnRecord type used by its methods.
type HartBurnRecord struct {
	ID *big.Int
	Burner util.Uint160
	Value *big.Int
	Details util.Uint256
	Data string
	Network *big.Int
}

// HartMintRecord is a contract-specific hart.MintRecord type used by its methods.
type HartMintRecord struct {
	ID *big.Int
	Network *big.Int
	Burner util.Uint160
	Value *big.Int
	Details util.Uint256
	Authorizer util.Uint160
	Status bool
}

// HartReceipt is a contract-specific hart.Receipt type used by its methods.
type HartReceipt struct {
	Nonce *big.Int
	Buyer util.Uint160
	Seller util.Uint160
	ItemID []byte
	Value *big.Int
}

// BurnEvent represents "Burn" event emitted by the contract.
type BurnEvent struct {
	ID *big.Int
	Burner util.Uint160
	Value *big.Int
	Details util.Uint256
	Data string
	Network *big.Int
}

// MintEvent represents "Mint" event emitted by the contract.
type MintEvent struct {
	ID *big.Int
	Burner util.Uint160
	Value *big.Int
	Details util.Uint256
	Network *big.Int
	Authorizer util.Uint160
	Status bool
}

// BuyEvent represents "Buy" event emitted by the contract.
type BuyEvent struct {
	Nonce *big.Int
	Buyer util.Uint160
	Seller util.Uint160
	ItemID []byte
	Value *big.Int
}

// MinterChangedEvent represents "MinterChanged" event emitted by the contract.
type MinterChangedEvent struct {
	OldMinter util.Uint160
	NewMinter util.Uint160
	Modifier util.Uint160
}

// TransferFeeRecipientChangedEvent represents "TransferFeeRecipientChanged" event emitted by the contract.
type TransferFeeRecipientChangedEvent struct {
	OldRecipient util.Uint160
	NewRecipient util.Uint160
	Modifier util.Uint160
}

// TransferFeeChangedEvent represents "TransferFeeChanged" event emitted by the contract.
type TransferFeeChangedEvent struct {
	OldFee *big.Int
	NewFee *big.Int
	Modifier util.Uint160
}

// SettlementFeeChangedEvent represents "SettlementFeeChanged" event emitted by the contract.
type SettlementFeeChangedEvent struct {
	OldFee *big.Int
	NewFee *big.Int
	Modifier util.Uint160
}

// MintPauseAddressChangedEvent represents "MintPauseAddressChanged" event emitted by the contract.
type MintPauseAddressChangedEvent struct {
	OldAddress util.Uint160
	NewAddress util.Uint160
	Modifier util.Uint160
}

// MintPauseChangedEvent represents "MintPauseChanged" event emitted by the contract.
type MintPauseChangedEvent struct {
	Status bool
	Modifier util.Uint160
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	OldOwner util.Uint160
	NewOwner util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	nep17.Invoker
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	nep17.Actor

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	nep17.TokenReader
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	nep17.TokenWriter
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{*nep17.NewReader(invoker, hash), invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	var nep17t = nep17.New(actor, hash)
	return &Contract{ContractReader{nep17t.TokenReader, actor, hash}, nep17t.TokenWriter, actor, hash}
}

// GetBurn invokes `getBurn` method of contract.
func (c *ContractReader) GetBurn(id *big.Int) (*HartBurnRecord, error) {
	return itemToHartBurnRecord(unwrap.Item(c.invoker.Call(c.hash, "getBurn", id)))
}

// GetMint invokes `getMint` method of contract.
func (c *ContractReader) GetMint(network *big.Int, id *big.Int) (*HartMintRecord, error) {
	return itemToHartMintRecord(unwrap.Item(c.invoker.Call(c.hash, "getMint", network, id)))
}

// GetReceipt invokes `getReceipt` method of contract.
func (c *ContractReader) GetReceipt(nonce *big.Int) (*HartReceipt, error) {
	return itemToHartReceipt(unwrap.Item(c.invoker.Call(c.hash, "getReceipt", nonce)))
}

// IsMintPaused invokes `isMintPaused` method of contract.
func (c *ContractReader) IsMintPaused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isMintPaused"))
}

// IsMinted invokes `isMinted` method of contract.
func (c *ContractReader) IsMinted(network *big.Int, id *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isMinted", network, id))
}

// IsSold invokes `isSold` method of contract.
func (c *ContractReader) IsSold(seller util.Uint160, itemID []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isSold", seller, itemID))
}

// IterateBurns invokes `iterateBurns` method of contract.
func (c *ContractReader) IterateBurns() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateBurns"))
}

// IterateBurnsExpanded is similar to IterateBurns (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateBurnsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateBurns", _numOfIteratorItems))
}

// LastBurnID invokes `lastBurnID` method of contract.
func (c *ContractReader) LastBurnID() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lastBurnID"))
}

// LastReceiptNonce invokes `lastReceiptNonce` method of contract.
func (c *ContractReader) LastReceiptNonce() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lastReceiptNonce"))
}

// MintPauseAddress invokes `mintPauseAddress` method of contract.
func (c *ContractReader) MintPauseAddress() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "mintPauseAddress"))
}

// Minter invokes `minter` method of contract.
func (c *ContractReader) Minter() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "minter"))
}

// NetworkID invokes `networkID` method of contract.
func (c *ContractReader) NetworkID() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "networkID"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// SettlementFee invokes `settlementFee` method of contract.
func (c *ContractReader) SettlementFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "settlementFee"))
}

// TransferFee invokes `transferFee` method of contract.
func (c *ContractReader) TransferFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "transferFee"))
}

// TransferRecipient invokes `transferRecipient` method of contract.
func (c *ContractReader) TransferRecipient() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "transferRecipient"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(from util.Uint160, amount *big.Int, data string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", from, amount, data)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(from util.Uint160, amount *big.Int, data string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", from, amount, data)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(from util.Uint160, amount *big.Int, data string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, from, amount, data)
}

// Buy creates a transaction invoking `buy` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Buy(buyer util.Uint160, seller util.Uint160, itemID []byte, value *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "buy", buyer, seller, itemID, value)
}

// BuyTransaction creates a transaction invoking `buy` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyTransaction(buyer util.Uint160, seller util.Uint160, itemID []byte, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "buy", buyer, seller, itemID, value)
}

// BuyUnsigned creates a transaction invoking `buy` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuyUnsigned(buyer util.Uint160, seller util.Uint160, itemID []byte, value *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "buy", nil, buyer, seller, itemID, value)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(id *big.Int, burner util.Uint160, value *big.Int, details util.Uint256, network *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", id, burner, value, details, network)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(id *big.Int, burner util.Uint160, value *big.Int, details util.Uint256, network *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", id, burner, value, details, network)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(id *big.Int, burner util.Uint160, value *big.Int, details util.Uint256, network *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, id, burner, value, details, network)
}

// MintSupply creates a transaction invoking `mintSupply` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MintSupply(to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mintSupply", to, amount)
}

// MintSupplyTransaction creates a transaction invoking `mintSupply` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintSupplyTransaction(to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mintSupply", to, amount)
}

// MintSupplyUnsigned creates a transaction invoking `mintSupply` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintSupplyUnsigned(to util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mintSupply", nil, to, amount)
}

// SetIsMintPause creates a transaction invoking `setIsMintPause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetIsMintPause(paused bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setIsMintPause", paused)
}

// SetIsMintPauseTransaction creates a transaction invoking `setIsMintPause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetIsMintPauseTransaction(paused bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setIsMintPause", paused)
}

// SetIsMintPauseUnsigned creates a transaction invoking `setIsMintPause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetIsMintPauseUnsigned(paused bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setIsMintPause", nil, paused)
}

// SetMintPauseAddress creates a transaction invoking `setMintPauseAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMintPauseAddress(addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMintPauseAddress", addr)
}

// SetMintPauseAddressTransaction creates a transaction invoking `setMintPauseAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMintPauseAddressTransaction(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMintPauseAddress", addr)
}

// SetMintPauseAddressUnsigned creates a transaction invoking `setMintPauseAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMintPauseAddressUnsigned(addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMintPauseAddress", nil, addr)
}

// SetMinter creates a transaction invoking `setMinter` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMinter(minter util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMinter", minter)
}

// SetMinterTransaction creates a transaction invoking `setMinter` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMinterTransaction(minter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMinter", minter)
}

// SetMinterUnsigned creates a transaction invoking `setMinter` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMinterUnsigned(minter util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMinter", nil, minter)
}

// SetSettlementFee creates a transaction invoking `setSettlementFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSettlementFee(fee *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSettlementFee", fee)
}

// SetSettlementFeeTransaction creates a transaction invoking `setSettlementFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSettlementFeeTransaction(fee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSettlementFee", fee)
}

// SetSettlementFeeUnsigned creates a transaction invoking `setSettlementFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSettlementFeeUnsigned(fee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSettlementFee", nil, fee)
}

// SetTransferFee creates a transaction invoking `setTransferFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTransferFee(fee *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTransferFee", fee)
}

// SetTransferFeeTransaction creates a transaction invoking `setTransferFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTransferFeeTransaction(fee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTransferFee", fee)
}

// SetTransferFeeUnsigned creates a transaction invoking `setTransferFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTransferFeeUnsigned(fee *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTransferFee", nil, fee)
}

// SetTransferRecipient creates a transaction invoking `setTransferRecipient` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTransferRecipient(recipient util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTransferRecipient", recipient)
}

// SetTransferRecipientTransaction creates a transaction invoking `setTransferRecipient` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTransferRecipientTransaction(recipient util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTransferRecipient", recipient)
}

// SetTransferRecipientUnsigned creates a transaction invoking `setTransferRecipient` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTransferRecipientUnsigned(recipient util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTransferRecipient", nil, recipient)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToHartBurnRecord converts stack item into *HartBurnRecord.
func itemToHartBurnRecord(item stackitem.Item, err error) (*HartBurnRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(HartBurnRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of HartBurnRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *HartBurnRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Burner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Burner: %w", err)
	}

	index++
	res.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	res.Details, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Details: %w", err)
	}

	index++
	res.Data, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Data: %w", err)
	}

	index++
	res.Network, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Network: %w", err)
	}

	return nil
}

// itemToHartMintRecord converts stack item into *HartMintRecord.
func itemToHartMintRecord(item stackitem.Item, err error) (*HartMintRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(HartMintRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of HartMintRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *HartMintRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Network, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Network: %w", err)
	}

	index++
	res.Burner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Burner: %w", err)
	}

	index++
	res.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	res.Details, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Details: %w", err)
	}

	index++
	res.Authorizer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authorizer: %w", err)
	}

	index++
	res.Status, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}

// itemToHartReceipt converts stack item into *HartReceipt.
func itemToHartReceipt(item stackitem.Item, err error) (*HartReceipt, error) {
	if err != nil {
		return nil, err
	}
	var res = new(HartReceipt)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of HartReceipt from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *HartReceipt) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Nonce, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Nonce: %w", err)
	}

	index++
	res.Buyer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	index++
	res.Seller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Seller: %w", err)
	}

	index++
	res.ItemID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ItemID: %w", err)
	}

	index++
	res.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}

// BurnEventsFromApplicationLog retrieves a set of all emitted events
// with "Burn" name from the provided [result.ApplicationLog].
func BurnEventsFromApplicationLog(log *result.ApplicationLog) ([]*BurnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BurnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Burn" {
				continue
			}
			event := new(BurnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BurnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BurnEvent or
// returns an error if it's not possible to do to so.
func (e *BurnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Burner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Burner: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	e.Details, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Details: %w", err)
	}

	index++
	e.Data, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Data: %w", err)
	}

	index++
	e.Network, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Network: %w", err)
	}

	return nil
}

// MintEventsFromApplicationLog retrieves a set of all emitted events
// with "Mint" name from the provided [result.ApplicationLog].
func MintEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MintEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Mint" {
				continue
			}
			event := new(MintEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MintEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MintEvent or
// returns an error if it's not possible to do to so.
func (e *MintEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Burner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Burner: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	e.Details, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Details: %w", err)
	}

	index++
	e.Network, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Network: %w", err)
	}

	index++
	e.Authorizer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authorizer: %w", err)
	}

	index++
	e.Status, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	return nil
}

// BuyEventsFromApplicationLog retrieves a set of all emitted events
// with "Buy" name from the provided [result.ApplicationLog].
func BuyEventsFromApplicationLog(log *result.ApplicationLog) ([]*BuyEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BuyEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Buy" {
				continue
			}
			event := new(BuyEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BuyEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BuyEvent or
// returns an error if it's not possible to do to so.
func (e *BuyEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Nonce, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Nonce: %w", err)
	}

	index++
	e.Buyer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	index++
	e.Seller, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Seller: %w", err)
	}

	index++
	e.ItemID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ItemID: %w", err)
	}

	index++
	e.Value, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	return nil
}

// MinterChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "MinterChanged" name from the provided [result.ApplicationLog].
func MinterChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MinterChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MinterChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MinterChanged" {
				continue
			}
			event := new(MinterChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MinterChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MinterChangedEvent or
// returns an error if it's not possible to do to so.
func (e *MinterChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldMinter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldMinter: %w", err)
	}

	index++
	e.NewMinter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewMinter: %w", err)
	}

	index++
	e.Modifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Modifier: %w", err)
	}

	return nil
}

// TransferFeeRecipientChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferFeeRecipientChanged" name from the provided [result.ApplicationLog].
func TransferFeeRecipientChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferFeeRecipientChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferFeeRecipientChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferFeeRecipientChanged" {
				continue
			}
			event := new(TransferFeeRecipientChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferFeeRecipientChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferFeeRecipientChangedEvent or
// returns an error if it's not possible to do to so.
func (e *TransferFeeRecipientChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldRecipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldRecipient: %w", err)
	}

	index++
	e.NewRecipient, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewRecipient: %w", err)
	}

	index++
	e.Modifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Modifier: %w", err)
	}

	return nil
}

// TransferFeeChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferFeeChanged" name from the provided [result.ApplicationLog].
func TransferFeeChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferFeeChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferFeeChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferFeeChanged" {
				continue
			}
			event := new(TransferFeeChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferFeeChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferFeeChangedEvent or
// returns an error if it's not possible to do to so.
func (e *TransferFeeChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldFee: %w", err)
	}

	index++
	e.NewFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewFee: %w", err)
	}

	index++
	e.Modifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Modifier: %w", err)
	}

	return nil
}

// SettlementFeeChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "SettlementFeeChanged" name from the provided [result.ApplicationLog].
func SettlementFeeChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SettlementFeeChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SettlementFeeChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SettlementFeeChanged" {
				continue
			}
			event := new(SettlementFeeChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SettlementFeeChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SettlementFeeChangedEvent or
// returns an error if it's not possible to do to so.
func (e *SettlementFeeChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OldFee: %w", err)
	}

	index++
	e.NewFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NewFee: %w", err)
	}

	index++
	e.Modifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Modifier: %w", err)
	}

	return nil
}

// MintPauseAddressChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "MintPauseAddressChanged" name from the provided [result.ApplicationLog].
func MintPauseAddressChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintPauseAddressChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MintPauseAddressChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MintPauseAddressChanged" {
				continue
			}
			event := new(MintPauseAddressChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MintPauseAddressChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MintPauseAddressChangedEvent or
// returns an error if it's not possible to do to so.
func (e *MintPauseAddressChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldAddress, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldAddress: %w", err)
	}

	index++
	e.NewAddress, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewAddress: %w", err)
	}

	index++
	e.Modifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Modifier: %w", err)
	}

	return nil
}

// MintPauseChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "MintPauseChanged" name from the provided [result.ApplicationLog].
func MintPauseChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintPauseChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MintPauseChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MintPauseChanged" {
				continue
			}
			event := new(MintPauseChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MintPauseChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MintPauseChangedEvent or
// returns an error if it's not possible to do to so.
func (e *MintPauseChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Status, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Status: %w", err)
	}

	index++
	e.Modifier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Modifier: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipTransferred" {
				continue
			}
			event := new(OwnershipTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.OldOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OldOwner: %w", err)
	}

	index++
	e.NewOwner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	return nil
}
