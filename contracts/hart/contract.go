package hart

import (
	"github.com/nspcc-dev/hart-contract/common"
	"github.com/nspcc-dev/hart-contract/contracts/hart/hartconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}

	// BurnRecord describes assets removed from circulation on this network
	// so that they can be minted on another one.
	BurnRecord struct {
		ID     int
		Burner interop.Hash160
		// Value is the burnt amount without the transfer fee.
		Value int
		// Details is a SHA256 hash binding ID, Burner, Value, Data and Network.
		Details interop.Hash256
		Data    string
		Network int
	}

	// MintRecord describes assets minted to reflect a burn made on the
	// origin network.
	MintRecord struct {
		ID         int
		Network    int
		Burner     interop.Hash160
		Value      int
		Details    interop.Hash256
		Authorizer interop.Hash160
		Status     bool
	}

	// Receipt is a proof of a completed marketplace settlement.
	Receipt struct {
		Nonce  int
		Buyer  interop.Hash160
		Seller interop.Hash160
		ItemID []byte
		Value  int
	}

	// burnDetails is a serialized form hashed into BurnRecord.Details.
	burnDetails struct {
		ID      int
		Burner  interop.Hash160
		Value   int
		Data    string
		Network int
	}

	// credit is a settlement share applied once the listing accepts the sale.
	credit struct {
		Account interop.Hash160
		Amount  int
	}
)

const (
	circulation = "supply"

	accPrefix     = 'b'
	burnPrefix    = 'B'
	mintPrefix    = 'M'
	receiptPrefix = 'R'
	soldPrefix    = 'S'

	ownerKey         = 'o'
	minterKey        = 'm'
	pauseAddressKey  = 'p'
	mintPausedKey    = 'z'
	feeRecipientKey  = 'r'
	transferFeeKey   = 'f'
	settlementFeeKey = 's'
	networkIDKey     = 'n'
	burnNonceKey     = 'i'
	receiptNonceKey  = 'c'
	settleLockKey    = 'l'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         hartconst.Symbol,
		Decimals:       hartconst.Decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// _deploy expects [owner, networkID, transferFee, settlementFee] where all
// but owner can be nil to use the defaults.
// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)

	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	if len(args) != 4 {
		panic(hartconst.ErrInvalidDeployArgument)
	}

	owner := args[0].(interop.Hash160)
	if !common.IsValidHash160(owner) {
		panic(hartconst.ErrInvalidDeployArgument + ": owner")
	}

	networkID := hartconst.DefaultNetworkID
	if args[1] != nil {
		networkID = args[1].(int)
	}

	transferFee := hartconst.DefaultTransferFee
	transferFee *= hartconst.Factor
	if args[2] != nil {
		transferFee = args[2].(int)
	}
	if transferFee < 0 {
		panic(hartconst.ErrInvalidFee)
	}

	settlementFee := hartconst.DefaultSettlementFee
	if args[3] != nil {
		settlementFee = args[3].(int)
	}
	if settlementFee < 0 || settlementFee > hartconst.MaxSettlementFee {
		panic(hartconst.ErrInvalidFee)
	}

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, feeRecipientKey, owner)
	storage.Put(ctx, pauseAddressKey, owner)
	storage.Put(ctx, networkIDKey, networkID)
	common.PutInt(ctx, transferFeeKey, transferFee)
	common.PutInt(ctx, settlementFeeKey, settlementFee)

	runtime.Log("hart contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the owner.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	if !runtime.CheckWitness(getOwner(ctx)) {
		panic(hartconst.ErrUnauthorized)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("hart contract updated")
}

// Symbol is a NEP-17 standard method that returns HART token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of HART
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of HART in
// circulation on this network.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns HART balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that moves amount from one account to
// another. It can be invoked only by the account owner. The sender pays the
// transfer fee on top of amount, the fee goes to the fee recipient.
//
// It produces Transfer notification for the amount and another one for the
// fee if it is not zero. Any failure aborts the invocation.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	if amount < 0 {
		panic(hartconst.ErrNegativeAmount)
	}
	if !common.IsValidHash160(to) {
		panic(hartconst.ErrInvalidAddress)
	}
	common.CheckWitness(from)

	fee := common.GetInt(ctx, transferFeeKey)
	if token.balanceOf(ctx, from) < amount+fee {
		panic(hartconst.ErrInsufficientBalance)
	}

	token.transfer(ctx, from, to, amount)
	if fee > 0 {
		token.transfer(ctx, from, common.GetHash160(ctx, feeRecipientKey), fee)
	}

	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}

	return true
}

// MintSupply issues amount of new assets to the account. It can be invoked by
// the owner or the minter.
//
// It produces Transfer notification with empty sender.
func MintSupply(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	checkMinter(ctx)

	if !common.IsValidHash160(to) {
		panic(hartconst.ErrInvalidAddress)
	}
	if amount <= 0 {
		panic(hartconst.ErrNonPositiveAmount)
	}

	token.transfer(ctx, nil, to, amount)
	token.setSupply(ctx, token.getSupply(ctx)+amount)
	runtime.Log("assets were minted")
}

// Burn removes amount from the sender's balance so that it can be minted on
// another network. The transfer fee is taken out of amount and goes to the
// fee recipient, the rest leaves circulation and is recorded in a new
// BurnRecord with the next burn ID.
//
// It produces Transfer notifications for the fee and for the burnt value,
// and a Burn notification with the record fields.
func Burn(from interop.Hash160, amount int, data string) BurnRecord {
	ctx := storage.GetContext()

	common.CheckWitness(from)

	// Details are computed over ByteString items whatever the caller passed.
	from = interop.Hash160(convert.ToString(from))
	data = convert.ToString(data)

	fee := common.GetInt(ctx, transferFeeKey)
	if amount <= fee || amount <= 0 {
		panic(hartconst.ErrBelowFeeThreshold)
	}
	if token.balanceOf(ctx, from) < amount {
		panic(hartconst.ErrInsufficientBalance)
	}

	var (
		value   = amount - fee
		network = common.GetInt(ctx, networkIDKey)
		id      = common.GetInt(ctx, burnNonceKey) + 1
	)

	details := crypto.Sha256(std.Serialize(burnDetails{
		ID:      id,
		Burner:  from,
		Value:   value,
		Data:    data,
		Network: network,
	}))

	rec := BurnRecord{
		ID:      id,
		Burner:  from,
		Value:   value,
		Details: details,
		Data:    data,
		Network: network,
	}

	if fee > 0 {
		token.transfer(ctx, from, common.GetHash160(ctx, feeRecipientKey), fee)
	}
	token.transfer(ctx, from, nil, value)
	token.setSupply(ctx, token.getSupply(ctx)-value)

	storage.Put(ctx, burnNonceKey, id)
	common.SetSerialized(ctx, burnKey(id), rec)

	runtime.Notify("Burn", id, from, value, details, data, network)

	return rec
}

// Mint credits the burner with the value of the burn made on the origin
// network. It can be invoked by the owner or the minter while mint is not
// paused. Every (network, id) pair is minted at most once. Burns of this
// very network must exist and match burner, value and details.
//
// It produces Transfer notification with empty sender and a Mint
// notification with the record fields.
func Mint(id int, burner interop.Hash160, value int, details interop.Hash256, network int) MintRecord {
	ctx := storage.GetContext()

	if storage.Get(ctx, mintPausedKey) != nil {
		panic(hartconst.ErrMintPaused)
	}

	authorizer := checkMinter(ctx)

	if !common.IsValidHash160(burner) {
		panic(hartconst.ErrInvalidAddress)
	}
	if value <= 0 {
		panic(hartconst.ErrNonPositiveAmount)
	}
	if len(details) != interop.Hash256Len {
		panic(hartconst.ErrInvalidDetails)
	}

	burner = interop.Hash160(convert.ToString(burner))
	details = interop.Hash256(convert.ToString(details))

	key := mintKey(network, id)
	if storage.Get(ctx, key) != nil {
		panic(hartconst.ErrAlreadyMinted)
	}

	if network == common.GetInt(ctx, networkIDKey) {
		data := storage.Get(ctx, burnKey(id))
		if data == nil {
			panic(hartconst.ErrUnknownBurn)
		}

		burn := std.Deserialize(data.([]byte)).(BurnRecord)
		if !burn.Burner.Equals(burner) || burn.Value != value || !burn.Details.Equals(details) {
			panic(hartconst.ErrDetailsMismatch)
		}
	}

	rec := MintRecord{
		ID:         id,
		Network:    network,
		Burner:     burner,
		Value:      value,
		Details:    details,
		Authorizer: authorizer,
		Status:     true,
	}

	token.transfer(ctx, nil, burner, value)
	token.setSupply(ctx, token.getSupply(ctx)+value)
	common.SetSerialized(ctx, key, rec)

	runtime.Notify("Mint", id, burner, value, details, network, authorizer, true)

	return rec
}

// Buy settles the purchase of itemID listed by the seller contract. The
// seller must be a deployed contract implementing isForSale, getPrice and
// onSale methods. Value must cover the asking price and is split between
// the seller and the fee recipient according to the settlement fee.
//
// onSale is called before any balance changes, the settlement is aborted if
// it returns false. Nested settlements are rejected while onSale runs.
//
// It produces Transfer notifications for every share and a Buy notification.
func Buy(buyer, seller interop.Hash160, itemID []byte, value int) Receipt {
	ctx := storage.GetContext()

	common.CheckWitness(buyer)
	if storage.Get(ctx, settleLockKey) != nil {
		panic(hartconst.ErrSettlementInProgress)
	}
	if !common.IsValidHash160(seller) || management.GetContract(seller) == nil {
		panic(hartconst.ErrInvalidAddress)
	}
	if value < 0 {
		panic(hartconst.ErrNegativeAmount)
	}

	soldKey := append(append([]byte{soldPrefix}, seller...), itemID...)
	if storage.Get(ctx, soldKey) != nil {
		panic(hartconst.ErrAlreadySold)
	}

	if !contract.Call(seller, "isForSale", contract.ReadOnly, itemID).(bool) {
		panic(hartconst.ErrNotForSale)
	}

	price := contract.Call(seller, "getPrice", contract.ReadOnly, itemID).(int)
	if value < price {
		panic(hartconst.ErrUnderpriced)
	}

	if token.balanceOf(ctx, buyer) < value {
		panic(hartconst.ErrInsufficientBalance)
	}

	platform := value * common.GetInt(ctx, settlementFeeKey) / 100
	credits := []credit{
		{Account: seller, Amount: value - platform},
		{Account: common.GetHash160(ctx, feeRecipientKey), Amount: platform},
	}

	storage.Put(ctx, settleLockKey, 1)
	accepted := contract.Call(seller, "onSale", contract.All, buyer, itemID, value).(bool)
	storage.Delete(ctx, settleLockKey)

	if !accepted {
		panic(hartconst.ErrSaleRejected)
	}

	// onSale may have spent buyer's assets
	if token.balanceOf(ctx, buyer) < value {
		panic(hartconst.ErrInsufficientBalance)
	}

	for i := range credits {
		if credits[i].Amount > 0 {
			token.transfer(ctx, buyer, credits[i].Account, credits[i].Amount)
		}
	}

	nonce := common.GetInt(ctx, receiptNonceKey) + 1
	rec := Receipt{
		Nonce:  nonce,
		Buyer:  buyer,
		Seller: seller,
		ItemID: itemID,
		Value:  value,
	}

	storage.Put(ctx, receiptNonceKey, nonce)
	storage.Put(ctx, soldKey, nonce)
	common.SetSerialized(ctx, receiptKey(nonce), rec)

	runtime.Notify("Buy", nonce, buyer, seller, itemID, value)

	return rec
}

// GetReceipt returns the settlement receipt with the given nonce.
func GetReceipt(nonce int) Receipt {
	data := storage.Get(storage.GetReadOnlyContext(), receiptKey(nonce))
	if data == nil {
		panic(hartconst.ErrReceiptNotFound)
	}

	return std.Deserialize(data.([]byte)).(Receipt)
}

// LastReceiptNonce returns the nonce of the latest receipt, 0 if there were
// no settlements.
func LastReceiptNonce() int {
	return common.GetInt(storage.GetReadOnlyContext(), receiptNonceKey)
}

// IsSold checks whether itemID of the seller has been settled.
func IsSold(seller interop.Hash160, itemID []byte) bool {
	key := append(append([]byte{soldPrefix}, seller...), itemID...)
	return storage.Get(storage.GetReadOnlyContext(), key) != nil
}

// GetBurn returns the burn record with the given ID.
func GetBurn(id int) BurnRecord {
	data := storage.Get(storage.GetReadOnlyContext(), burnKey(id))
	if data == nil {
		panic(hartconst.ErrUnknownBurn)
	}

	return std.Deserialize(data.([]byte)).(BurnRecord)
}

// LastBurnID returns the ID of the latest burn, 0 if nothing was burnt.
func LastBurnID() int {
	return common.GetInt(storage.GetReadOnlyContext(), burnNonceKey)
}

// IterateBurns returns an iterator over all burn records of this network in
// ascending ID order.
func IterateBurns() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{burnPrefix},
		storage.ValuesOnly|storage.DeserializeValues)
}

// GetMint returns the mint record of the burn made on the given network.
func GetMint(network, id int) MintRecord {
	data := storage.Get(storage.GetReadOnlyContext(), mintKey(network, id))
	if data == nil {
		panic(hartconst.ErrMintNotFound)
	}

	return std.Deserialize(data.([]byte)).(MintRecord)
}

// IsMinted checks whether the burn made on the given network has been minted.
func IsMinted(network, id int) bool {
	return storage.Get(storage.GetReadOnlyContext(), mintKey(network, id)) != nil
}

// SetMinter changes the account allowed to mint. It can be invoked only by
// the owner.
//
// It produces MinterChanged notification.
func SetMinter(minter interop.Hash160) {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if !common.IsValidHash160(minter) {
		panic(hartconst.ErrInvalidAddress)
	}

	old := common.GetHash160(ctx, minterKey)
	storage.Put(ctx, minterKey, minter)

	runtime.Notify("MinterChanged", old, minter, owner)
}

// SetTransferRecipient changes the account receiving transfer and settlement
// fees. It can be invoked only by the owner.
//
// It produces TransferFeeRecipientChanged notification.
func SetTransferRecipient(recipient interop.Hash160) {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if !common.IsValidHash160(recipient) {
		panic(hartconst.ErrInvalidAddress)
	}

	old := common.GetHash160(ctx, feeRecipientKey)
	storage.Put(ctx, feeRecipientKey, recipient)

	runtime.Notify("TransferFeeRecipientChanged", old, recipient, owner)
}

// SetTransferFee changes the flat fee charged on transfers and burns. It can
// be invoked only by the owner.
//
// It produces TransferFeeChanged notification.
func SetTransferFee(fee int) {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if fee < 0 {
		panic(hartconst.ErrInvalidFee)
	}

	old := common.GetInt(ctx, transferFeeKey)
	common.PutInt(ctx, transferFeeKey, fee)

	runtime.Notify("TransferFeeChanged", old, fee, owner)
}

// SetSettlementFee changes the percentage of settlement value routed to the
// fee recipient. It can be invoked only by the owner.
//
// It produces SettlementFeeChanged notification.
func SetSettlementFee(fee int) {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if fee < 0 || fee > hartconst.MaxSettlementFee {
		panic(hartconst.ErrInvalidFee)
	}

	old := common.GetInt(ctx, settlementFeeKey)
	common.PutInt(ctx, settlementFeeKey, fee)

	runtime.Notify("SettlementFeeChanged", old, fee, owner)
}

// SetMintPauseAddress changes the account allowed to pause mint. It can be
// invoked only by the owner.
//
// It produces MintPauseAddressChanged notification.
func SetMintPauseAddress(addr interop.Hash160) {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if !common.IsValidHash160(addr) {
		panic(hartconst.ErrInvalidAddress)
	}

	old := common.GetHash160(ctx, pauseAddressKey)
	storage.Put(ctx, pauseAddressKey, addr)

	runtime.Notify("MintPauseAddressChanged", old, addr, owner)
}

// SetIsMintPause pauses or resumes mint. It can be invoked only by the pause
// controller. Setting the current state again is allowed.
//
// It produces MintPauseChanged notification.
func SetIsMintPause(paused bool) {
	ctx := storage.GetContext()

	controller := common.GetHash160(ctx, pauseAddressKey)
	if !common.HasRole(controller) {
		panic(hartconst.ErrUnauthorized)
	}

	if paused {
		storage.Put(ctx, mintPausedKey, 1)
	} else {
		storage.Delete(ctx, mintPausedKey)
	}

	runtime.Notify("MintPauseChanged", paused, controller)
}

// TransferOwnership hands all owner permissions to another account. It can
// be invoked only by the owner.
//
// It produces OwnershipTransferred notification.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	owner := checkOwner(ctx)

	if !common.IsValidHash160(newOwner) {
		panic(hartconst.ErrInvalidAddress)
	}

	storage.Put(ctx, ownerKey, newOwner)

	runtime.Notify("OwnershipTransferred", owner, newOwner)
}

// Owner returns the contract owner.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// Minter returns the minter or nothing if it was never set.
func Minter() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), minterKey)
}

// TransferRecipient returns the fee recipient.
func TransferRecipient() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), feeRecipientKey)
}

// TransferFee returns the flat transfer fee.
func TransferFee() int {
	return common.GetInt(storage.GetReadOnlyContext(), transferFeeKey)
}

// SettlementFee returns the settlement fee percentage.
func SettlementFee() int {
	return common.GetInt(storage.GetReadOnlyContext(), settlementFeeKey)
}

// MintPauseAddress returns the pause controller.
func MintPauseAddress() interop.Hash160 {
	return common.GetHash160(storage.GetReadOnlyContext(), pauseAddressKey)
}

// IsMintPaused returns true if mint is paused.
func IsMintPaused() bool {
	return storage.Get(storage.GetReadOnlyContext(), mintPausedKey) != nil
}

// NetworkID returns identifier of the network this ledger belongs to.
func NetworkID() int {
	return common.GetInt(storage.GetReadOnlyContext(), networkIDKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	return common.GetInt(ctx, t.CirculationKey)
}

func (t Token) setSupply(ctx storage.Context, supply int) {
	common.PutInt(ctx, t.CirculationKey, supply)
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	return common.GetInt(ctx, append([]byte{accPrefix}, holder...))
}

// transfer moves amount between accounts, empty from mints and empty to burns.
// Callers are responsible for checking the sender's balance.
func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int) {
	if len(from) == interop.Hash160Len {
		fromKey := append([]byte{accPrefix}, from...)
		common.PutInt(ctx, fromKey, common.GetInt(ctx, fromKey)-amount)
	}

	if len(to) == interop.Hash160Len {
		toKey := append([]byte{accPrefix}, to...)
		common.PutInt(ctx, toKey, common.GetInt(ctx, toKey)+amount)
	}

	runtime.Notify("Transfer", from, to, amount)
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return common.GetHash160(ctx, ownerKey)
}

// checkOwner panics unless the transaction is witnessed by the owner.
func checkOwner(ctx storage.Context) interop.Hash160 {
	owner := getOwner(ctx)
	if !common.HasRole(owner) {
		panic(hartconst.ErrUnauthorized)
	}
	return owner
}

// checkMinter returns the owner or the minter, whichever has witnessed the
// transaction, and panics if none did.
func checkMinter(ctx storage.Context) interop.Hash160 {
	owner := getOwner(ctx)
	if common.HasRole(owner) {
		return owner
	}

	minter := common.GetHash160(ctx, minterKey)
	if common.HasRole(minter) {
		return minter
	}

	panic(hartconst.ErrUnauthorized)
}

func burnKey(id int) []byte {
	return sequenceKey(burnPrefix, id)
}

func receiptKey(nonce int) []byte {
	return sequenceKey(receiptPrefix, nonce)
}

// sequenceKey appends n as 8-byte big-endian number, so that prefix search
// returns records in ascending order.
func sequenceKey(prefix byte, n int) []byte {
	key := []byte{prefix, 0, 0, 0, 0, 0, 0, 0, 0}
	for i := 8; i > 0; i-- {
		key[i] = byte(n & 0xff)
		n = n >> 8
	}
	return key
}

func mintKey(network, id int) []byte {
	return append([]byte{mintPrefix}, []byte(std.Itoa(network, 10)+"."+std.Itoa(id, 10))...)
}
