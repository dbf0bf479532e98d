package listing

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Modes of OnSale behaviour.
const (
	ModeAccept = iota
	ModeReject
	ModePanic
	ModeReenter
)

const (
	tokenKey = 't'
	modeKey  = 'm'

	pricePrefix = 'p'
	salePrefix  = 's'
	soldPrefix  = 'd'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}

	args := data.([]any)
	storage.Put(storage.GetContext(), tokenKey, args[0].(interop.Hash160))
}

func SetPrice(itemID []byte, price int) {
	storage.Put(storage.GetContext(), append([]byte{pricePrefix}, itemID...), price)
}

func SetSale(itemID []byte, forSale bool) {
	key := append([]byte{salePrefix}, itemID...)
	if forSale {
		storage.Put(storage.GetContext(), key, 1)
	} else {
		storage.Delete(storage.GetContext(), key)
	}
}

func SetMode(mode int) {
	storage.Put(storage.GetContext(), modeKey, mode)
}

func GetPrice(itemID []byte) int {
	val := storage.Get(storage.GetReadOnlyContext(), append([]byte{pricePrefix}, itemID...))
	if val == nil {
		return 0
	}
	return val.(int)
}

func IsForSale(itemID []byte) bool {
	return storage.Get(storage.GetReadOnlyContext(), append([]byte{salePrefix}, itemID...)) != nil
}

func IsSold(itemID []byte) bool {
	return storage.Get(storage.GetReadOnlyContext(), append([]byte{soldPrefix}, itemID...)) != nil
}

// OnSale marks the item as sold. It can be called only by the token contract.
func OnSale(buyer interop.Hash160, itemID []byte, value int) bool {
	ctx := storage.GetContext()

	token := storage.Get(ctx, tokenKey).(interop.Hash160)
	if !runtime.GetCallingScriptHash().Equals(token) {
		panic("only token can settle")
	}

	mode := ModeAccept
	val := storage.Get(ctx, modeKey)
	if val != nil {
		mode = val.(int)
	}

	switch mode {
	case ModeReject:
		return false
	case ModePanic:
		panic("listing failure")
	case ModeReenter:
		self := runtime.GetExecutingScriptHash()
		contract.Call(token, "buy", contract.All, self, self, itemID, value)
	}

	soldKey := append([]byte{soldPrefix}, itemID...)
	if storage.Get(ctx, soldKey) != nil {
		panic("already sold")
	}
	storage.Put(ctx, soldKey, value)
	storage.Delete(ctx, append([]byte{salePrefix}, itemID...))

	return true
}
