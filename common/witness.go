package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrWitnessFailed appears when the method must be called
// by the account owner but was not.
const ErrWitnessFailed = "unauthorized"

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller interop.Hash160) {
	if !IsUsableAddress(caller) {
		panic(ErrWitnessFailed)
	}
}

// IsUsableAddress checks if the account is either witnessed by the
// transaction or is the contract calling the current one.
func IsUsableAddress(addr interop.Hash160) bool {
	if !IsValidHash160(addr) {
		return false
	}

	if runtime.CheckWitness(addr) {
		return true
	}

	// Check if a smart contract is calling script hash
	callingScriptHash := runtime.GetCallingScriptHash()
	return callingScriptHash.Equals(addr)
}

// HasRole checks that role is assigned and witnessed. Unassigned roles never
// pass the check.
func HasRole(holder interop.Hash160) bool {
	if len(holder) != interop.Hash160Len {
		return false
	}
	return runtime.CheckWitness(holder)
}
