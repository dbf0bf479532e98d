/*
Package hart implements HART ledger contract.

HART is a NEP-17 compatible fungible asset with a flat transfer fee. Besides
plain transfers the contract provides a burn/mint bridge moving assets
between networks, marketplace settlement with listing contracts and a set of
governance roles.

Every transfer and burn charges the transfer fee routed to the fee recipient.
Burn removes assets from circulation and stores a BurnRecord with a SHA256
details hash over the record fields. Mint on a destination network credits
the burner once per origin network and burn ID. Mint can be stopped by the
pause controller at any time.

Settlement (Buy method) asks the listing contract whether the item is for
sale and for its price, splits the paid value between the seller and the fee
recipient according to the settlement fee percentage, calls onSale of the
listing and stores a Receipt. Any rejection aborts the whole invocation
leaving no state changes.

# Roles

  - owner: assigns other roles, changes fees, mints, updates the contract
  - minter: mints
  - pause controller: pauses and resumes mint
  - fee recipient: receives transfer and settlement fees

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification. Produced when assets leave circulation. Relays catch it
to mint the value on another network.

	Burn:
	  - name: id
	    type: Integer
	  - name: burner
	    type: Hash160
	  - name: value
	    type: Integer
	  - name: details
	    type: Hash256
	  - name: data
	    type: String
	  - name: network
	    type: Integer

Mint notification. Produced when a burn of the origin network is minted.

	Mint:
	  - name: id
	    type: Integer
	  - name: burner
	    type: Hash160
	  - name: value
	    type: Integer
	  - name: details
	    type: Hash256
	  - name: network
	    type: Integer
	  - name: authorizer
	    type: Hash160
	  - name: status
	    type: Boolean

Buy notification. Produced on settlement, nonce identifies the receipt.

	Buy:
	  - name: nonce
	    type: Integer
	  - name: buyer
	    type: Hash160
	  - name: seller
	    type: Hash160
	  - name: itemID
	    type: ByteArray
	  - name: value
	    type: Integer

Governance notifications carry the old value, the new value and the account
that made the change. MintPauseChanged carries the new status and the pause
controller.

	MinterChanged:
	  - name: oldMinter
	    type: Hash160
	  - name: newMinter
	    type: Hash160
	  - name: modifier
	    type: Hash160
	TransferFeeRecipientChanged:
	  - name: oldRecipient
	    type: Hash160
	  - name: newRecipient
	    type: Hash160
	  - name: modifier
	    type: Hash160
	TransferFeeChanged:
	  - name: oldFee
	    type: Integer
	  - name: newFee
	    type: Integer
	  - name: modifier
	    type: Hash160
	SettlementFeeChanged:
	  - name: oldFee
	    type: Integer
	  - name: newFee
	    type: Integer
	  - name: modifier
	    type: Hash160
	MintPauseAddressChanged:
	  - name: oldAddress
	    type: Hash160
	  - name: newAddress
	    type: Hash160
	  - name: modifier
	    type: Hash160
	MintPauseChanged:
	  - name: status
	    type: Boolean
	  - name: modifier
	    type: Hash160
	OwnershipTransferred:
	  - name: oldOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160

# Contract storage model

	| Key                    | Value                    |
	|------------------------|--------------------------|
	| "supply"               | total supply             |
	| 'b' + account          | balance                  |
	| 'B' + burn ID (BE)     | serialized BurnRecord    |
	| 'M' + "network.id"     | serialized MintRecord    |
	| 'R' + nonce (BE)       | serialized Receipt       |
	| 'S' + seller + item ID | receipt nonce            |
	| 'o'                    | owner                    |
	| 'm'                    | minter                   |
	| 'p'                    | pause controller         |
	| 'z'                    | set while mint is paused |
	| 'r'                    | fee recipient            |
	| 'f'                    | transfer fee             |
	| 's'                    | settlement fee percent   |
	| 'n'                    | network ID               |
	| 'i'                    | latest burn ID           |
	| 'c'                    | latest receipt nonce     |
	| 'l'                    | set during onSale call   |
*/
package hart
