package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrEncode            = errorsmod.Register(ModuleName, 2, "failed to encode message")
	ErrNotTxMsg          = errorsmod.Register(ModuleName, 3, "message cannot be submitted in a transaction")
	ErrRemoteCall        = errorsmod.Register(ModuleName, 4, "remote call failed")
	ErrInvalidEthAddress = errorsmod.Register(ModuleName, 5, "invalid ethereum address")
	ErrInvalidSignature  = errorsmod.Register(ModuleName, 6, "invalid ethereum signature")
	ErrEmpty             = errorsmod.Register(ModuleName, 7, "empty")
)
