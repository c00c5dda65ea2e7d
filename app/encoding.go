package app

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"

	gravitytypes "github.com/argus-labs/gravity/x/gravity/types"
)

// EncodingConfig specifies the concrete encoding types used to print and decode gravity
// messages on the client side.
type EncodingConfig struct {
	InterfaceRegistry types.InterfaceRegistry
	Codec             codec.Codec
	Amino             *codec.LegacyAmino
}

// MakeEncodingConfig creates an EncodingConfig with the standard cosmos types and the gravity
// messages registered.
func MakeEncodingConfig() EncodingConfig {
	amino := codec.NewLegacyAmino()
	registry := types.NewInterfaceRegistry()

	std.RegisterLegacyAminoCodec(amino)
	std.RegisterInterfaces(registry)
	gravitytypes.RegisterLegacyAminoCodec(amino)
	gravitytypes.RegisterInterfaces(registry)

	return EncodingConfig{
		InterfaceRegistry: registry,
		Codec:             codec.NewProtoCodec(registry),
		Amino:             amino,
	}
}
