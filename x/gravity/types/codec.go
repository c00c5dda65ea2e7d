package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc is the amino codec behind GetSignBytes on the gravity messages.
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	registerProtoTypes()
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}

// RegisterLegacyAminoCodec registers the transaction messages and the confirmation and event kinds
// they carry under their amino names.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSendToEthereum{}, "gravity/MsgSendToEthereum", nil)
	cdc.RegisterConcrete(&MsgCancelSendToEthereum{}, "gravity/MsgCancelSendToEthereum", nil)
	cdc.RegisterConcrete(&MsgRequestBatchTx{}, "gravity/MsgRequestBatchTx", nil)
	cdc.RegisterConcrete(&MsgSubmitEthereumTxConfirmation{}, "gravity/MsgSubmitEthereumTxConfirmation", nil)
	cdc.RegisterConcrete(&MsgSubmitEthereumEvent{}, "gravity/MsgSubmitEthereumEvent", nil)
	cdc.RegisterConcrete(&MsgDelegateKeys{}, "gravity/MsgDelegateKeys", nil)
	cdc.RegisterConcrete(&MsgEthereumHeightVote{}, "gravity/MsgEthereumHeightVote", nil)

	cdc.RegisterConcrete(&SignerSetTxConfirmation{}, "gravity/SignerSetTxConfirmation", nil)
	cdc.RegisterConcrete(&BatchTxConfirmation{}, "gravity/BatchTxConfirmation", nil)
	cdc.RegisterConcrete(&ContractCallTxConfirmation{}, "gravity/ContractCallTxConfirmation", nil)

	cdc.RegisterConcrete(&SendToCosmosEvent{}, "gravity/SendToCosmosEvent", nil)
	cdc.RegisterConcrete(&BatchExecutedEvent{}, "gravity/BatchExecutedEvent", nil)
	cdc.RegisterConcrete(&ContractCallExecutedEvent{}, "gravity/ContractCallExecutedEvent", nil)
	cdc.RegisterConcrete(&ERC20DeployedEvent{}, "gravity/ERC20DeployedEvent", nil)
	cdc.RegisterConcrete(&SignerSetTxExecutedEvent{}, "gravity/SignerSetTxExecutedEvent", nil)
}

// RegisterInterfaces registers the transaction messages as sdk.Msg implementations and the
// confirmation and event kinds under their gravity interfaces.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations(
		(*sdk.Msg)(nil),
		&MsgSendToEthereum{},
		&MsgCancelSendToEthereum{},
		&MsgRequestBatchTx{},
		&MsgSubmitEthereumTxConfirmation{},
		&MsgSubmitEthereumEvent{},
		&MsgDelegateKeys{},
		&MsgEthereumHeightVote{},
	)

	registry.RegisterInterface(
		ProtoPackage+".EthereumTxConfirmation",
		(*EthereumTxConfirmation)(nil),
		&SignerSetTxConfirmation{},
		&BatchTxConfirmation{},
		&ContractCallTxConfirmation{},
	)

	registry.RegisterInterface(
		ProtoPackage+".EthereumEvent",
		(*EthereumEvent)(nil),
		&SendToCosmosEvent{},
		&BatchExecutedEvent{},
		&ContractCallExecutedEvent{},
		&ERC20DeployedEvent{},
		&SignerSetTxExecutedEvent{},
	)
}

// NewInterfaceRegistry returns an interface registry with the gravity types registered on top of
// the standard cosmos ones.
func NewInterfaceRegistry() cdctypes.InterfaceRegistry {
	registry := cdctypes.NewInterfaceRegistry()
	sdk.RegisterInterfaces(registry)
	RegisterInterfaces(registry)
	return registry
}

// PackEvent packs an observed ethereum event into the Any carried by MsgSubmitEthereumEvent.
func PackEvent(event EthereumEvent) (*cdctypes.Any, error) {
	return cdctypes.NewAnyWithValue(event)
}

// UnpackConfirmation resolves the confirmation carried inside MsgSubmitEthereumTxConfirmation.
func UnpackConfirmation(unpacker cdctypes.AnyUnpacker, confirmation *cdctypes.Any) (EthereumTxConfirmation, error) {
	var conf EthereumTxConfirmation
	if err := unpacker.UnpackAny(confirmation, &conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func registerProtoTypes() {
	for name, msg := range map[string]proto.Message{
		"MsgSendToEthereum":               (*MsgSendToEthereum)(nil),
		"MsgCancelSendToEthereum":         (*MsgCancelSendToEthereum)(nil),
		"MsgRequestBatchTx":               (*MsgRequestBatchTx)(nil),
		"MsgSubmitEthereumTxConfirmation": (*MsgSubmitEthereumTxConfirmation)(nil),
		"ContractCallTxConfirmation":      (*ContractCallTxConfirmation)(nil),
		"BatchTxConfirmation":             (*BatchTxConfirmation)(nil),
		"SignerSetTxConfirmation":         (*SignerSetTxConfirmation)(nil),
		"MsgSubmitEthereumEvent":          (*MsgSubmitEthereumEvent)(nil),
		"MsgDelegateKeys":                 (*MsgDelegateKeys)(nil),
		"DelegateKeysSignMsg":             (*DelegateKeysSignMsg)(nil),
		"MsgEthereumHeightVote":           (*MsgEthereumHeightVote)(nil),

		"EthereumSigner": (*EthereumSigner)(nil),
		"SignerSetTx":    (*SignerSetTx)(nil),
		"ERC20Token":     (*ERC20Token)(nil),
		"SendToEthereum": (*SendToEthereum)(nil),
		"BatchTx":        (*BatchTx)(nil),
		"ContractCallTx": (*ContractCallTx)(nil),
		"Params":         (*Params)(nil),

		"SendToCosmosEvent":         (*SendToCosmosEvent)(nil),
		"BatchExecutedEvent":        (*BatchExecutedEvent)(nil),
		"ContractCallExecutedEvent": (*ContractCallExecutedEvent)(nil),
		"ERC20DeployedEvent":        (*ERC20DeployedEvent)(nil),
		"SignerSetTxExecutedEvent":  (*SignerSetTxExecutedEvent)(nil),
	} {
		proto.RegisterType(msg, ProtoPackage+"."+name)
	}
	registerQueryTypes()
}
