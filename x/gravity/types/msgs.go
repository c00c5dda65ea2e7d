package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/migrations/legacytx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gogo/protobuf/proto"
)

var (
	_ sdk.Msg = &MsgSendToEthereum{}
	_ sdk.Msg = &MsgCancelSendToEthereum{}
	_ sdk.Msg = &MsgRequestBatchTx{}
	_ sdk.Msg = &MsgSubmitEthereumTxConfirmation{}
	_ sdk.Msg = &MsgSubmitEthereumEvent{}
	_ sdk.Msg = &MsgDelegateKeys{}
	_ sdk.Msg = &MsgEthereumHeightVote{}

	_ legacytx.LegacyMsg = &MsgSendToEthereum{}
	_ legacytx.LegacyMsg = &MsgCancelSendToEthereum{}
	_ legacytx.LegacyMsg = &MsgRequestBatchTx{}
	_ legacytx.LegacyMsg = &MsgSubmitEthereumTxConfirmation{}
	_ legacytx.LegacyMsg = &MsgSubmitEthereumEvent{}
	_ legacytx.LegacyMsg = &MsgDelegateKeys{}
	_ legacytx.LegacyMsg = &MsgEthereumHeightVote{}

	_ EthereumTxConfirmation = &SignerSetTxConfirmation{}
	_ EthereumTxConfirmation = &BatchTxConfirmation{}
	_ EthereumTxConfirmation = &ContractCallTxConfirmation{}

	_ EthereumEvent = &SendToCosmosEvent{}
	_ EthereumEvent = &BatchExecutedEvent{}
	_ EthereumEvent = &ContractCallExecutedEvent{}
	_ EthereumEvent = &ERC20DeployedEvent{}
	_ EthereumEvent = &SignerSetTxExecutedEvent{}
)

// EthereumTxConfirmation is implemented by the signatures orchestrators submit over outgoing
// ethereum transactions. They only ever travel inside MsgSubmitEthereumTxConfirmation.
type EthereumTxConfirmation interface {
	proto.Message
	GetEthereumSigner() string
	GetSignature() []byte
}

// EthereumEvent is implemented by events observed on ethereum and attested by orchestrators.
type EthereumEvent interface {
	proto.Message
	GetEventNonce() uint64
}

func (m *SignerSetTxConfirmation) GetEthereumSigner() string    { return m.EthereumSigner }
func (m *SignerSetTxConfirmation) GetSignature() []byte         { return m.Signature }
func (m *BatchTxConfirmation) GetEthereumSigner() string        { return m.EthereumSigner }
func (m *BatchTxConfirmation) GetSignature() []byte             { return m.Signature }
func (m *ContractCallTxConfirmation) GetEthereumSigner() string { return m.EthereumSigner }
func (m *ContractCallTxConfirmation) GetSignature() []byte      { return m.Signature }

// Route implements legacytx.LegacyMsg
func (m *MsgSendToEthereum) Route() string { return RouterKey }

// Type implements legacytx.LegacyMsg
func (m *MsgSendToEthereum) Type() string { return TypeMsgSendToEthereum }

// GetSignBytes implements legacytx.LegacyMsg
func (m *MsgSendToEthereum) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

// ValidateBasic implements sdk.Msg
func (m *MsgSendToEthereum) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("sender: %s", err)
	}
	if err := validateEthAddress(m.EthereumRecipient); err != nil {
		return errorsmod.Wrap(err, "ethereum recipient")
	}
	if m.Amount == nil || !m.Amount.IsValid() || m.Amount.IsZero() {
		return sdkerrors.ErrInvalidCoins.Wrapf("amount %s", m.Amount)
	}
	if m.BridgeFee == nil || !m.BridgeFee.IsValid() || m.BridgeFee.IsZero() {
		return sdkerrors.ErrInvalidCoins.Wrapf("bridge fee %s", m.BridgeFee)
	}
	if m.Amount.Denom != m.BridgeFee.Denom {
		return sdkerrors.ErrInvalidCoins.Wrapf("fee denom %s does not match amount denom %s", m.BridgeFee.Denom, m.Amount.Denom)
	}
	return nil
}

// GetSigners implements sdk.Msg
func (m *MsgSendToEthereum) GetSigners() []sdk.AccAddress {
	return mustSigner(m.Sender)
}

// Route implements legacytx.LegacyMsg
func (m *MsgCancelSendToEthereum) Route() string { return RouterKey }

// Type implements legacytx.LegacyMsg
func (m *MsgCancelSendToEthereum) Type() string { return TypeMsgCancelSendToEthereum }

// GetSignBytes implements legacytx.LegacyMsg
func (m *MsgCancelSendToEthereum) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

// ValidateBasic implements sdk.Msg
func (m *MsgCancelSendToEthereum) ValidateBasic() error {
	if m.Id == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("id cannot be 0")
	}
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("sender: %s", err)
	}
	return nil
}

// GetSigners implements sdk.Msg
func (m *MsgCancelSendToEthereum) GetSigners() []sdk.AccAddress {
	return mustSigner(m.Sender)
}

// Route implements legacytx.LegacyMsg
func (m *MsgRequestBatchTx) Route() string { return RouterKey }

// Type implements legacytx.LegacyMsg
func (m *MsgRequestBatchTx) Type() string { return TypeMsgRequestBatchTx }

// GetSignBytes implements legacytx.LegacyMsg
func (m *MsgRequestBatchTx) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

// ValidateBasic implements sdk.Msg
func (m *MsgRequestBatchTx) ValidateBasic() error {
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return sdkerrors.ErrInvalidCoins.Wrap(err.Error())
	}
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("signer: %s", err)
	}
	return nil
}

// GetSigners implements sdk.Msg
func (m *MsgRequestBatchTx) GetSigners() []sdk.AccAddress {
	return mustSigner(m.Signer)
}

// Route implements legacytx.LegacyMsg
func (m *MsgSubmitEthereumTxConfirmation) Route() string { return RouterKey }

// Type implements legacytx.LegacyMsg
func (m *MsgSubmitEthereumTxConfirmation) Type() string { return TypeMsgSubmitEthereumTxConfirmation }

// GetSignBytes implements legacytx.LegacyMsg
func (m *MsgSubmitEthereumTxConfirmation) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

// ValidateBasic implements sdk.Msg
func (m *MsgSubmitEthereumTxConfirmation) ValidateBasic() error {
	if m.Confirmation == nil || m.Confirmation.TypeUrl == "" {
		return ErrEmpty.Wrap("confirmation")
	}
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("signer: %s", err)
	}
	return nil
}

// GetSigners implements sdk.Msg
func (m *MsgSubmitEthereumTxConfirmation) GetSigners() []sdk.AccAddress {
	return mustSigner(m.Signer)
}

// Route implements legacytx.LegacyMsg
func (m *MsgSubmitEthereumEvent) Route() string { return RouterKey }

// Type implements legacytx.LegacyMsg
func (m *MsgSubmitEthereumEvent) Type() string { return TypeMsgSubmitEthereumEvent }

// GetSignBytes implements legacytx.LegacyMsg
func (m *MsgSubmitEthereumEvent) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

// ValidateBasic implements sdk.Msg
func (m *MsgSubmitEthereumEvent) ValidateBasic() error {
	if m.Event == nil || m.Event.TypeUrl == "" {
		return ErrEmpty.Wrap("event")
	}
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("signer: %s", err)
	}
	return nil
}

// GetSigners implements sdk.Msg
func (m *MsgSubmitEthereumEvent) GetSigners() []sdk.AccAddress {
	return mustSigner(m.Signer)
}

// Route implements legacytx.LegacyMsg
func (m *MsgDelegateKeys) Route() string { return RouterKey }

// Type implements legacytx.LegacyMsg
func (m *MsgDelegateKeys) Type() string { return TypeMsgDelegateKeys }

// GetSignBytes implements legacytx.LegacyMsg
func (m *MsgDelegateKeys) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

// ValidateBasic implements sdk.Msg
func (m *MsgDelegateKeys) ValidateBasic() error {
	if _, err := sdk.ValAddressFromBech32(m.ValidatorAddress); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("validator: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.OrchestratorAddress); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("orchestrator: %s", err)
	}
	if err := validateEthAddress(m.EthereumAddress); err != nil {
		return err
	}
	if len(m.EthSignature) == 0 {
		return ErrEmpty.Wrap("ethereum signature")
	}
	return nil
}

// GetSigners implements sdk.Msg. The validator operator signs the registration.
func (m *MsgDelegateKeys) GetSigners() []sdk.AccAddress {
	valAddr, err := sdk.ValAddressFromBech32(m.ValidatorAddress)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sdk.AccAddress(valAddr)}
}

// Route implements legacytx.LegacyMsg
func (m *MsgEthereumHeightVote) Route() string { return RouterKey }

// Type implements legacytx.LegacyMsg
func (m *MsgEthereumHeightVote) Type() string { return TypeMsgEthereumHeightVote }

// GetSignBytes implements legacytx.LegacyMsg
func (m *MsgEthereumHeightVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(m))
}

// ValidateBasic implements sdk.Msg
func (m *MsgEthereumHeightVote) ValidateBasic() error {
	if m.EthereumHeight == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("ethereum height cannot be 0")
	}
	if _, err := sdk.AccAddressFromBech32(m.Signer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("signer: %s", err)
	}
	return nil
}

// GetSigners implements sdk.Msg
func (m *MsgEthereumHeightVote) GetSigners() []sdk.AccAddress {
	return mustSigner(m.Signer)
}

func mustSigner(bech string) []sdk.AccAddress {
	accAddr, err := sdk.AccAddressFromBech32(bech)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{accAddr}
}

func validateEthAddress(addr string) error {
	if addr == "" {
		return ErrEmpty.Wrap("ethereum address")
	}
	if !common.IsHexAddress(addr) {
		return ErrInvalidEthAddress.Wrapf("%s is not a hex address", addr)
	}
	return nil
}
