// Package action turns gravity bridge intents into Any envelopes ready for a transaction body.
//
// Every Action encodes. Only some are transaction roots: the *TxConfirmation kinds exist to be
// embedded inside SubmitEthereumTxConfirmation, and DelegateKeysSignMsg is the payload a
// validator signs off-chain.
package action

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"

	"github.com/argus-labs/gravity/x/gravity/types"
)

// Action is one gravity bridge intent. The set of implementations is closed.
type Action interface {
	// Name is the variant name reported in errors.
	Name() string
	// Msg builds the gravity.v1 wire message for the action.
	Msg() proto.Message

	isAction()
}

var (
	_ Action = &SendToEthereum{}
	_ Action = &CancelSendToEthereum{}
	_ Action = &RequestBatchTx{}
	_ Action = &SubmitEthereumTxConfirmation{}
	_ Action = &ContractCallTxConfirmation{}
	_ Action = &BatchTxConfirmation{}
	_ Action = &SignerSetTxConfirmation{}
	_ Action = &SubmitEthereumEvent{}
	_ Action = &SetDelegateKeys{}
	_ Action = &DelegateKeysSignMsg{}
	_ Action = &SubmitEthereumHeightVote{}
)

// SendToEthereum represents a MsgSendToEthereum.
type SendToEthereum struct {
	Sender            string
	EthereumRecipient string
	Amount            sdk.Coin
	BridgeFee         sdk.Coin
}

func (a *SendToEthereum) Name() string { return "SendToEthereum" }

func (a *SendToEthereum) Msg() proto.Message {
	amount, fee := a.Amount, a.BridgeFee
	return &types.MsgSendToEthereum{
		Sender:            a.Sender,
		EthereumRecipient: a.EthereumRecipient,
		Amount:            &amount,
		BridgeFee:         &fee,
	}
}

// CancelSendToEthereum represents a MsgCancelSendToEthereum.
type CancelSendToEthereum struct {
	Sender string
	ID     uint64
}

func (a *CancelSendToEthereum) Name() string { return "CancelSendToEthereum" }

func (a *CancelSendToEthereum) Msg() proto.Message {
	return &types.MsgCancelSendToEthereum{Id: a.ID, Sender: a.Sender}
}

// RequestBatchTx represents a MsgRequestBatchTx.
type RequestBatchTx struct {
	Denom  string
	Signer string
}

func (a *RequestBatchTx) Name() string { return "RequestBatchTx" }

func (a *RequestBatchTx) Msg() proto.Message {
	return &types.MsgRequestBatchTx{Denom: a.Denom, Signer: a.Signer}
}

// SubmitEthereumTxConfirmation represents a MsgSubmitEthereumTxConfirmation. Confirmation is the
// envelope of a ContractCallTxConfirmation, BatchTxConfirmation or SignerSetTxConfirmation.
type SubmitEthereumTxConfirmation struct {
	Confirmation *codectypes.Any
	Signer       string
}

func (a *SubmitEthereumTxConfirmation) Name() string { return "SubmitEthereumTxConfirmation" }

func (a *SubmitEthereumTxConfirmation) Msg() proto.Message {
	return &types.MsgSubmitEthereumTxConfirmation{Confirmation: a.Confirmation, Signer: a.Signer}
}

// ContractCallTxConfirmation represents a ContractCallTxConfirmation. Not a transaction message.
type ContractCallTxConfirmation struct {
	InvalidationScope []byte
	InvalidationNonce uint64
	EthereumSigner    string
	Signature         []byte
}

func (a *ContractCallTxConfirmation) Name() string { return "ContractCallTxConfirmation" }

func (a *ContractCallTxConfirmation) Msg() proto.Message {
	return &types.ContractCallTxConfirmation{
		InvalidationScope: a.InvalidationScope,
		InvalidationNonce: a.InvalidationNonce,
		EthereumSigner:    a.EthereumSigner,
		Signature:         a.Signature,
	}
}

// BatchTxConfirmation represents a BatchTxConfirmation. Not a transaction message.
type BatchTxConfirmation struct {
	TokenContract  string
	BatchNonce     uint64
	EthereumSigner string
	Signature      []byte
}

func (a *BatchTxConfirmation) Name() string { return "BatchTxConfirmation" }

func (a *BatchTxConfirmation) Msg() proto.Message {
	return &types.BatchTxConfirmation{
		TokenContract:  a.TokenContract,
		BatchNonce:     a.BatchNonce,
		EthereumSigner: a.EthereumSigner,
		Signature:      a.Signature,
	}
}

// SignerSetTxConfirmation represents a SignerSetTxConfirmation. Not a transaction message.
type SignerSetTxConfirmation struct {
	SignerSetNonce uint64
	EthereumSigner string
	Signature      []byte
}

func (a *SignerSetTxConfirmation) Name() string { return "SignerSetTxConfirmation" }

func (a *SignerSetTxConfirmation) Msg() proto.Message {
	return &types.SignerSetTxConfirmation{
		SignerSetNonce: a.SignerSetNonce,
		EthereumSigner: a.EthereumSigner,
		Signature:      a.Signature,
	}
}

// SubmitEthereumEvent represents a MsgSubmitEthereumEvent.
type SubmitEthereumEvent struct {
	Event  *codectypes.Any
	Signer string
}

func (a *SubmitEthereumEvent) Name() string { return "SubmitEthereumEvent" }

func (a *SubmitEthereumEvent) Msg() proto.Message {
	return &types.MsgSubmitEthereumEvent{Event: a.Event, Signer: a.Signer}
}

// SetDelegateKeys represents a MsgDelegateKeys.
type SetDelegateKeys struct {
	ValidatorAddress    string
	OrchestratorAddress string
	EthereumAddress     string
	EthSignature        []byte
}

func (a *SetDelegateKeys) Name() string { return "SetDelegateKeys" }

func (a *SetDelegateKeys) Msg() proto.Message {
	return &types.MsgDelegateKeys{
		ValidatorAddress:    a.ValidatorAddress,
		OrchestratorAddress: a.OrchestratorAddress,
		EthereumAddress:     a.EthereumAddress,
		EthSignature:        a.EthSignature,
	}
}

// DelegateKeysSignMsg represents a DelegateKeysSignMsg, the payload signed with the ethereum key
// when registering delegate keys. Not a transaction message.
type DelegateKeysSignMsg struct {
	ValidatorAddress string
	Nonce            uint64
}

func (a *DelegateKeysSignMsg) Name() string { return "DelegateKeysSignMsg" }

func (a *DelegateKeysSignMsg) Msg() proto.Message {
	return &types.DelegateKeysSignMsg{ValidatorAddress: a.ValidatorAddress, Nonce: a.Nonce}
}

// SubmitEthereumHeightVote represents a MsgEthereumHeightVote.
type SubmitEthereumHeightVote struct {
	EthereumHeight uint64
	Signer         string
}

func (a *SubmitEthereumHeightVote) Name() string { return "SubmitEthereumHeightVote" }

func (a *SubmitEthereumHeightVote) Msg() proto.Message {
	return &types.MsgEthereumHeightVote{EthereumHeight: a.EthereumHeight, Signer: a.Signer}
}

func (*SendToEthereum) isAction()               {}
func (*CancelSendToEthereum) isAction()         {}
func (*RequestBatchTx) isAction()               {}
func (*SubmitEthereumTxConfirmation) isAction() {}
func (*ContractCallTxConfirmation) isAction()   {}
func (*BatchTxConfirmation) isAction()          {}
func (*SignerSetTxConfirmation) isAction()      {}
func (*SubmitEthereumEvent) isAction()          {}
func (*SetDelegateKeys) isAction()              {}
func (*DelegateKeysSignMsg) isAction()          {}
func (*SubmitEthereumHeightVote) isAction()     {}
