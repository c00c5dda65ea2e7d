package types

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
)

// The message types below mirror gravity/v1/msgs.proto field for field. They carry protobuf struct
// tags so the gogoproto table marshaller can encode them without generated code.

// MsgSendToEthereum submits an ERC20 transfer to an ethereum recipient.
type MsgSendToEthereum struct {
	Sender            string    `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	EthereumRecipient string    `protobuf:"bytes,2,opt,name=ethereum_recipient,json=ethereumRecipient,proto3" json:"ethereum_recipient,omitempty"`
	Amount            *sdk.Coin `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	BridgeFee         *sdk.Coin `protobuf:"bytes,4,opt,name=bridge_fee,json=bridgeFee,proto3" json:"bridge_fee,omitempty"`
}

func (m *MsgSendToEthereum) Reset()         { *m = MsgSendToEthereum{} }
func (m *MsgSendToEthereum) String() string { return proto.CompactTextString(m) }
func (*MsgSendToEthereum) ProtoMessage()    {}

// MsgCancelSendToEthereum removes a pending transfer from the outgoing pool.
type MsgCancelSendToEthereum struct {
	Id     uint64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Sender string `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
}

func (m *MsgCancelSendToEthereum) Reset()         { *m = MsgCancelSendToEthereum{} }
func (m *MsgCancelSendToEthereum) String() string { return proto.CompactTextString(m) }
func (*MsgCancelSendToEthereum) ProtoMessage()    {}

// MsgRequestBatchTx asks the module to build a batch for the given denom.
type MsgRequestBatchTx struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Signer string `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty"`
}

func (m *MsgRequestBatchTx) Reset()         { *m = MsgRequestBatchTx{} }
func (m *MsgRequestBatchTx) String() string { return proto.CompactTextString(m) }
func (*MsgRequestBatchTx) ProtoMessage()    {}

// MsgSubmitEthereumTxConfirmation carries one of the *TxConfirmation messages packed as an Any.
type MsgSubmitEthereumTxConfirmation struct {
	Confirmation *codectypes.Any `protobuf:"bytes,1,opt,name=confirmation,proto3" json:"confirmation,omitempty"`
	Signer       string          `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty"`
}

func (m *MsgSubmitEthereumTxConfirmation) Reset()         { *m = MsgSubmitEthereumTxConfirmation{} }
func (m *MsgSubmitEthereumTxConfirmation) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitEthereumTxConfirmation) ProtoMessage()    {}

// ContractCallTxConfirmation is an orchestrator's signature over a ContractCallTx.
type ContractCallTxConfirmation struct {
	InvalidationScope []byte `protobuf:"bytes,1,opt,name=invalidation_scope,json=invalidationScope,proto3" json:"invalidation_scope,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	EthereumSigner    string `protobuf:"bytes,3,opt,name=ethereum_signer,json=ethereumSigner,proto3" json:"ethereum_signer,omitempty"`
	Signature         []byte `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *ContractCallTxConfirmation) Reset()         { *m = ContractCallTxConfirmation{} }
func (m *ContractCallTxConfirmation) String() string { return proto.CompactTextString(m) }
func (*ContractCallTxConfirmation) ProtoMessage()    {}

// BatchTxConfirmation is an orchestrator's signature over a BatchTx.
type BatchTxConfirmation struct {
	TokenContract  string `protobuf:"bytes,1,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	BatchNonce     uint64 `protobuf:"varint,2,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
	EthereumSigner string `protobuf:"bytes,3,opt,name=ethereum_signer,json=ethereumSigner,proto3" json:"ethereum_signer,omitempty"`
	Signature      []byte `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *BatchTxConfirmation) Reset()         { *m = BatchTxConfirmation{} }
func (m *BatchTxConfirmation) String() string { return proto.CompactTextString(m) }
func (*BatchTxConfirmation) ProtoMessage()    {}

// SignerSetTxConfirmation is an orchestrator's signature over a SignerSetTx.
type SignerSetTxConfirmation struct {
	SignerSetNonce uint64 `protobuf:"varint,1,opt,name=signer_set_nonce,json=signerSetNonce,proto3" json:"signer_set_nonce,omitempty"`
	EthereumSigner string `protobuf:"bytes,2,opt,name=ethereum_signer,json=ethereumSigner,proto3" json:"ethereum_signer,omitempty"`
	Signature      []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *SignerSetTxConfirmation) Reset()         { *m = SignerSetTxConfirmation{} }
func (m *SignerSetTxConfirmation) String() string { return proto.CompactTextString(m) }
func (*SignerSetTxConfirmation) ProtoMessage()    {}

// MsgSubmitEthereumEvent carries an observed ethereum event packed as an Any.
type MsgSubmitEthereumEvent struct {
	Event  *codectypes.Any `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	Signer string          `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty"`
}

func (m *MsgSubmitEthereumEvent) Reset()         { *m = MsgSubmitEthereumEvent{} }
func (m *MsgSubmitEthereumEvent) String() string { return proto.CompactTextString(m) }
func (*MsgSubmitEthereumEvent) ProtoMessage()    {}

// MsgDelegateKeys registers an orchestrator and ethereum key for a validator.
type MsgDelegateKeys struct {
	ValidatorAddress    string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3" json:"validator_address,omitempty"`
	OrchestratorAddress string `protobuf:"bytes,2,opt,name=orchestrator_address,json=orchestratorAddress,proto3" json:"orchestrator_address,omitempty"`
	EthereumAddress     string `protobuf:"bytes,3,opt,name=ethereum_address,json=ethereumAddress,proto3" json:"ethereum_address,omitempty"`
	EthSignature        []byte `protobuf:"bytes,4,opt,name=eth_signature,json=ethSignature,proto3" json:"eth_signature,omitempty"`
}

func (m *MsgDelegateKeys) Reset()         { *m = MsgDelegateKeys{} }
func (m *MsgDelegateKeys) String() string { return proto.CompactTextString(m) }
func (*MsgDelegateKeys) ProtoMessage()    {}

// DelegateKeysSignMsg is the payload a validator's ethereum key signs to prove ownership.
type DelegateKeysSignMsg struct {
	ValidatorAddress string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3" json:"validator_address,omitempty"`
	Nonce            uint64 `protobuf:"varint,2,opt,name=nonce,proto3" json:"nonce,omitempty"`
}

func (m *DelegateKeysSignMsg) Reset()         { *m = DelegateKeysSignMsg{} }
func (m *DelegateKeysSignMsg) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysSignMsg) ProtoMessage()    {}

// MsgEthereumHeightVote records the latest ethereum height an orchestrator has observed.
type MsgEthereumHeightVote struct {
	EthereumHeight uint64 `protobuf:"varint,1,opt,name=ethereum_height,json=ethereumHeight,proto3" json:"ethereum_height,omitempty"`
	Signer         string `protobuf:"bytes,2,opt,name=signer,proto3" json:"signer,omitempty"`
}

func (m *MsgEthereumHeightVote) Reset()         { *m = MsgEthereumHeightVote{} }
func (m *MsgEthereumHeightVote) String() string { return proto.CompactTextString(m) }
func (*MsgEthereumHeightVote) ProtoMessage()    {}
