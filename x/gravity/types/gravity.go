package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
)

// EthereumSigner is a member of a signer set together with its voting power.
type EthereumSigner struct {
	Power           uint64 `protobuf:"varint,1,opt,name=power,proto3" json:"power,omitempty"`
	EthereumAddress string `protobuf:"bytes,2,opt,name=ethereum_address,json=ethereumAddress,proto3" json:"ethereum_address,omitempty"`
}

func (m *EthereumSigner) Reset()         { *m = EthereumSigner{} }
func (m *EthereumSigner) String() string { return proto.CompactTextString(m) }
func (*EthereumSigner) ProtoMessage()    {}

// SignerSetTx is the bridge contract validator set update for a given nonce.
type SignerSetTx struct {
	Nonce   uint64            `protobuf:"varint,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Height  uint64            `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	Signers []*EthereumSigner `protobuf:"bytes,3,rep,name=signers,proto3" json:"signers,omitempty"`
}

func (m *SignerSetTx) Reset()         { *m = SignerSetTx{} }
func (m *SignerSetTx) String() string { return proto.CompactTextString(m) }
func (*SignerSetTx) ProtoMessage()    {}

// ERC20Token is an amount of a token identified by its ethereum contract.
type ERC20Token struct {
	Contract string `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	Amount   string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ERC20Token) Reset()         { *m = ERC20Token{} }
func (m *ERC20Token) String() string { return proto.CompactTextString(m) }
func (*ERC20Token) ProtoMessage()    {}

// SendToEthereum is a transfer sitting in the outgoing pool or inside a batch.
type SendToEthereum struct {
	Id                uint64      `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Sender            string      `protobuf:"bytes,2,opt,name=sender,proto3" json:"sender,omitempty"`
	EthereumRecipient string      `protobuf:"bytes,3,opt,name=ethereum_recipient,json=ethereumRecipient,proto3" json:"ethereum_recipient,omitempty"`
	Erc20Token        *ERC20Token `protobuf:"bytes,4,opt,name=erc20_token,json=erc20Token,proto3" json:"erc20_token,omitempty"`
	Erc20Fee          *ERC20Token `protobuf:"bytes,5,opt,name=erc20_fee,json=erc20Fee,proto3" json:"erc20_fee,omitempty"`
}

func (m *SendToEthereum) Reset()         { *m = SendToEthereum{} }
func (m *SendToEthereum) String() string { return proto.CompactTextString(m) }
func (*SendToEthereum) ProtoMessage()    {}

// BatchTx is a set of transfers of one token executed together on ethereum.
type BatchTx struct {
	BatchNonce    uint64            `protobuf:"varint,1,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
	Timeout       uint64            `protobuf:"varint,2,opt,name=timeout,proto3" json:"timeout,omitempty"`
	Transactions  []*SendToEthereum `protobuf:"bytes,3,rep,name=transactions,proto3" json:"transactions,omitempty"`
	TokenContract string            `protobuf:"bytes,4,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Height        uint64            `protobuf:"varint,5,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *BatchTx) Reset()         { *m = BatchTx{} }
func (m *BatchTx) String() string { return proto.CompactTextString(m) }
func (*BatchTx) ProtoMessage()    {}

// ContractCallTx is an arbitrary call executed by the bridge contract.
type ContractCallTx struct {
	InvalidationNonce uint64        `protobuf:"varint,1,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	InvalidationScope []byte        `protobuf:"bytes,2,opt,name=invalidation_scope,json=invalidationScope,proto3" json:"invalidation_scope,omitempty"`
	Address           string        `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	Payload           []byte        `protobuf:"bytes,4,opt,name=payload,proto3" json:"payload,omitempty"`
	Timeout           uint64        `protobuf:"varint,5,opt,name=timeout,proto3" json:"timeout,omitempty"`
	Tokens            []*ERC20Token `protobuf:"bytes,6,rep,name=tokens,proto3" json:"tokens,omitempty"`
	Fees              []*ERC20Token `protobuf:"bytes,7,rep,name=fees,proto3" json:"fees,omitempty"`
	Height            uint64        `protobuf:"varint,8,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *ContractCallTx) Reset()         { *m = ContractCallTx{} }
func (m *ContractCallTx) String() string { return proto.CompactTextString(m) }
func (*ContractCallTx) ProtoMessage()    {}

// SendToCosmosEvent is emitted by the bridge contract when tokens are locked for a cosmos receiver.
type SendToCosmosEvent struct {
	EventNonce     uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	TokenContract  string `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Amount         string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	EthereumSender string `protobuf:"bytes,4,opt,name=ethereum_sender,json=ethereumSender,proto3" json:"ethereum_sender,omitempty"`
	CosmosReceiver string `protobuf:"bytes,5,opt,name=cosmos_receiver,json=cosmosReceiver,proto3" json:"cosmos_receiver,omitempty"`
	EthereumHeight uint64 `protobuf:"varint,6,opt,name=ethereum_height,json=ethereumHeight,proto3" json:"ethereum_height,omitempty"`
}

func (m *SendToCosmosEvent) Reset()         { *m = SendToCosmosEvent{} }
func (m *SendToCosmosEvent) String() string { return proto.CompactTextString(m) }
func (*SendToCosmosEvent) ProtoMessage()    {}

func (m *SendToCosmosEvent) GetEventNonce() uint64 { return m.EventNonce }

// BatchExecutedEvent is emitted when a batch has been executed by the bridge contract.
type BatchExecutedEvent struct {
	TokenContract  string `protobuf:"bytes,1,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	EventNonce     uint64 `protobuf:"varint,2,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	EthereumHeight uint64 `protobuf:"varint,3,opt,name=ethereum_height,json=ethereumHeight,proto3" json:"ethereum_height,omitempty"`
	BatchNonce     uint64 `protobuf:"varint,4,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
}

func (m *BatchExecutedEvent) Reset()         { *m = BatchExecutedEvent{} }
func (m *BatchExecutedEvent) String() string { return proto.CompactTextString(m) }
func (*BatchExecutedEvent) ProtoMessage()    {}

func (m *BatchExecutedEvent) GetEventNonce() uint64 { return m.EventNonce }

// ContractCallExecutedEvent is emitted when a contract call has been executed by the bridge contract.
type ContractCallExecutedEvent struct {
	EventNonce        uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	InvalidationScope []byte `protobuf:"bytes,2,opt,name=invalidation_scope,json=invalidationScope,proto3" json:"invalidation_scope,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,3,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
	EthereumHeight    uint64 `protobuf:"varint,4,opt,name=ethereum_height,json=ethereumHeight,proto3" json:"ethereum_height,omitempty"`
}

func (m *ContractCallExecutedEvent) Reset()         { *m = ContractCallExecutedEvent{} }
func (m *ContractCallExecutedEvent) String() string { return proto.CompactTextString(m) }
func (*ContractCallExecutedEvent) ProtoMessage()    {}

func (m *ContractCallExecutedEvent) GetEventNonce() uint64 { return m.EventNonce }

// ERC20DeployedEvent is emitted when the bridge contract deploys an ERC20 for a cosmos denom.
type ERC20DeployedEvent struct {
	EventNonce     uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	CosmosDenom    string `protobuf:"bytes,2,opt,name=cosmos_denom,json=cosmosDenom,proto3" json:"cosmos_denom,omitempty"`
	TokenContract  string `protobuf:"bytes,3,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	Erc20Name      string `protobuf:"bytes,4,opt,name=erc20_name,json=erc20Name,proto3" json:"erc20_name,omitempty"`
	Erc20Symbol    string `protobuf:"bytes,5,opt,name=erc20_symbol,json=erc20Symbol,proto3" json:"erc20_symbol,omitempty"`
	Erc20Decimals  uint64 `protobuf:"varint,6,opt,name=erc20_decimals,json=erc20Decimals,proto3" json:"erc20_decimals,omitempty"`
	EthereumHeight uint64 `protobuf:"varint,7,opt,name=ethereum_height,json=ethereumHeight,proto3" json:"ethereum_height,omitempty"`
}

func (m *ERC20DeployedEvent) Reset()         { *m = ERC20DeployedEvent{} }
func (m *ERC20DeployedEvent) String() string { return proto.CompactTextString(m) }
func (*ERC20DeployedEvent) ProtoMessage()    {}

func (m *ERC20DeployedEvent) GetEventNonce() uint64 { return m.EventNonce }

// SignerSetTxExecutedEvent is emitted when the bridge contract adopts a new signer set.
type SignerSetTxExecutedEvent struct {
	EventNonce       uint64            `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
	SignerSetTxNonce uint64            `protobuf:"varint,2,opt,name=signer_set_tx_nonce,json=signerSetTxNonce,proto3" json:"signer_set_tx_nonce,omitempty"`
	EthereumHeight   uint64            `protobuf:"varint,3,opt,name=ethereum_height,json=ethereumHeight,proto3" json:"ethereum_height,omitempty"`
	Members          []*EthereumSigner `protobuf:"bytes,4,rep,name=members,proto3" json:"members,omitempty"`
}

func (m *SignerSetTxExecutedEvent) Reset()         { *m = SignerSetTxExecutedEvent{} }
func (m *SignerSetTxExecutedEvent) String() string { return proto.CompactTextString(m) }
func (*SignerSetTxExecutedEvent) ProtoMessage()    {}

func (m *SignerSetTxExecutedEvent) GetEventNonce() uint64 { return m.EventNonce }

// Params are the gravity module parameters. Slash fractions are sdk.Dec custom types, encoded on
// the wire as the 10^18 scaled integer text.
type Params struct {
	GravityId                                 string  `protobuf:"bytes,1,opt,name=gravity_id,json=gravityId,proto3" json:"gravity_id,omitempty"`
	ContractSourceHash                        string  `protobuf:"bytes,2,opt,name=contract_source_hash,json=contractSourceHash,proto3" json:"contract_source_hash,omitempty"`
	BridgeEthereumAddress                     string  `protobuf:"bytes,4,opt,name=bridge_ethereum_address,json=bridgeEthereumAddress,proto3" json:"bridge_ethereum_address,omitempty"`
	BridgeChainId                             uint64  `protobuf:"varint,5,opt,name=bridge_chain_id,json=bridgeChainId,proto3" json:"bridge_chain_id,omitempty"`
	SignedSignerSetTxsWindow                  uint64  `protobuf:"varint,6,opt,name=signed_signer_set_txs_window,json=signedSignerSetTxsWindow,proto3" json:"signed_signer_set_txs_window,omitempty"`
	SignedBatchesWindow                       uint64  `protobuf:"varint,7,opt,name=signed_batches_window,json=signedBatchesWindow,proto3" json:"signed_batches_window,omitempty"`
	EthereumSignaturesWindow                  uint64  `protobuf:"varint,8,opt,name=ethereum_signatures_window,json=ethereumSignaturesWindow,proto3" json:"ethereum_signatures_window,omitempty"`
	TargetEthTxTimeout                        uint64  `protobuf:"varint,10,opt,name=target_eth_tx_timeout,json=targetEthTxTimeout,proto3" json:"target_eth_tx_timeout,omitempty"`
	AverageBlockTime                          uint64  `protobuf:"varint,11,opt,name=average_block_time,json=averageBlockTime,proto3" json:"average_block_time,omitempty"`
	AverageEthereumBlockTime                  uint64  `protobuf:"varint,12,opt,name=average_ethereum_block_time,json=averageEthereumBlockTime,proto3" json:"average_ethereum_block_time,omitempty"`
	SlashFractionSignerSetTx                  sdk.Dec `protobuf:"bytes,13,opt,name=slash_fraction_signer_set_tx,json=slashFractionSignerSetTx,proto3,customtype=github.com/cosmos/cosmos-sdk/types.Dec" json:"slash_fraction_signer_set_tx,omitempty"`
	SlashFractionBatch                        sdk.Dec `protobuf:"bytes,14,opt,name=slash_fraction_batch,json=slashFractionBatch,proto3,customtype=github.com/cosmos/cosmos-sdk/types.Dec" json:"slash_fraction_batch,omitempty"`
	SlashFractionEthereumSignature            sdk.Dec `protobuf:"bytes,15,opt,name=slash_fraction_ethereum_signature,json=slashFractionEthereumSignature,proto3,customtype=github.com/cosmos/cosmos-sdk/types.Dec" json:"slash_fraction_ethereum_signature,omitempty"`
	SlashFractionConflictingEthereumSignature sdk.Dec `protobuf:"bytes,16,opt,name=slash_fraction_conflicting_ethereum_signature,json=slashFractionConflictingEthereumSignature,proto3,customtype=github.com/cosmos/cosmos-sdk/types.Dec" json:"slash_fraction_conflicting_ethereum_signature,omitempty"`
	UnbondSlashingSignerSetTxsWindow          uint64  `protobuf:"varint,17,opt,name=unbond_slashing_signer_set_txs_window,json=unbondSlashingSignerSetTxsWindow,proto3" json:"unbond_slashing_signer_set_txs_window,omitempty"`
}

func (m *Params) Reset()         { *m = Params{} }
func (m *Params) String() string { return proto.CompactTextString(m) }
func (*Params) ProtoMessage()    {}
