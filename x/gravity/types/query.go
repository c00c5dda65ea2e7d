package types

import (
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/gogo/protobuf/proto"
)

// ParamsRequest is the request type for Query/Params.
type ParamsRequest struct{}

func (m *ParamsRequest) Reset()         { *m = ParamsRequest{} }
func (m *ParamsRequest) String() string { return proto.CompactTextString(m) }
func (*ParamsRequest) ProtoMessage()    {}

type ParamsResponse struct {
	Params *Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *ParamsResponse) Reset()         { *m = ParamsResponse{} }
func (m *ParamsResponse) String() string { return proto.CompactTextString(m) }
func (*ParamsResponse) ProtoMessage()    {}

// SignerSetTxRequest is the request type for Query/SignerSetTx.
type SignerSetTxRequest struct {
	SignerSetNonce uint64 `protobuf:"varint,1,opt,name=signer_set_nonce,json=signerSetNonce,proto3" json:"signer_set_nonce,omitempty"`
}

func (m *SignerSetTxRequest) Reset()         { *m = SignerSetTxRequest{} }
func (m *SignerSetTxRequest) String() string { return proto.CompactTextString(m) }
func (*SignerSetTxRequest) ProtoMessage()    {}

type LatestSignerSetTxRequest struct{}

func (m *LatestSignerSetTxRequest) Reset()         { *m = LatestSignerSetTxRequest{} }
func (m *LatestSignerSetTxRequest) String() string { return proto.CompactTextString(m) }
func (*LatestSignerSetTxRequest) ProtoMessage()    {}

type SignerSetTxResponse struct {
	SignerSet *SignerSetTx `protobuf:"bytes,1,opt,name=signer_set,json=signerSet,proto3" json:"signer_set,omitempty"`
}

func (m *SignerSetTxResponse) Reset()         { *m = SignerSetTxResponse{} }
func (m *SignerSetTxResponse) String() string { return proto.CompactTextString(m) }
func (*SignerSetTxResponse) ProtoMessage()    {}

type BatchTxRequest struct {
	TokenContract string `protobuf:"bytes,1,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
	BatchNonce    uint64 `protobuf:"varint,2,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
}

func (m *BatchTxRequest) Reset()         { *m = BatchTxRequest{} }
func (m *BatchTxRequest) String() string { return proto.CompactTextString(m) }
func (*BatchTxRequest) ProtoMessage()    {}

type BatchTxResponse struct {
	Batch *BatchTx `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
}

func (m *BatchTxResponse) Reset()         { *m = BatchTxResponse{} }
func (m *BatchTxResponse) String() string { return proto.CompactTextString(m) }
func (*BatchTxResponse) ProtoMessage()    {}

type ContractCallTxRequest struct {
	InvalidationScope []byte `protobuf:"bytes,1,opt,name=invalidation_scope,json=invalidationScope,proto3" json:"invalidation_scope,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
}

func (m *ContractCallTxRequest) Reset()         { *m = ContractCallTxRequest{} }
func (m *ContractCallTxRequest) String() string { return proto.CompactTextString(m) }
func (*ContractCallTxRequest) ProtoMessage()    {}

type ContractCallTxResponse struct {
	LogicCall *ContractCallTx `protobuf:"bytes,1,opt,name=logic_call,json=logicCall,proto3" json:"logic_call,omitempty"`
}

func (m *ContractCallTxResponse) Reset()         { *m = ContractCallTxResponse{} }
func (m *ContractCallTxResponse) String() string { return proto.CompactTextString(m) }
func (*ContractCallTxResponse) ProtoMessage()    {}

type SignerSetTxConfirmationsRequest struct {
	SignerSetNonce uint64 `protobuf:"varint,1,opt,name=signer_set_nonce,json=signerSetNonce,proto3" json:"signer_set_nonce,omitempty"`
}

func (m *SignerSetTxConfirmationsRequest) Reset()         { *m = SignerSetTxConfirmationsRequest{} }
func (m *SignerSetTxConfirmationsRequest) String() string { return proto.CompactTextString(m) }
func (*SignerSetTxConfirmationsRequest) ProtoMessage()    {}

type SignerSetTxConfirmationsResponse struct {
	Signatures []*SignerSetTxConfirmation `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *SignerSetTxConfirmationsResponse) Reset()         { *m = SignerSetTxConfirmationsResponse{} }
func (m *SignerSetTxConfirmationsResponse) String() string { return proto.CompactTextString(m) }
func (*SignerSetTxConfirmationsResponse) ProtoMessage()    {}

// SignerSetTxsRequest is a paginated listing of signer set txs.
type SignerSetTxsRequest struct {
	Pagination *query.PageRequest `protobuf:"bytes,1,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *SignerSetTxsRequest) Reset()         { *m = SignerSetTxsRequest{} }
func (m *SignerSetTxsRequest) String() string { return proto.CompactTextString(m) }
func (*SignerSetTxsRequest) ProtoMessage()    {}

type SignerSetTxsResponse struct {
	SignerSets []*SignerSetTx      `protobuf:"bytes,1,rep,name=signer_sets,json=signerSets,proto3" json:"signer_sets,omitempty"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *SignerSetTxsResponse) Reset()         { *m = SignerSetTxsResponse{} }
func (m *SignerSetTxsResponse) String() string { return proto.CompactTextString(m) }
func (*SignerSetTxsResponse) ProtoMessage()    {}

type BatchTxsRequest struct {
	Pagination *query.PageRequest `protobuf:"bytes,1,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *BatchTxsRequest) Reset()         { *m = BatchTxsRequest{} }
func (m *BatchTxsRequest) String() string { return proto.CompactTextString(m) }
func (*BatchTxsRequest) ProtoMessage()    {}

type BatchTxsResponse struct {
	Batches    []*BatchTx          `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *BatchTxsResponse) Reset()         { *m = BatchTxsResponse{} }
func (m *BatchTxsResponse) String() string { return proto.CompactTextString(m) }
func (*BatchTxsResponse) ProtoMessage()    {}

type ContractCallTxsRequest struct {
	Pagination *query.PageRequest `protobuf:"bytes,1,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *ContractCallTxsRequest) Reset()         { *m = ContractCallTxsRequest{} }
func (m *ContractCallTxsRequest) String() string { return proto.CompactTextString(m) }
func (*ContractCallTxsRequest) ProtoMessage()    {}

type ContractCallTxsResponse struct {
	Calls      []*ContractCallTx   `protobuf:"bytes,1,rep,name=calls,proto3" json:"calls,omitempty"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *ContractCallTxsResponse) Reset()         { *m = ContractCallTxsResponse{} }
func (m *ContractCallTxsResponse) String() string { return proto.CompactTextString(m) }
func (*ContractCallTxsResponse) ProtoMessage()    {}

// UnsignedSignerSetTxsRequest lists signer sets the given orchestrator or validator has not signed.
type UnsignedSignerSetTxsRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *UnsignedSignerSetTxsRequest) Reset()         { *m = UnsignedSignerSetTxsRequest{} }
func (m *UnsignedSignerSetTxsRequest) String() string { return proto.CompactTextString(m) }
func (*UnsignedSignerSetTxsRequest) ProtoMessage()    {}

type UnsignedSignerSetTxsResponse struct {
	SignerSets []*SignerSetTx `protobuf:"bytes,1,rep,name=signer_sets,json=signerSets,proto3" json:"signer_sets,omitempty"`
}

func (m *UnsignedSignerSetTxsResponse) Reset()         { *m = UnsignedSignerSetTxsResponse{} }
func (m *UnsignedSignerSetTxsResponse) String() string { return proto.CompactTextString(m) }
func (*UnsignedSignerSetTxsResponse) ProtoMessage()    {}

type UnsignedBatchTxsRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *UnsignedBatchTxsRequest) Reset()         { *m = UnsignedBatchTxsRequest{} }
func (m *UnsignedBatchTxsRequest) String() string { return proto.CompactTextString(m) }
func (*UnsignedBatchTxsRequest) ProtoMessage()    {}

type UnsignedBatchTxsResponse struct {
	Batches []*BatchTx `protobuf:"bytes,1,rep,name=batches,proto3" json:"batches,omitempty"`
}

func (m *UnsignedBatchTxsResponse) Reset()         { *m = UnsignedBatchTxsResponse{} }
func (m *UnsignedBatchTxsResponse) String() string { return proto.CompactTextString(m) }
func (*UnsignedBatchTxsResponse) ProtoMessage()    {}

type UnsignedContractCallTxsRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *UnsignedContractCallTxsRequest) Reset()         { *m = UnsignedContractCallTxsRequest{} }
func (m *UnsignedContractCallTxsRequest) String() string { return proto.CompactTextString(m) }
func (*UnsignedContractCallTxsRequest) ProtoMessage()    {}

type UnsignedContractCallTxsResponse struct {
	Calls []*ContractCallTx `protobuf:"bytes,1,rep,name=calls,proto3" json:"calls,omitempty"`
}

func (m *UnsignedContractCallTxsResponse) Reset()         { *m = UnsignedContractCallTxsResponse{} }
func (m *UnsignedContractCallTxsResponse) String() string { return proto.CompactTextString(m) }
func (*UnsignedContractCallTxsResponse) ProtoMessage()    {}

type BatchTxConfirmationsRequest struct {
	BatchNonce    uint64 `protobuf:"varint,1,opt,name=batch_nonce,json=batchNonce,proto3" json:"batch_nonce,omitempty"`
	TokenContract string `protobuf:"bytes,2,opt,name=token_contract,json=tokenContract,proto3" json:"token_contract,omitempty"`
}

func (m *BatchTxConfirmationsRequest) Reset()         { *m = BatchTxConfirmationsRequest{} }
func (m *BatchTxConfirmationsRequest) String() string { return proto.CompactTextString(m) }
func (*BatchTxConfirmationsRequest) ProtoMessage()    {}

type BatchTxConfirmationsResponse struct {
	Signatures []*BatchTxConfirmation `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *BatchTxConfirmationsResponse) Reset()         { *m = BatchTxConfirmationsResponse{} }
func (m *BatchTxConfirmationsResponse) String() string { return proto.CompactTextString(m) }
func (*BatchTxConfirmationsResponse) ProtoMessage()    {}

type ContractCallTxConfirmationsRequest struct {
	InvalidationScope []byte `protobuf:"bytes,1,opt,name=invalidation_scope,json=invalidationScope,proto3" json:"invalidation_scope,omitempty"`
	InvalidationNonce uint64 `protobuf:"varint,2,opt,name=invalidation_nonce,json=invalidationNonce,proto3" json:"invalidation_nonce,omitempty"`
}

func (m *ContractCallTxConfirmationsRequest) Reset()         { *m = ContractCallTxConfirmationsRequest{} }
func (m *ContractCallTxConfirmationsRequest) String() string { return proto.CompactTextString(m) }
func (*ContractCallTxConfirmationsRequest) ProtoMessage()    {}

type ContractCallTxConfirmationsResponse struct {
	Signatures []*ContractCallTxConfirmation `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *ContractCallTxConfirmationsResponse) Reset()         { *m = ContractCallTxConfirmationsResponse{} }
func (m *ContractCallTxConfirmationsResponse) String() string { return proto.CompactTextString(m) }
func (*ContractCallTxConfirmationsResponse) ProtoMessage()    {}

type LastSubmittedEthereumEventRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *LastSubmittedEthereumEventRequest) Reset()         { *m = LastSubmittedEthereumEventRequest{} }
func (m *LastSubmittedEthereumEventRequest) String() string { return proto.CompactTextString(m) }
func (*LastSubmittedEthereumEventRequest) ProtoMessage()    {}

type LastSubmittedEthereumEventResponse struct {
	EventNonce uint64 `protobuf:"varint,1,opt,name=event_nonce,json=eventNonce,proto3" json:"event_nonce,omitempty"`
}

func (m *LastSubmittedEthereumEventResponse) Reset()         { *m = LastSubmittedEthereumEventResponse{} }
func (m *LastSubmittedEthereumEventResponse) String() string { return proto.CompactTextString(m) }
func (*LastSubmittedEthereumEventResponse) ProtoMessage()    {}

type ERC20ToDenomRequest struct {
	Erc20 string `protobuf:"bytes,1,opt,name=erc20,proto3" json:"erc20,omitempty"`
}

func (m *ERC20ToDenomRequest) Reset()         { *m = ERC20ToDenomRequest{} }
func (m *ERC20ToDenomRequest) String() string { return proto.CompactTextString(m) }
func (*ERC20ToDenomRequest) ProtoMessage()    {}

type ERC20ToDenomResponse struct {
	Denom            string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	CosmosOriginated bool   `protobuf:"varint,2,opt,name=cosmos_originated,json=cosmosOriginated,proto3" json:"cosmos_originated,omitempty"`
}

func (m *ERC20ToDenomResponse) Reset()         { *m = ERC20ToDenomResponse{} }
func (m *ERC20ToDenomResponse) String() string { return proto.CompactTextString(m) }
func (*ERC20ToDenomResponse) ProtoMessage()    {}

type DenomToERC20ParamsRequest struct {
	Denom string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *DenomToERC20ParamsRequest) Reset()         { *m = DenomToERC20ParamsRequest{} }
func (m *DenomToERC20ParamsRequest) String() string { return proto.CompactTextString(m) }
func (*DenomToERC20ParamsRequest) ProtoMessage()    {}

type DenomToERC20ParamsResponse struct {
	BaseDenom     string `protobuf:"bytes,1,opt,name=base_denom,json=baseDenom,proto3" json:"base_denom,omitempty"`
	Erc20Name     string `protobuf:"bytes,2,opt,name=erc20_name,json=erc20Name,proto3" json:"erc20_name,omitempty"`
	Erc20Symbol   string `protobuf:"bytes,3,opt,name=erc20_symbol,json=erc20Symbol,proto3" json:"erc20_symbol,omitempty"`
	Erc20Decimals uint64 `protobuf:"varint,4,opt,name=erc20_decimals,json=erc20Decimals,proto3" json:"erc20_decimals,omitempty"`
}

func (m *DenomToERC20ParamsResponse) Reset()         { *m = DenomToERC20ParamsResponse{} }
func (m *DenomToERC20ParamsResponse) String() string { return proto.CompactTextString(m) }
func (*DenomToERC20ParamsResponse) ProtoMessage()    {}

type DenomToERC20Request struct {
	Denom string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *DenomToERC20Request) Reset()         { *m = DenomToERC20Request{} }
func (m *DenomToERC20Request) String() string { return proto.CompactTextString(m) }
func (*DenomToERC20Request) ProtoMessage()    {}

type DenomToERC20Response struct {
	Erc20            string `protobuf:"bytes,1,opt,name=erc20,proto3" json:"erc20,omitempty"`
	CosmosOriginated bool   `protobuf:"varint,2,opt,name=cosmos_originated,json=cosmosOriginated,proto3" json:"cosmos_originated,omitempty"`
}

func (m *DenomToERC20Response) Reset()         { *m = DenomToERC20Response{} }
func (m *DenomToERC20Response) String() string { return proto.CompactTextString(m) }
func (*DenomToERC20Response) ProtoMessage()    {}

type DelegateKeysByValidatorRequest struct {
	ValidatorAddress string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3" json:"validator_address,omitempty"`
}

func (m *DelegateKeysByValidatorRequest) Reset()         { *m = DelegateKeysByValidatorRequest{} }
func (m *DelegateKeysByValidatorRequest) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysByValidatorRequest) ProtoMessage()    {}

type DelegateKeysByValidatorResponse struct {
	EthAddress          string `protobuf:"bytes,1,opt,name=eth_address,json=ethAddress,proto3" json:"eth_address,omitempty"`
	OrchestratorAddress string `protobuf:"bytes,2,opt,name=orchestrator_address,json=orchestratorAddress,proto3" json:"orchestrator_address,omitempty"`
}

func (m *DelegateKeysByValidatorResponse) Reset()         { *m = DelegateKeysByValidatorResponse{} }
func (m *DelegateKeysByValidatorResponse) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysByValidatorResponse) ProtoMessage()    {}

type DelegateKeysByEthereumSignerRequest struct {
	EthereumSigner string `protobuf:"bytes,1,opt,name=ethereum_signer,json=ethereumSigner,proto3" json:"ethereum_signer,omitempty"`
}

func (m *DelegateKeysByEthereumSignerRequest) Reset()         { *m = DelegateKeysByEthereumSignerRequest{} }
func (m *DelegateKeysByEthereumSignerRequest) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysByEthereumSignerRequest) ProtoMessage()    {}

type DelegateKeysByEthereumSignerResponse struct {
	ValidatorAddress    string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3" json:"validator_address,omitempty"`
	OrchestratorAddress string `protobuf:"bytes,2,opt,name=orchestrator_address,json=orchestratorAddress,proto3" json:"orchestrator_address,omitempty"`
}

func (m *DelegateKeysByEthereumSignerResponse) Reset()         { *m = DelegateKeysByEthereumSignerResponse{} }
func (m *DelegateKeysByEthereumSignerResponse) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysByEthereumSignerResponse) ProtoMessage()    {}

type DelegateKeysByOrchestratorRequest struct {
	OrchestratorAddress string `protobuf:"bytes,1,opt,name=orchestrator_address,json=orchestratorAddress,proto3" json:"orchestrator_address,omitempty"`
}

func (m *DelegateKeysByOrchestratorRequest) Reset()         { *m = DelegateKeysByOrchestratorRequest{} }
func (m *DelegateKeysByOrchestratorRequest) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysByOrchestratorRequest) ProtoMessage()    {}

type DelegateKeysByOrchestratorResponse struct {
	ValidatorAddress string `protobuf:"bytes,1,opt,name=validator_address,json=validatorAddress,proto3" json:"validator_address,omitempty"`
	EthereumSigner   string `protobuf:"bytes,2,opt,name=ethereum_signer,json=ethereumSigner,proto3" json:"ethereum_signer,omitempty"`
}

func (m *DelegateKeysByOrchestratorResponse) Reset()         { *m = DelegateKeysByOrchestratorResponse{} }
func (m *DelegateKeysByOrchestratorResponse) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysByOrchestratorResponse) ProtoMessage()    {}

type DelegateKeysRequest struct{}

func (m *DelegateKeysRequest) Reset()         { *m = DelegateKeysRequest{} }
func (m *DelegateKeysRequest) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysRequest) ProtoMessage()    {}

type DelegateKeysResponse struct {
	DelegateKeys []*MsgDelegateKeys `protobuf:"bytes,1,rep,name=delegate_keys,json=delegateKeys,proto3" json:"delegate_keys,omitempty"`
}

func (m *DelegateKeysResponse) Reset()         { *m = DelegateKeysResponse{} }
func (m *DelegateKeysResponse) String() string { return proto.CompactTextString(m) }
func (*DelegateKeysResponse) ProtoMessage()    {}

type BatchedSendToEthereumsRequest struct {
	SenderAddress string `protobuf:"bytes,1,opt,name=sender_address,json=senderAddress,proto3" json:"sender_address,omitempty"`
}

func (m *BatchedSendToEthereumsRequest) Reset()         { *m = BatchedSendToEthereumsRequest{} }
func (m *BatchedSendToEthereumsRequest) String() string { return proto.CompactTextString(m) }
func (*BatchedSendToEthereumsRequest) ProtoMessage()    {}

type BatchedSendToEthereumsResponse struct {
	SendToEthereums []*SendToEthereum `protobuf:"bytes,1,rep,name=send_to_ethereums,json=sendToEthereums,proto3" json:"send_to_ethereums,omitempty"`
}

func (m *BatchedSendToEthereumsResponse) Reset()         { *m = BatchedSendToEthereumsResponse{} }
func (m *BatchedSendToEthereumsResponse) String() string { return proto.CompactTextString(m) }
func (*BatchedSendToEthereumsResponse) ProtoMessage()    {}

// UnbatchedSendToEthereumsRequest lists a sender's transfers still in the outgoing pool.
type UnbatchedSendToEthereumsRequest struct {
	SenderAddress string             `protobuf:"bytes,1,opt,name=sender_address,json=senderAddress,proto3" json:"sender_address,omitempty"`
	Pagination    *query.PageRequest `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *UnbatchedSendToEthereumsRequest) Reset()         { *m = UnbatchedSendToEthereumsRequest{} }
func (m *UnbatchedSendToEthereumsRequest) String() string { return proto.CompactTextString(m) }
func (*UnbatchedSendToEthereumsRequest) ProtoMessage()    {}

type UnbatchedSendToEthereumsResponse struct {
	SendToEthereums []*SendToEthereum   `protobuf:"bytes,1,rep,name=send_to_ethereums,json=sendToEthereums,proto3" json:"send_to_ethereums,omitempty"`
	Pagination      *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *UnbatchedSendToEthereumsResponse) Reset()         { *m = UnbatchedSendToEthereumsResponse{} }
func (m *UnbatchedSendToEthereumsResponse) String() string { return proto.CompactTextString(m) }
func (*UnbatchedSendToEthereumsResponse) ProtoMessage()    {}

func registerQueryTypes() {
	for name, msg := range map[string]proto.Message{
		"ParamsRequest":                        (*ParamsRequest)(nil),
		"ParamsResponse":                       (*ParamsResponse)(nil),
		"SignerSetTxRequest":                   (*SignerSetTxRequest)(nil),
		"LatestSignerSetTxRequest":             (*LatestSignerSetTxRequest)(nil),
		"SignerSetTxResponse":                  (*SignerSetTxResponse)(nil),
		"BatchTxRequest":                       (*BatchTxRequest)(nil),
		"BatchTxResponse":                      (*BatchTxResponse)(nil),
		"ContractCallTxRequest":                (*ContractCallTxRequest)(nil),
		"ContractCallTxResponse":               (*ContractCallTxResponse)(nil),
		"SignerSetTxConfirmationsRequest":      (*SignerSetTxConfirmationsRequest)(nil),
		"SignerSetTxConfirmationsResponse":     (*SignerSetTxConfirmationsResponse)(nil),
		"SignerSetTxsRequest":                  (*SignerSetTxsRequest)(nil),
		"SignerSetTxsResponse":                 (*SignerSetTxsResponse)(nil),
		"BatchTxsRequest":                      (*BatchTxsRequest)(nil),
		"BatchTxsResponse":                     (*BatchTxsResponse)(nil),
		"ContractCallTxsRequest":               (*ContractCallTxsRequest)(nil),
		"ContractCallTxsResponse":              (*ContractCallTxsResponse)(nil),
		"UnsignedSignerSetTxsRequest":          (*UnsignedSignerSetTxsRequest)(nil),
		"UnsignedSignerSetTxsResponse":         (*UnsignedSignerSetTxsResponse)(nil),
		"UnsignedBatchTxsRequest":              (*UnsignedBatchTxsRequest)(nil),
		"UnsignedBatchTxsResponse":             (*UnsignedBatchTxsResponse)(nil),
		"UnsignedContractCallTxsRequest":       (*UnsignedContractCallTxsRequest)(nil),
		"UnsignedContractCallTxsResponse":      (*UnsignedContractCallTxsResponse)(nil),
		"BatchTxConfirmationsRequest":          (*BatchTxConfirmationsRequest)(nil),
		"BatchTxConfirmationsResponse":         (*BatchTxConfirmationsResponse)(nil),
		"ContractCallTxConfirmationsRequest":   (*ContractCallTxConfirmationsRequest)(nil),
		"ContractCallTxConfirmationsResponse":  (*ContractCallTxConfirmationsResponse)(nil),
		"LastSubmittedEthereumEventRequest":    (*LastSubmittedEthereumEventRequest)(nil),
		"LastSubmittedEthereumEventResponse":   (*LastSubmittedEthereumEventResponse)(nil),
		"ERC20ToDenomRequest":                  (*ERC20ToDenomRequest)(nil),
		"ERC20ToDenomResponse":                 (*ERC20ToDenomResponse)(nil),
		"DenomToERC20ParamsRequest":            (*DenomToERC20ParamsRequest)(nil),
		"DenomToERC20ParamsResponse":           (*DenomToERC20ParamsResponse)(nil),
		"DenomToERC20Request":                  (*DenomToERC20Request)(nil),
		"DenomToERC20Response":                 (*DenomToERC20Response)(nil),
		"DelegateKeysByValidatorRequest":       (*DelegateKeysByValidatorRequest)(nil),
		"DelegateKeysByValidatorResponse":      (*DelegateKeysByValidatorResponse)(nil),
		"DelegateKeysByEthereumSignerRequest":  (*DelegateKeysByEthereumSignerRequest)(nil),
		"DelegateKeysByEthereumSignerResponse": (*DelegateKeysByEthereumSignerResponse)(nil),
		"DelegateKeysByOrchestratorRequest":    (*DelegateKeysByOrchestratorRequest)(nil),
		"DelegateKeysByOrchestratorResponse":   (*DelegateKeysByOrchestratorResponse)(nil),
		"DelegateKeysRequest":                  (*DelegateKeysRequest)(nil),
		"DelegateKeysResponse":                 (*DelegateKeysResponse)(nil),
		"BatchedSendToEthereumsRequest":        (*BatchedSendToEthereumsRequest)(nil),
		"BatchedSendToEthereumsResponse":       (*BatchedSendToEthereumsResponse)(nil),
		"UnbatchedSendToEthereumsRequest":      (*UnbatchedSendToEthereumsRequest)(nil),
		"UnbatchedSendToEthereumsResponse":     (*UnbatchedSendToEthereumsResponse)(nil),
	} {
		proto.RegisterType(msg, ProtoPackage+"."+name)
	}
}
