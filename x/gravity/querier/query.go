package querier

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/argus-labs/gravity/x/gravity/types"
)

// Params returns the gravity module parameters.
func (q *Querier) Params(ctx context.Context) (*types.ParamsResponse, error) {
	return invoke(ctx, q, "Params", &types.ParamsRequest{}, &types.ParamsResponse{})
}

// SignerSetTx returns the signer set tx with the given nonce.
func (q *Querier) SignerSetTx(ctx context.Context, nonce uint64) (*types.SignerSetTxResponse, error) {
	req := &types.SignerSetTxRequest{SignerSetNonce: nonce}
	return invoke(ctx, q, "SignerSetTx", req, &types.SignerSetTxResponse{})
}

// LatestSignerSetTx returns the most recent signer set tx.
func (q *Querier) LatestSignerSetTx(ctx context.Context) (*types.SignerSetTxResponse, error) {
	return invoke(ctx, q, "LatestSignerSetTx", &types.LatestSignerSetTxRequest{}, &types.SignerSetTxResponse{})
}

func (q *Querier) BatchTx(ctx context.Context, tokenContract string, nonce uint64) (*types.BatchTxResponse, error) {
	req := &types.BatchTxRequest{TokenContract: tokenContract, BatchNonce: nonce}
	return invoke(ctx, q, "BatchTx", req, &types.BatchTxResponse{})
}

func (q *Querier) ContractCallTx(ctx context.Context, scope []byte, nonce uint64) (*types.ContractCallTxResponse, error) {
	req := &types.ContractCallTxRequest{InvalidationScope: scope, InvalidationNonce: nonce}
	return invoke(ctx, q, "ContractCallTx", req, &types.ContractCallTxResponse{})
}

// SignerSetTxs lists signer set txs. A nil page requests the server default.
func (q *Querier) SignerSetTxs(ctx context.Context, page *query.PageRequest) (*types.SignerSetTxsResponse, error) {
	req := &types.SignerSetTxsRequest{Pagination: page}
	return invoke(ctx, q, "SignerSetTxs", req, &types.SignerSetTxsResponse{})
}

func (q *Querier) BatchTxs(ctx context.Context, page *query.PageRequest) (*types.BatchTxsResponse, error) {
	req := &types.BatchTxsRequest{Pagination: page}
	return invoke(ctx, q, "BatchTxs", req, &types.BatchTxsResponse{})
}

func (q *Querier) ContractCallTxs(ctx context.Context, page *query.PageRequest) (*types.ContractCallTxsResponse, error) {
	req := &types.ContractCallTxsRequest{Pagination: page}
	return invoke(ctx, q, "ContractCallTxs", req, &types.ContractCallTxsResponse{})
}

func (q *Querier) SignerSetTxConfirmations(ctx context.Context, nonce uint64) (*types.SignerSetTxConfirmationsResponse, error) {
	req := &types.SignerSetTxConfirmationsRequest{SignerSetNonce: nonce}
	return invoke(ctx, q, "SignerSetTxConfirmations", req, &types.SignerSetTxConfirmationsResponse{})
}

func (q *Querier) BatchTxConfirmations(ctx context.Context, nonce uint64, tokenContract string) (*types.BatchTxConfirmationsResponse, error) {
	req := &types.BatchTxConfirmationsRequest{BatchNonce: nonce, TokenContract: tokenContract}
	return invoke(ctx, q, "BatchTxConfirmations", req, &types.BatchTxConfirmationsResponse{})
}

func (q *Querier) ContractCallTxConfirmations(ctx context.Context, scope []byte, nonce uint64) (*types.ContractCallTxConfirmationsResponse, error) {
	req := &types.ContractCallTxConfirmationsRequest{InvalidationScope: scope, InvalidationNonce: nonce}
	return invoke(ctx, q, "ContractCallTxConfirmations", req, &types.ContractCallTxConfirmationsResponse{})
}

// UnsignedSignerSetTxs returns the signer set txs address (validator or orchestrator) has not
// confirmed yet.
func (q *Querier) UnsignedSignerSetTxs(ctx context.Context, address string) (*types.UnsignedSignerSetTxsResponse, error) {
	req := &types.UnsignedSignerSetTxsRequest{Address: address}
	return invoke(ctx, q, "UnsignedSignerSetTxs", req, &types.UnsignedSignerSetTxsResponse{})
}

func (q *Querier) UnsignedBatchTxs(ctx context.Context, address string) (*types.UnsignedBatchTxsResponse, error) {
	req := &types.UnsignedBatchTxsRequest{Address: address}
	return invoke(ctx, q, "UnsignedBatchTxs", req, &types.UnsignedBatchTxsResponse{})
}

func (q *Querier) UnsignedContractCallTxs(ctx context.Context, address string) (*types.UnsignedContractCallTxsResponse, error) {
	req := &types.UnsignedContractCallTxsRequest{Address: address}
	return invoke(ctx, q, "UnsignedContractCallTxs", req, &types.UnsignedContractCallTxsResponse{})
}

// LastSubmittedEthereumEvent returns the nonce of the last ethereum event address attested to.
func (q *Querier) LastSubmittedEthereumEvent(ctx context.Context, address string) (*types.LastSubmittedEthereumEventResponse, error) {
	req := &types.LastSubmittedEthereumEventRequest{Address: address}
	return invoke(ctx, q, "LastSubmittedEthereumEvent", req, &types.LastSubmittedEthereumEventResponse{})
}

// ERC20ToDenom returns the cosmos denom backing an ERC20 contract.
func (q *Querier) ERC20ToDenom(ctx context.Context, erc20 string) (string, error) {
	res, err := invoke(ctx, q, "ERC20ToDenom", &types.ERC20ToDenomRequest{Erc20: erc20}, &types.ERC20ToDenomResponse{})
	if err != nil {
		return "", err
	}
	return res.Denom, nil
}

// DenomToERC20Params returns the ERC20 metadata a cosmos originated denom is deployed with.
func (q *Querier) DenomToERC20Params(ctx context.Context, denom string) (*types.DenomToERC20ParamsResponse, error) {
	req := &types.DenomToERC20ParamsRequest{Denom: denom}
	return invoke(ctx, q, "DenomToERC20Params", req, &types.DenomToERC20ParamsResponse{})
}

// DenomToERC20 returns the ERC20 contract address of a denom.
func (q *Querier) DenomToERC20(ctx context.Context, denom string) (string, error) {
	res, err := invoke(ctx, q, "DenomToERC20", &types.DenomToERC20Request{Denom: denom}, &types.DenomToERC20Response{})
	if err != nil {
		return "", err
	}
	return res.Erc20, nil
}

func (q *Querier) DelegateKeysByValidator(ctx context.Context, validator string) (*types.DelegateKeysByValidatorResponse, error) {
	req := &types.DelegateKeysByValidatorRequest{ValidatorAddress: validator}
	return invoke(ctx, q, "DelegateKeysByValidator", req, &types.DelegateKeysByValidatorResponse{})
}

func (q *Querier) DelegateKeysByEthereumSigner(ctx context.Context, ethereumSigner string) (*types.DelegateKeysByEthereumSignerResponse, error) {
	req := &types.DelegateKeysByEthereumSignerRequest{EthereumSigner: ethereumSigner}
	return invoke(ctx, q, "DelegateKeysByEthereumSigner", req, &types.DelegateKeysByEthereumSignerResponse{})
}

func (q *Querier) DelegateKeysByOrchestrator(ctx context.Context, orchestrator string) (*types.DelegateKeysByOrchestratorResponse, error) {
	req := &types.DelegateKeysByOrchestratorRequest{OrchestratorAddress: orchestrator}
	return invoke(ctx, q, "DelegateKeysByOrchestrator", req, &types.DelegateKeysByOrchestratorResponse{})
}

// DelegateKeys returns every registered delegate key set.
func (q *Querier) DelegateKeys(ctx context.Context) (*types.DelegateKeysResponse, error) {
	return invoke(ctx, q, "DelegateKeys", &types.DelegateKeysRequest{}, &types.DelegateKeysResponse{})
}

// BatchedSendToEthereums returns the sender's transfers already included in a batch.
func (q *Querier) BatchedSendToEthereums(ctx context.Context, sender string) (*types.BatchedSendToEthereumsResponse, error) {
	req := &types.BatchedSendToEthereumsRequest{SenderAddress: sender}
	return invoke(ctx, q, "BatchedSendToEthereums", req, &types.BatchedSendToEthereumsResponse{})
}

// UnbatchedSendToEthereums lists the sender's transfers still waiting in the outgoing pool. Pass the
// previous response's Pagination.NextKey as page.Key to continue a listing.
func (q *Querier) UnbatchedSendToEthereums(ctx context.Context, sender string, page *query.PageRequest) (*types.UnbatchedSendToEthereumsResponse, error) {
	req := &types.UnbatchedSendToEthereumsRequest{SenderAddress: sender, Pagination: page}
	return invoke(ctx, q, "UnbatchedSendToEthereums", req, &types.UnbatchedSendToEthereumsResponse{})
}
