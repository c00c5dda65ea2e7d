package gravitysim

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/argus-labs/gravity/x/gravity/types"
)

var _ types.QueryServer = &Server{}

// State is the bridge state a Server answers from. Slices are kept in nonce order.
type State struct {
	Params        *types.Params
	SignerSets    []*types.SignerSetTx
	Batches       []*types.BatchTx
	ContractCalls []*types.ContractCallTx

	SignerSetConfirmations    []*types.SignerSetTxConfirmation
	BatchConfirmations        []*types.BatchTxConfirmation
	ContractCallConfirmations []*types.ContractCallTxConfirmation

	DelegateKeys []*types.MsgDelegateKeys

	// LastEventNonces maps a validator or orchestrator address to its last attested event nonce.
	LastEventNonces map[string]uint64
	// ERC20s maps a cosmos denom to the token deployed for it on ethereum.
	ERC20s []*ERC20Mapping

	// UnbatchedSends is the outgoing pool.
	UnbatchedSends []*types.SendToEthereum
}

// ERC20Mapping ties a cosmos denom to an ERC20 contract.
type ERC20Mapping struct {
	Denom            string
	ERC20            string
	CosmosOriginated bool
	Name             string
	Symbol           string
	Decimals         uint64
}

// Server implements types.QueryServer over a State.
type Server struct {
	mu    sync.RWMutex
	state State
}

func NewServer(state State) *Server {
	return &Server{state: state}
}

// Update mutates the served state under the server lock.
func (s *Server) Update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (s *Server) Params(context.Context, *types.ParamsRequest) (*types.ParamsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Params == nil {
		return nil, status.Error(codes.NotFound, "params not set")
	}
	return &types.ParamsResponse{Params: s.state.Params}, nil
}

func (s *Server) SignerSetTx(_ context.Context, req *types.SignerSetTxRequest) (*types.SignerSetTxResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, set := range s.state.SignerSets {
		if set.Nonce == req.SignerSetNonce {
			return &types.SignerSetTxResponse{SignerSet: set}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "signer set %d", req.SignerSetNonce)
}

func (s *Server) LatestSignerSetTx(context.Context, *types.LatestSignerSetTxRequest) (*types.SignerSetTxResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.state.SignerSets) == 0 {
		return nil, status.Error(codes.NotFound, "no signer sets")
	}
	return &types.SignerSetTxResponse{SignerSet: s.state.SignerSets[len(s.state.SignerSets)-1]}, nil
}

func (s *Server) BatchTx(_ context.Context, req *types.BatchTxRequest) (*types.BatchTxResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, batch := range s.state.Batches {
		if batch.BatchNonce == req.BatchNonce && sameHex(batch.TokenContract, req.TokenContract) {
			return &types.BatchTxResponse{Batch: batch}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "batch %s/%d", req.TokenContract, req.BatchNonce)
}

func (s *Server) ContractCallTx(_ context.Context, req *types.ContractCallTxRequest) (*types.ContractCallTxResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, call := range s.state.ContractCalls {
		if call.InvalidationNonce == req.InvalidationNonce && scopeKey(call.InvalidationScope) == scopeKey(req.InvalidationScope) {
			return &types.ContractCallTxResponse{LogicCall: call}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "contract call %s/%d", scopeKey(req.InvalidationScope), req.InvalidationNonce)
}

func (s *Server) SignerSetTxs(_ context.Context, req *types.SignerSetTxsRequest) (*types.SignerSetTxsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sets, page, err := paginate(s.state.SignerSets, req.Pagination)
	if err != nil {
		return nil, err
	}
	return &types.SignerSetTxsResponse{SignerSets: sets, Pagination: page}, nil
}

func (s *Server) BatchTxs(_ context.Context, req *types.BatchTxsRequest) (*types.BatchTxsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	batches, page, err := paginate(s.state.Batches, req.Pagination)
	if err != nil {
		return nil, err
	}
	return &types.BatchTxsResponse{Batches: batches, Pagination: page}, nil
}

func (s *Server) ContractCallTxs(_ context.Context, req *types.ContractCallTxsRequest) (*types.ContractCallTxsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	calls, page, err := paginate(s.state.ContractCalls, req.Pagination)
	if err != nil {
		return nil, err
	}
	return &types.ContractCallTxsResponse{Calls: calls, Pagination: page}, nil
}

func (s *Server) SignerSetTxConfirmations(_ context.Context, req *types.SignerSetTxConfirmationsRequest) (*types.SignerSetTxConfirmationsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := &types.SignerSetTxConfirmationsResponse{}
	for _, conf := range s.state.SignerSetConfirmations {
		if conf.SignerSetNonce == req.SignerSetNonce {
			res.Signatures = append(res.Signatures, conf)
		}
	}
	return res, nil
}

func (s *Server) BatchTxConfirmations(_ context.Context, req *types.BatchTxConfirmationsRequest) (*types.BatchTxConfirmationsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := &types.BatchTxConfirmationsResponse{}
	for _, conf := range s.state.BatchConfirmations {
		if conf.BatchNonce == req.BatchNonce && sameHex(conf.TokenContract, req.TokenContract) {
			res.Signatures = append(res.Signatures, conf)
		}
	}
	return res, nil
}

func (s *Server) ContractCallTxConfirmations(_ context.Context, req *types.ContractCallTxConfirmationsRequest) (*types.ContractCallTxConfirmationsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := &types.ContractCallTxConfirmationsResponse{}
	for _, conf := range s.state.ContractCallConfirmations {
		if conf.InvalidationNonce == req.InvalidationNonce && scopeKey(conf.InvalidationScope) == scopeKey(req.InvalidationScope) {
			res.Signatures = append(res.Signatures, conf)
		}
	}
	return res, nil
}

func (s *Server) UnsignedSignerSetTxs(_ context.Context, req *types.UnsignedSignerSetTxsRequest) (*types.UnsignedSignerSetTxsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	signer, err := s.ethereumSigner(req.Address)
	if err != nil {
		return nil, err
	}
	res := &types.UnsignedSignerSetTxsResponse{}
	for _, set := range s.state.SignerSets {
		signed := false
		for _, conf := range s.state.SignerSetConfirmations {
			if conf.SignerSetNonce == set.Nonce && sameHex(conf.EthereumSigner, signer) {
				signed = true
				break
			}
		}
		if !signed {
			res.SignerSets = append(res.SignerSets, set)
		}
	}
	return res, nil
}

func (s *Server) UnsignedBatchTxs(_ context.Context, req *types.UnsignedBatchTxsRequest) (*types.UnsignedBatchTxsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	signer, err := s.ethereumSigner(req.Address)
	if err != nil {
		return nil, err
	}
	res := &types.UnsignedBatchTxsResponse{}
	for _, batch := range s.state.Batches {
		signed := false
		for _, conf := range s.state.BatchConfirmations {
			if conf.BatchNonce == batch.BatchNonce && sameHex(conf.TokenContract, batch.TokenContract) && sameHex(conf.EthereumSigner, signer) {
				signed = true
				break
			}
		}
		if !signed {
			res.Batches = append(res.Batches, batch)
		}
	}
	return res, nil
}

func (s *Server) UnsignedContractCallTxs(_ context.Context, req *types.UnsignedContractCallTxsRequest) (*types.UnsignedContractCallTxsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	signer, err := s.ethereumSigner(req.Address)
	if err != nil {
		return nil, err
	}
	res := &types.UnsignedContractCallTxsResponse{}
	for _, call := range s.state.ContractCalls {
		signed := false
		for _, conf := range s.state.ContractCallConfirmations {
			if conf.InvalidationNonce == call.InvalidationNonce &&
				scopeKey(conf.InvalidationScope) == scopeKey(call.InvalidationScope) &&
				sameHex(conf.EthereumSigner, signer) {
				signed = true
				break
			}
		}
		if !signed {
			res.Calls = append(res.Calls, call)
		}
	}
	return res, nil
}

func (s *Server) LastSubmittedEthereumEvent(_ context.Context, req *types.LastSubmittedEthereumEventRequest) (*types.LastSubmittedEthereumEventResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &types.LastSubmittedEthereumEventResponse{EventNonce: s.state.LastEventNonces[req.Address]}, nil
}

func (s *Server) ERC20ToDenom(_ context.Context, req *types.ERC20ToDenomRequest) (*types.ERC20ToDenomResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.state.ERC20s {
		if sameHex(m.ERC20, req.Erc20) {
			return &types.ERC20ToDenomResponse{Denom: m.Denom, CosmosOriginated: m.CosmosOriginated}, nil
		}
	}
	// tokens originating on ethereum get the gravity prefixed denom
	return &types.ERC20ToDenomResponse{Denom: "gravity" + req.Erc20}, nil
}

func (s *Server) DenomToERC20Params(_ context.Context, req *types.DenomToERC20ParamsRequest) (*types.DenomToERC20ParamsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, err := s.mapping(req.Denom)
	if err != nil {
		return nil, err
	}
	return &types.DenomToERC20ParamsResponse{
		BaseDenom:     m.Denom,
		Erc20Name:     m.Name,
		Erc20Symbol:   m.Symbol,
		Erc20Decimals: m.Decimals,
	}, nil
}

func (s *Server) DenomToERC20(_ context.Context, req *types.DenomToERC20Request) (*types.DenomToERC20Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, err := s.mapping(req.Denom)
	if err != nil {
		return nil, err
	}
	return &types.DenomToERC20Response{Erc20: m.ERC20, CosmosOriginated: m.CosmosOriginated}, nil
}

func (s *Server) DelegateKeysByValidator(_ context.Context, req *types.DelegateKeysByValidatorRequest) (*types.DelegateKeysByValidatorResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, keys := range s.state.DelegateKeys {
		if keys.ValidatorAddress == req.ValidatorAddress {
			return &types.DelegateKeysByValidatorResponse{
				EthAddress:          keys.EthereumAddress,
				OrchestratorAddress: keys.OrchestratorAddress,
			}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "no delegate keys for validator %s", req.ValidatorAddress)
}

func (s *Server) DelegateKeysByEthereumSigner(_ context.Context, req *types.DelegateKeysByEthereumSignerRequest) (*types.DelegateKeysByEthereumSignerResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, keys := range s.state.DelegateKeys {
		if sameHex(keys.EthereumAddress, req.EthereumSigner) {
			return &types.DelegateKeysByEthereumSignerResponse{
				ValidatorAddress:    keys.ValidatorAddress,
				OrchestratorAddress: keys.OrchestratorAddress,
			}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "no delegate keys for ethereum signer %s", req.EthereumSigner)
}

func (s *Server) DelegateKeysByOrchestrator(_ context.Context, req *types.DelegateKeysByOrchestratorRequest) (*types.DelegateKeysByOrchestratorResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, keys := range s.state.DelegateKeys {
		if keys.OrchestratorAddress == req.OrchestratorAddress {
			return &types.DelegateKeysByOrchestratorResponse{
				ValidatorAddress: keys.ValidatorAddress,
				EthereumSigner:   keys.EthereumAddress,
			}, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "no delegate keys for orchestrator %s", req.OrchestratorAddress)
}

func (s *Server) DelegateKeys(context.Context, *types.DelegateKeysRequest) (*types.DelegateKeysResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &types.DelegateKeysResponse{DelegateKeys: s.state.DelegateKeys}, nil
}

func (s *Server) BatchedSendToEthereums(_ context.Context, req *types.BatchedSendToEthereumsRequest) (*types.BatchedSendToEthereumsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := &types.BatchedSendToEthereumsResponse{}
	for _, batch := range s.state.Batches {
		for _, send := range batch.Transactions {
			if send.Sender == req.SenderAddress {
				res.SendToEthereums = append(res.SendToEthereums, send)
			}
		}
	}
	return res, nil
}

func (s *Server) UnbatchedSendToEthereums(_ context.Context, req *types.UnbatchedSendToEthereumsRequest) (*types.UnbatchedSendToEthereumsResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sends []*types.SendToEthereum
	for _, send := range s.state.UnbatchedSends {
		if req.SenderAddress == "" || send.Sender == req.SenderAddress {
			sends = append(sends, send)
		}
	}
	page, pageRes, err := paginate(sends, req.Pagination)
	if err != nil {
		return nil, err
	}
	return &types.UnbatchedSendToEthereumsResponse{SendToEthereums: page, Pagination: pageRes}, nil
}

// ethereumSigner resolves a validator or orchestrator address to its delegated ethereum key.
func (s *Server) ethereumSigner(address string) (string, error) {
	for _, keys := range s.state.DelegateKeys {
		if keys.ValidatorAddress == address || keys.OrchestratorAddress == address {
			return keys.EthereumAddress, nil
		}
	}
	return "", status.Errorf(codes.NotFound, "no delegate keys for %s", address)
}

func (s *Server) mapping(denom string) (*ERC20Mapping, error) {
	for _, m := range s.state.ERC20s {
		if m.Denom == denom {
			return m, nil
		}
	}
	return nil, status.Errorf(codes.NotFound, "no erc20 for denom %s", denom)
}

func sameHex(a, b string) bool {
	return strings.EqualFold(a, b)
}

func scopeKey(scope []byte) string {
	return fmt.Sprintf("0x%s", hex.EncodeToString(scope))
}
