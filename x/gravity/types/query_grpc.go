package types

import (
	"context"

	"google.golang.org/grpc"
)

// QueryServer is the server API of the gravity.v1.Query service. The client side lives in the
// querier package and invokes the methods by path.
type QueryServer interface {
	Params(context.Context, *ParamsRequest) (*ParamsResponse, error)
	SignerSetTx(context.Context, *SignerSetTxRequest) (*SignerSetTxResponse, error)
	LatestSignerSetTx(context.Context, *LatestSignerSetTxRequest) (*SignerSetTxResponse, error)
	BatchTx(context.Context, *BatchTxRequest) (*BatchTxResponse, error)
	ContractCallTx(context.Context, *ContractCallTxRequest) (*ContractCallTxResponse, error)
	SignerSetTxs(context.Context, *SignerSetTxsRequest) (*SignerSetTxsResponse, error)
	BatchTxs(context.Context, *BatchTxsRequest) (*BatchTxsResponse, error)
	ContractCallTxs(context.Context, *ContractCallTxsRequest) (*ContractCallTxsResponse, error)
	SignerSetTxConfirmations(context.Context, *SignerSetTxConfirmationsRequest) (*SignerSetTxConfirmationsResponse, error)
	BatchTxConfirmations(context.Context, *BatchTxConfirmationsRequest) (*BatchTxConfirmationsResponse, error)
	ContractCallTxConfirmations(context.Context, *ContractCallTxConfirmationsRequest) (*ContractCallTxConfirmationsResponse, error)
	UnsignedSignerSetTxs(context.Context, *UnsignedSignerSetTxsRequest) (*UnsignedSignerSetTxsResponse, error)
	UnsignedBatchTxs(context.Context, *UnsignedBatchTxsRequest) (*UnsignedBatchTxsResponse, error)
	UnsignedContractCallTxs(context.Context, *UnsignedContractCallTxsRequest) (*UnsignedContractCallTxsResponse, error)
	LastSubmittedEthereumEvent(context.Context, *LastSubmittedEthereumEventRequest) (*LastSubmittedEthereumEventResponse, error)
	ERC20ToDenom(context.Context, *ERC20ToDenomRequest) (*ERC20ToDenomResponse, error)
	DenomToERC20Params(context.Context, *DenomToERC20ParamsRequest) (*DenomToERC20ParamsResponse, error)
	DenomToERC20(context.Context, *DenomToERC20Request) (*DenomToERC20Response, error)
	DelegateKeysByValidator(context.Context, *DelegateKeysByValidatorRequest) (*DelegateKeysByValidatorResponse, error)
	DelegateKeysByEthereumSigner(context.Context, *DelegateKeysByEthereumSignerRequest) (*DelegateKeysByEthereumSignerResponse, error)
	DelegateKeysByOrchestrator(context.Context, *DelegateKeysByOrchestratorRequest) (*DelegateKeysByOrchestratorResponse, error)
	DelegateKeys(context.Context, *DelegateKeysRequest) (*DelegateKeysResponse, error)
	BatchedSendToEthereums(context.Context, *BatchedSendToEthereumsRequest) (*BatchedSendToEthereumsResponse, error)
	UnbatchedSendToEthereums(context.Context, *UnbatchedSendToEthereumsRequest) (*UnbatchedSendToEthereumsResponse, error)
}

// RegisterQueryServer registers srv as the gravity.v1.Query service on s.
func RegisterQueryServer(s *grpc.Server, srv QueryServer) {
	s.RegisterService(&queryServiceDesc, srv)
}

var queryServiceDesc = grpc.ServiceDesc{
	ServiceName: QueryService,
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Params", Handler: unaryHandler("Params", QueryServer.Params)},
		{MethodName: "SignerSetTx", Handler: unaryHandler("SignerSetTx", QueryServer.SignerSetTx)},
		{MethodName: "LatestSignerSetTx", Handler: unaryHandler("LatestSignerSetTx", QueryServer.LatestSignerSetTx)},
		{MethodName: "BatchTx", Handler: unaryHandler("BatchTx", QueryServer.BatchTx)},
		{MethodName: "ContractCallTx", Handler: unaryHandler("ContractCallTx", QueryServer.ContractCallTx)},
		{MethodName: "SignerSetTxs", Handler: unaryHandler("SignerSetTxs", QueryServer.SignerSetTxs)},
		{MethodName: "BatchTxs", Handler: unaryHandler("BatchTxs", QueryServer.BatchTxs)},
		{MethodName: "ContractCallTxs", Handler: unaryHandler("ContractCallTxs", QueryServer.ContractCallTxs)},
		{MethodName: "SignerSetTxConfirmations", Handler: unaryHandler("SignerSetTxConfirmations", QueryServer.SignerSetTxConfirmations)},
		{MethodName: "BatchTxConfirmations", Handler: unaryHandler("BatchTxConfirmations", QueryServer.BatchTxConfirmations)},
		{MethodName: "ContractCallTxConfirmations", Handler: unaryHandler("ContractCallTxConfirmations", QueryServer.ContractCallTxConfirmations)},
		{MethodName: "UnsignedSignerSetTxs", Handler: unaryHandler("UnsignedSignerSetTxs", QueryServer.UnsignedSignerSetTxs)},
		{MethodName: "UnsignedBatchTxs", Handler: unaryHandler("UnsignedBatchTxs", QueryServer.UnsignedBatchTxs)},
		{MethodName: "UnsignedContractCallTxs", Handler: unaryHandler("UnsignedContractCallTxs", QueryServer.UnsignedContractCallTxs)},
		{MethodName: "LastSubmittedEthereumEvent", Handler: unaryHandler("LastSubmittedEthereumEvent", QueryServer.LastSubmittedEthereumEvent)},
		{MethodName: "ERC20ToDenom", Handler: unaryHandler("ERC20ToDenom", QueryServer.ERC20ToDenom)},
		{MethodName: "DenomToERC20Params", Handler: unaryHandler("DenomToERC20Params", QueryServer.DenomToERC20Params)},
		{MethodName: "DenomToERC20", Handler: unaryHandler("DenomToERC20", QueryServer.DenomToERC20)},
		{MethodName: "DelegateKeysByValidator", Handler: unaryHandler("DelegateKeysByValidator", QueryServer.DelegateKeysByValidator)},
		{MethodName: "DelegateKeysByEthereumSigner", Handler: unaryHandler("DelegateKeysByEthereumSigner", QueryServer.DelegateKeysByEthereumSigner)},
		{MethodName: "DelegateKeysByOrchestrator", Handler: unaryHandler("DelegateKeysByOrchestrator", QueryServer.DelegateKeysByOrchestrator)},
		{MethodName: "DelegateKeys", Handler: unaryHandler("DelegateKeys", QueryServer.DelegateKeys)},
		{MethodName: "BatchedSendToEthereums", Handler: unaryHandler("BatchedSendToEthereums", QueryServer.BatchedSendToEthereums)},
		{MethodName: "UnbatchedSendToEthereums", Handler: unaryHandler("UnbatchedSendToEthereums", QueryServer.UnbatchedSendToEthereums)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gravity/v1/query.proto",
}

func unaryHandler[Req, Resp any](method string, call func(QueryServer, context.Context, *Req) (*Resp, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(QueryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: QueryMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(QueryServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
