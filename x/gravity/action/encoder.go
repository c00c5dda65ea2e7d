package action

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/gogo/protobuf/proto"

	"github.com/argus-labs/gravity/x/gravity/types"
)

// Codec serializes a wire message into its protobuf bytes.
type Codec interface {
	Marshal(msg proto.Message) ([]byte, error)
}

// ProtoCodec is the gogoproto wire codec.
type ProtoCodec struct{}

func (ProtoCodec) Marshal(msg proto.Message) ([]byte, error) {
	return proto.Marshal(msg)
}

// DefaultEncoder encodes with ProtoCodec.
var DefaultEncoder = &Encoder{Codec: ProtoCodec{}}

// Encoder converts actions into Any envelopes and single message transaction bodies.
// It holds no mutable state and is safe for concurrent use.
type Encoder struct {
	Codec Codec
}

// Encode encodes an action with the default encoder.
func Encode(a Action) (*codectypes.Any, error) {
	return DefaultEncoder.Encode(a)
}

// IntoTx turns an action into a transaction body with the default encoder.
func IntoTx(a Action) (*txtypes.TxBody, error) {
	return DefaultEncoder.IntoTx(a)
}

// Encode serializes the action's wire message into an Any. Every action encodes, including the
// ones IntoTx refuses, so confirmations can be embedded in SubmitEthereumTxConfirmation.
func (e *Encoder) Encode(a Action) (*codectypes.Any, error) {
	if isNil(a) {
		return nil, types.ErrEmpty.Wrap("action")
	}
	msg := a.Msg()
	bz, err := e.codec().Marshal(msg)
	if err != nil {
		return nil, &EncodeError{Variant: a.Name(), Err: err}
	}
	return &codectypes.Any{
		TypeUrl: types.TypeURL(msg),
		Value:   bz,
	}, nil
}

// IntoTx checks that the action is a transaction message and returns a body holding its
// envelope. Rejected actions are never passed to the codec.
func (e *Encoder) IntoTx(a Action) (*txtypes.TxBody, error) {
	if isNil(a) {
		return nil, types.ErrEmpty.Wrap("action")
	}
	if !IsTransactionMessage(a) {
		return nil, &NotATransactionMessageError{Variant: a.Name()}
	}
	envelope, err := e.Encode(a)
	if err != nil {
		return nil, err
	}
	return &txtypes.TxBody{Messages: []*codectypes.Any{envelope}}, nil
}

// IsTransactionMessage reports whether the action may be the root message of a transaction.
func IsTransactionMessage(a Action) bool {
	switch a.(type) {
	case *ContractCallTxConfirmation, *BatchTxConfirmation, *SignerSetTxConfirmation, *DelegateKeysSignMsg:
		return false
	default:
		return true
	}
}

// isNil reports whether a is nil or a nil pointer to one of the variants.
func isNil(a Action) bool {
	switch v := a.(type) {
	case nil:
		return true
	case *SendToEthereum:
		return v == nil
	case *CancelSendToEthereum:
		return v == nil
	case *RequestBatchTx:
		return v == nil
	case *SubmitEthereumTxConfirmation:
		return v == nil
	case *ContractCallTxConfirmation:
		return v == nil
	case *BatchTxConfirmation:
		return v == nil
	case *SignerSetTxConfirmation:
		return v == nil
	case *SubmitEthereumEvent:
		return v == nil
	case *SetDelegateKeys:
		return v == nil
	case *DelegateKeysSignMsg:
		return v == nil
	case *SubmitEthereumHeightVote:
		return v == nil
	}
	return false
}

func (e *Encoder) codec() Codec {
	if e.Codec == nil {
		return ProtoCodec{}
	}
	return e.Codec
}
