package types

import (
	"github.com/gogo/protobuf/proto"
)

const (
	// ModuleName is the name of the bridge module on the remote chain.
	ModuleName = "gravity"

	// ProtoPackage is the protobuf package every gravity wire message lives in.
	ProtoPackage = "gravity.v1"

	// QueryService is the fully qualified name of the gravity gRPC query service.
	QueryService = ProtoPackage + ".Query"

	// RouterKey is the legacy message route of the gravity module.
	RouterKey = ModuleName
)

// legacy amino message types
const (
	TypeMsgSendToEthereum               = "send_to_ethereum"
	TypeMsgCancelSendToEthereum         = "cancel_send_to_ethereum"
	TypeMsgRequestBatchTx               = "request_batch_tx"
	TypeMsgSubmitEthereumTxConfirmation = "submit_ethereum_tx_confirmation"
	TypeMsgSubmitEthereumEvent          = "submit_ethereum_event"
	TypeMsgDelegateKeys                 = "delegate_keys"
	TypeMsgEthereumHeightVote           = "ethereum_height_vote"
)

// TypeURL returns the Any type URL of a registered gravity message, i.e. "/gravity.v1.MsgSendToEthereum".
func TypeURL(msg proto.Message) string {
	return "/" + proto.MessageName(msg)
}

// QueryMethod returns the full gRPC method path for a method of the gravity query service.
func QueryMethod(name string) string {
	return "/" + QueryService + "/" + name
}
