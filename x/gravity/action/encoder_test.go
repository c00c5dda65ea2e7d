package action_test

import (
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
	"gotest.tools/assert"

	"github.com/argus-labs/gravity/x/gravity/action"
	"github.com/argus-labs/gravity/x/gravity/types"
)

// countingCodec records how often it is used and fails when err is set.
type countingCodec struct {
	calls int
	err   error
}

func (c *countingCodec) Marshal(msg proto.Message) ([]byte, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return proto.Marshal(msg)
}

var (
	sender    = sdk.AccAddress([]byte("sender______________")).String()
	validator = sdk.ValAddress([]byte("validator___________")).String()
	recipient = "0xdeAD000000000000000000000000000000000000"
)

func usomm(amount int64) sdk.Coin {
	return sdk.NewCoin("usomm", sdkmath.NewInt(amount))
}

func mustEncode(t *testing.T, a action.Action) *codectypes.Any {
	t.Helper()
	envelope, err := action.Encode(a)
	assert.NilError(t, err)
	return envelope
}

type envelopeCase struct {
	action  action.Action
	typeURL string
}

func transactionActions(t *testing.T) []envelopeCase {
	confirmation := mustEncode(t, &action.SignerSetTxConfirmation{
		SignerSetNonce: 3,
		EthereumSigner: recipient,
		Signature:      []byte{0x01},
	})
	event, err := types.PackEvent(&types.SendToCosmosEvent{EventNonce: 1, CosmosReceiver: sender})
	assert.NilError(t, err)

	return []envelopeCase{
		{&action.SendToEthereum{Sender: sender, EthereumRecipient: recipient, Amount: usomm(100), BridgeFee: usomm(1)}, "/gravity.v1.MsgSendToEthereum"},
		{&action.CancelSendToEthereum{Sender: sender, ID: 4}, "/gravity.v1.MsgCancelSendToEthereum"},
		{&action.RequestBatchTx{Denom: "usomm", Signer: sender}, "/gravity.v1.MsgRequestBatchTx"},
		{&action.SubmitEthereumTxConfirmation{Confirmation: confirmation, Signer: sender}, "/gravity.v1.MsgSubmitEthereumTxConfirmation"},
		{&action.SubmitEthereumEvent{Event: event, Signer: sender}, "/gravity.v1.MsgSubmitEthereumEvent"},
		{&action.SetDelegateKeys{ValidatorAddress: validator, OrchestratorAddress: sender, EthereumAddress: recipient}, "/gravity.v1.MsgDelegateKeys"},
		{&action.SubmitEthereumHeightVote{EthereumHeight: 100, Signer: sender}, "/gravity.v1.MsgEthereumHeightVote"},
	}
}

func confirmationActions() []envelopeCase {
	return []envelopeCase{
		{&action.ContractCallTxConfirmation{InvalidationScope: []byte{1}, InvalidationNonce: 1, EthereumSigner: recipient, Signature: []byte{1}}, "/gravity.v1.ContractCallTxConfirmation"},
		{&action.BatchTxConfirmation{TokenContract: recipient, BatchNonce: 1, EthereumSigner: recipient, Signature: []byte{1}}, "/gravity.v1.BatchTxConfirmation"},
		{&action.SignerSetTxConfirmation{SignerSetNonce: 1, EthereumSigner: recipient, Signature: []byte{1}}, "/gravity.v1.SignerSetTxConfirmation"},
		{&action.DelegateKeysSignMsg{ValidatorAddress: validator, Nonce: 1}, "/gravity.v1.DelegateKeysSignMsg"},
	}
}

func TestIntoTx(t *testing.T) {
	for _, tc := range transactionActions(t) {
		a, typeURL := tc.action, tc.typeURL
		t.Run(a.Name(), func(t *testing.T) {
			body, err := action.IntoTx(a)
			assert.NilError(t, err)
			assert.Equal(t, 1, len(body.Messages))
			assert.Equal(t, typeURL, body.Messages[0].TypeUrl)
			assert.Assert(t, len(body.Messages[0].Value) > 0)
			assert.Assert(t, action.IsTransactionMessage(a))
		})
	}
}

func TestIntoTxRejectsConfirmationsBeforeEncoding(t *testing.T) {
	for _, tc := range confirmationActions() {
		a := tc.action
		t.Run(a.Name(), func(t *testing.T) {
			codec := &countingCodec{err: errors.New("codec must not be called")}
			enc := &action.Encoder{Codec: codec}

			body, err := enc.IntoTx(a)
			assert.Assert(t, body == nil)
			var notTx *action.NotATransactionMessageError
			assert.Assert(t, errors.As(err, &notTx))
			assert.Equal(t, a.Name(), notTx.Variant)
			assert.Assert(t, errors.Is(err, types.ErrNotTxMsg))
			assert.Equal(t, 0, codec.calls)
		})
	}
}

func TestEncodeAllVariants(t *testing.T) {
	all := append(transactionActions(t), confirmationActions()...)
	assert.Equal(t, 11, len(all))

	for _, tc := range all {
		a, typeURL := tc.action, tc.typeURL
		t.Run(a.Name(), func(t *testing.T) {
			envelope, err := action.Encode(a)
			assert.NilError(t, err)
			assert.Equal(t, typeURL, envelope.TypeUrl)

			bz, err := proto.Marshal(a.Msg())
			assert.NilError(t, err)
			assert.DeepEqual(t, bz, envelope.Value)
		})
	}
}

func TestEncodeError(t *testing.T) {
	cause := errors.New("boom")
	enc := &action.Encoder{Codec: &countingCodec{err: cause}}

	_, err := enc.Encode(&action.RequestBatchTx{Denom: "usomm", Signer: sender})
	var encErr *action.EncodeError
	assert.Assert(t, errors.As(err, &encErr))
	assert.Equal(t, "RequestBatchTx", encErr.Variant)
	assert.Assert(t, errors.Is(err, cause))
	assert.Assert(t, errors.Is(err, types.ErrEncode))
	assert.Error(t, err, "failed to encode RequestBatchTx: boom")

	_, err = enc.IntoTx(&action.RequestBatchTx{Denom: "usomm", Signer: sender})
	assert.Assert(t, errors.As(err, &encErr))
}

func TestEncodeNil(t *testing.T) {
	_, err := action.Encode(nil)
	assert.Assert(t, errors.Is(err, types.ErrEmpty))
	_, err = action.IntoTx(nil)
	assert.Assert(t, errors.Is(err, types.ErrEmpty))
}

func TestEncodeTypedNil(t *testing.T) {
	for _, a := range []action.Action{
		(*action.SendToEthereum)(nil),
		(*action.CancelSendToEthereum)(nil),
		(*action.RequestBatchTx)(nil),
		(*action.SubmitEthereumTxConfirmation)(nil),
		(*action.ContractCallTxConfirmation)(nil),
		(*action.BatchTxConfirmation)(nil),
		(*action.SignerSetTxConfirmation)(nil),
		(*action.SubmitEthereumEvent)(nil),
		(*action.SetDelegateKeys)(nil),
		(*action.DelegateKeysSignMsg)(nil),
		(*action.SubmitEthereumHeightVote)(nil),
	} {
		t.Run(a.Name(), func(t *testing.T) {
			codec := &countingCodec{}
			enc := &action.Encoder{Codec: codec}

			envelope, err := enc.Encode(a)
			assert.Assert(t, envelope == nil)
			assert.Assert(t, errors.Is(err, types.ErrEmpty), err)

			body, err := enc.IntoTx(a)
			assert.Assert(t, body == nil)
			assert.Assert(t, errors.Is(err, types.ErrEmpty), err)
			assert.Equal(t, 0, codec.calls)
		})
	}
}

func TestNestedConfirmationRoundTrip(t *testing.T) {
	inner := mustEncode(t, &action.ContractCallTxConfirmation{
		InvalidationScope: []byte{0x01, 0x02},
		InvalidationNonce: 7,
		EthereumSigner:    "0xabc",
		Signature:         []byte{0xAA},
	})

	body, err := action.IntoTx(&action.SubmitEthereumTxConfirmation{Confirmation: inner, Signer: sender})
	assert.NilError(t, err)
	outer := body.Messages[0]
	assert.Equal(t, "/gravity.v1.MsgSubmitEthereumTxConfirmation", outer.TypeUrl)

	var msg types.MsgSubmitEthereumTxConfirmation
	assert.NilError(t, proto.Unmarshal(outer.Value, &msg))
	assert.Equal(t, sender, msg.Signer)
	assert.Equal(t, "/gravity.v1.ContractCallTxConfirmation", msg.Confirmation.TypeUrl)
	assert.DeepEqual(t, inner.Value, msg.Confirmation.Value)

	registry := types.NewInterfaceRegistry()
	conf, err := types.UnpackConfirmation(registry, msg.Confirmation)
	assert.NilError(t, err)
	call, ok := conf.(*types.ContractCallTxConfirmation)
	assert.Assert(t, ok)
	assert.DeepEqual(t, []byte{0x01, 0x02}, call.InvalidationScope)
	assert.Equal(t, uint64(7), call.InvalidationNonce)
	assert.Equal(t, "0xabc", call.GetEthereumSigner())
	assert.DeepEqual(t, []byte{0xAA}, call.GetSignature())

	// the registry decodes the outer message and unpacks the nested confirmation with it
	var sdkMsg sdk.Msg
	assert.NilError(t, registry.UnpackAny(outer, &sdkMsg))
	submitted, ok := sdkMsg.(*types.MsgSubmitEthereumTxConfirmation)
	assert.Assert(t, ok)
	cached, ok := submitted.Confirmation.GetCachedValue().(*types.ContractCallTxConfirmation)
	assert.Assert(t, ok)
	assert.Equal(t, uint64(7), cached.InvalidationNonce)

	reencoded, err := proto.Marshal(submitted)
	assert.NilError(t, err)
	assert.DeepEqual(t, outer.Value, reencoded)
}

func TestNestedEventRoundTrip(t *testing.T) {
	event, err := types.PackEvent(&types.BatchExecutedEvent{TokenContract: recipient, EventNonce: 5, BatchNonce: 2, EthereumHeight: 90})
	assert.NilError(t, err)

	envelope := mustEncode(t, &action.SubmitEthereumEvent{Event: event, Signer: sender})

	var msg types.MsgSubmitEthereumEvent
	assert.NilError(t, proto.Unmarshal(envelope.Value, &msg))
	assert.Equal(t, sender, msg.Signer)
	assert.Equal(t, "/gravity.v1.BatchExecutedEvent", msg.Event.TypeUrl)

	var sdkMsg sdk.Msg
	assert.NilError(t, types.NewInterfaceRegistry().UnpackAny(envelope, &sdkMsg))
	submitted, ok := sdkMsg.(*types.MsgSubmitEthereumEvent)
	assert.Assert(t, ok)
	executed, ok := submitted.Event.GetCachedValue().(*types.BatchExecutedEvent)
	assert.Assert(t, ok)
	assert.Equal(t, uint64(5), executed.GetEventNonce())
	assert.Equal(t, uint64(2), executed.BatchNonce)
}

func TestUnmarshalRejectsTruncatedEnvelope(t *testing.T) {
	envelope := mustEncode(t, &action.SubmitEthereumTxConfirmation{
		Confirmation: mustEncode(t, &action.BatchTxConfirmation{TokenContract: recipient, BatchNonce: 1}),
		Signer:       sender,
	})

	var msg types.MsgSubmitEthereumTxConfirmation
	err := proto.Unmarshal(envelope.Value[:len(envelope.Value)-3], &msg)
	assert.Assert(t, err != nil)
}

func TestSendToEthereumRoundTrip(t *testing.T) {
	envelope := mustEncode(t, &action.SendToEthereum{
		Sender:            sender,
		EthereumRecipient: recipient,
		Amount:            usomm(100),
		BridgeFee:         usomm(1),
	})
	assert.Equal(t, "/gravity.v1.MsgSendToEthereum", envelope.TypeUrl)
	assert.Assert(t, len(envelope.Value) > 0)

	var msg types.MsgSendToEthereum
	assert.NilError(t, proto.Unmarshal(envelope.Value, &msg))
	assert.Equal(t, sender, msg.Sender)
	assert.Equal(t, recipient, msg.EthereumRecipient)
	assert.Equal(t, "100usomm", msg.Amount.String())
	assert.Equal(t, "1usomm", msg.BridgeFee.String())
	assert.NilError(t, msg.ValidateBasic())
}

func TestBatchTxConfirmationNeverATransaction(t *testing.T) {
	for _, conf := range []*action.BatchTxConfirmation{
		{},
		{Signature: []byte{}},
		{TokenContract: recipient, BatchNonce: 9, EthereumSigner: recipient, Signature: make([]byte, 65)},
	} {
		_, err := action.IntoTx(conf)
		assert.Error(t, err, "BatchTxConfirmation does not represent a transaction Msg. use Encode to get the Any representation")
	}
}

func TestEnvelopesResolve(t *testing.T) {
	registry := types.NewInterfaceRegistry()
	for _, tc := range transactionActions(t) {
		msg, err := registry.Resolve(tc.typeURL)
		assert.NilError(t, err, tc.action.Name())
		assert.Equal(t, proto.MessageName(tc.action.Msg()), proto.MessageName(msg))
	}
}
