package types_test

import (
	"errors"
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"gotest.tools/assert"

	"github.com/argus-labs/gravity/x/gravity/types"
)

var (
	accAddr = sdk.AccAddress([]byte("account_____________"))
	valAddr = sdk.ValAddress([]byte("validator___________"))
	ethAddr = "0x5A0b54D5dc17e0AadC383d2db43B0a0D3E029c4c"
)

func coin(denom string, amount int64) *sdk.Coin {
	c := sdk.NewCoin(denom, sdkmath.NewInt(amount))
	return &c
}

func TestMsgSendToEthereumValidateBasic(t *testing.T) {
	valid := func() *types.MsgSendToEthereum {
		return &types.MsgSendToEthereum{
			Sender:            accAddr.String(),
			EthereumRecipient: ethAddr,
			Amount:            coin("usomm", 100),
			BridgeFee:         coin("usomm", 1),
		}
	}

	testCases := []struct {
		name   string
		mutate func(*types.MsgSendToEthereum)
		expErr error
	}{
		{"valid", func(*types.MsgSendToEthereum) {}, nil},
		{"bad sender", func(m *types.MsgSendToEthereum) { m.Sender = "nope" }, sdkerrors.ErrInvalidAddress},
		{"bad recipient", func(m *types.MsgSendToEthereum) { m.EthereumRecipient = "0x123" }, types.ErrInvalidEthAddress},
		{"empty recipient", func(m *types.MsgSendToEthereum) { m.EthereumRecipient = "" }, types.ErrEmpty},
		{"nil amount", func(m *types.MsgSendToEthereum) { m.Amount = nil }, sdkerrors.ErrInvalidCoins},
		{"zero fee", func(m *types.MsgSendToEthereum) { m.BridgeFee = coin("usomm", 0) }, sdkerrors.ErrInvalidCoins},
		{"denom mismatch", func(m *types.MsgSendToEthereum) { m.BridgeFee = coin("uatom", 1) }, sdkerrors.ErrInvalidCoins},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			tc.mutate(msg)
			err := msg.ValidateBasic()
			if tc.expErr == nil {
				assert.NilError(t, err)
				assert.DeepEqual(t, []sdk.AccAddress{accAddr}, msg.GetSigners())
				return
			}
			assert.Assert(t, errors.Is(err, tc.expErr), err)
		})
	}
}

func TestMsgValidateBasic(t *testing.T) {
	confirmation := &codectypes.Any{TypeUrl: "/gravity.v1.BatchTxConfirmation", Value: []byte{1}}

	testCases := []struct {
		name   string
		msg    sdk.Msg
		expErr error
	}{
		{"cancel", &types.MsgCancelSendToEthereum{Id: 1, Sender: accAddr.String()}, nil},
		{"cancel zero id", &types.MsgCancelSendToEthereum{Sender: accAddr.String()}, sdkerrors.ErrInvalidRequest},
		{"request batch", &types.MsgRequestBatchTx{Denom: "usomm", Signer: accAddr.String()}, nil},
		{"request batch bad denom", &types.MsgRequestBatchTx{Denom: "!", Signer: accAddr.String()}, sdkerrors.ErrInvalidCoins},
		{"confirmation", &types.MsgSubmitEthereumTxConfirmation{Confirmation: confirmation, Signer: accAddr.String()}, nil},
		{"confirmation missing", &types.MsgSubmitEthereumTxConfirmation{Signer: accAddr.String()}, types.ErrEmpty},
		{"event missing", &types.MsgSubmitEthereumEvent{Signer: accAddr.String()}, types.ErrEmpty},
		{"height vote", &types.MsgEthereumHeightVote{EthereumHeight: 10, Signer: accAddr.String()}, nil},
		{"height vote zero", &types.MsgEthereumHeightVote{Signer: accAddr.String()}, sdkerrors.ErrInvalidRequest},
		{"height vote bad signer", &types.MsgEthereumHeightVote{EthereumHeight: 10, Signer: ""}, sdkerrors.ErrInvalidAddress},
		{
			"delegate keys",
			&types.MsgDelegateKeys{
				ValidatorAddress:    valAddr.String(),
				OrchestratorAddress: accAddr.String(),
				EthereumAddress:     ethAddr,
				EthSignature:        []byte{1},
			},
			nil,
		},
		{
			"delegate keys without signature",
			&types.MsgDelegateKeys{
				ValidatorAddress:    valAddr.String(),
				OrchestratorAddress: accAddr.String(),
				EthereumAddress:     ethAddr,
			},
			types.ErrEmpty,
		},
		{
			"delegate keys account as validator",
			&types.MsgDelegateKeys{
				ValidatorAddress:    accAddr.String(),
				OrchestratorAddress: accAddr.String(),
				EthereumAddress:     ethAddr,
				EthSignature:        []byte{1},
			},
			sdkerrors.ErrInvalidAddress,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expErr == nil {
				assert.NilError(t, err)
				assert.Equal(t, 1, len(tc.msg.GetSigners()))
				return
			}
			assert.Assert(t, errors.Is(err, tc.expErr), err)
		})
	}
}

func TestTypeURL(t *testing.T) {
	assert.Equal(t, "/gravity.v1.MsgSendToEthereum", types.TypeURL(&types.MsgSendToEthereum{}))
	assert.Equal(t, "/gravity.v1.DelegateKeysSignMsg", types.TypeURL(&types.DelegateKeysSignMsg{}))
	assert.Equal(t, "/gravity.v1.Query/BatchTxs", types.QueryMethod("BatchTxs"))
}

func TestPackEvent(t *testing.T) {
	registry := types.NewInterfaceRegistry()

	testCases := []struct {
		event   types.EthereumEvent
		typeURL string
	}{
		{&types.SendToCosmosEvent{EventNonce: 12, TokenContract: ethAddr, Amount: "100", CosmosReceiver: accAddr.String()}, "/gravity.v1.SendToCosmosEvent"},
		{&types.BatchExecutedEvent{EventNonce: 13, TokenContract: ethAddr, BatchNonce: 2}, "/gravity.v1.BatchExecutedEvent"},
		{&types.ContractCallExecutedEvent{EventNonce: 14, InvalidationScope: []byte{1}, InvalidationNonce: 3}, "/gravity.v1.ContractCallExecutedEvent"},
		{&types.ERC20DeployedEvent{EventNonce: 15, CosmosDenom: "usomm", TokenContract: ethAddr, Erc20Decimals: 6}, "/gravity.v1.ERC20DeployedEvent"},
		{
			&types.SignerSetTxExecutedEvent{
				EventNonce:       16,
				SignerSetTxNonce: 4,
				Members:          []*types.EthereumSigner{{Power: 10, EthereumAddress: ethAddr}},
			},
			"/gravity.v1.SignerSetTxExecutedEvent",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.typeURL, func(t *testing.T) {
			packed, err := types.PackEvent(tc.event)
			assert.NilError(t, err)
			assert.Equal(t, tc.typeURL, packed.TypeUrl)

			decoded := &codectypes.Any{TypeUrl: packed.TypeUrl, Value: packed.Value}
			var unpacked types.EthereumEvent
			assert.NilError(t, registry.UnpackAny(decoded, &unpacked))
			assert.Equal(t, tc.event.GetEventNonce(), unpacked.GetEventNonce())
			assert.Equal(t, proto.MessageName(tc.event), proto.MessageName(unpacked))
		})
	}
}

func TestGetSignBytes(t *testing.T) {
	msg := &types.MsgRequestBatchTx{Denom: "usomm", Signer: accAddr.String()}
	assert.Equal(t, types.RouterKey, msg.Route())
	assert.Equal(t, types.TypeMsgRequestBatchTx, msg.Type())
	assert.Equal(t,
		`{"type":"gravity/MsgRequestBatchTx","value":{"denom":"usomm","signer":"`+accAddr.String()+`"}}`,
		string(msg.GetSignBytes()),
	)

	confirmation, err := codectypes.NewAnyWithValue(&types.BatchTxConfirmation{TokenContract: ethAddr, BatchNonce: 4, Signature: []byte{1}})
	assert.NilError(t, err)
	submit := &types.MsgSubmitEthereumTxConfirmation{Confirmation: confirmation, Signer: accAddr.String()}
	assert.Equal(t, types.TypeMsgSubmitEthereumTxConfirmation, submit.Type())
	bz := submit.GetSignBytes()
	assert.Assert(t, strings.Contains(string(bz), `"type":"gravity/MsgSubmitEthereumTxConfirmation"`), string(bz))
	assert.Assert(t, strings.Contains(string(bz), `"type":"gravity/BatchTxConfirmation"`), string(bz))
}
