package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tendermint/tendermint/libs/log"
	"gotest.tools/assert"

	"github.com/argus-labs/gravity/testutil/gravitysim"
	"github.com/argus-labs/gravity/x/gravity/client/cli"
	"github.com/argus-labs/gravity/x/gravity/querier"
	"github.com/argus-labs/gravity/x/gravity/types"
)

const ethSigner = "0x5A0b54D5dc17e0AadC383d2db43B0a0D3E029c4c"

func execute(t *testing.T, sim *gravitysim.Sim, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GRAVITY_BECH32_PREFIX", sdk.Bech32MainPrefix)
	t.Setenv("GRAVITY_LOG_LEVEL", "none")

	var opts []querier.Option
	if sim != nil {
		opts = append(opts, querier.WithDialer(sim.Dialer()))
	}
	rootCmd := NewRootCmd(opts...)
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(cli.WithContext(context.Background(), &cli.Context{}))
	return out.String(), err
}

func TestQueryParams(t *testing.T) {
	sim := gravitysim.Start(gravitysim.State{Params: &types.Params{GravityId: "gravity-test"}}, log.NewNopLogger())
	defer sim.Stop()

	out, err := execute(t, sim, "query", "params")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `"gravity_id":"gravity-test"`), out)
	assert.Equal(t, int64(1), sim.Dials())
}

func TestQueryStringResult(t *testing.T) {
	sim := gravitysim.Start(gravitysim.State{
		ERC20s: []*gravitysim.ERC20Mapping{{Denom: "usomm", ERC20: "0x2a5c58D5B1a5a6f5cE4F0b6c8c5A8f7D5b6F1e21"}},
	}, log.NewNopLogger())
	defer sim.Stop()

	out, err := execute(t, sim, "query", "denom-to-erc20", "usomm")
	assert.NilError(t, err)
	assert.Equal(t, "0x2a5c58D5B1a5a6f5cE4F0b6c8c5A8f7D5b6F1e21\n", out)
}

func TestQueryPagination(t *testing.T) {
	state := gravitysim.State{}
	for nonce := uint64(1); nonce <= 4; nonce++ {
		state.SignerSets = append(state.SignerSets, &types.SignerSetTx{Nonce: nonce})
	}
	sim := gravitysim.Start(state, log.NewNopLogger())
	defer sim.Stop()

	out, err := execute(t, sim, "query", "signer-set-txs", "--limit", "2")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `"nonce":"2"`), out)
	assert.Assert(t, !strings.Contains(out, `"nonce":"3"`), out)
}

func TestQueryRemoteError(t *testing.T) {
	sim := gravitysim.Start(gravitysim.State{}, log.NewNopLogger())
	defer sim.Stop()

	_, err := execute(t, sim, "query", "latest-signer-set-tx")
	assert.ErrorContains(t, err, "gravity query LatestSignerSetTx")
}

func TestQueryInvalidNonce(t *testing.T) {
	_, err := execute(t, nil, "query", "signer-set-tx", "abc")
	assert.ErrorContains(t, err, `invalid nonce "abc"`)
}

func TestEncodeRequestBatchTx(t *testing.T) {
	signer := sdk.AccAddress([]byte("signer______________")).String()

	out, err := execute(t, nil, "encode", "request-batch-tx", "usomm", signer)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `"@type":"/gravity.v1.MsgRequestBatchTx"`), out)
	assert.Assert(t, strings.Contains(out, signer), out)

	out, err = execute(t, nil, "encode", "request-batch-tx", "usomm", signer, "--any")
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(out, "messages"), out)
	assert.Assert(t, strings.Contains(out, `"@type":"/gravity.v1.MsgRequestBatchTx"`), out)
}

func TestEncodeValidatesFirst(t *testing.T) {
	_, err := execute(t, nil, "encode", "ethereum-height-vote", "0", sdk.AccAddress([]byte("signer______________")).String())
	assert.ErrorContains(t, err, "invalid SubmitEthereumHeightVote")
}

func TestEncodeSetDelegateKeys(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NilError(t, err)
	validator := sdk.ValAddress([]byte("validator___________")).String()
	orchestrator := sdk.AccAddress([]byte("orchestrator________")).String()

	out, err := execute(t, nil, "encode", "set-delegate-keys", validator, orchestrator, hexutil.Encode(crypto.FromECDSA(key)), "0")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `"@type":"/gravity.v1.MsgDelegateKeys"`), out)
	assert.Assert(t, strings.Contains(out, crypto.PubkeyToAddress(key.PublicKey).Hex()), out)
}

func TestEncodeDelegateKeysSignMsg(t *testing.T) {
	validator := sdk.ValAddress([]byte("validator___________")).String()

	out, err := execute(t, nil, "encode", "delegate-keys-sign-msg", validator, "4")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `"@type":"/gravity.v1.DelegateKeysSignMsg"`), out)
}

func TestEncodeConfirmationEnvelopes(t *testing.T) {
	testCases := []struct {
		args    []string
		typeURL string
	}{
		{[]string{"contract-call-tx-confirmation", "0x0102", "7", ethSigner, "0xaa"}, "/gravity.v1.ContractCallTxConfirmation"},
		{[]string{"batch-tx-confirmation", ethSigner, "3", ethSigner, "0xaa"}, "/gravity.v1.BatchTxConfirmation"},
		{[]string{"signer-set-tx-confirmation", "2", ethSigner, "0xaa"}, "/gravity.v1.SignerSetTxConfirmation"},
	}
	for _, tc := range testCases {
		t.Run(tc.args[0], func(t *testing.T) {
			out, err := execute(t, nil, append([]string{"encode"}, tc.args...)...)
			assert.NilError(t, err)
			assert.Assert(t, strings.Contains(out, `"@type":"`+tc.typeURL+`"`), out)
			assert.Assert(t, !strings.Contains(out, "messages"), out)
		})
	}

	_, err := execute(t, nil, "encode", "batch-tx-confirmation", ethSigner, "3", ethSigner, "zz")
	assert.ErrorContains(t, err, "invalid signature")
}

func TestEncodeSubmitEthereumTxConfirmation(t *testing.T) {
	signer := sdk.AccAddress([]byte("signer______________")).String()

	confirmation, err := execute(t, nil, "encode", "batch-tx-confirmation", ethSigner, "3", ethSigner, "0xaa")
	assert.NilError(t, err)

	out, err := execute(t, nil, "encode", "submit-ethereum-tx-confirmation", signer, strings.TrimSpace(confirmation))
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `"@type":"/gravity.v1.MsgSubmitEthereumTxConfirmation"`), out)
	assert.Assert(t, strings.Contains(out, `"@type":"/gravity.v1.BatchTxConfirmation"`), out)
	assert.Assert(t, strings.Contains(out, `"batch_nonce":"3"`), out)

	event := `{"@type":"/gravity.v1.SendToCosmosEvent","event_nonce":"1"}`
	_, err = execute(t, nil, "encode", "submit-ethereum-tx-confirmation", signer, event)
	assert.ErrorContains(t, err, "confirmation")

	_, err = execute(t, nil, "encode", "submit-ethereum-tx-confirmation", signer, `{"token_contract":"x"}`)
	assert.ErrorContains(t, err, "confirmation")
}

func TestEncodeSubmitEthereumEvent(t *testing.T) {
	signer := sdk.AccAddress([]byte("signer______________")).String()
	event := `{"@type":"/gravity.v1.ERC20DeployedEvent","event_nonce":"9","cosmos_denom":"usomm","erc20_decimals":"6"}`

	out, err := execute(t, nil, "encode", "submit-ethereum-event", signer, event)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `"@type":"/gravity.v1.MsgSubmitEthereumEvent"`), out)
	assert.Assert(t, strings.Contains(out, `"@type":"/gravity.v1.ERC20DeployedEvent"`), out)
	assert.Assert(t, strings.Contains(out, `"cosmos_denom":"usomm"`), out)

	out, err = execute(t, nil, "encode", "submit-ethereum-event", signer, event, "--any")
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(out, "messages"), out)

	_, err = execute(t, nil, "encode", "submit-ethereum-event", "nope", event)
	assert.ErrorContains(t, err, "invalid SubmitEthereumEvent")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, nil, "query", "params", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}
