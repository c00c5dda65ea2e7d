package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
	"gotest.tools/assert"

	"github.com/argus-labs/gravity/x/gravity/types"
)

func TestParamsSlashFractionFromNodeBytes(t *testing.T) {
	fraction := sdk.MustNewDecFromStr("0.001")
	bz, err := fraction.Marshal()
	assert.NilError(t, err)
	assert.Equal(t, "1000000000000000", string(bz))

	// field 14, length delimited, as a node encodes it
	wire := append([]byte{14<<3 | 2, byte(len(bz))}, bz...)

	var params types.Params
	assert.NilError(t, proto.Unmarshal(wire, &params))
	assert.Assert(t, params.SlashFractionBatch.Equal(fraction), params.SlashFractionBatch.String())
	assert.Equal(t, "0.001000000000000000", params.SlashFractionBatch.String())
}

func TestParamsRoundTrip(t *testing.T) {
	params := types.Params{
		GravityId:                                 "sommelier",
		BridgeChainId:                             1,
		SignedBatchesWindow:                       10000,
		SlashFractionSignerSetTx:                  sdk.MustNewDecFromStr("0.001"),
		SlashFractionBatch:                        sdk.MustNewDecFromStr("0.002"),
		SlashFractionEthereumSignature:            sdk.MustNewDecFromStr("0.003"),
		SlashFractionConflictingEthereumSignature: sdk.MustNewDecFromStr("0.5"),
	}

	bz, err := proto.Marshal(&params)
	assert.NilError(t, err)

	var decoded types.Params
	assert.NilError(t, proto.Unmarshal(bz, &decoded))
	assert.Equal(t, "sommelier", decoded.GravityId)
	assert.Equal(t, uint64(10000), decoded.SignedBatchesWindow)
	assert.Assert(t, decoded.SlashFractionSignerSetTx.Equal(params.SlashFractionSignerSetTx))
	assert.Assert(t, decoded.SlashFractionBatch.Equal(params.SlashFractionBatch))
	assert.Assert(t, decoded.SlashFractionEthereumSignature.Equal(params.SlashFractionEthereumSignature))
	assert.Assert(t, decoded.SlashFractionConflictingEthereumSignature.Equal(params.SlashFractionConflictingEthereumSignature))
}
