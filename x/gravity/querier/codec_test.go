package querier

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"

	"github.com/argus-labs/gravity/x/gravity/types"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := Codec{}
	require.Equal(t, "proto", codec.Name())

	req := &types.UnbatchedSendToEthereumsRequest{
		SenderAddress: "somm1sender",
		Pagination:    &query.PageRequest{Key: []byte{0, 0, 0, 0, 0, 0, 0, 3}, Limit: 3},
	}
	bz, err := codec.Marshal(req)
	require.NoError(t, err)

	var decoded types.UnbatchedSendToEthereumsRequest
	require.NoError(t, codec.Unmarshal(bz, &decoded))
	require.Equal(t, req.SenderAddress, decoded.SenderAddress)
	require.Equal(t, req.Pagination.Key, decoded.Pagination.Key)
	require.Equal(t, uint64(3), decoded.Pagination.Limit)
}

func TestCodecRejectsNonProto(t *testing.T) {
	_, err := Codec{}.Marshal("not a message")
	require.Error(t, err)
	require.Error(t, Codec{}.Unmarshal(nil, struct{}{}))
}
