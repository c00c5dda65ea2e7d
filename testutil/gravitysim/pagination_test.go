package gravitysim

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}

	page, res, err := paginate(items, nil)
	require.NoError(t, err)
	require.Equal(t, items, page)
	require.Nil(t, res.NextKey)

	page, res, err = paginate(items, &query.PageRequest{Limit: 3, CountTotal: true})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, page)
	require.Equal(t, uint64(7), res.Total)

	page, res, err = paginate(items, &query.PageRequest{Key: res.NextKey, Limit: 3})
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, page)

	page, res, err = paginate(items, &query.PageRequest{Key: res.NextKey, Limit: 3})
	require.NoError(t, err)
	require.Equal(t, []int{6}, page)
	require.Nil(t, res.NextKey)

	page, _, err = paginate(items, &query.PageRequest{Offset: 5})
	require.NoError(t, err)
	require.Equal(t, []int{5, 6}, page)

	page, _, err = paginate(items, &query.PageRequest{Offset: 50})
	require.NoError(t, err)
	require.Empty(t, page)
}

func TestPaginateInvalid(t *testing.T) {
	_, _, err := paginate([]int{1}, &query.PageRequest{Key: []byte{1}, Offset: 1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, _, err = paginate([]int{1}, &query.PageRequest{Key: []byte{1}})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
