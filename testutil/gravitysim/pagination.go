package gravitysim

import (
	"encoding/binary"

	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultLimit = 100

// paginate pages items the way the cosmos query.Paginate helper does, with NextKey holding the
// big endian index of the first item of the next page.
func paginate[T any](items []T, page *query.PageRequest) ([]T, *query.PageResponse, error) {
	if page == nil {
		page = &query.PageRequest{}
	}
	if len(page.Key) > 0 && page.Offset > 0 {
		return nil, nil, status.Error(codes.InvalidArgument, "either offset or key is expected, got both")
	}

	start := page.Offset
	if len(page.Key) > 0 {
		if len(page.Key) != 8 {
			return nil, nil, status.Error(codes.InvalidArgument, "invalid pagination key")
		}
		start = binary.BigEndian.Uint64(page.Key)
	}
	limit := page.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	total := uint64(len(items))
	if start > total {
		start = total
	}
	end := total
	if limit < total-start {
		end = start + limit
	}

	res := &query.PageResponse{}
	if end < total {
		res.NextKey = make([]byte, 8)
		binary.BigEndian.PutUint64(res.NextKey, end)
	}
	if page.CountTotal {
		res.Total = total
	}
	return items[start:end], res, nil
}
