package querier

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/status"

	"github.com/argus-labs/gravity/x/gravity/types"
)

// RemoteCallError wraps a dial, transport or decoding failure of a single query unchanged.
type RemoteCallError struct {
	Method string
	Err    error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("gravity query %s: %s", e.Method, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }

// Is lets errors.Is match RemoteCallError against types.ErrRemoteCall.
func (e *RemoteCallError) Is(target error) bool { return target == types.ErrRemoteCall }

// GRPCStatus exposes the status of the wrapped error so status.Code works on a RemoteCallError.
// Context errors from dialing map to their gRPC codes.
func (e *RemoteCallError) GRPCStatus() *status.Status {
	if errors.Is(e.Err, context.Canceled) || errors.Is(e.Err, context.DeadlineExceeded) {
		return status.FromContextError(e.Err)
	}
	return status.Convert(e.Err)
}
