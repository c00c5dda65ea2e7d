package action

import (
	"fmt"

	"github.com/argus-labs/gravity/x/gravity/types"
)

// EncodeError is returned when the wire codec rejects an action's fields.
type EncodeError struct {
	Variant string
	Err     error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %s", e.Variant, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Is lets errors.Is match EncodeError against types.ErrEncode.
func (e *EncodeError) Is(target error) bool { return target == types.ErrEncode }

// NotATransactionMessageError is returned when an action that can only be embedded in another
// message is turned into a transaction.
type NotATransactionMessageError struct {
	Variant string
}

func (e *NotATransactionMessageError) Error() string {
	return fmt.Sprintf("%s does not represent a transaction Msg. use Encode to get the Any representation", e.Variant)
}

// Is lets errors.Is match NotATransactionMessageError against types.ErrNotTxMsg.
func (e *NotATransactionMessageError) Is(target error) bool { return target == types.ErrNotTxMsg }
