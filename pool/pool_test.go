package pool

import (
	"errors"
	"sync"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"gotest.tools/assert"

	"github.com/argus-labs/gravity/x/gravity/action"
	"github.com/argus-labs/gravity/x/gravity/types"
)

var signer = sdk.AccAddress([]byte("signer______________")).String()

func TestSendActionsDrainTx(t *testing.T) {
	mp := NewMsgPool(4)
	err := mp.SendActions(nil,
		&action.RequestBatchTx{Denom: "usomm", Signer: signer},
		&action.SubmitEthereumHeightVote{EthereumHeight: 10, Signer: signer},
	)
	assert.NilError(t, err)
	assert.Equal(t, 2, mp.Len())

	body := mp.DrainTx()
	assert.Equal(t, 2, len(body.Messages))
	assert.Equal(t, "/gravity.v1.MsgRequestBatchTx", body.Messages[0].TypeUrl)
	assert.Equal(t, "/gravity.v1.MsgEthereumHeightVote", body.Messages[1].TypeUrl)

	assert.Equal(t, 0, mp.Len())
	assert.Assert(t, mp.DrainTx() == nil)
}

func TestSendActionsAllOrNothing(t *testing.T) {
	mp := NewMsgPool(0)
	err := mp.SendActions(action.DefaultEncoder,
		&action.RequestBatchTx{Denom: "usomm", Signer: signer},
		&action.BatchTxConfirmation{BatchNonce: 1},
	)
	var notTx *action.NotATransactionMessageError
	assert.Assert(t, errors.As(err, &notTx))
	assert.Assert(t, errors.Is(err, types.ErrNotTxMsg))
	assert.Equal(t, 0, mp.Len())
}

func TestConcurrentSend(t *testing.T) {
	mp := NewMsgPool(0)
	envelope, err := action.Encode(&action.RequestBatchTx{Denom: "usomm", Signer: signer})
	assert.NilError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				mp.Send(envelope)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, len(mp.Drain()))
}
