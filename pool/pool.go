// Package pool queues encoded gravity messages until they are drained into a transaction body.
package pool

import (
	"sync"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"

	"github.com/argus-labs/gravity/x/gravity/action"
)

type MsgPoolSender interface {
	Send(...*codectypes.Any)
	SendActions(*action.Encoder, ...action.Action) error
}

type MsgPoolReceiver interface {
	Drain() []*codectypes.Any
	DrainTx() *txtypes.TxBody
}

var (
	_ MsgPoolSender   = &MsgPool{}
	_ MsgPoolReceiver = &MsgPool{}
)

// MsgPool is a concurrency safe queue of message envelopes.
type MsgPool struct {
	queue []*codectypes.Any
	lock  sync.RWMutex
}

// Drain empties the pool and returns what it held, in send order.
func (m *MsgPool) Drain() []*codectypes.Any {
	m.lock.Lock()
	queue := m.queue
	m.queue = make([]*codectypes.Any, 0, cap(queue))
	m.lock.Unlock()
	return queue
}

// DrainTx empties the pool into a transaction body. It returns nil when the pool is empty.
func (m *MsgPool) DrainTx() *txtypes.TxBody {
	msgs := m.Drain()
	if len(msgs) == 0 {
		return nil
	}
	return &txtypes.TxBody{Messages: msgs}
}

func (m *MsgPool) Send(msgs ...*codectypes.Any) {
	m.lock.Lock()
	m.queue = append(m.queue, msgs...)
	m.lock.Unlock()
}

// SendActions encodes every action and queues the envelopes. Actions that cannot be the root of a
// transaction are refused. Nothing is queued unless every action encodes.
func (m *MsgPool) SendActions(enc *action.Encoder, actions ...action.Action) error {
	if enc == nil {
		enc = action.DefaultEncoder
	}
	msgs := make([]*codectypes.Any, 0, len(actions))
	for _, a := range actions {
		body, err := enc.IntoTx(a)
		if err != nil {
			return err
		}
		msgs = append(msgs, body.Messages...)
	}
	m.Send(msgs...)
	return nil
}

// Len is the number of queued envelopes.
func (m *MsgPool) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.queue)
}

// NewMsgPool returns a new MsgPool. initialBufferSize is the initial amount of cap space to provide to the msg slice.
func NewMsgPool(initialBufferSize int) *MsgPool {
	return &MsgPool{
		queue: make([]*codectypes.Any, 0, initialBufferSize),
	}
}
