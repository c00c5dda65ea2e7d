// Package gravitysim serves the gravity query service from in-memory state over an in-process
// listener, for exercising the querier without a chain.
package gravitysim

import (
	"context"
	"net"
	"sync/atomic"

	"github.com/tendermint/tendermint/libs/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/argus-labs/gravity/x/gravity/querier"
	"github.com/argus-labs/gravity/x/gravity/types"
)

const bufSize = 1024 * 1024

// Sim is a running gravity query server.
type Sim struct {
	*Server

	lis    *bufconn.Listener
	srv    *grpc.Server
	dials  int64
	logger log.Logger
}

// Start serves state until Stop is called.
func Start(state State, logger log.Logger) *Sim {
	sim := &Sim{
		Server: NewServer(state),
		lis:    bufconn.Listen(bufSize),
		srv:    grpc.NewServer(grpc.ForceServerCodec(querier.Codec{})),
		logger: logger,
	}
	types.RegisterQueryServer(sim.srv, sim.Server)
	go func() {
		if err := sim.srv.Serve(sim.lis); err != nil {
			logger.Error("gravity sim server error", "error", err.Error())
		}
	}()
	return sim
}

// Dialer connects to the sim regardless of target. Each call counts as one dial.
func (s *Sim) Dialer() querier.Dialer {
	return func(ctx context.Context, target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
		atomic.AddInt64(&s.dials, 1)
		opts = append(opts, grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return s.lis.Dial()
		}))
		return grpc.DialContext(ctx, target, opts...)
	}
}

// Querier returns a querier wired to the sim.
func (s *Sim) Querier(opts ...querier.Option) *querier.Querier {
	opts = append([]querier.Option{querier.WithDialer(s.Dialer()), querier.WithLogger(s.logger)}, opts...)
	return querier.New("bufnet", opts...)
}

// Dials is the number of connections opened through Dialer.
func (s *Sim) Dials() int64 {
	return atomic.LoadInt64(&s.dials)
}

func (s *Sim) Stop() {
	s.srv.Stop()
}
