// Package querier is a read-only client for the gravity module's gRPC query service.
//
// Every call dials its own connection, invokes exactly one method and closes the connection
// before returning. Failures are returned as *RemoteCallError without retries.
package querier

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/armon/go-metrics"
	"github.com/gogo/protobuf/proto"
	"github.com/tendermint/tendermint/libs/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/argus-labs/gravity/x/gravity/types"
)

// Dialer opens a client connection to target. grpc.DialContext satisfies it.
type Dialer func(ctx context.Context, target string, opts ...grpc.DialOption) (*grpc.ClientConn, error)

// Querier issues gravity queries against a single gRPC endpoint.
type Querier struct {
	target   string
	dialer   Dialer
	dialOpts []grpc.DialOption
	logger   log.Logger
}

type Option func(*Querier)

// WithDialer replaces grpc.DialContext, e.g. with a bufconn dialer in tests.
func WithDialer(dialer Dialer) Option {
	return func(q *Querier) {
		q.dialer = dialer
	}
}

// WithDialOptions appends dial options. They are applied after the defaults, so transport
// credentials passed here win.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(q *Querier) {
		q.dialOpts = append(q.dialOpts, opts...)
	}
}

func WithLogger(logger log.Logger) Option {
	return func(q *Querier) {
		q.logger = logger
	}
}

// New returns a Querier for endpoint. The endpoint is a gRPC target such as "localhost:9090"; an
// "http://" prefix is dropped and an "https://" prefix switches the default credentials to TLS.
func New(endpoint string, opts ...Option) *Querier {
	creds := insecure.NewCredentials()
	target := endpoint
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		target = strings.TrimPrefix(endpoint, "https://")
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	case strings.HasPrefix(endpoint, "http://"):
		target = strings.TrimPrefix(endpoint, "http://")
	}

	q := &Querier{
		target: target,
		dialer: grpc.DialContext,
		dialOpts: []grpc.DialOption{
			grpc.WithTransportCredentials(creds),
			grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
		},
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Target is the gRPC target every call dials.
func (q *Querier) Target() string {
	return q.target
}

// invoke dials a fresh connection, performs one unary call of method into resp and closes the
// connection.
func invoke[Resp proto.Message](ctx context.Context, q *Querier, method string, req proto.Message, resp Resp) (Resp, error) {
	var zero Resp
	labels := []metrics.Label{{Name: "method", Value: method}}
	defer metrics.MeasureSinceWithLabels([]string{types.ModuleName, "query", method}, time.Now(), labels)

	logger := q.logger.With("method", method, "target", q.target)

	conn, err := q.dialer(ctx, q.target, q.dialOpts...)
	if err != nil {
		return zero, q.fail(logger, method, labels, err)
	}
	defer conn.Close()

	logger.Debug("invoking gravity query")
	if err := conn.Invoke(ctx, types.QueryMethod(method), req, resp); err != nil {
		return zero, q.fail(logger, method, labels, err)
	}
	return resp, nil
}

func (q *Querier) fail(logger log.Logger, method string, labels []metrics.Label, err error) error {
	metrics.IncrCounterWithLabels([]string{types.ModuleName, "query", "error"}, 1, labels)
	logger.Error("gravity query failed", "error", err.Error())
	return &RemoteCallError{Method: method, Err: err}
}
