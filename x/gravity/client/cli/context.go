package cli

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/argus-labs/gravity/x/gravity/querier"
)

type contextKey struct{}

// Context carries what the gravity commands need. The root command builds it once flags are parsed.
type Context struct {
	Querier  *querier.Querier
	Timeout  time.Duration
	Registry codectypes.InterfaceRegistry
}

// WithContext stores clientCtx in ctx for the commands to pick up.
func WithContext(ctx context.Context, clientCtx *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, clientCtx)
}

// GetContext returns the Context set on the command.
func GetContext(cmd *cobra.Command) (*Context, error) {
	if cmd.Context() == nil {
		return nil, errors.New("command has no context")
	}
	clientCtx, ok := cmd.Context().Value(contextKey{}).(*Context)
	if !ok || clientCtx == nil {
		return nil, errors.New("gravity client context not set")
	}
	return clientCtx, nil
}

// queryContext bounds a single query by the configured timeout.
func (c *Context) queryContext(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.Timeout)
}

// printProto writes msg as JSON. Any fields are resolved through the registry.
func (c *Context) printProto(w io.Writer, msg proto.Message) error {
	bz, err := codec.ProtoMarshalJSON(msg, anyResolver{c.Registry})
	if err != nil {
		return errors.Wrap(err, "failed to marshal response")
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}

// unpackJSON reads the JSON form of an Any and checks that it holds an implementation of iface,
// which must be a pointer to a registered interface.
func (c *Context) unpackJSON(raw string, iface interface{}) (*codectypes.Any, error) {
	if c.Registry == nil {
		return nil, errors.New("no interface registry configured")
	}
	var packed codectypes.Any
	if err := codec.NewProtoCodec(c.Registry).UnmarshalJSON([]byte(raw), &packed); err != nil {
		return nil, err
	}
	if packed.TypeUrl == "" {
		return nil, errors.New("missing @type")
	}
	if err := c.Registry.UnpackAny(&packed, iface); err != nil {
		return nil, err
	}
	return &packed, nil
}

// anyResolver resolves through the interface registry first and falls back to the gogoproto type
// registry for messages that implement no interface, such as DelegateKeysSignMsg.
type anyResolver struct {
	registry codectypes.InterfaceRegistry
}

func (r anyResolver) Resolve(typeURL string) (proto.Message, error) {
	if r.registry != nil {
		if msg, err := r.registry.Resolve(typeURL); err == nil {
			return msg, nil
		}
	}
	name := typeURL[strings.LastIndex(typeURL, "/")+1:]
	t := proto.MessageType(name)
	if t == nil {
		return nil, errors.Errorf("unable to resolve type URL %s", typeURL)
	}
	return reflect.New(t.Elem()).Interface().(proto.Message), nil
}
