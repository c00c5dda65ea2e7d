package querier

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"google.golang.org/grpc/encoding"
)

var _ encoding.Codec = Codec{}

// Codec is a gRPC codec marshalling gogoproto messages. It reports the "proto" content subtype so
// a cosmos node decodes it with its regular protobuf codec.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("gravity codec: %T is not a proto message", v)
	}
	return proto.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("gravity codec: %T is not a proto message", v)
	}
	return proto.Unmarshal(data, msg)
}

func (Codec) Name() string { return "proto" }
