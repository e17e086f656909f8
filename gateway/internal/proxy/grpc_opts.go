package proxy

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// init registers the JSON codec with the gRPC encoding registry.
func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec is a gRPC codec that uses JSON encoding.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}

// grpcCallOption forces JSON encoding on the wire.
func grpcCallOption() grpc.CallOption {
	return grpc.ForceCodecCallOption{Codec: jsonCodec{}}
}
