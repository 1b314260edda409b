package v1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype the glossary messages travel with
// (content-type application/grpc+json).
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals glossary messages as JSON on the gRPC wire.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return CodecName
}
