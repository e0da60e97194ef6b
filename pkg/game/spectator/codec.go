package spectator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Codecs accepted in the ws query string
const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// Encode serialises v for a websocket frame and returns the frame type.
// Msgpack frames reuse the json field names where no msgpack tag is set.
func Encode(v any, codec string) ([]byte, int, error) {
	switch codec {
	case "", CodecJSON:
		data, err := json.Marshal(v)
		return data, websocket.TextMessage, err
	case CodecMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			return nil, 0, err
		}
		return buf.Bytes(), websocket.BinaryMessage, nil
	default:
		return nil, 0, fmt.Errorf("unknown codec %q", codec)
	}
}

// Decode is the inverse of Encode for msgpack and json payloads
func Decode(data []byte, codec string, v any) error {
	switch codec {
	case "", CodecJSON:
		return json.Unmarshal(data, v)
	case CodecMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		return dec.Decode(v)
	default:
		return fmt.Errorf("unknown codec %q", codec)
	}
}

// validCodec reports whether codec can be served
func validCodec(codec string) bool {
	return codec == "" || codec == CodecJSON || codec == CodecMsgpack
}
