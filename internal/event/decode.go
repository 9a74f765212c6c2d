package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrPayloadType is returned when a payload cannot be turned into the requested type
var ErrPayloadType = errors.New("unexpected event payload")

// DecodePayload converts an event payload into T. The in-process bus hands over
// T or *T directly. Serialized events, as raw JSON or as the generic maps that
// decoding one produces, go through encoding/json.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%w: nil %T", ErrPayloadType, v)
		}
		return *v, nil
	case nil:
		return result, fmt.Errorf("%w: missing, want %T", ErrPayloadType, result)
	case json.RawMessage:
		return decodeJSON[T](v)
	case []byte:
		return decodeJSON[T](v)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%w: %T: %v", ErrPayloadType, input, err)
	}
	return decodeJSON[T](data)
}

func decodeJSON[T any](data []byte) (T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%w: want %T: %v", ErrPayloadType, result, err)
	}
	return result, nil
}
