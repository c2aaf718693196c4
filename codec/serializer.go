package codec

import (
	"encoding/json"
	"strconv"
)

// String creates a Serializer that encodes a string as its raw bytes.
func String() Serializer[string] {
	return SerializerFunc[string](func(_ string, v string) ([]byte, error) {
		return []byte(v), nil
	})
}

// Bytes creates a Serializer that passes a byte slice through untouched.
// It is useful when sending data that is already serialized.
func Bytes() Serializer[[]byte] {
	return SerializerFunc[[]byte](func(_ string, v []byte) ([]byte, error) {
		return v, nil
	})
}

// Int64 creates a Serializer that encodes an int64 in decimal text form.
func Int64() Serializer[int64] {
	return SerializerFunc[int64](func(_ string, v int64) ([]byte, error) {
		return []byte(strconv.FormatInt(v, 10)), nil
	})
}

// Float64 creates a Serializer that encodes a float64 in decimal text form.
func Float64() Serializer[float64] {
	return SerializerFunc[float64](func(_ string, v float64) ([]byte, error) {
		return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
	})
}

// JSON creates a Serializer that encodes T using encoding/json.
func JSON[T any]() Serializer[T] {
	return SerializerFunc[T](func(_ string, v T) ([]byte, error) {
		return json.Marshal(v)
	})
}
