package codec

import (
	"encoding/json"
	"strconv"
)

// StringDeserializer creates a Deserializer that reads raw bytes as a
// string.
func StringDeserializer() Deserializer[string] {
	return DeserializerFunc[string](func(_ string, data []byte) (string, error) {
		return string(data), nil
	})
}

// BytesDeserializer creates a Deserializer that passes record bytes
// through untouched.
func BytesDeserializer() Deserializer[[]byte] {
	return DeserializerFunc[[]byte](func(_ string, data []byte) ([]byte, error) {
		return data, nil
	})
}

// Int64Deserializer creates a Deserializer that parses decimal text as
// an int64.
func Int64Deserializer() Deserializer[int64] {
	return DeserializerFunc[int64](func(_ string, data []byte) (int64, error) {
		return strconv.ParseInt(string(data), 10, 64)
	})
}

// Float64Deserializer creates a Deserializer that parses decimal text
// as a float64.
func Float64Deserializer() Deserializer[float64] {
	return DeserializerFunc[float64](func(_ string, data []byte) (float64, error) {
		return strconv.ParseFloat(string(data), 64)
	})
}

// JSONDeserializer creates a Deserializer that decodes T using
// encoding/json.
func JSONDeserializer[T any]() Deserializer[T] {
	return DeserializerFunc[T](func(_ string, data []byte) (T, error) {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return v, err
		}
		return v, nil
	})
}
