package codec

// A Serializer converts values of type T into the raw bytes sent to the
// broker as the key or the value of a record. It receives the name of
// the destination topic, which schema-aware implementations may use to
// vary the encoding; the serializers in this package ignore it.
type Serializer[T any] interface {
	Serialize(topic string, v T) ([]byte, error)
}

// SerializerFunc is a function adapter for the Serializer interface.
type SerializerFunc[T any] func(topic string, v T) ([]byte, error)

// Serialize calls f.
func (f SerializerFunc[T]) Serialize(topic string, v T) ([]byte, error) {
	return f(topic, v)
}

// A Deserializer is the inverse of a Serializer: it converts the raw
// bytes of a consumed record back into a value of type T.
type Deserializer[T any] interface {
	Deserialize(topic string, data []byte) (T, error)
}

// DeserializerFunc is a function adapter for the Deserializer interface.
type DeserializerFunc[T any] func(topic string, data []byte) (T, error)

// Deserialize calls f.
func (f DeserializerFunc[T]) Deserialize(topic string, data []byte) (T, error) {
	return f(topic, data)
}
