// Package producer provides a typed producer of records to Kafka.
//
// A Topic declares the types of the keys and values a stream carries,
// and serializers from the codec package turn those typed values into
// record bytes. A Target decides how each record is placed: Unkeyed
// leaves placement to the partitioner, Partition pins an explicit
// partition, and Topic.Key derives the partition from a record key.
// This keeps business code working with its own types while the
// conversion to the wire stays in one place, so changing the record
// format does not ripple through the callers.
//
// A Producer owns one underlying client for its whole lifetime. New
// acquires it, any number of goroutines may produce through it
// concurrently, and Close releases it exactly once, flushing the
// records already in flight. Produce waits for the broker to confirm
// placement and returns it as RecordMetadata; ProduceAsync returns a
// channel carrying the same outcome instead of waiting. Serialization
// failures surface as *SerializationError before anything is sent,
// delivery failures as *DeliveryError.
//
// Producers require a valid configuration to be able to run properly.
// The Config type allows to define the client id and the bootstrap
// brokers but also to customize Sarama's behaviour.
package producer
