package producer

import (
	"hash"

	"github.com/Shopify/sarama"
)

// NewTargetPartitioner creates the partitioner NewConfig installs. A
// message whose Partition field is zero or greater is placed on that
// exact partition. Any other message is placed by hashing its key with
// the same murmur2 algorithm the JVM Kafka clients use, so keys
// produced here and by JVM producers land on the same partitions;
// messages without a key are spread randomly.
//
// Records built by this package mark non-explicit placement with
// PartitionAny. Hand-built sarama messages must set Partition to
// PartitionAny too, as the zero value reads as an explicit target.
func NewTargetPartitioner(topic string) sarama.Partitioner {
	return &targetPartitioner{
		hashed: sarama.NewCustomHashPartitioner(MurmurHasher)(topic),
	}
}

type targetPartitioner struct {
	hashed sarama.Partitioner
}

func (p *targetPartitioner) Partition(msg *sarama.ProducerMessage, numPartitions int32) (int32, error) {
	if msg.Partition >= 0 {
		return msg.Partition, nil
	}
	return p.hashed.Partition(msg, numPartitions)
}

func (p *targetPartitioner) RequiresConsistency() bool {
	return true
}

// MessageRequiresConsistency reports per message whether its placement
// is stable: explicitly targeted and keyed messages are, keyless ones
// are placed randomly.
func (p *targetPartitioner) MessageRequiresConsistency(msg *sarama.ProducerMessage) bool {
	return msg.Partition >= 0 || msg.Key != nil
}

// MurmurHasher creates a murmur2 hasher implementing hash.Hash32. It
// implements just enough of the interface to satisfy
// sarama.NewCustomHashPartitioner, which writes the whole key in a
// single call; streaming writes are not supported.
func MurmurHasher() hash.Hash32 {
	return new(murmurHash)
}

type murmurHash struct {
	sum int32
}

func (m *murmurHash) Write(p []byte) (int, error) {
	m.sum = murmur2(p)
	return len(p), nil
}

func (m *murmurHash) Reset() { m.sum = 0 }

func (m *murmurHash) Size() int { return 4 }

func (m *murmurHash) BlockSize() int { return 4 }

// Sum is a noop, sarama only calls Sum32.
func (m *murmurHash) Sum(in []byte) []byte { return in }

// Sum32 clears the sign bit, as the JVM clients do before mapping the
// hash onto a partition index.
func (m *murmurHash) Sum32() uint32 {
	return uint32(m.sum) & 0x7fffffff
}

// murmur2 computes the hash the JVM Kafka clients derive partitions
// from. See Utils.murmur2 in the Apache Kafka client sources.
func murmur2(data []byte) int32 {
	const (
		seed = uint32(0x9747b28c)
		m    = int32(0x5bd1e995)
		r    = 24
	)

	h := int32(seed ^ uint32(len(data)))

	i := 0
	for ; i+4 <= len(data); i += 4 {
		k := int32(data[i]) | int32(data[i+1])<<8 | int32(data[i+2])<<16 | int32(data[i+3])<<24
		k *= m
		k ^= int32(uint32(k) >> r)
		k *= m
		h *= m
		h ^= k
	}

	switch len(data) - i {
	case 3:
		h ^= int32(data[i+2]) << 16
		fallthrough
	case 2:
		h ^= int32(data[i+1]) << 8
		fallthrough
	case 1:
		h ^= int32(data[i])
		h *= m
	}

	h ^= int32(uint32(h) >> 13)
	h *= m
	h ^= int32(uint32(h) >> 15)

	return h
}
