package producer

import (
	"testing"

	"github.com/Shopify/sarama"
)

func TestTargetPartitioner(t *testing.T) {
	partitioner := NewTargetPartitioner("test-topic")

	t.Run("Explicit", func(t *testing.T) {
		got, err := partitioner.Partition(&sarama.ProducerMessage{Partition: 3}, 12)
		if err != nil {
			t.Fatal(err)
		}
		if got != 3 {
			t.Errorf("expected partition 3, got: %d", got)
		}
	})

	t.Run("Keyed", func(t *testing.T) {
		msg := &sarama.ProducerMessage{Key: sarama.StringEncoder("foobar"), Partition: PartitionAny}
		got, err := partitioner.Partition(msg, 12)
		if err != nil {
			t.Fatal(err)
		}
		// 1357151166 % 12
		if got != 6 {
			t.Errorf("expected partition 6, got: %d", got)
		}
	})

	t.Run("Keyless", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			got, err := partitioner.Partition(&sarama.ProducerMessage{Partition: PartitionAny}, 12)
			if err != nil {
				t.Fatal(err)
			}
			if got < 0 || got >= 12 {
				t.Errorf("expected a partition within [0, 12), got: %d", got)
			}
		}
	})

	t.Run("Consistency", func(t *testing.T) {
		if !partitioner.RequiresConsistency() {
			t.Error("expected the partitioner to require consistency")
		}

		dp, ok := partitioner.(sarama.DynamicConsistencyPartitioner)
		if !ok {
			t.Fatal("expected the partitioner to report consistency per message")
		}
		if !dp.MessageRequiresConsistency(&sarama.ProducerMessage{Partition: 3}) {
			t.Error("explicitly targeted messages must be consistent")
		}
		if !dp.MessageRequiresConsistency(&sarama.ProducerMessage{Key: sarama.StringEncoder("k"), Partition: PartitionAny}) {
			t.Error("keyed messages must be consistent")
		}
		if dp.MessageRequiresConsistency(&sarama.ProducerMessage{Partition: PartitionAny}) {
			t.Error("keyless messages must not be consistent")
		}
	})
}
