package producer

import (
	"io"
	"log"

	"github.com/Shopify/sarama"
	"github.com/rogpeppe/fastuuid"
)

var uuids = fastuuid.MustNewGenerator()

// Config is used to configure the Producer.
type Config struct {
	sarama.Config

	// Addrs holds the addresses of the bootstrap brokers, in host:port
	// form. Defaults to localhost:9092.
	Addrs []string

	// Logger receives the notices the producer cannot report to any
	// caller, such as delivery reports that can no longer be routed.
	// Defaults to a logger that discards its output.
	Logger *log.Logger
}

// NewConfig creates a config with sane defaults: records are
// acknowledged by all in-sync replicas, delivery reports are returned
// for successes and failures (Produce requires both), and the
// partitioner honours explicit partition targets, hashing keys the way
// JVM clients do otherwise. If clientID is empty a generated one is
// used.
func NewConfig(clientID string, addrs ...string) Config {
	if clientID == "" {
		clientID = "corriere-" + uuids.Hex128()
	}

	config := sarama.NewConfig()
	config.Version = sarama.V1_0_0_0
	config.ClientID = clientID
	config.Producer.RequiredAcks = sarama.WaitForAll // Wait for all in-sync replicas to ack the record
	config.Producer.Retry.Max = 3                    // Retry up to 3 times to produce the record
	// Both report channels are drained by the producer's forwarders,
	// see https://godoc.org/github.com/Shopify/sarama#AsyncProducer
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.Partitioner = NewTargetPartitioner

	if len(addrs) == 0 {
		addrs = []string{"localhost:9092"}
	}

	return Config{
		Config: *config,
		Addrs:  addrs,
		Logger: log.New(io.Discard, logPrefix, log.LstdFlags),
	}
}
