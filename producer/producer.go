package producer

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
)

const logPrefix = "[corriere] "

// Producer sends records to Kafka. It owns a single underlying client
// shared by any number of concurrent produce calls, and releases it
// exactly once on Close.
type Producer struct {
	client sarama.AsyncProducer
	config Config

	// mu guards closed against the enqueue in dispatch, so that a
	// record is never handed to a client that Close started to tear
	// down.
	mu     sync.RWMutex
	closed bool

	forwarders sync.WaitGroup
	closeOnce  sync.Once
}

// New creates a Producer connected to the brokers listed in
// config.Addrs. Creating the underlying client performs blocking
// network setup, and a failure here is a setup failure, distinct from
// the errors produce calls report.
func New(config Config) (*Producer, error) {
	if !config.Producer.Return.Successes || !config.Producer.Return.Errors {
		return nil, errors.New("producer config must return successes and errors")
	}

	client, err := sarama.NewAsyncProducer(config.Addrs, &config.Config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a producer")
	}

	return NewFrom(client, config), nil
}

// NewFrom creates a Producer from an existing client. The Producer
// takes ownership of it: it becomes the sole reader of the client's
// delivery report channels and shuts the client down on Close. The
// client must be configured to return both successes and errors, as
// NewConfig does.
func NewFrom(client sarama.AsyncProducer, config Config) *Producer {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard, logPrefix, log.LstdFlags)
	}

	p := &Producer{
		client: client,
		config: config,
	}
	p.forwarders.Add(2)
	go p.forwardSuccesses()
	go p.forwardErrors()

	return p
}

// Close shuts the underlying client down, exactly once. Records
// already handed to the client are flushed first and their produce
// calls resolve as usual; produce calls made after Close resolve with
// ErrClosed. Failures to deliver during the flush reach each affected
// call as a *DeliveryError, never as an error from Close itself.
func (p *Producer) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		// AsyncClose flushes the records the client accepted and then
		// closes its report channels, which ends the forwarders once
		// every outstanding report has been routed.
		p.client.AsyncClose()
		p.forwarders.Wait()
	})
}

// dispatch hands rec to the client and returns the channel its
// delivery report will arrive on. The channel is buffered so a report
// arriving after the caller stopped listening is simply dropped.
func (p *Producer) dispatch(rec *Record) <-chan Delivery {
	done := make(chan Delivery, 1)

	msg := &sarama.ProducerMessage{
		Topic:     rec.Topic,
		Value:     sarama.ByteEncoder(rec.Value),
		Partition: rec.Partition,
		Timestamp: time.Now(),
		Metadata:  done,
	}
	if rec.Key != nil {
		msg.Key = sarama.ByteEncoder(rec.Key)
	}
	if len(rec.Headers) > 0 {
		msg.Headers = make([]sarama.RecordHeader, len(rec.Headers))
		for i, h := range rec.Headers {
			msg.Headers[i] = sarama.RecordHeader{Key: []byte(h.Key), Value: h.Value}
		}
	}

	// The read lock pins the closed flag across the enqueue: Close
	// cannot start tearing the client down between the check and the
	// send.
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		done <- Delivery{Err: ErrClosed}
		return done
	}
	p.client.Input() <- msg
	p.mu.RUnlock()

	return done
}

func (p *Producer) forwardSuccesses() {
	defer p.forwarders.Done()
	for msg := range p.client.Successes() {
		p.resolve(msg, nil)
	}
}

func (p *Producer) forwardErrors() {
	defer p.forwarders.Done()
	for perr := range p.client.Errors() {
		p.resolve(perr.Msg, &DeliveryError{Topic: perr.Msg.Topic, Err: perr.Err})
	}
}

// resolve routes a delivery report to the channel dispatch attached to
// the message. Each channel is written at most once; a second report
// for the same record would mean a misbehaving client, so it is
// dropped and logged.
func (p *Producer) resolve(msg *sarama.ProducerMessage, err error) {
	done, ok := msg.Metadata.(chan Delivery)
	if !ok {
		p.config.Logger.Printf("dropping a delivery report for an unknown record on topic %q", msg.Topic)
		return
	}

	d := Delivery{Err: err}
	if err == nil {
		d.Metadata = RecordMetadata{
			Topic:     msg.Topic,
			Partition: msg.Partition,
			Offset:    msg.Offset,
			Timestamp: msg.Timestamp,
		}
	}

	select {
	case done <- d:
	default:
		p.config.Logger.Printf("dropping a duplicate delivery report for a record on topic %q", msg.Topic)
	}
}
