package producer_test

import (
	"bytes"
	"log"
	"regexp"
	"sync"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/stretchr/testify/require"
)

// fakeAsyncProducer implements sarama.AsyncProducer on plain channels,
// so tests can hand-craft delivery reports and observe teardown. The
// sarama mock cannot do either.
type fakeAsyncProducer struct {
	input     chan *sarama.ProducerMessage
	successes chan *sarama.ProducerMessage
	errors    chan *sarama.ProducerError

	mu          sync.Mutex
	asyncCloses int
	closeOnce   sync.Once
}

func newFakeAsyncProducer() *fakeAsyncProducer {
	return &fakeAsyncProducer{
		input:     make(chan *sarama.ProducerMessage, 16),
		successes: make(chan *sarama.ProducerMessage, 16),
		errors:    make(chan *sarama.ProducerError, 16),
	}
}

// AsyncClose closes the report channels; reports already queued are
// still readable, like a flush.
func (f *fakeAsyncProducer) AsyncClose() {
	f.mu.Lock()
	f.asyncCloses++
	f.mu.Unlock()

	f.closeOnce.Do(func() {
		close(f.successes)
		close(f.errors)
	})
}

// closeCount reports how many times the producer shut the client down.
func (f *fakeAsyncProducer) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.asyncCloses
}

func (f *fakeAsyncProducer) Close() error {
	f.AsyncClose()
	return nil
}

func (f *fakeAsyncProducer) Input() chan<- *sarama.ProducerMessage     { return f.input }
func (f *fakeAsyncProducer) Successes() <-chan *sarama.ProducerMessage { return f.successes }
func (f *fakeAsyncProducer) Errors() <-chan *sarama.ProducerError      { return f.errors }

func (f *fakeAsyncProducer) IsTransactional() bool { return false }

func (f *fakeAsyncProducer) TxnStatus() sarama.ProducerTxnStatusFlag {
	return sarama.ProducerTxnFlagReady
}

func (f *fakeAsyncProducer) BeginTxn() error  { return nil }
func (f *fakeAsyncProducer) CommitTxn() error { return nil }
func (f *fakeAsyncProducer) AbortTxn() error  { return nil }

func (f *fakeAsyncProducer) AddOffsetsToTxn(map[string][]*sarama.PartitionOffsetMetadata, string) error {
	return nil
}

func (f *fakeAsyncProducer) AddMessageToTxn(*sarama.ConsumerMessage, string, *string) error {
	return nil
}

// TestLogger grabs logs in a buffer so we can later make assertions about them.
type TestLogger struct {
	buf    bytes.Buffer
	Logger *log.Logger
	t      *testing.T
}

// NewTestLogger constructs a test logger we can make assertions against
func NewTestLogger(t *testing.T) *TestLogger {
	tl := &TestLogger{
		t: t,
	}
	tl.Logger = log.New(&tl.buf, "[corriere] ", log.LstdFlags)
	return tl
}

const (
	logRegexPrefix = "\\[corriere\\] [0-9]*/[0-1][0-9]/[0-3][0-9] [0-2][0-9]:[0-5][0-9]:[0-5][0-9] "
)

func (tl *TestLogger) LogLineMatches(match string) {
	content, err := tl.buf.ReadString('\n')
	require.NoError(tl.t, err)
	require.Regexp(tl.t, regexp.MustCompile(logRegexPrefix+match), content)
}
