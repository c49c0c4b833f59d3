package report

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockLogger struct {
	logs []struct {
		level   string
		message string
		err     error
	}
}

func (m *mockLogger) Log(level, message string, err error) {
	m.logs = append(m.logs, struct {
		level   string
		message string
		err     error
	}{level, message, err})
}

func TestWriterSink_Emit(t *testing.T) {
	var buf strings.Builder
	sink := NewWriterSink(&buf)

	sink.Emit("Items: 2")
	sink.Emit("Handles [0] /file: a.txt")

	assert.Equal(t, "Items: 2\nHandles [0] /file: a.txt\n", buf.String())
}

func TestWriterSink_Concurrent(t *testing.T) {
	var buf strings.Builder
	sink := NewWriterSink(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.Emit("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(buf.String(), "line\n"))
}

func TestMultiSink_Emit(t *testing.T) {
	var got1, got2 []string
	sink := MultiSink{
		SinkFunc(func(line string) { got1 = append(got1, line) }),
		nil,
		SinkFunc(func(line string) { got2 = append(got2, line) }),
	}

	sink.Emit(ReadyMessage)

	assert.Equal(t, []string{ReadyMessage}, got1)
	assert.Equal(t, []string{ReadyMessage}, got2)
}

func TestLoggingSink_Emit(t *testing.T) {
	logger := &mockLogger{}
	NewLoggingSink(logger, "DEBUG").Emit("Handles [0] /directory: sub")

	if assert.Len(t, logger.logs, 1) {
		assert.Equal(t, "DEBUG", logger.logs[0].level)
		assert.Equal(t, "Handles [0] /directory: sub", logger.logs[0].message)
		assert.NoError(t, logger.logs[0].err)
	}
}
