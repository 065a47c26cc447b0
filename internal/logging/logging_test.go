package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetLevel(logrus.DebugLevel)

	log := NewLogrusAdapterFromLogger(base)
	log.Info("record assembled",
		Field{Key: FieldReceiptID, Value: "IMG_0001"},
		Field{Key: FieldCount, Value: 3})

	output := buf.String()
	assert.Contains(t, output, `"record assembled"`)
	assert.Contains(t, output, `"receipt_id":"IMG_0001"`)
	assert.Contains(t, output, `"count":3`)
}

func TestLogrusAdapterWithChaining(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	log := NewLogrusAdapterFromLogger(base).
		WithField(FieldFile, "a.jpg").
		WithError(errors.New("boom"))
	log.Error("failed")

	output := buf.String()
	assert.Contains(t, output, `"file_path":"a.jpg"`)
	assert.Contains(t, output, `"error":"boom"`)
}

func TestNewLogrusAdapterFromLoggerNil(t *testing.T) {
	log := NewLogrusAdapterFromLogger(nil)
	assert.NotNil(t, log)
	log.Debug("must not panic")
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	log := NewLogrusAdapter("not-a-level", "text")
	require.NotNil(t, log)
	log.Info("falls back to info level")
}

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("first", Field{Key: "k", Value: "v"})
	mock.Warn("second")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "first", mock.Entries[0].Message)
	assert.Equal(t, []Field{{Key: "k", Value: "v"}}, mock.Entries[0].Fields)
	assert.Equal(t, "WARN", mock.Entries[1].Level)
}

func TestMockLoggerWithErrorAndFields(t *testing.T) {
	cause := errors.New("cause")
	mock := &MockLogger{}

	derived := mock.WithError(cause).WithField("k", 1).(*MockLogger)
	derived.Error("wrapped")

	require.Len(t, derived.Entries, 1)
	assert.Equal(t, cause, derived.Entries[0].Error)
	assert.Equal(t, []Field{{Key: "k", Value: 1}}, derived.Entries[0].Fields)
}
