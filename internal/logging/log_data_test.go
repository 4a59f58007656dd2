package logging

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogData_TimingsAndData(t *testing.T) {
	logData := NewLogData(logrus.New())

	stop := logData.AddTiming("handlerMs")
	stop()
	logData.AddData("userID", int64(7))

	entry := logData.Log()
	assert.Contains(t, entry.Data, "handlerMs")
	assert.Equal(t, int64(7), entry.Data["userID"])
}

func TestLogDataContextRoundTrip(t *testing.T) {
	logData := NewLogData(logrus.New())

	ctx := WithLogData(context.Background(), logData)
	assert.Equal(t, logData, GetLogData(ctx))
}

func TestGetLogData_MissingReturnsNil(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))
}
