package db

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/wyfcoding/storefront/pkg/metrics"
	"go.mongodb.org/mongo-driver/event"
)

func TestCommandMonitor_CountsOpsAndDuration(t *testing.T) {
	m := metrics.New("test")
	monitor := commandMonitor(m)

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{Duration: 5 * time.Millisecond},
	})
	monitor.Failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{Duration: 2 * time.Millisecond},
	})

	// 成功与失败都计入操作总数
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DBOpsTotal))
}
