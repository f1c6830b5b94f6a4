// Package db 提供 MongoDB 初始化、连接池配置与事务助手
package db

import (
	"context"
	"fmt"
	"time"

	pkgLogger "github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/metrics"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config 数据库配置
type Config struct {
	URI         string
	Database    string
	ConnTimeout int
	MaxPoolSize uint64
}

// Mongo 数据库实例包装
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

// Init 初始化数据库连接，m 非 nil 时通过命令监控上报操作计数与耗时
func Init(cfg Config, m *metrics.Metrics) (*Mongo, error) {
	timeout := time.Duration(cfg.ConnTimeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if m != nil {
		opts.SetMonitor(commandMonitor(m))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// 测试连接
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	pkgLogger.Info(context.Background(), "MongoDB connected successfully", "database", cfg.Database)

	return &Mongo{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

// commandMonitor 将每条数据库命令的结果上报到指标
func commandMonitor(m *metrics.Metrics) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			m.DBOpsTotal.Inc()
			m.DBOpDuration.Observe(evt.Duration.Seconds())
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			m.DBOpsTotal.Inc()
			m.DBOpDuration.Observe(evt.Duration.Seconds())
		},
	}
}

// Close 关闭数据库连接
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// Collection 返回指定集合
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Client 返回底层客户端
func (m *Mongo) Client() *mongo.Client {
	return m.client
}

// WithTx 在一个多文档事务中执行函数，支持自动回滚和提交
// 回调收到的 context 携带会话，所有使用该 context 的集合操作都加入事务
func (m *Mongo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}

// EnsureIndexes 创建集合索引，启动时调用一次
func (m *Mongo) EnsureIndexes(ctx context.Context, collection string, models []mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	_, err := m.Collection(collection).Indexes().CreateMany(ctx, models)
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
	}
	return nil
}
