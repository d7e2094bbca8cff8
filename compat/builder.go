package compat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rydor/log"
)

// Builder hands out framework adapters that all write into one *log.Logger.
//
// The logger is either supplied with WithLogger or created lazily from the
// WithConfig configuration (defaults when none is given). A created logger is
// configured but not started; the caller owns Start and Close.
type Builder struct {
	logger *log.Logger
	logCfg *log.Config
	err    error
}

// NewBuilder returns an empty adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger shares an application logger with every adapter. It takes precedence over WithConfig.
func (b *Builder) WithLogger(l *log.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("log/compat: logger is nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig sets the configuration of a logger created on first use
func (b *Builder) WithConfig(cfg *log.Config) *Builder {
	b.logCfg = cfg
	return b
}

// resolve returns the shared logger, creating it from the stored config once
func (b *Builder) resolve() (*log.Logger, error) {
	switch {
	case b.err != nil:
		return nil, b.err
	case b.logger != nil:
		return b.logger, nil
	}

	cfg := b.logCfg
	if cfg == nil {
		cfg = log.DefaultConfig()
	}

	l := log.NewLogger()
	if err := l.ApplyConfig(cfg); err != nil {
		b.err = err
		return nil, err
	}
	b.logger = l
	return l, nil
}

// BuildGnet returns a logging.Logger for gnet.WithLogger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.resolve()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP returns a logger for fasthttp.Server.Logger
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.resolve()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildZap returns a *zap.Logger whose entries land under category unless named otherwise
func (b *Builder) BuildZap(category string, opts ...zap.Option) (*zap.Logger, error) {
	l, err := b.resolve()
	if err != nil {
		return nil, err
	}
	return zap.New(NewZapCore(l, category), opts...), nil
}

// GetLogger returns the logger behind the adapters, creating it if needed
func (b *Builder) GetLogger() (*log.Logger, error) {
	return b.resolve()
}

// A typical service wires all three frameworks to one rotating file:
//
//	appLogger, err := log.NewBuilder().File("/var/log/edge/edge.log").MaxFileSizeString("50MB").Build()
//	if err != nil {
//		return err
//	}
//	appLogger.Start()
//	defer appLogger.Close()
//
//	adapters := compat.NewBuilder().WithLogger(appLogger)
//	gnetLog, _ := adapters.BuildGnet(compat.WithGnetCategory("tcp"))
//	httpLog, _ := adapters.BuildFastHTTP(compat.WithFastHTTPCategory("http"))
//	storeLog, _ := adapters.BuildZap("store")
//
//	go gnet.Run(proxy, "tcp://:9000", gnet.WithLogger(gnetLog))
//	go (&fasthttp.Server{Handler: api, Logger: httpLog}).ListenAndServe(":8080")
//	storeLog.Info("snapshot restored", zap.Int("keys", n))
