// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/rydor/log"
	"github.com/rydor/log/compat"
)

func main() {
	// Create and configure logger
	logger, err := log.NewBuilder().
		File("./logs/fasthttp/access.log").
		LevelString("info").
		MaxFileSizeString("10MB").
		Build()
	if err != nil {
		panic(err)
	}
	logger.Start()
	defer logger.Close()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(log.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			requestHandler(logger, ctx)
		},
		Logger: fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	logger.Infof("http", "starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		logger.Errorf("http", "server stopped: %v", err)
	}
}

func requestHandler(logger *log.Logger, ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
	logger.Infof("access", "%s %s %d", ctx.Method(), ctx.Path(), ctx.Response.StatusCode())
}

func customLevelDetector(msg string) (log.Level, bool) {
	// Inspect specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return log.LevelWarn, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return log.LevelError, true
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
