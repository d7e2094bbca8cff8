// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/rydor/log"
	"github.com/rydor/log/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
	logger *log.Logger
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	es.logger.Debugf("echo", "%d bytes from %s", len(buf), c.RemoteAddr())
	c.Write(buf)
	return gnet.None
}

func main() {
	logger := log.NewLogger()
	err := logger.ApplyOverride(
		"file=./logs/gnet/",
		"level=debug",
		"max_file_size=1MB",
	)
	if err != nil {
		panic(err)
	}
	logger.Start()
	defer logger.Close()

	gnetAdapter := compat.NewGnetAdapter(logger)

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{logger: logger},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		logger.Errorf("gnet", "server stopped: %v", err)
	}
}
