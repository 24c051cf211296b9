// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

// mcpauthserver is a minimal HTTP server that mimics an OAuth-protected
// MCP endpoint: POST /mcp answers 401 with a WWW-Authenticate Bearer
// challenge pointing at RFC 9728 protected resource metadata, so a
// client's OAuth discovery flow can be observed end to end without a real
// authorization server.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/JamieScanlon/agentkit-go/env"
	"github.com/JamieScanlon/agentkit-go/logger"
)

// flagDebugProvider adapts the -debug flag to logger.DebugProvider.
type flagDebugProvider struct {
	debug bool
}

func (p *flagDebugProvider) IsDebug() bool {
	return p.debug
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger.InitializeWithDebug(&flagDebugProvider{debug: *debug})

	cfg, err := loadConfig(*configPath, &env.OSReader{})
	if err != nil {
		logger.Fatalf("configuration error: %v", err)
	}

	srv, err := newServer(cfg)
	if err != nil {
		logger.Fatalf("failed to build server: %v", err)
	}

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	logger.Infof("MCP OAuth test server on http://%s", addr)
	logger.Infof("POST /mcp -> 401 WWW-Authenticate resource_metadata=%s", srv.metadataURL)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server error: %v", err)
	}
}
