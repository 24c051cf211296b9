// SPDX-FileCopyrightText: Copyright 2026 AgentKit authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/JamieScanlon/agentkit-go/env"
	"github.com/JamieScanlon/agentkit-go/oauth"
	"github.com/JamieScanlon/agentkit-go/resource"
)

// Defaults match the upstream test script the server replaces.
const (
	defaultPort   = 8765
	defaultRealm  = "mcp-server"
	defaultIssuer = "https://auth.example.com"

	// xdgConfigPath is the config location searched when no -config flag
	// is given, relative to the XDG config directories.
	xdgConfigPath = "mcpauthserver/config.yaml"
)

// Environment overrides, applied after file values.
const (
	envPort   = "MCPAUTH_PORT"
	envRealm  = "MCPAUTH_REALM"
	envIssuer = "MCPAUTH_ISSUER"
)

// Config holds the server configuration.
type Config struct {
	// Port is the loopback TCP port to listen on.
	Port int `yaml:"port"`

	// Realm is the Bearer challenge protection space name.
	Realm string `yaml:"realm"`

	// Issuer is the authorization server issuer advertised in the
	// protected resource metadata.
	Issuer string `yaml:"issuer"`

	// RedirectURIs lists the OAuth redirect URIs registered for clients
	// of this server. Custom schemes are allowed so native clients such
	// as vscode:// work out of the box.
	RedirectURIs []string `yaml:"redirect_uris"`
}

// loadConfig resolves the configuration: defaults, then the YAML file at
// path (or the XDG location when path is empty and one exists), then
// environment overrides. The result is validated before being returned.
func loadConfig(path string, envReader env.Reader) (*Config, error) {
	cfg := &Config{
		Port:   defaultPort,
		Realm:  defaultRealm,
		Issuer: defaultIssuer,
	}

	if path == "" {
		// Absence of an XDG config file is not an error.
		if found, err := xdg.SearchConfigFile(xdgConfigPath); err == nil {
			path = found
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := envReader.Getenv(envPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", envPort, v, err)
		}
		cfg.Port = port
	}
	if v := envReader.Getenv(envRealm); v != "" {
		cfg.Realm = v
	}
	if v := envReader.Getenv(envIssuer); v != "" {
		cfg.Issuer = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Realm == "" {
		return fmt.Errorf("realm must not be empty")
	}
	if !resource.IsValid(c.Issuer) {
		return fmt.Errorf("issuer %q is not a valid URI", c.Issuer)
	}
	for _, uri := range c.RedirectURIs {
		if err := oauth.ValidateRedirectURI(uri, oauth.RedirectURIPolicyAllowPrivateSchemes); err != nil {
			return fmt.Errorf("redirect URI %q: %w", uri, err)
		}
	}
	return nil
}
