// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the validated view of [StructuredConfig] used by the
// HTTP server and the seed tool.
type ServerConfig struct {
	App      App
	DB       DB
	Server   Server
	Workers  Workers
	Location *time.Location
}

// ClientConfig is the validated view of [StructuredConfig] used by the
// terminal client.
type ClientConfig struct {
	Adapter  Adapter
	Local    Local
	Client   Client
	Location *time.Location
}

// GetServerConfig loads the merged configuration and returns its server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ServerView()
}

// GetClientConfig loads the merged configuration and returns its client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ClientView()
}

// ServerView maps and validates the fields the server needs.
func (cfg *StructuredConfig) ServerView() (*ServerConfig, error) {
	loc, err := loadLocation(cfg.App.TimeZone)
	if err != nil {
		return nil, err
	}

	view := &ServerConfig{
		App:      cfg.App,
		DB:       cfg.Storage.DB,
		Server:   cfg.Server,
		Workers:  cfg.Workers,
		Location: loc,
	}
	return view, view.validate()
}

// ClientView maps and validates the fields the client needs.
func (cfg *StructuredConfig) ClientView() (*ClientConfig, error) {
	loc, err := loadLocation(cfg.App.TimeZone)
	if err != nil {
		return nil, err
	}

	view := &ClientConfig{
		Adapter:  cfg.Adapter,
		Local:    cfg.Storage.Local,
		Client:   cfg.Client,
		Location: loc,
	}
	return view, view.validate()
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: time zone %q: %w", ErrInvalidAppConfigs, name, err)
	}
	return loc, nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 ||
		cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.DigestInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Local.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Client.GuestMode {
		return nil
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
