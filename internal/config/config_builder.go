// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers and merges them in priority
// order: defaults, JSON, environment, flags.
type configBuilder struct {
	defaults *StructuredConfig
	json     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// layers returns the non-nil layers, lowest priority first.
func (b *configBuilder) layers() []*StructuredConfig {
	all := []*StructuredConfig{b.defaults, b.json, b.env, b.flags}
	out := make([]*StructuredConfig, 0, len(all))
	for _, cfg := range all {
		if cfg != nil {
			out = append(out, cfg)
		}
	}
	return out
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.layers() {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = Defaults()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flagsCfg
	return b
}

// withJSON loads the JSON file named by the flags or, failing that, the
// environment.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.json = jsonCfg

	return b
}
