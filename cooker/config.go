// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cooker

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/shaderbind/manifest"
)

// Config is the cooker's TOML-backed configuration.
type Config struct {
	// Root is the directory watched for reflection documents.
	Root string `toml:"root"`

	// OutDir receives cooked artifacts. Empty means alongside each
	// source document.
	OutDir string `toml:"out_dir"`

	// Workers bounds concurrent cooks.
	Workers int `toml:"workers"`

	// Target is the compiler target profile name (spirv, hlsl, metal, ...).
	Target string `toml:"target"`

	// GlobalCBufferPush makes global constant-buffer-typed parameters
	// push-constant-eligible during assembly.
	GlobalCBufferPush bool `toml:"global_cbuffer_push"`
}

// DefaultConfig returns the configuration used when a key is absent from
// the config file.
func DefaultConfig() Config {
	return Config{
		Workers:           6,
		Target:            "spirv",
		GlobalCBufferPush: true,
	}
}

// LoadConfig reads a TOML config file, filling absent keys from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cooker: reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cooker: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) assembleOptions() manifest.AssembleOptions {
	return manifest.AssembleOptions{
		GlobalConstantBufferAsPushConstant: c.GlobalCBufferPush,
	}
}
