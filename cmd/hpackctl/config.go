package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hpackit/internal/shared/compression/hpack"
)

// huffmanPolicy controls whether the "encode" subcommand's demo/default
// path Huffman-encodes literal values when the input file doesn't specify
// flags explicitly.
type huffmanPolicy string

const (
	huffmanAlways    huffmanPolicy = "huffman-always"
	huffmanNever     huffmanPolicy = "huffman-never"
	huffmanIfShorter huffmanPolicy = "huffman-if-shorter"
)

// outputFormat selects how "decode" renders the fields it recovers.
type outputFormat string

const (
	formatText    outputFormat = "text"
	formatJSON    outputFormat = "json"
	formatMsgpack outputFormat = "msgpack"
)

// config is hpackctl's session configuration, loaded from a YAML file via
// gopkg.in/yaml.v3. Any field left unset falls back to its RFC default.
type config struct {
	DynamicTableSize uint32        `yaml:"dynamic_table_size"`
	DecoderCeiling   uint32        `yaml:"decoder_ceiling"`
	Huffman          huffmanPolicy `yaml:"huffman_policy"`
	Output           outputFormat  `yaml:"output_format"`
}

func defaultConfig() config {
	return config{
		DynamicTableSize: hpack.DefaultDynamicTableSize,
		DecoderCeiling:   hpack.DefaultDynamicTableSize,
		Huffman:          huffmanNever,
		Output:           formatText,
	}
}

// loadConfig reads path as YAML, merging it over the RFC defaults. An empty
// path is not an error: it simply returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("hpackctl: read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("hpackctl: parse config: %w", err)
	}
	if cfg.DynamicTableSize == 0 {
		cfg.DynamicTableSize = hpack.DefaultDynamicTableSize
	}
	if cfg.DecoderCeiling == 0 {
		cfg.DecoderCeiling = hpack.DefaultDynamicTableSize
	}
	if cfg.Huffman == "" {
		cfg.Huffman = huffmanNever
	}
	if cfg.Output == "" {
		cfg.Output = formatText
	}
	return cfg, nil
}

// applyHuffmanPolicy resolves the configured policy against a literal's
// plain-text length, used only when the caller's header-field entry didn't
// set any flags explicitly.
func applyHuffmanPolicy(policy huffmanPolicy, plainLen, huffmanLen int) bool {
	switch policy {
	case huffmanAlways:
		return true
	case huffmanIfShorter:
		return huffmanLen < plainLen
	default:
		return false
	}
}
