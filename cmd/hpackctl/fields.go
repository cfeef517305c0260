package main

import (
	"fmt"
	"strings"

	"hpackit/internal/shared/compression/hpack"
)

// headerField is the YAML/JSON shape a caller supplies on the command line:
// a logical (name, value) pair plus the representation flags to encode it
// with. It never carries an index, since a caller driving the CLI has no
// pre-shared table state to reference; "encode" submits every field as a
// literal with BestFormat set, so the encoder emits an indexed or
// indexed-name representation wherever its table already holds a match.
type headerField struct {
	Name  string   `yaml:"name" json:"name" msgpack:"name"`
	Value string   `yaml:"value" json:"value" msgpack:"value"`
	Flags []string `yaml:"flags" json:"flags" msgpack:"flags"`
}

// decodedField is what "decode" emits per representation: the recovered
// name/value pair.
type decodedField struct {
	Name  string `yaml:"name" json:"name" msgpack:"name"`
	Value string `yaml:"value" json:"value" msgpack:"value"`
}

// demoFields is the canned header set "encode" uses when no input file is
// given, exercising indexing, Huffman, and never-indexed literals together.
func demoFields() []headerField {
	return []headerField{
		{Name: ":method", Value: "GET", Flags: []string{"with-indexing"}},
		{Name: ":path", Value: "/", Flags: nil},
		{Name: ":scheme", Value: "https", Flags: []string{"huffman-value"}},
		{Name: "custom-key", Value: "custom-value", Flags: []string{"huffman-name", "huffman-value", "with-indexing"}},
		{Name: "authorization", Value: "secret-token", Flags: []string{"never-indexed", "huffman-value"}},
	}
}

// parseFlags turns the textual flag names a user writes in YAML/JSON into
// an hpack.Flags bitmask.
func parseFlags(names []string) (hpack.Flags, error) {
	var flags hpack.Flags
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "huffman-name":
			flags |= hpack.HuffmanName
		case "huffman-value":
			flags |= hpack.HuffmanValue
		case "with-indexing":
			flags |= hpack.WithIndexing
		case "never-indexed":
			flags |= hpack.NeverIndexed
		case "best-format":
			flags |= hpack.BestFormat
		default:
			return 0, fmt.Errorf("unknown flag %q", name)
		}
	}
	return flags, nil
}
