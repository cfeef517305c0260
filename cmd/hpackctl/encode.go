package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"hpackit/internal/cliview"
	"hpackit/internal/safety"
	"hpackit/internal/shared/compression/hpack"
	"hpackit/internal/shared/compression/huffman"
)

func newEncodeCmd(logger *zap.Logger) *cobra.Command {
	var (
		inputPath  string
		configPath string
		batch      bool
		tableSize  uint32
		showTable  bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a set of header fields into an HPACK header block",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if tableSize != 0 {
				cfg.DynamicTableSize = tableSize
			}

			sets, err := loadFieldSets(inputPath)
			if err != nil {
				return err
			}

			if batch && len(sets) > 1 {
				return runBatch(logger, cfg, sets, showTable)
			}

			for _, fields := range sets {
				if err := runEncodeOne(logger, cfg, fields, showTable); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "YAML file of header field sets (defaults to a canned demo set)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "session config YAML file")
	cmd.Flags().BoolVar(&batch, "batch", false, "encode each header set in its own goroutine, isolated by panic recovery")
	cmd.Flags().Uint32Var(&tableSize, "table-size", 0, "override the dynamic table size")
	cmd.Flags().BoolVar(&showTable, "show-table", true, "print the dynamic table after encoding")

	return cmd
}

// loadFieldSets reads one or more header-field sets from path. A YAML
// document is interpreted as either a flat list (one set) or a list of
// lists (multiple sets, for --batch). No path falls back to the demo set.
func loadFieldSets(path string) ([][]headerField, error) {
	if path == "" {
		return [][]headerField{demoFields()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hpackctl: read input: %w", err)
	}

	var multi [][]headerField
	if err := yaml.Unmarshal(data, &multi); err == nil && len(multi) > 0 {
		return multi, nil
	}

	var single []headerField
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("hpackctl: parse input: %w", err)
	}
	return [][]headerField{single}, nil
}

func runEncodeOne(logger *zap.Logger, cfg config, fields []headerField, showTable bool) error {
	enc := hpack.NewEncoder(cfg.DynamicTableSize)

	var out bytes.Buffer
	for _, f := range fields {
		if err := encodeField(enc, &out, cfg, f); err != nil {
			logger.Error("encode failed",
				zap.String("name", f.Name),
				zap.String("value", f.Value),
				zap.Error(err),
			)
			return err
		}
	}

	logger.Info("encoded header set",
		zap.Int("fields", len(fields)),
		zap.Int("bytes", out.Len()),
	)
	fmt.Println(hex.EncodeToString(out.Bytes()))

	if showTable {
		fmt.Print(cliview.DynamicTable(enc.DynamicEntries()))
	}
	return nil
}

// runBatch encodes each header set concurrently against its own Encoder,
// the way the teacher wraps connection-handling goroutines: one panic in
// one header set must not take the whole batch down.
func runBatch(logger *zap.Logger, cfg config, sets [][]headerField, showTable bool) error {
	recoverer := safety.NewRecoverer(logger)

	var wg sync.WaitGroup
	results := make([]error, len(sets))

	for i, fields := range sets {
		i, fields := i, fields
		wg.Add(1)
		recoverer.SafeGo(fmt.Sprintf("encode-set-%d", i), func() {
			defer wg.Done()
			results[i] = runEncodeOne(logger, cfg, fields, showTable)
		})
	}
	wg.Wait()

	for _, err := range results {
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeField(enc *hpack.Encoder, out *bytes.Buffer, cfg config, f headerField) error {
	flags, err := parseFlags(f.Flags)
	if err != nil {
		return fmt.Errorf("hpackctl: field %q: %w", f.Name, err)
	}

	if len(f.Flags) == 0 && cfg.Huffman != huffmanNever {
		if applyHuffmanPolicy(cfg.Huffman, len(f.Value), huffman.EncodedLen([]byte(f.Value))) {
			flags |= hpack.HuffmanValue
		}
	}

	return enc.Encode(out, hpack.Literal([]byte(f.Name), []byte(f.Value), flags|hpack.BestFormat))
}
