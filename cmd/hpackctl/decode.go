package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"hpackit/internal/cliview"
	"hpackit/internal/shared/compression/hpack"
)

func newDecodeCmd(logger *zap.Logger) *cobra.Command {
	var (
		inputPath    string
		configPath   string
		huffmanWidth int
		showTable    bool
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a hex-encoded HPACK header block",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			raw, err := readHexInput(inputPath)
			if err != nil {
				return err
			}

			dec := hpack.NewDecoder(cfg.DecoderCeiling, huffmanWidth)
			fields, err := dec.DecodeBlock(raw)
			if err != nil {
				logger.Error("decode failed", zap.Error(err))
				return err
			}

			logger.Info("decoded header block",
				zap.Int("fields", len(fields)),
				zap.Int("bytes", len(raw)),
			)

			decoded := make([]decodedField, len(fields))
			for i, f := range fields {
				decoded[i] = decodedField{Name: string(f.Name), Value: string(f.Value)}
			}

			if err := printDecoded(decoded, cfg.Output); err != nil {
				return err
			}

			if showTable {
				fmt.Print(cliview.DynamicTable(dec.DynamicEntries()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "file containing a hex header block (defaults to stdin)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "session config YAML file")
	cmd.Flags().IntVar(&huffmanWidth, "huffman-width", 4, "Huffman decoder read-width (1-5)")
	cmd.Flags().BoolVar(&showTable, "show-table", true, "print the dynamic table after decoding")

	return cmd
}

func readHexInput(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("hpackctl: read hex input: %w", err)
	}

	return hex.DecodeString(strings.TrimSpace(string(data)))
}

// printDecoded renders decoded fields per the configured output format:
// human-readable text, JSON (goccy/go-json), or MessagePack hex.
func printDecoded(fields []decodedField, format outputFormat) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return fmt.Errorf("hpackctl: marshal json: %w", err)
		}
		fmt.Println(string(data))
	case formatMsgpack:
		data, err := msgpack.Marshal(fields)
		if err != nil {
			return fmt.Errorf("hpackctl: marshal msgpack: %w", err)
		}
		fmt.Println(hex.EncodeToString(data))
	default:
		for _, f := range fields {
			fmt.Printf("%s: %s\n", f.Name, f.Value)
		}
	}
	return nil
}
