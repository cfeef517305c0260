// Command hpackctl is a small CLI front-end over the hpackit HPACK engine:
// it encodes header sets to a wire header block and decodes header blocks
// back into fields, for interactive inspection of the encoder/decoder and
// their dynamic table state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hpackctl: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := &cobra.Command{
		Use:   "hpackctl",
		Short: "Inspect and exercise the hpackit HPACK encoder/decoder",
	}

	root.AddCommand(newEncodeCmd(logger))
	root.AddCommand(newDecodeCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
