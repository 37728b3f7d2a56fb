package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/enescakir/emoji"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/powledger/powledger/internal/ledger"
	powLogger "github.com/powledger/powledger/internal/logger"
	"github.com/powledger/powledger/internal/node_client"
)

const hashDisplayLength = 16

func newChainCmd() *cobra.Command {
	chainCmd := &cobra.Command{
		Use:   "chain",
		Short: "Fetch the chain of a running node and verify it locally",
		RunE: func(c *cobra.Command, _ []string) error {
			address, err := c.Flags().GetString("node")
			if err != nil {
				return err
			}

			difficulty, err := c.Flags().GetInt("difficulty")
			if err != nil {
				return err
			}

			retries, err := c.Flags().GetUint64("retries")
			if err != nil {
				return err
			}

			maxRows, err := c.Flags().GetInt("max-rows")
			if err != nil {
				return err
			}

			logger, err := powLogger.NewLogger("WARN", "tint")
			if err != nil {
				return err
			}

			client := node_client.New(address, node_client.WithLogger(logger.With(slog.String("module", "node-client"))))

			blocks, err := client.GetBlockchainWithRetries(c.Context(), time.Second, retries)
			if err != nil {
				return fmt.Errorf("failed to get blockchain: %w", err)
			}

			return renderChain(os.Stdout, blocks, difficulty, maxRows)
		},
	}

	chainCmd.Flags().String("node", "localhost:5000", "address of the node to inspect")
	chainCmd.Flags().Int("difficulty", 2, "difficulty the chain is verified against")
	chainCmd.Flags().Uint64("retries", 3, "number of retries when the node is unreachable")
	chainCmd.Flags().Int("max-rows", 0, "show only the last n blocks, 0 shows all")

	return chainCmd
}

// renderChain prints one row per block and marks the first block that fails
// verification. It returns the verification error, if any.
func renderChain(w io.Writer, blocks []ledger.Block, difficulty int, maxRows int) error {
	pow := ledger.NewProofOfWork(difficulty)

	validity := make([]error, len(blocks))
	var chainErr error
	for i := 1; i < len(blocks) && chainErr == nil; i++ {
		chainErr = ledger.ValidateBlock(pow, blocks[i], blocks[i-1])
		validity[i] = chainErr
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Index", "Hash", "Previous", "Proof", "Txs", "Minted", "Valid"})

	start := 0
	if maxRows > 0 && len(blocks) > maxRows {
		start = len(blocks) - maxRows
	}

	for i := start; i < len(blocks); i++ {
		block := blocks[i]

		minted := 0.0
		for _, tx := range block.Transactions {
			if tx.IsReward() {
				minted += tx.Amount
			}
		}

		valid := emoji.CheckMarkButton.String()
		switch {
		case validity[i] != nil:
			valid = emoji.CrossMark.String()
		case chainErr != nil && i > firstInvalid(validity):
			valid = "-"
		}

		t.AppendRow(table.Row{
			strconv.FormatUint(block.Index, 10),
			shorten(ledger.CanonicalHash(block)),
			shorten(block.PreviousHash),
			strconv.FormatUint(block.Proof, 10),
			strconv.Itoa(len(block.Transactions)),
			ledger.FormatAmount(minted),
			valid,
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", "", "Length", strconv.Itoa(len(blocks))})
	t.Render()

	if chainErr != nil {
		_, _ = fmt.Fprintf(w, "%s chain invalid: %v\n", emoji.Warning, chainErr)
	}

	return chainErr
}

func firstInvalid(validity []error) int {
	for i, err := range validity {
		if err != nil {
			return i
		}
	}
	return len(validity)
}

func shorten(hash string) string {
	if len(hash) <= hashDisplayLength {
		return hash
	}
	return hash[:hashDisplayLength]
}
