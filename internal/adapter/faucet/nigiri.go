// Package faucet shells out to the nigiri CLI to dispense regtest funds.
package faucet

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// txidPattern matches a transaction id in the faucet's output. nigiri prints
// a human-oriented line containing the funding txid.
var txidPattern = regexp.MustCompile(`\b[0-9a-fA-F]{64}\b`)

// NigiriFaucet implements ports.FaucetClient by running the faucet command
// as a subprocess. Only usable on regtest.
type NigiriFaucet struct {
	command string
	timeout time.Duration
	log     zerolog.Logger
}

// New creates a NigiriFaucet running the given command (normally "nigiri").
func New(command string, timeout time.Duration, log zerolog.Logger) *NigiriFaucet {
	return &NigiriFaucet{
		command: command,
		timeout: timeout,
		log:     log.With().Str("component", "nigiri_faucet").Logger(),
	}
}

// Fund sends amountBTC to the onchain address and returns the funding txid
// parsed from the command output.
func (f *NigiriFaucet) Fund(ctx context.Context, onchainAddress, amountBTC string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, f.command, "faucet", onchainAddress, amountBTC)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("faucet command timed out: %w", ctx.Err())
		}
		return "", fmt.Errorf("faucet command failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	txid := txidPattern.FindString(string(out))
	if txid == "" {
		f.log.Error().Str("output", strings.TrimSpace(string(out))).Msg("no txid in faucet output")
		return "", fmt.Errorf("faucet output contained no txid")
	}

	f.log.Debug().Str("txid", txid).Str("address", onchainAddress).Msg("faucet command succeeded")
	return strings.ToLower(txid), nil
}
