package arkd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/HemantKumar01/ARKane-Wallet/internal/core/domain"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultBoardingExitBlocks is how long a confirmed boarding output stays
// eligible for a cooperative settlement round before it must take the
// unilateral exit path. Roughly one week of blocks.
const DefaultBoardingExitBlocks = 1008

// Client implements ports.ArkClient against a co-located Ark daemon plus an
// Esplora indexer. The daemon owns all protocol cryptography (signing,
// round participation); Esplora answers boarding-output questions the
// daemon does not track.
type Client struct {
	arkURL     string
	esploraURL string
	httpc      *http.Client
	log        zerolog.Logger

	exitBlocks int64
}

// Option customizes a Client.
type Option func(*Client)

// WithBoardingExitBlocks overrides the boarding exit window.
func WithBoardingExitBlocks(blocks int64) Option {
	return func(c *Client) { c.exitBlocks = blocks }
}

// WithHTTPClient swaps the underlying HTTP client. Used in tests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a Client talking to the Ark daemon at arkURL and the Esplora
// indexer at esploraURL.
func New(arkURL, esploraURL string, timeout time.Duration, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		arkURL:     arkURL,
		esploraURL: esploraURL,
		httpc:      &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "arkd_client").Logger(),
		exitBlocks: DefaultBoardingExitBlocks,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ---- daemon wire types ----

type seedResponse struct {
	Seed string `json:"seed"`
}

type seedRequest struct {
	Seed string `json:"seed"`
}

type addressesResponse struct {
	BoardingAddress string `json:"boarding_address"`
	ArkAddress      string `json:"ark_address"`
}

type offchainBalanceResponse struct {
	SpendableSats int64 `json:"spendable_sats"`
	ExpiredSats   int64 `json:"expired_sats"`
}

type settleRequest struct {
	Seed      string `json:"seed"`
	ToAddress string `json:"to_address,omitempty"`
}

type settleResponse struct {
	Txid    string `json:"txid"`
	FeeSats int64  `json:"fee_sats"`
}

type sendRequest struct {
	Seed    string `json:"seed"`
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

type sendResponse struct {
	Txid string `json:"txid"`
}

type daemonError struct {
	Message string `json:"message"`
}

// ---- esplora wire types ----

type esploraUtxo struct {
	Txid   string `json:"txid"`
	Vout   uint32 `json:"vout"`
	Value  int64  `json:"value"`
	Status struct {
		Confirmed   bool  `json:"confirmed"`
		BlockHeight int64 `json:"block_height"`
	} `json:"status"`
}

// ---- ports.ArkClient ----

func (c *Client) CreateHandle(ctx context.Context) (domain.ProtocolHandle, error) {
	var resp seedResponse
	if err := c.postJSON(ctx, c.arkURL+"/v1/wallet/seed", nil, &resp); err != nil {
		return domain.ProtocolHandle{}, fmt.Errorf("creating seed: %w", err)
	}
	if resp.Seed == "" {
		return domain.ProtocolHandle{}, fmt.Errorf("daemon returned empty seed")
	}
	return domain.NewProtocolHandle(resp.Seed), nil
}

func (c *Client) RestoreHandle(ctx context.Context, seed string) (domain.ProtocolHandle, error) {
	// The daemon validates the seed material; a malformed seed fails here
	// rather than on first use.
	if err := c.postJSON(ctx, c.arkURL+"/v1/wallet/restore", seedRequest{Seed: seed}, nil); err != nil {
		return domain.ProtocolHandle{}, fmt.Errorf("restoring handle: %w", err)
	}
	return domain.NewProtocolHandle(seed), nil
}

func (c *Client) DeriveAddresses(ctx context.Context, handle domain.ProtocolHandle) (domain.AddressPair, error) {
	var resp addressesResponse
	if err := c.postJSON(ctx, c.arkURL+"/v1/wallet/addresses", seedRequest{Seed: handle.Seed()}, &resp); err != nil {
		return domain.AddressPair{}, fmt.Errorf("deriving addresses: %w", err)
	}
	if resp.BoardingAddress == "" || resp.ArkAddress == "" {
		return domain.AddressPair{}, fmt.Errorf("daemon returned incomplete address pair")
	}
	return domain.AddressPair{Onchain: resp.BoardingAddress, Offchain: resp.ArkAddress}, nil
}

// QueryBalance fans out to both settlement domains concurrently: the daemon
// for offchain virtual outputs, Esplora for boarding outputs.
func (c *Client) QueryBalance(ctx context.Context, handle domain.ProtocolHandle) (domain.RawBalance, error) {
	addrs, err := c.DeriveAddresses(ctx, handle)
	if err != nil {
		return domain.RawBalance{}, err
	}

	var (
		offchain offchainBalanceResponse
		boarding boardingBuckets
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.postJSON(gctx, c.arkURL+"/v1/wallet/balance", seedRequest{Seed: handle.Seed()}, &offchain); err != nil {
			return fmt.Errorf("querying offchain balance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		b, err := c.boardingBalance(gctx, addrs.Onchain)
		if err != nil {
			return fmt.Errorf("querying boarding balance: %w", err)
		}
		boarding = b
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.RawBalance{}, err
	}

	return domain.RawBalance{
		OffchainSpendable: offchain.SpendableSats,
		OffchainExpired:   offchain.ExpiredSats,
		BoardingSpendable: boarding.spendable,
		BoardingExpired:   boarding.expired,
		BoardingPending:   boarding.pending,
	}, nil
}

func (c *Client) Settle(ctx context.Context, handle domain.ProtocolHandle, toAddress string) (*ports.SettlementReceipt, error) {
	var resp settleResponse
	req := settleRequest{Seed: handle.Seed(), ToAddress: toAddress}
	if err := c.postJSON(ctx, c.arkURL+"/v1/wallet/settle", req, &resp); err != nil {
		return nil, fmt.Errorf("settling: %w", err)
	}
	if resp.Txid == "" {
		return nil, fmt.Errorf("daemon returned settlement without txid")
	}
	return &ports.SettlementReceipt{Txid: resp.Txid, Fee: resp.FeeSats}, nil
}

func (c *Client) SendOffchain(ctx context.Context, handle domain.ProtocolHandle, toAddress string, amount int64) (string, error) {
	var resp sendResponse
	req := sendRequest{Seed: handle.Seed(), Address: toAddress, Amount: amount}
	if err := c.postJSON(ctx, c.arkURL+"/v1/wallet/send", req, &resp); err != nil {
		return "", fmt.Errorf("sending offchain: %w", err)
	}
	if resp.Txid == "" {
		return "", fmt.Errorf("daemon returned send without txid")
	}
	return resp.Txid, nil
}

// ---- boarding classification ----

type boardingBuckets struct {
	spendable int64
	expired   int64
	pending   int64
}

// boardingBalance lists the boarding address UTXOs and classifies each by
// confirmation depth: unconfirmed outputs are pending, confirmed outputs
// inside the exit window are spendable, older ones have expired out of the
// cooperative path.
func (c *Client) boardingBalance(ctx context.Context, boardingAddr string) (boardingBuckets, error) {
	var b boardingBuckets

	tip, err := c.tipHeight(ctx)
	if err != nil {
		return b, err
	}

	var utxos []esploraUtxo
	path := c.esploraURL + "/address/" + url.PathEscape(boardingAddr) + "/utxo"
	if err := c.getJSON(ctx, path, &utxos); err != nil {
		return b, err
	}

	for _, u := range utxos {
		switch {
		case !u.Status.Confirmed:
			b.pending += u.Value
		case tip-u.Status.BlockHeight < c.exitBlocks:
			b.spendable += u.Value
		default:
			b.expired += u.Value
		}
	}
	return b, nil
}

func (c *Client) tipHeight(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.esploraURL+"/blocks/tip/height", nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("esplora tip height: status %d", resp.StatusCode)
	}
	height, err := strconv.ParseInt(string(bytes.TrimSpace(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("esplora tip height: %w", err)
	}
	return height, nil
}

// ---- transport helpers ----

func (c *Client) postJSON(ctx context.Context, urlStr string, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		buf, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, respBody)
}

func (c *Client) getJSON(ctx context.Context, urlStr string, respBody any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return err
	}
	return c.do(req, respBody)
}

func (c *Client) do(req *http.Request, respBody any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var derr daemonError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &derr) == nil && derr.Message != "" {
			return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, derr.Message)
		}
		return fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
