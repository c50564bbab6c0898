// Package walletrpc talks JSON-RPC 1.0 to a bitcoind-style wallet daemon
// running in account mode.
package walletrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var (
	rpcDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tipbot_wallet_rpc_duration_seconds",
			Help:    "Wallet RPC call duration by method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	rpcErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tipbot_wallet_rpc_errors_total",
			Help: "Wallet RPC failures by method",
		},
		[]string{"method"},
	)
)

// Config holds the wallet daemon connection settings.
type Config struct {
	URL      string
	User     string
	Password string
	// Timeout bounds every call so a stalled daemon cannot hold an
	// account lock open indefinitely.
	Timeout time.Duration
}

// Client implements usecase.WalletService over HTTP JSON-RPC.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a wallet RPC client.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("wallet rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params []any, result any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	err := c.do(ctx, method, params, result)
	rpcDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		rpcErrors.WithLabelValues(method).Inc()
	}

	return err
}

func (c *Client) do(ctx context.Context, method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      "tipbot",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.User != "" {
		req.SetBasicAuth(c.cfg.User, c.cfg.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return fmt.Errorf("decode %s response (status %d): %w", method, resp.StatusCode, err)
	}

	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}

	return nil
}

// taoArg renders a decimal amount as a bare JSON number, the way the
// daemon expects amounts.
func taoArg(amount decimal.Decimal) json.Number {
	return json.Number(amount.StringFixed(8))
}

// GetBalance returns the account balance at minConf confirmations, in tao.
func (c *Client) GetBalance(ctx context.Context, accountID string, minConf int) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := c.call(ctx, "getbalance", []any{accountID, minConf}, &balance)
	return balance, err
}

// SendFrom sends amount tao from the account to an on-chain address and
// returns the transaction ID.
func (c *Client) SendFrom(ctx context.Context, accountID, toAddress string, amount decimal.Decimal) (string, error) {
	var txID string
	err := c.call(ctx, "sendfrom", []any{accountID, toAddress, taoArg(amount)}, &txID)
	return txID, err
}

// Move performs an off-chain ledger move between two wallet accounts.
// The daemon reports a soft decline as false with no error.
func (c *Client) Move(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bool, error) {
	var ok bool
	err := c.call(ctx, "move", []any{fromID, toID, taoArg(amount)}, &ok)
	return ok, err
}

// GetAddressesByAccount lists the account's deposit addresses.
func (c *Client) GetAddressesByAccount(ctx context.Context, accountID string) ([]string, error) {
	var addresses []string
	err := c.call(ctx, "getaddressesbyaccount", []any{accountID}, &addresses)
	return addresses, err
}

// GetNewAddress creates a fresh deposit address for the account.
func (c *Client) GetNewAddress(ctx context.Context, accountID string) (string, error) {
	var address string
	err := c.call(ctx, "getnewaddress", []any{accountID}, &address)
	return address, err
}

// WalletPassphrase unlocks an encrypted wallet for unlockSeconds.
func (c *Client) WalletPassphrase(ctx context.Context, passphrase string, unlockSeconds int) error {
	return c.call(ctx, "walletpassphrase", []any{passphrase, unlockSeconds}, nil)
}

// Ping verifies the daemon is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var height int64
	return c.call(ctx, "getblockcount", nil, &height)
}
