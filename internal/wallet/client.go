package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client answers whether a payment transaction has been mined.
type Client interface {
	TransactionConfirmed(ctx context.Context, txHash string) (bool, error)
}

// RPCClient checks confirmation against an Ethereum JSON-RPC endpoint
// via eth_getTransactionReceipt. A transaction counts as confirmed once
// its receipt carries a block number.
type RPCClient struct {
	url    string
	client *http.Client
}

func NewRPCClient(url string) *RPCClient {
	return &RPCClient{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcReceipt struct {
	BlockNumber string `json:"blockNumber"`
}

type rpcResponse struct {
	Result *rpcReceipt `json:"result"`
	Error  *rpcError   `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *RPCClient) TransactionConfirmed(ctx context.Context, txHash string) (bool, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "eth_getTransactionReceipt",
		Params:  []interface{}{txHash},
		ID:      1,
	})
	if err != nil {
		return false, fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("c.client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("rpc endpoint returned status %d", resp.StatusCode)
	}

	var parsed rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return false, fmt.Errorf("json.Decode -> %w", err)
	}
	if parsed.Error != nil {
		return false, fmt.Errorf("rpc error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}

	// A pending transaction has no receipt yet.
	return parsed.Result != nil && parsed.Result.BlockNumber != "", nil
}

// StaticClient reports a fixed answer. It backs deployments without an
// RPC endpoint configured, where payments are trusted as submitted.
type StaticClient struct {
	Confirmed bool
}

func (c StaticClient) TransactionConfirmed(context.Context, string) (bool, error) {
	return c.Confirmed, nil
}
