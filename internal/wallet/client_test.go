package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRPCServer(t *testing.T, result string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_getTransactionReceipt", req.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":` + result + `}`))
	}))
}

func TestRPCClient_TransactionConfirmed(t *testing.T) {
	ctx := context.Background()

	t.Run("mined receipt confirms", func(t *testing.T) {
		srv := newRPCServer(t, `{"blockNumber":"0x10d4f"}`)
		defer srv.Close()

		confirmed, err := NewRPCClient(srv.URL).TransactionConfirmed(ctx, "0xhash")
		require.NoError(t, err)
		assert.True(t, confirmed)
	})

	t.Run("pending transaction has no receipt", func(t *testing.T) {
		srv := newRPCServer(t, `null`)
		defer srv.Close()

		confirmed, err := NewRPCClient(srv.URL).TransactionConfirmed(ctx, "0xhash")
		require.NoError(t, err)
		assert.False(t, confirmed)
	})

	t.Run("rpc error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"node overloaded"}}`))
		}))
		defer srv.Close()

		_, err := NewRPCClient(srv.URL).TransactionConfirmed(ctx, "0xhash")
		assert.ErrorContains(t, err, "node overloaded")
	})

	t.Run("http failure surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewRPCClient(srv.URL).TransactionConfirmed(ctx, "0xhash")
		assert.Error(t, err)
	})
}

func TestStaticClient(t *testing.T) {
	confirmed, err := StaticClient{Confirmed: true}.TransactionConfirmed(context.Background(), "0xhash")
	require.NoError(t, err)
	assert.True(t, confirmed)
}
