package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// fieldAliases maps the snake_case spellings some clients send to the
// canonical camelCase field names the API binds on.
var fieldAliases = map[string]string{
	"wallet_address":    "walletAddress",
	"prize_pool":        "prizePool",
	"entry_fee":         "entryFee",
	"total_spots":       "totalSpots",
	"max_per_wallet":    "maxPerWallet",
	"end_time":          "endTime",
	"created_at":        "createdAt",
	"auto_draw_enabled": "autoDrawEnabled",
	"tx_hash":           "txHash",
	"sender":            "from",
}

// CanonicalizeJSON rewrites the request body so aliased field names are
// folded into their canonical form before gin binds the payload. When a
// payload carries both spellings the canonical one wins.
func CanonicalizeJSON(ctx *gin.Context) error {
	if ctx.Request.Body == nil {
		return nil
	}

	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll -> %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		ctx.Request.Body = io.NopCloser(bytes.NewReader(raw))
		return nil
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("json.Unmarshal -> %w", err)
	}

	for alias, canonical := range fieldAliases {
		value, ok := payload[alias]
		if !ok {
			continue
		}
		if _, exists := payload[canonical]; !exists {
			payload[canonical] = value
		}
		delete(payload, alias)
	}

	normalized, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(normalized))
	ctx.Request.ContentLength = int64(len(normalized))

	return nil
}
