package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"gamesync/core/fetch"
	"gamesync/feature/library/currency"
	"gamesync/feature/library/models"

	"go.uber.org/zap"
)

// DetailStatus classifies the outcome of a single detail fetch. The engine
// branches on these variants instead of unwinding errors, so one bad item
// never aborts a run.
type DetailStatus int

const (
	// DetailFound means the upstream returned a usable record.
	DetailFound DetailStatus = iota
	// DetailNotFound means the upstream answered but has no such item.
	DetailNotFound
	// DetailTransientFailure covers transport, throttling exhaustion, and
	// parse failures. The item may succeed on a later run.
	DetailTransientFailure
	// DetailIDMismatch means the upstream returned a record for a different
	// id than requested. Such items likely need to be blacklisted; that
	// decision is manual, never automatic.
	DetailIDMismatch
)

// DetailResult is the outcome of one detail fetch.
type DetailResult struct {
	Status DetailStatus
	Record *models.GameRecord
}

// Client talks to the catalog provider through the rate-limited fetcher.
type Client struct {
	cfg        Config
	fetcher    *fetch.Fetcher
	normalizer *currency.Normalizer
	logger     *zap.Logger
}

// NewClient creates a catalog client.
func NewClient(cfg Config, fetcher *fetch.Fetcher, normalizer *currency.Normalizer, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		fetcher:    fetcher,
		normalizer: normalizer,
		logger:     logger,
	}
}

// ownedResponse is the owner-list payload. The games array may be entirely
// absent for private or empty libraries, which is distinct from an empty
// array.
type ownedResponse struct {
	Response struct {
		GameCount int `json:"game_count"`
		Games     []struct {
			AppID uint64 `json:"appid"`
		} `json:"games"`
	} `json:"response"`
}

// FetchOwnedItems returns the item ids owned by the given owner identity.
// An absent list is treated as "no items" with a logged warning; a transport
// failure is returned to the caller, who absorbs it per owner.
func (c *Client) FetchOwnedItems(ctx context.Context, owner string) ([]uint64, error) {
	url := fmt.Sprintf("%s/IPlayerService/GetOwnedGames/v1/?key=%s&steamid=%s&format=json",
		c.cfg.ApiBaseURL, c.cfg.ApiKey, owner)

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching owned items for %s: %w", owner, err)
	}

	var payload ownedResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding owned items for %s: %w", owner, err)
	}

	if payload.Response.Games == nil {
		c.logger.Warn("Owner has no visible item list, treating as empty",
			zap.String("owner", owner))
		return []uint64{}, nil
	}

	ids := make([]uint64, 0, len(payload.Response.Games))
	for _, g := range payload.Response.Games {
		ids = append(ids, g.AppID)
	}
	return ids, nil
}

// FetchDetails obtains canonical metadata for a single item. Prices quoted in
// a currency other than the reference currency are normalized in place; if no
// plausible rate is available the original quote is kept.
func (c *Client) FetchDetails(ctx context.Context, itemID uint64, report fetch.ThrottleReporter) DetailResult {
	url := fmt.Sprintf("%s/api/appdetails?appids=%d&cc=%s", c.cfg.StoreBaseURL, itemID, c.cfg.CountryCode)

	body, err := c.fetcher.FetchWithReporter(ctx, url, report)
	if err != nil {
		c.logger.Warn("Detail fetch failed",
			zap.Uint64("item_id", itemID),
			zap.Error(err))
		return DetailResult{Status: DetailTransientFailure}
	}

	record, found, err := parseDetails(body, itemID)
	if err != nil {
		c.logger.Warn("Detail response could not be parsed",
			zap.Uint64("item_id", itemID),
			zap.Error(err))
		return DetailResult{Status: DetailTransientFailure}
	}
	if !found {
		return DetailResult{Status: DetailNotFound}
	}

	if record.ItemID != itemID {
		c.logger.Warn("Upstream returned a different item than requested, it likely needs to be blacklisted",
			zap.Uint64("requested_id", itemID),
			zap.Uint64("returned_id", record.ItemID))
		return DetailResult{Status: DetailIDMismatch}
	}

	if record.Price != nil && record.Price.Currency != c.cfg.ReferenceCurrency {
		rate := c.normalizer.Normalize(ctx, record.Price.Currency, c.cfg.ReferenceCurrency)
		if rate > 0 {
			currency.ApplyRate(record.Price, rate, c.cfg.ReferenceCurrency)
		} else {
			c.logger.Warn("Keeping unconverted price quote, no plausible exchange rate",
				zap.Uint64("item_id", itemID),
				zap.String("currency", record.Price.Currency))
		}
	}

	return DetailResult{Status: DetailFound, Record: record}
}
