package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gamesync/core/utils"
	"gamesync/feature/library/models"
)

// parseDetails decodes a detail response permissively. The payload is keyed
// by the requested id and wraps the actual data in a success envelope:
//
//	{"42": {"success": true, "data": {...}}}
//
// Unknown fields are ignored and missing fields fall back to zero values;
// only a structurally undecodable body is an error.
func parseDetails(body []byte, itemID uint64) (*models.GameRecord, bool, error) {
	var envelope map[string]struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false, fmt.Errorf("decoding detail envelope: %w", err)
	}

	entry, ok := envelope[strconv.FormatUint(itemID, 10)]
	if !ok || !entry.Success || entry.Data == nil {
		return nil, false, nil
	}

	data := entry.Data
	record := &models.GameRecord{
		ItemID:       uint64(utils.ToInt64(data["steam_appid"])),
		Name:         utils.ToString(data["name"]),
		Description:  utils.ToString(data["short_description"]),
		LastModified: time.Now().UTC(),
	}
	if record.ItemID == 0 {
		record.ItemID = itemID
	}

	if platforms, ok := data["platforms"].(map[string]any); ok {
		record.Platforms = models.Platforms{
			Windows: utils.ToBool(platforms["windows"]),
			Mac:     utils.ToBool(platforms["mac"]),
			Linux:   utils.ToBool(platforms["linux"]),
		}
	}

	record.Media.HeaderImage = utils.ToString(data["header_image"])
	record.Media.CapsuleImage = utils.ToString(data["capsule_image"])
	if shots, ok := data["screenshots"].([]any); ok {
		for _, raw := range shots {
			if shot, ok := raw.(map[string]any); ok {
				if url := utils.ToString(shot["path_full"]); url != "" {
					record.Media.Screenshots = append(record.Media.Screenshots, url)
				}
			}
		}
	}

	if price, ok := data["price_overview"].(map[string]any); ok {
		record.Price = &models.PriceQuote{
			Currency:         utils.ToString(price["currency"]),
			Initial:          utils.ToInt64(price["initial"]),
			Final:            utils.ToInt64(price["final"]),
			DiscountPercent:  int(utils.ToInt64(price["discount_percent"])),
			InitialFormatted: utils.ToString(price["initial_formatted"]),
			FinalFormatted:   utils.ToString(price["final_formatted"]),
		}
	}

	return record, true, nil
}
