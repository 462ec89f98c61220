package models

import (
	"sort"
	"time"
)

// PriceQuote is the price attached to a game record. Amounts are integer
// minor units of a single currency. Once a quote has been normalized to the
// reference currency it is never re-normalized.
type PriceQuote struct {
	Currency         string `json:"currency"`
	Initial          int64  `json:"initial"`
	Final            int64  `json:"final"`
	DiscountPercent  int    `json:"discountPercent"`
	InitialFormatted string `json:"initialFormatted"`
	FinalFormatted   string `json:"finalFormatted"`
}

// Platforms carries the platform availability flags of a game.
type Platforms struct {
	Windows bool `json:"windows"`
	Mac     bool `json:"mac"`
	Linux   bool `json:"linux"`
}

// MediaRefs holds remote media references for a game.
type MediaRefs struct {
	HeaderImage  string   `json:"headerImage"`
	CapsuleImage string   `json:"capsuleImage"`
	Screenshots  []string `json:"screenshots,omitempty"`
}

// OwnershipRecord maps a provider namespace to the sorted set of owner
// identities that own the game there. Owner identities are opaque strings.
type OwnershipRecord map[string][]string

// Owners returns the owner set for a provider namespace.
func (r OwnershipRecord) Owners(provider string) []string {
	return r[provider]
}

// AddOwners merges owners into the provider's set without removing existing
// entries. It reports whether the set changed. The stored slice stays sorted
// and deduplicated so unchanged merges are cheap to detect.
func (r OwnershipRecord) AddOwners(provider string, owners []string) bool {
	existing := make(map[string]struct{}, len(r[provider]))
	for _, o := range r[provider] {
		existing[o] = struct{}{}
	}

	changed := false
	for _, o := range owners {
		if o == "" {
			continue
		}
		if _, ok := existing[o]; !ok {
			existing[o] = struct{}{}
			changed = true
		}
	}

	if !changed {
		return false
	}

	merged := make([]string, 0, len(existing))
	for o := range existing {
		merged = append(merged, o)
	}
	sort.Strings(merged)
	r[provider] = merged
	return true
}

// NewOwnership builds an ownership record for a single provider namespace.
func NewOwnership(provider string, owners []string) OwnershipRecord {
	r := OwnershipRecord{}
	r.AddOwners(provider, owners)
	return r
}

// GameRecord is the canonical metadata for one catalog item, keyed by its
// stable numeric identifier. ItemID is immutable once assigned and is the
// sole identity key.
type GameRecord struct {
	ItemID       uint64          `json:"itemId" gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Name         string          `json:"name" gorm:"column:name"`
	Description  string          `json:"description" gorm:"column:description;type:text"`
	Price        *PriceQuote     `json:"price,omitempty" gorm:"column:price;serializer:json"`
	Platforms    Platforms       `json:"platforms" gorm:"column:platforms;serializer:json"`
	Media        MediaRefs       `json:"media" gorm:"column:media;serializer:json"`
	Owners       OwnershipRecord `json:"owners" gorm:"column:owners;serializer:json"`
	LastModified time.Time       `json:"lastModified" gorm:"column:last_modified"`
}

// TableName implements the GORM table naming convention.
func (GameRecord) TableName() string {
	return "games"
}

// BlacklistEntry marks an item id as permanently excluded from
// synchronization. Entries are created and removed out-of-band; the engine
// only reads them.
type BlacklistEntry struct {
	ItemID    uint64    `json:"itemId" gorm:"column:item_id;primaryKey;autoIncrement:false"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

// TableName implements the GORM table naming convention.
func (BlacklistEntry) TableName() string {
	return "blacklist"
}

// SyncOptions are the caller-supplied parameters of one synchronization run.
type SyncOptions struct {
	// Owners is the list of owner identities whose libraries are merged.
	Owners []string `json:"owners"`
	// OverrideExisting replaces existing records with freshly fetched data
	// instead of merging owners into them.
	OverrideExisting bool `json:"overrideExisting"`
	// ItemIDFilter restricts the run to the listed item ids. Nil means no
	// filter; an explicitly empty filter is a caller error.
	ItemIDFilter []uint64 `json:"itemIdFilter,omitempty"`
}

// SyncResult is the immutable terminal summary of one run.
type SyncResult struct {
	UpdatedGamesCount int      `json:"updatedGamesCount"`
	SkippedGamesCount int      `json:"skippedGamesCount"`
	FailedGamesCount  int      `json:"failedGamesCount"`
	UpdatedGameIDs    []uint64 `json:"updatedGameIds"`
	SkippedGameIDs    []uint64 `json:"skippedGameIds"`
	FailedGameIDs     []uint64 `json:"failedGameIds"`
}

// TotalConsidered returns the number of distinct items the run looked at.
func (r SyncResult) TotalConsidered() int {
	return r.UpdatedGamesCount + r.SkippedGamesCount + r.FailedGamesCount
}
