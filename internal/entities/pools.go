package entities

// EnemyPoolMember is a weighted membership row in a location's enemy pool
type EnemyPoolMember struct {
	PoolID      string `json:"pool_id"`
	EnemyTypeID string `json:"enemy_type_id"`
	Weight      int    `json:"weight"`
}

// LootPoolEntry is a weighted loot row. Tier gates which combat levels can
// draw it; the effective draw weight is Weight scaled by the tier-weight
// multiplier table.
type LootPoolEntry struct {
	PoolID       string `json:"pool_id"`
	MaterialID   string `json:"material_id"`
	Rarity       Rarity `json:"rarity"`
	Theme        string `json:"theme"`
	Tier         int    `json:"tier"`
	Weight       int    `json:"weight"`
}

// TierWeights maps a loot tier to its weight multiplier
type TierWeights map[int]float64
