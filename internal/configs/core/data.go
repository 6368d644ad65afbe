package core

// DataConfig holds the input-pipeline fields common to every task family.
// Task packages embed it and add their own split-specific fields.
type DataConfig struct {
	DropRemainder bool  `yaml:"drop_remainder" json:"drop_remainder"`
	Cache         bool  `yaml:"cache" json:"cache"`
	CycleLength   int   `yaml:"cycle_length" json:"cycle_length"`
	BlockLength   int   `yaml:"block_length" json:"block_length"`
	Sharding      bool  `yaml:"sharding" json:"sharding"`
	Seed          int64 `yaml:"seed" json:"seed"`
}

// DefaultData returns the default shared pipeline settings.
func DefaultData() DataConfig {
	return DataConfig{
		DropRemainder: true,
		BlockLength:   1,
		Sharding:      true,
	}
}
