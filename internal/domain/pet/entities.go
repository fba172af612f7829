package pet

import "time"

// Table: pets. Reference data; seeded, never mutated by the core.
type Pet struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"column:name;size:64;not null;uniqueIndex:ux_pets_name" json:"name"`
	Type             string    `gorm:"column:type;size:16;not null;index" json:"type"`
	Size             string    `gorm:"column:size;size:16;not null" json:"size"`
	EnergyLevel      string    `gorm:"column:energy_level;size:16;not null" json:"energy_level"`
	MaintenanceLevel string    `gorm:"column:maintenance_level;size:16;not null" json:"maintenance_level"`
	Budget           string    `gorm:"column:budget;size:16;not null" json:"budget"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Pet) TableName() string { return "pets" }
