package models

// CounterModel backs sequential number allocation. Seq is only ever
// advanced with an atomic UPDATE, never read-modify-write.
type CounterModel struct {
	Name      string `gorm:"primaryKey;size:50"`
	Seq       int64  `gorm:"not null;default:0"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CounterModel) TableName() string {
	return "counters"
}
