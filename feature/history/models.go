package history

import "time"

// Exchange is one recorded question/answer pair. Only the final answer is
// stored; intermediate conversation turns are never persisted.
type Exchange struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RayID     string    `gorm:"column:ray_id;size:64;index" json:"ray_id"`
	Query     string    `gorm:"column:query;type:text" json:"query"`
	Answer    string    `gorm:"column:answer;type:text" json:"answer"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name used by GORM.
func (Exchange) TableName() string {
	return "assistant_exchanges"
}
