package schema

import "time"

// DeployEntry represents the deploy_ledger table
// One row per ingestion run. Rows are immutable once written and are never
// deleted, so trend windows always resolve against the full run history.
type DeployEntry struct {
	// DeployID is the sequential run identifier
	DeployID uint64 `gorm:"column:deploy_id;primaryKey;autoIncrement"`

	// Timestamp is the instant the run was opened
	Timestamp time.Time `gorm:"column:timestamp;not null;index"`
}

// TableName specifies the table name for the DeployEntry model
func (DeployEntry) TableName() string {
	return "deploy_ledger"
}
