package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// KeyValueStore holds small pieces of pipeline state keyed by name.
// The ingestion run lease is the only entry today.
type KeyValueStore struct {
	Key       string    `gorm:"column:key;primaryKey;type:text"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}

// RunLease is the JSON payload of the run lease entry
type RunLease struct {
	DeployID  uint64    `json:"deploy_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Live reports whether the lease still blocks a new run at now
func (l RunLease) Live(now time.Time) bool {
	return now.Before(l.ExpiresAt)
}

// NewRunLeaseEntry encodes a lease into a key/value row
func NewRunLeaseEntry(key string, lease RunLease) (KeyValueStore, error) {
	value, err := json.Marshal(lease)
	if err != nil {
		return KeyValueStore{}, fmt.Errorf("failed to encode run lease: %w", err)
	}
	return KeyValueStore{Key: key, Value: string(value)}, nil
}

// RunLease decodes the row value as a run lease
func (kv KeyValueStore) RunLease() (*RunLease, error) {
	var lease RunLease
	if err := json.Unmarshal([]byte(kv.Value), &lease); err != nil {
		return nil, fmt.Errorf("failed to decode run lease: %w", err)
	}
	return &lease, nil
}
