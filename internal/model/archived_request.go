package model

import (
	"time"

	"gorm.io/gorm"
)

type RequestKind string

const (
	RequestKindWithdraw RequestKind = "withdraw"
	RequestKindBridge   RequestKind = "bridge"
)

// ArchivedRequest is the persisted copy of a request that reached its
// terminal status. The in-memory trail stays authoritative; rows here exist
// for audit after a restart.
type ArchivedRequest struct {
	gorm.Model
	RequestID   string      `gorm:"column:request_id;type:varchar(255);not null;uniqueIndex"`
	Kind        RequestKind `gorm:"column:kind;type:varchar(50);not null"`
	Wallet      string      `gorm:"column:wallet;type:varchar(255);not null"`
	Amount      string      `gorm:"column:amount;type:varchar(255);not null"`
	ThrAddress  string      `gorm:"column:thr_address;type:varchar(255)"`
	Direction   string      `gorm:"column:direction;type:varchar(50)"`
	Status      string      `gorm:"column:status;type:varchar(50);not null"`
	RequestedAt time.Time   `gorm:"column:requested_at;not null"`
	SettledAt   *time.Time  `gorm:"column:settled_at"`
}

func (ArchivedRequest) TableName() string {
	return "archived_requests"
}
