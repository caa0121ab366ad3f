package store

import (
	"github.com/drxlabs/drx-backend/internal/store/archive"
	"github.com/drxlabs/drx-backend/internal/store/requestledger"
)

type Store struct {
	RequestLedger requestledger.IStore
	Archive       archive.IStore
}

func New() *Store {
	return &Store{
		RequestLedger: requestledger.New(),
		Archive:       archive.New(),
	}
}
