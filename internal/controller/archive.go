package controller

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/drxlabs/drx-backend/internal/store"
)

// ArchiveSettled copies requests that reached their terminal status into
// the archive database. The in-memory trail is authoritative; this exists
// so the audit history survives a restart.
func (c *Controller) ArchiveSettled() (int, error) {
	if c.db == nil {
		return 0, nil
	}

	rows := c.store.RequestLedger.DrainTerminal()
	if len(rows) == 0 {
		return 0, nil
	}

	err := store.DoInTx(c.db, func(tx *gorm.DB) error {
		return c.store.Archive.Create(tx, rows)
	})
	if err != nil {
		// rows stay unacknowledged so the next flush retries them;
		// the ON CONFLICT insert keeps a partial retry idempotent
		c.logger.Error("failed to archive settled requests", map[string]string{
			"rows":  strconv.Itoa(len(rows)),
			"error": err.Error(),
		})
		return 0, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.RequestID)
	}
	c.store.RequestLedger.MarkArchived(ids)

	c.logger.Info("archived settled requests", map[string]string{
		"rows": strconv.Itoa(len(rows)),
	})
	return len(rows), nil
}
