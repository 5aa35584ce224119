package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"fulfillment/internal/core/ports"
)

// lockWait bounds how long a resolution waits for a busy client before
// reporting ports.ErrLockBusy. SET LOCAL scopes it to the transaction.
const lockWait = "3s"

// pq error code 55P03, raised when lock_timeout expires while waiting.
const lockNotAvailable = pq.ErrorCode("55P03")

// LockClient serializes order/group resolution for one client of one tenant.
// The advisory lock is transaction-scoped: it releases automatically on
// commit or rollback, so a crashed resolution never leaves the client stuck.
func (uow *GormUnitOfWork) LockClient(ctx context.Context, ownerID, clientID string) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.tx.WithContext(ctx).
		Exec("SET LOCAL lock_timeout = '" + lockWait + "'").Error; err != nil {
		return err
	}

	err := uow.tx.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", ownerID+":"+clientID).Error
	if isLockTimeout(err) {
		return ports.ErrLockBusy
	}
	return err
}

func isLockTimeout(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == lockNotAvailable
}
