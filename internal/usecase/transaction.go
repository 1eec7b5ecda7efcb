package usecase

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// readOnly runs fn in a read-only transaction so multi-statement reads see one snapshot.
func readOnly(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn, &sql.TxOptions{ReadOnly: true})
}
