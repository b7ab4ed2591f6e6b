package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a gorm handle bound to ctx. When tx is not nil every
// statement built from the handle runs on that *sql.Tx, so a repository can
// join a transaction opened by the service layer.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	scoped := db.Session(&gorm.Session{NewDB: true, Context: ctx})
	scoped.Statement.ConnPool = tx
	return scoped
}
