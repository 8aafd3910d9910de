package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SqliteDriverName is the sqlite driver whose lower() folds all of Unicode.
// The built-in lower() only folds ASCII, so LOWER(col) LIKE LOWER(?) would miss
// "É" against "é".
const SqliteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(SqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", lowerText, true)
		},
	})
}

// lowerText backs lower(). NULL stays NULL and non-text values pass through.
func lowerText(value any) any {
	switch v := value.(type) {
	case string:
		return strings.ToLower(v)
	case []byte:
		if v == nil {
			return nil
		}
		return strings.ToLower(string(v))
	default:
		return v
	}
}

// OpenSqlite returns a sqlite dialector on the Unicode-aware driver
func OpenSqlite(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: SqliteDriverName, DSN: dsn})
}
