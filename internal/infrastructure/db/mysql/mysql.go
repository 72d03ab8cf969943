// Package mysql provides the resilient MySQL access layer: a single reusable
// connection handle with liveness probing and a bounded reconnect-retry, plus
// the SQL repositories built on top of it.
package mysql

import (
	"context"
	"database/sql"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
)

const defaultConnectTimeout = 10 * time.Second

// Config captures the settings for establishing a MySQL connection.
type Config struct {
	Host           string
	Port           string
	User           string
	Password       string
	Database       string
	Charset        string
	ConnectTimeout time.Duration
}

// Dialer returns a DialFunc that opens single-connection handles against the
// configured server. Statements auto-commit; there is no cross-statement
// transaction scope, so one connection serves the whole process.
func Dialer(cfg Config) DialFunc {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	dsn := gomysql.NewConfig()
	dsn.Net = "tcp"
	dsn.Addr = cfg.Host + ":" + cfg.Port
	dsn.User = cfg.User
	dsn.Passwd = cfg.Password
	dsn.DBName = cfg.Database
	dsn.Timeout = timeout
	dsn.ParseTime = true
	if cfg.Charset != "" {
		dsn.Params = map[string]string{"charset": cfg.Charset}
	}

	return func(ctx context.Context) (Conn, error) {
		db, err := sql.Open("mysql", dsn.FormatDSN())
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &sqlConn{db: db}, nil
	}
}

// sqlConn adapts *sql.DB to the Conn interface.
type sqlConn struct {
	db *sql.DB
}

func (c *sqlConn) PingContext(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *sqlConn) ExecContext(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c *sqlConn) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *sqlConn) Close() error {
	return c.db.Close()
}
