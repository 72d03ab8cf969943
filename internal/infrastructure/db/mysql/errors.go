package mysql

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/murahjaya/inventory-system/internal/core/domain"
)

// MySQL server error numbers this package discriminates on.
const (
	erDupEntry        = 1062
	erRowIsReferenced = 1451
	erNoReferencedRow = 1452
)

// isConnErr reports whether err is a connectivity-class failure: the transport
// to the server is broken, so re-running the statement on a fresh connection can
// change the outcome. Constraint, syntax, and data errors are not in this class.
func isConnErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, gomysql.ErrInvalidConn) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// translateErr maps server-side integrity errors onto domain sentinels so
// repositories and services can errors.Is on them. Anything unrecognized is
// returned untouched.
func translateErr(err error) error {
	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case erDupEntry:
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, myErr.Message)
		case erRowIsReferenced, erNoReferencedRow:
			return fmt.Errorf("%w: %s", domain.ErrForeignKey, myErr.Message)
		}
	}
	return err
}
