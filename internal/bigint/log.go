package bigint

import (
	"sync/atomic"

	"github.com/agbru/bigcalc/internal/logging"
)

var pkgLogger atomic.Pointer[logging.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger installs the logger used to report refused operations.
// A nil logger discards them, which is the default.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NewNopLogger()
	}
	pkgLogger.Store(&l)
}

func logger() logging.Logger { return *pkgLogger.Load() }
