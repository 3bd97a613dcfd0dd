package rational

import (
	"sync/atomic"

	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
)

var pkgLogger atomic.Pointer[logging.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger installs the logger used to report refused operands.
// A nil logger discards them.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.NewNopLogger()
	}
	pkgLogger.Store(&l)
}

func refuse(op string, err error) error {
	(*pkgLogger.Load()).Error("refusing operand", err, logging.String("op", op))
	metrics.ObserveInvalidOperand(op)
	return err
}
