package clock

import (
	"errors"

	"github.com/pgrabas/emu502/internal/localize"
)

// ErrTimeout reports that ExecuteWithTimeout's wall-clock budget was
// exhausted before the run halted.
var ErrTimeout = errors.New(localize.F("execution timed out"))
