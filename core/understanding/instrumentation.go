package understanding

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const scopeName = "github.com/merelabs/mere-core/core/understanding"

var logger = otelslog.NewLogger(scopeName)
