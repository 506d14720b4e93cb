package repositories

import (
	"strings"

	"github.com/streamhive/streamhive-api/internal/logger"
)

// logQuery logs a statement on a single line with its args and outcome.
func logQuery(query string, args []any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}
