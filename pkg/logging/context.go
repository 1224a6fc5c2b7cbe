package logging

import "log/slog"

// WithTable creates a logger with table context.
//
// Example:
//
//	log := logging.WithTable("users")
//	log.Info("table created", "columns", 3)
func WithTable(tableName string) *slog.Logger {
	return GetLogger().With("table", tableName)
}

// WithIndex creates a logger with table and index-column context.
//
// Example:
//
//	log := logging.WithIndex("users", "email")
//	log.Debug("index populated", "keys", keyCount)
func WithIndex(tableName, column string) *slog.Logger {
	return GetLogger().With("table", tableName, "column", column)
}

// WithComponent creates a logger with component context.
//
// Example:
//
//	log := logging.WithComponent("catalog")
//	log.Info("database opened")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithError creates a logger carrying an error in structured form.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
