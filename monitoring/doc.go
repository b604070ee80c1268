// Package monitoring provides a small leveled logger that writes structured
// events as JSON lines.
//
// Basic usage:
//
//	logger := monitoring.NewLogger("fibheap", os.Stderr, monitoring.DEBUG)
//	logger.Log(monitoring.INFO, "startup", "heap created", map[string]interface{}{
//	    "size": 0,
//	})
package monitoring
