package utils

import "time"

// The catalog stores creation times as epoch milliseconds.
func NowUnixMillis() int64 { return time.Now().UnixMilli() }
