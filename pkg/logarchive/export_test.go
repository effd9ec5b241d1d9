package logarchive

// SetMaxFileSize lowers the extraction limit for the duration of a test.
func SetMaxFileSize(size int64) (restore func()) {
	previous := maxLogFileSize
	maxLogFileSize = size
	return func() {
		maxLogFileSize = previous
	}
}
