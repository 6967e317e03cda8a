package git

// CleanPath exports cleanPath for testing.
var CleanPath = cleanPath //nolint:gochecknoglobals // test export
