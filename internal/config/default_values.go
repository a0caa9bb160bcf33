package config

const (
	DefaultHistoryFile = "Scratchmd.md"
	DefaultMaxNotes    = 100

	DefaultClipboardTimeoutMS = 2000

	DefaultPreviewWidth = 70
	MinPreviewWidth     = 10

	DefaultInputHistoryLimit = 500
)
