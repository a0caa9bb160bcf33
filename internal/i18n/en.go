package i18n

// EnMessages English message catalog
var EnMessages = map[string]string{
	// Session lifecycle
	"app.welcome":    "🚀 Welcome to Scratchpad! Type 'exit' to quit.",
	"app.goodbye":    "👋 Goodbye!",
	"app.unexpected": "Unexpected error: %v",
	"app.prompt":     "📝 > ",

	// Startup warnings
	"warn.history_init": "history file unavailable: %v",
	"warn.line_editor":  "line editor unavailable, fallback to basic input: %v",

	// Main screen
	"screen.title":         "📝 SCRATCHPAD",
	"screen.empty":         "📭 No notes yet. Type 'add <text>' to start!",
	"screen.status":        "📊 Notes (%d/%d) | %s",
	"screen.clipboard_on":  "📋 Clipboard: ON",
	"screen.clipboard_off": "📋 Clipboard: OFF",
	"screen.commands":      "💡 Commands:",

	// Add
	"add.done":    "Added note #%d",
	"add.evicted": "Removed oldest note (limit: %d)",
	"add.empty":   "Cannot add empty text",

	// Copy
	"copy.done":     "Copied note #%d",
	"copy.all_done": "Copied all %d notes",
	"copy.empty":    "Nothing to copy",

	// Delete
	"delete.done":     "Deleted: '%s'",
	"delete.all_done": "Deleted all %d notes",
	"delete.empty":    "Nothing to delete",

	// Search
	"search.empty_query": "Please provide a search term",
	"search.none":        "No notes found containing '%s'",
	"search.title":       "🔍 Search results for '%s':",
	"search.found":       "Found %d match(es). Press Enter to continue...",

	// Parser
	"error.index":   "Invalid note number",
	"error.usage":   "Usage: %s",
	"error.unknown": "Unknown command. Type 'help' for available commands",

	// Side channels
	"history.failed":        "Failed to write to history: %v",
	"clipboard.unavailable": "Clipboard not available",
	"clipboard.failed":      "Copy failed: %v",
	"clipboard.fallback":    "📋 Text content: %s",

	// Help page
	"help.title":        "📚 SCRATCHPAD HELP",
	"help.commands":     "Commands",
	"help.add":          "Add a new note to your scratchpad",
	"help.copy":         "Copy note number N to clipboard",
	"help.copy_all":     "Copy all notes to clipboard",
	"help.delete":       "Delete note number N",
	"help.delete_all":   "Delete all notes",
	"help.search":       "Search for notes containing term",
	"help.help":         "Show this help message",
	"help.exit":         "Exit the application",
	"help.tips":         "💡 Tips",
	"help.tip_history":  "Notes are auto-saved to %s",
	"help.tip_truncate": "Long notes are truncated in display but fully copied",
	"help.tip_max":      "Maximum %d notes in memory",
	"help.continue":     "Press Enter to continue...",
}
