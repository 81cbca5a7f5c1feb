// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog API - these keys describe how the Kitsu endpoint is reached.
const (
	APIBaseURL   = "api.base_url"
	APITimeout   = "api.timeout"
	APIUserAgent = "api.user_agent"
)

// Pagination - these keys define the default page size and the number of page buttons shown.
const (
	PaginationDefaultLimit = "pagination.default_limit"
	PaginationWindowSize   = "pagination.window_size"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling.
const (
	TUIItemSpacing   = "tui.item_spacing"
	TUIShowSynopsis  = "tui.show_synopsis"
	TUIShowPageCount = "tui.show_page_count"
)

// Mini mode - these keys configure the prompt based browser.
const (
	MiniPageSize = "mini.page_size"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Metrics - request counters can be dumped for a node_exporter textfile collector.
const (
	MetricsTextfile = "metrics.textfile"
)

// Resume - the last viewed list page is remembered between runs.
const (
	ResumeEnable = "resume.enable"
)
