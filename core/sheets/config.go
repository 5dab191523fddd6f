package sheets

// Config holds configuration for the spreadsheet ledger.
type Config struct {
	// BaseURL is the root of the spreadsheet values API.
	BaseURL string `mapstructure:"base_url" default:"https://sheets.googleapis.com/v4/spreadsheets"`
	// SpreadsheetID identifies the ledger spreadsheet.
	SpreadsheetID string `mapstructure:"spreadsheet_id" default:""`
	// PrimarySheet is the tab holding the returns rows.
	PrimarySheet string `mapstructure:"primary_sheet" default:"Sheet1"`
	// SecondarySheet is the tab holding the enrichment rows.
	SecondarySheet string `mapstructure:"secondary_sheet" default:"Sheet2"`
	// TimeoutSeconds is the HTTP timeout per request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
