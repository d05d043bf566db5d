package config

// EnvPrefix scopes every envconfig lookup for this service.
const EnvPrefix = "LEDGER"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, kept as constants so tests and docs stay in
// sync with the struct tags above.
const (
	EnvAppEnv          = "LEDGER_APP_ENV"
	EnvAppPort         = "LEDGER_APP_PORT"
	EnvLogLevel        = "LEDGER_LOG_LEVEL"
	EnvSpreadsheetID   = "LEDGER_SHEETS_SPREADSHEET_ID"
	EnvSheetName       = "LEDGER_SHEETS_SHEET_NAME"
	EnvCredentialsJSON = "LEDGER_GOOGLE_CREDENTIALS_JSON"
	EnvCredentialsFile = "LEDGER_GOOGLE_APPLICATION_CREDENTIALS"
	EnvDataFile        = "LEDGER_DATA_FILE"
	EnvPartnerA        = "LEDGER_PARTNER_A"
	EnvPartnerB        = "LEDGER_PARTNER_B"
)
