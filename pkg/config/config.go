package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/noumansaleem/partnership-ledger-backend/pkg/enums"
)

type Config struct {
	App      AppConfig
	Sheets   SheetsConfig
	Fallback FallbackConfig
	Partners PartnersConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if strings.TrimSpace(cfg.Partners.A) == "" || strings.TrimSpace(cfg.Partners.B) == "" {
		return nil, fmt.Errorf("both partner names are required")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LEDGER_APP_ENV" default:"development"`
	Port         string `envconfig:"LEDGER_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"LEDGER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LEDGER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SheetsConfig points the primary store at a Google Sheets spreadsheet.
// Leaving SpreadsheetID empty disables the primary store entirely; the
// repository then serves everything from the local fallback document.
type SheetsConfig struct {
	SpreadsheetID   string `envconfig:"LEDGER_SHEETS_SPREADSHEET_ID"`
	SheetName       string `envconfig:"LEDGER_SHEETS_SHEET_NAME" default:"Transactions"`
	CredentialsJSON string `envconfig:"LEDGER_GOOGLE_CREDENTIALS_JSON"`
	CredentialsFile string `envconfig:"LEDGER_GOOGLE_APPLICATION_CREDENTIALS"`
}

// Configured reports whether a primary destination has been set up.
func (s SheetsConfig) Configured() bool {
	return strings.TrimSpace(s.SpreadsheetID) != ""
}

type FallbackConfig struct {
	DataFile string `envconfig:"LEDGER_DATA_FILE" default:"partnership-ledger-data.json"`
}

type PartnersConfig struct {
	A string `envconfig:"LEDGER_PARTNER_A" default:"Nouman"`
	B string `envconfig:"LEDGER_PARTNER_B" default:"Abdullah"`
}

// Set returns the partner enumeration for this deployment.
func (p PartnersConfig) Set() enums.PartnerSet {
	return enums.NewPartnerSet(p.A, p.B)
}
