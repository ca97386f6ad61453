package env

import (
	"errors"
	"fmt"
	"fortune_wheel/internal/config"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

const (
	sheetIDEnvName      = "GOOGLE_SHEETS_SHEET_ID"
	sheetRangeEnvName   = "GOOGLE_SHEETS_RANGE"
	projectIDEnvName    = "GOOGLE_CLOUD_PROJECT_ID"
	privateKeyIDEnvName = "GOOGLE_SHEETS_PRIVATE_KEY_ID"
	privateKeyEnvName   = "GOOGLE_SHEETS_PRIVATE_KEY"
	clientEmailEnvName  = "GOOGLE_SHEETS_CLIENT_EMAIL"
	clientIDEnvName     = "GOOGLE_SHEETS_CLIENT_ID"
	sheetTZEnvName      = "GOOGLE_SHEETS_TIMEZONE"

	defaultSheetRange = "A:E"
	defaultSheetTZ    = "America/Mexico_City"
	googleTokenURI    = "https://oauth2.googleapis.com/token"
)

// ErrSheetsNotConfigured - не заданы идентификатор таблицы или ключи сервисного аккаунта
var ErrSheetsNotConfigured = errors.New("google sheets is not configured")

type serviceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`
}

type sheetsConfig struct {
	sheetID     string
	sheetRange  string
	credentials []byte
	timeZone    string
}

// NewSheetsConfig собирает json сервисного аккаунта из переменных окружения
func NewSheetsConfig() (config.SheetsConfig, error) {
	sheetID := os.Getenv(sheetIDEnvName)
	if len(sheetID) == 0 {
		return nil, fmt.Errorf("%w: %s not set", ErrSheetsNotConfigured, sheetIDEnvName)
	}

	// В .env ключ хранится одной строкой с экранированными переводами строк
	privateKey := strings.ReplaceAll(os.Getenv(privateKeyEnvName), `\n`, "\n")
	clientEmail := os.Getenv(clientEmailEnvName)
	if len(privateKey) == 0 || len(clientEmail) == 0 {
		return nil, fmt.Errorf("%w: %s and %s are required", ErrSheetsNotConfigured, privateKeyEnvName, clientEmailEnvName)
	}

	credentials, err := jsoniter.Marshal(serviceAccount{
		Type:         "service_account",
		ProjectID:    os.Getenv(projectIDEnvName),
		PrivateKeyID: os.Getenv(privateKeyIDEnvName),
		PrivateKey:   privateKey,
		ClientEmail:  clientEmail,
		ClientID:     os.Getenv(clientIDEnvName),
		TokenURI:     googleTokenURI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode service account: %w", err)
	}

	sheetRange := os.Getenv(sheetRangeEnvName)
	if len(sheetRange) == 0 {
		sheetRange = defaultSheetRange
	}

	return &sheetsConfig{
		sheetID:     sheetID,
		sheetRange:  sheetRange,
		credentials: credentials,
		timeZone:    SheetsTimeZone(),
	}, nil
}

// SheetsTimeZone - пояс, в котором проставляется дата участника. Не зависит от остальных настроек Sheets
func SheetsTimeZone() string {
	tz := os.Getenv(sheetTZEnvName)
	if len(tz) == 0 {
		return defaultSheetTZ
	}
	return tz
}

func (cfg *sheetsConfig) SheetID() string {
	return cfg.sheetID
}

func (cfg *sheetsConfig) Range() string {
	return cfg.sheetRange
}

func (cfg *sheetsConfig) CredentialsJSON() []byte {
	return cfg.credentials
}

func (cfg *sheetsConfig) TimeZone() string {
	return cfg.timeZone
}
