package config

import (
	"os"

	"github.com/zalando/go-keyring"

	"triptrack/internal/model"
)

// keyringService namespaces triptrack entries in the system keyring.
const keyringService = "triptrack"

// Keyring entry names.
const (
	SecretGeminiKey  = "gemini_api_key"
	SecretWeatherKey = "weather_api_key"
	SecretSheetsKey  = "sheets_api_key"
)

// SetSecret stores a credential in the system keyring.
func SetSecret(name, value string) error {
	return keyring.Set(keyringService, name, value)
}

// DeleteSecret removes a credential from the system keyring.
// Deleting a missing entry is a no-op.
func DeleteSecret(name string) error {
	err := keyring.Delete(keyringService, name)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}

// getSecret reads a credential from the keyring, returning "" when the
// keyring is unavailable or the entry is missing. Keyring failures are
// never fatal: headless machines fall through to state settings.
func getSecret(name string) string {
	v, err := keyring.Get(keyringService, name)
	if err != nil {
		return ""
	}
	return v
}

// lookup resolves a credential: environment first, then the system
// keyring, then the value stored in the state settings.
func lookup(envVar, secretName, stateValue string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if v := getSecret(secretName); v != "" {
		return v
	}
	return stateValue
}

// GeminiKey resolves the Gemini API key.
func GeminiKey(settings model.Settings) string {
	return lookup("TRIPTRACK_GEMINI_KEY", SecretGeminiKey, settings.GeminiAPIKey)
}

// WeatherKey resolves the OpenWeather API key.
func WeatherKey(settings model.Settings) string {
	return lookup("TRIPTRACK_WEATHER_KEY", SecretWeatherKey, settings.WeatherAPIKey)
}

// SheetsKey resolves the spreadsheet API key.
func SheetsKey(settings model.Settings) string {
	return lookup("TRIPTRACK_SHEETS_KEY", SecretSheetsKey, settings.APIKey)
}
