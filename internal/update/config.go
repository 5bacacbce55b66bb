package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DesktopNotifications bool
	DBPath               string
	TickerBuffer         int
	AlarmAutoStopSeconds int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		DBPath:               "",
		TickerBuffer:         64,
		AlarmAutoStopSeconds: 60,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("DAYTICK_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v := strings.TrimSpace(os.Getenv("DAYTICK_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v, ok := getEnvInt("DAYTICK_TICKER_BUFFER"); ok && v > 0 {
		cfg.TickerBuffer = v
	}
	if v, ok := getEnvInt("DAYTICK_ALARM_AUTO_STOP_SECONDS"); ok && v > 0 {
		cfg.AlarmAutoStopSeconds = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
