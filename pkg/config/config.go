package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	Log        LogConfig
	Storage    StorageConfig
	Inventario InventarioConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de logging.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// StorageConfig configuración del almacén de blobs (BadgerDB).
// Si InMemory es true, los datos viven solo en memoria (pruebas, sesiones efímeras).
type StorageConfig struct {
	Path     string
	InMemory bool
}

// InventarioConfig interruptores del motor de facturación.
//
// StockStrict: en false (comportamiento heredado) una línea con existencia
// insuficiente se crea igualmente sin descontar inventario; en true la
// operación se rechaza. CascadeRestore: en false (heredado) eliminar una
// factura borra sus líneas sin devolver existencia; en true la devuelve.
type InventarioConfig struct {
	StockStrict    bool
	CascadeRestore bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env / config.env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, STORAGE_PATH, STOCK_STRICT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "cafeteria-admin"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Path:     getString(v, "STORAGE_PATH", "./data"),
			InMemory: getBool(v, "STORAGE_IN_MEMORY", false),
		},
		Inventario: InventarioConfig{
			StockStrict:    getBool(v, "STOCK_STRICT", false),
			CascadeRestore: getBool(v, "CASCADE_RESTORE", false),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case bool:
			return v.GetBool(key)
		case string:
			b, _ := strconv.ParseBool(v.GetString(key))
			return b
		default:
			return v.GetBool(key)
		}
	}
	return def
}
