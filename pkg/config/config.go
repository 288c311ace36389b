package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Data      DataConfig
	RateLimit RateLimitConfig
	Refresher RefresherConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataConfig rutas de los archivos de datos. Las dos fuentes base son de
// solo lectura; cada colección custom es dueña de su propio archivo.
type DataConfig struct {
	Dir       string // directorio base de datos JSON
	StaticDir string // assets del SPA; vacío = no servir estáticos
}

// CountriesPath ruta de countries.json.
func (c DataConfig) CountriesPath() string { return filepath.Join(c.Dir, "countries.json") }

// CompliancePath ruta de compliance-data.json.
func (c DataConfig) CompliancePath() string { return filepath.Join(c.Dir, "compliance-data.json") }

// CustomLinksPath ruta de la colección de enlaces custom.
func (c DataConfig) CustomLinksPath() string { return filepath.Join(c.Dir, "custom-links.json") }

// CustomFormatsPath ruta de la colección de formatos custom.
func (c DataConfig) CustomFormatsPath() string { return filepath.Join(c.Dir, "custom-formats.json") }

// CustomLegislationPath ruta de la colección de legislación custom.
func (c DataConfig) CustomLegislationPath() string {
	return filepath.Join(c.Dir, "custom-legislation.json")
}

// RateLimitConfig límite de peticiones por IP sobre /api.
type RateLimitConfig struct {
	Max           int // peticiones por ventana
	WindowSeconds int
}

// RefresherConfig configuración del helper local de refresco de datos.
type RefresherConfig struct {
	BasePort     int    // primer puerto candidato
	PortAttempts int    // intentos del escaneo secuencial
	ProgressFile string // archivo de estado del refresco
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATA_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "compliance-atlas"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Data: DataConfig{
			Dir:       getString(v, "DATA_DIR", "./data"),
			StaticDir: getString(v, "STATIC_DIR", ""),
		},
		RateLimit: RateLimitConfig{
			Max:           getInt(v, "RATE_LIMIT_MAX", 120),
			WindowSeconds: getInt(v, "RATE_LIMIT_WINDOW_SECONDS", 60),
		},
		Refresher: RefresherConfig{
			BasePort:     getInt(v, "REFRESHER_BASE_PORT", 3080),
			PortAttempts: getInt(v, "REFRESHER_PORT_ATTEMPTS", 20),
			ProgressFile: getString(v, "REFRESHER_PROGRESS_FILE", "./data/refresh-progress.json"),
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

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
