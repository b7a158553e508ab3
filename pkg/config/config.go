package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	JWT       JWTConfig
	Bootstrap BootstrapConfig
	Upload    UploadConfig
	Catalog   CatalogConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string // trace, debug, info, warn, error
	SwaggerFile string
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// BootstrapConfig cuenta de administrador que siempre existe al arrancar,
// más un archivo opcional de usuarios semilla (ver cmd/import_users).
type BootstrapConfig struct {
	AdminUsername string
	AdminPassword string
	AdminFullName string
	SeedUsersPath string
}

// UploadConfig política de archivos adjuntos (documentos de venta y fotos de perfil).
type UploadConfig struct {
	MaxFileSizeMB int
	AllowedTypes  []string // prefijos MIME aceptados, ej. "image/", "application/pdf"
}

// MaxFileSizeBytes devuelve el límite por archivo en bytes.
func (c UploadConfig) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// CatalogConfig permite reemplazar el catálogo embebido por un YAML externo.
type CatalogConfig struct {
	Path string // vacío = catálogo embebido
}

// RedisConfig almacén de banderas de notificación. Addr vacío = memoria local.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SchedulerConfig expresiones cron (con segundos) de los jobs.
type SchedulerConfig struct {
	DailySummaryCron string
	Timezone         string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "portal-ventas-siac"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "portal-ventas-siac"),
		},
		Bootstrap: BootstrapConfig{
			AdminUsername: getString(v, "BOOTSTRAP_ADMIN_USERNAME", "admin"),
			AdminPassword: getString(v, "BOOTSTRAP_ADMIN_PASSWORD", "admin"),
			AdminFullName: getString(v, "BOOTSTRAP_ADMIN_FULL_NAME", "Administrador General"),
			SeedUsersPath: getString(v, "SEED_USERS_PATH", ""),
		},
		Upload: UploadConfig{
			MaxFileSizeMB: getInt(v, "UPLOAD_MAX_FILE_SIZE_MB", 10),
			AllowedTypes:  getList(v, "UPLOAD_ALLOWED_TYPES", []string{"image/", "application/pdf"}),
		},
		Catalog: CatalogConfig{
			Path: getString(v, "CATALOG_PATH", ""),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Scheduler: SchedulerConfig{
			DailySummaryCron: getString(v, "SCHEDULER_DAILY_SUMMARY_CRON", "0 0 20 * * *"),
			Timezone:         getString(v, "SCHEDULER_TIMEZONE", "America/Mexico_City"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if strings.TrimSpace(cfg.Bootstrap.AdminUsername) == "" || cfg.Bootstrap.AdminPassword == "" {
		return nil, fmt.Errorf("config: credenciales del administrador inicial vacías")
	}
	if cfg.Upload.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("config: UPLOAD_MAX_FILE_SIZE_MB debe ser positivo")
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getList acepta listas separadas por coma desde env ("image/,application/pdf").
func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return def
	}
	var out []string
	for _, p := range strings.Split(v.GetString(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
