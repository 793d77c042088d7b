package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	FCM              FCM              `mapstructure:",squash"`
	RecurringBatch   RecurringBatch   `mapstructure:",squash"`
	DeadlineReminder DeadlineReminder `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// FCM concentra as credenciais do serviço de mensageria push
type FCM struct {
	URL            string `mapstructure:"fcm_url"`
	ServerKey      string `mapstructure:"fcm_server_key"`
	TimeoutSeconds int    `mapstructure:"fcm_timeout_seconds"`
	Enabled        bool   `mapstructure:"fcm_enabled"`
}

// RecurringBatch controla a materialização de tarefas cíclicas
type RecurringBatch struct {
	MaxConcurrentCreates int `mapstructure:"recurring_batch_max_concurrent_creates"`
	MaxInstances         int `mapstructure:"recurring_batch_max_instances"`
}

// DeadlineReminder controla o agendador de lembretes de prazo
type DeadlineReminder struct {
	CronSchedule string `mapstructure:"deadline_reminder_cron"`
	Enabled      bool   `mapstructure:"deadline_reminder_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/taskboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("FCM_URL", "https://fcm.googleapis.com/fcm/send")
	viper.SetDefault("FCM_SERVER_KEY", "")
	viper.SetDefault("FCM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("FCM_ENABLED", false) // Habilitar envio real de push

	viper.SetDefault("RECURRING_BATCH_MAX_CONCURRENT_CREATES", 4)
	viper.SetDefault("RECURRING_BATCH_MAX_INSTANCES", 1000)

	viper.SetDefault("DEADLINE_REMINDER_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("DEADLINE_REMINDER_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
