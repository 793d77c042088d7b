package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/taskboard-api/infrastructure/integrator/fcm"
	"github.com/vfg2006/taskboard-api/infrastructure/integrator/fcm/fcmclient"
	"github.com/vfg2006/taskboard-api/infrastructure/repository"
	"github.com/vfg2006/taskboard-api/internal/api"
	"github.com/vfg2006/taskboard-api/internal/config"
	"github.com/vfg2006/taskboard-api/internal/scheduler"
	"github.com/vfg2006/taskboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/taskboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/taskboard-api/internal/usecases/notifying"
	"github.com/vfg2006/taskboard-api/internal/usecases/tasking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	templateRepo := repository.NewRecurringTemplateRepository(pgConn)
	salesStatRepo := repository.NewSalesStatRepository(pgConn)
	deviceTokenRepo := repository.NewDeviceTokenRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	fcmClient := fcmclient.NewClient(cfg)
	fcmIntegrator := fcm.New(cfg, fcmClient)

	notificationService := notifying.NewService(deviceTokenRepo, fcmIntegrator)
	taskService := tasking.NewService(taskRepo, templateRepo, notificationService, cfg)
	forecastService := forecasting.NewService(salesStatRepo)

	// Inicializa o agendador de lembretes de prazo
	deadlineReminderService := scheduler.NewDeadlineReminderService(
		taskRepo,
		notificationService,
		cfg,
	)

	// Inicia o agendador em background
	if err := deadlineReminderService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de lembretes de prazo")
	} else {
		logrus.Info("Agendador de lembretes de prazo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		taskService,
		forecastService,
		notificationService,
		authenticator,
		deadlineReminderService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
