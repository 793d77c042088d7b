package fcmclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/taskboard-api/internal/config"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

type Client interface {
	Send(ctx context.Context, tokens []string, message *domain.PushMessage) (*SendResponse, error)
}

type FCMClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.FCM.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &FCMClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
