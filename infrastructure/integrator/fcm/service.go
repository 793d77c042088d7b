package fcm

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/infrastructure/integrator/fcm/fcmclient"
	"github.com/vfg2006/taskboard-api/internal/config"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

type FCMIntegrator interface {
	SendPush(ctx context.Context, tokens []string, message *domain.PushMessage) (*fcmclient.SendResponse, error)
}

type FCMService struct {
	cfg    *config.Config
	Client fcmclient.Client
}

func New(cfg *config.Config, client fcmclient.Client) FCMIntegrator {
	return &FCMService{
		cfg:    cfg,
		Client: client,
	}
}

// SendPush envia a notificação para os tokens informados. Com o envio
// desabilitado por configuração, apenas registra a mensagem em log (modo
// usado em desenvolvimento, onde não há credenciais do FCM).
func (s *FCMService) SendPush(ctx context.Context, tokens []string, message *domain.PushMessage) (*fcmclient.SendResponse, error) {
	if !s.cfg.FCM.Enabled {
		logrus.WithFields(logrus.Fields{
			"tokens": len(tokens),
			"title":  message.Title,
		}).Debug("Envio de push desabilitado por configuração, mensagem descartada")
		return &fcmclient.SendResponse{}, nil
	}

	return s.Client.Send(ctx, tokens, message)
}
