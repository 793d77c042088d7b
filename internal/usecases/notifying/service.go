package notifying

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/infrastructure/integrator/fcm"
	"github.com/vfg2006/taskboard-api/infrastructure/repository"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

type NotificationService interface {
	RegisterToken(userID int, token string) error
	UnregisterToken(userID int, token string) error
	NotifyUsers(ctx context.Context, userIDs []int, message *domain.PushMessage) error
}

type Service struct {
	tokenRepo repository.DeviceTokenRepository
	fcm       fcm.FCMIntegrator
}

func NewService(
	tokenRepo repository.DeviceTokenRepository,
	fcmIntegrator fcm.FCMIntegrator,
) NotificationService {
	return &Service{
		tokenRepo: tokenRepo,
		fcm:       fcmIntegrator,
	}
}

func (s *Service) RegisterToken(userID int, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	return s.tokenRepo.Register(userID, token)
}

func (s *Service) UnregisterToken(userID int, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	return s.tokenRepo.Unregister(userID, token)
}

// NotifyUsers resolve os tokens dos usuários e dispara o push. Usuário sem
// token registrado é simplesmente ignorado; falha no envio é registrada em
// log e não interrompe o fluxo que originou a notificação.
func (s *Service) NotifyUsers(ctx context.Context, userIDs []int, message *domain.PushMessage) error {
	if len(userIDs) == 0 {
		return nil
	}

	deviceTokens, err := s.tokenRepo.ListByUserIDs(userIDs)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tokens de dispositivo")
		return err
	}

	if len(deviceTokens) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(deviceTokens))
	for _, dt := range deviceTokens {
		tokens = append(tokens, dt.Token)
	}

	resp, err := s.fcm.SendPush(ctx, tokens, message)
	if err != nil {
		logrus.WithError(err).Error("Erro ao enviar notificação push")
		return err
	}

	if resp.Failure > 0 {
		logrus.WithFields(logrus.Fields{
			"success": resp.Success,
			"failure": resp.Failure,
		}).Warn("Envio de push concluído com falhas parciais")
	}

	return nil
}
