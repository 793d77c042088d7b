package notifying

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/taskboard-api/infrastructure/integrator/fcm/fcmclient"
	fcmmocks "github.com/vfg2006/taskboard-api/infrastructure/integrator/fcm/mocks"
	"github.com/vfg2006/taskboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/taskboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestNotifier(t *testing.T) (*Service, *mocks.MockDeviceTokenRepository, *fcmmocks.MockFCMIntegrator) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tokenRepo := mocks.NewMockDeviceTokenRepository(ctrl)
	fcmIntegrator := fcmmocks.NewMockFCMIntegrator(ctrl)

	return &Service{tokenRepo: tokenRepo, fcm: fcmIntegrator}, tokenRepo, fcmIntegrator
}

func TestNotifyUsers(t *testing.T) {
	service, tokenRepo, fcmIntegrator := newTestNotifier(t)

	message := &domain.PushMessage{Title: "Nova tarefa atribuída"}

	tokenRepo.EXPECT().
		ListByUserIDs([]int{1, 2}).
		Return([]*domain.DeviceToken{
			{UserID: 1, Token: "token-a"},
			{UserID: 2, Token: "token-b"},
		}, nil)

	fcmIntegrator.EXPECT().
		SendPush(gomock.Any(), []string{"token-a", "token-b"}, message).
		Return(&fcmclient.SendResponse{Success: 2}, nil)

	err := service.NotifyUsers(context.Background(), []int{1, 2}, message)

	require.NoError(t, err)
}

// Usuários sem token registrado não geram chamada ao FCM
func TestNotifyUsers_NoTokens(t *testing.T) {
	service, tokenRepo, _ := newTestNotifier(t)

	tokenRepo.EXPECT().
		ListByUserIDs([]int{5}).
		Return(nil, nil)

	err := service.NotifyUsers(context.Background(), []int{5}, &domain.PushMessage{})

	require.NoError(t, err)
}

func TestNotifyUsers_EmptyUserList(t *testing.T) {
	service, _, _ := newTestNotifier(t)

	err := service.NotifyUsers(context.Background(), nil, &domain.PushMessage{})

	require.NoError(t, err)
}

func TestNotifyUsers_SendFailure(t *testing.T) {
	service, tokenRepo, fcmIntegrator := newTestNotifier(t)

	tokenRepo.EXPECT().
		ListByUserIDs([]int{1}).
		Return([]*domain.DeviceToken{{UserID: 1, Token: "token-a"}}, nil)

	fcmIntegrator.EXPECT().
		SendPush(gomock.Any(), []string{"token-a"}, gomock.Any()).
		Return(nil, errors.New("serviço indisponível"))

	err := service.NotifyUsers(context.Background(), []int{1}, &domain.PushMessage{})

	assert.Error(t, err)
}

func TestRegisterToken_RejectsEmptyToken(t *testing.T) {
	service, _, _ := newTestNotifier(t)

	err := service.RegisterToken(1, "")

	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestRegisterToken(t *testing.T) {
	service, tokenRepo, _ := newTestNotifier(t)

	tokenRepo.EXPECT().
		Register(1, "token-a").
		Return(nil)

	require.NoError(t, service.RegisterToken(1, "token-a"))
}

func TestUnregisterToken(t *testing.T) {
	service, tokenRepo, _ := newTestNotifier(t)

	tokenRepo.EXPECT().
		Unregister(1, "token-a").
		Return(nil)

	require.NoError(t, service.UnregisterToken(1, "token-a"))
}
