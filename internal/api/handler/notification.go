package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/internal/domain"
	"github.com/vfg2006/taskboard-api/internal/usecases/notifying"
	"github.com/vfg2006/taskboard-api/pkg/apiErrors"
	"github.com/vfg2006/taskboard-api/pkg/middleware"
)

type DeviceTokenRequest struct {
	Token string `json:"token"`
}

// RegisterDeviceToken vincula um token de push ao usuário logado
func RegisterDeviceToken(service notifying.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterDeviceToken")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req DeviceTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.RegisterToken(userClaims.UserID, req.Token); err != nil {
			handleTokenError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// UnregisterDeviceToken remove o vínculo entre o usuário logado e o token
func UnregisterDeviceToken(service notifying.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UnregisterDeviceToken")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req DeviceTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.UnregisterToken(userClaims.UserID, req.Token); err != nil {
			handleTokenError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleTokenError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	if errors.Is(err, notifying.ErrEmptyToken) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar token de dispositivo", nil)
}
