package fcmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/internal/domain"
	"github.com/vfg2006/taskboard-api/pkg/utils"
)

// sendRequest é o payload da API legada de envio do FCM
type sendRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    notification      `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SendResponse resume o resultado reportado pelo FCM
type SendResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

func (c *FCMClient) Send(ctx context.Context, tokens []string, message *domain.PushMessage) (*SendResponse, error) {
	if len(tokens) == 0 {
		return &SendResponse{}, nil
	}

	payload := sendRequest{
		RegistrationIDs: tokens,
		Notification: notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: message.Data,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a mensagem push")
	}

	logrus.WithField("tokens", len(tokens)).Debug("fcm: enviando push\n" + utils.PrettyJson(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.FCM.URL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "key="+c.config.FCM.ServerKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao FCM falhou com status: %s", resp.Status)
	}

	var response SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do FCM")
	}

	return &response, nil
}
