package domain

import "time"

// DeviceToken vincula um token de push (FCM) a um usuário. Um usuário pode
// ter vários dispositivos registrados.
type DeviceToken struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// PushMessage é a notificação enviada ao serviço de mensageria
type PushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
