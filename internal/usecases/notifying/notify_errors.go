package notifying

import "github.com/pkg/errors"

var ErrEmptyToken = errors.New("token de dispositivo vazio")
