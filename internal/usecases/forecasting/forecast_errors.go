package forecasting

import "github.com/pkg/errors"

var (
	ErrInvalidPeriod      = errors.New("período inválido: o mês deve estar entre 1 e 12")
	ErrUnknownProduct     = errors.New("produto desconhecido")
	ErrInvalidGranularity = errors.New("granularidade inválida: semana sem dia não é permitida")
)
