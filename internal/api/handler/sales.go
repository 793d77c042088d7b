package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/internal/domain"
	"github.com/vfg2006/taskboard-api/internal/usecases/forecasting"
	"github.com/vfg2006/taskboard-api/pkg/apiErrors"
)

// UpsertStatPayload é o corpo aceito pelo endpoint de gravação de vendas.
// O dia chega como AAAA-MM-DD; quantidade nula significa "não informado".
type UpsertStatPayload struct {
	Year     int                    `json:"year"`
	Month    int                    `json:"month"`
	Week     *int                   `json:"week"`
	Day      *string                `json:"day"`
	Product  domain.ProductCategory `json:"product"`
	Quantity *int                   `json:"quantity"`
}

// ListSalesStats lista todas as observações de vendas registradas
func ListSalesStats(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.ListStats()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar estatísticas de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpsertSalesStat grava uma observação de venda. Reenvios da mesma chave
// atualizam a quantidade existente em vez de criar novo registro.
func UpsertSalesStat(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertSalesStat")

		var payload UpsertStatPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		req := &domain.UpsertStatRequest{
			Year:     payload.Year,
			Month:    payload.Month,
			Week:     payload.Week,
			Product:  payload.Product,
			Quantity: payload.Quantity,
		}

		if payload.Day != nil && *payload.Day != "" {
			day, err := time.Parse(time.DateOnly, *payload.Day)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dia inválido, use o formato AAAA-MM-DD", nil)
				return
			}
			req.Day = &day
		}

		stat, err := service.UpsertStat(req)
		if err != nil {
			handleSalesError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stat); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetSalesSummary devolve totais e a projeção linear do ano visualizado
func GetSalesSummary(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewedYear, ok := viewedYearFromRequest(w, r)
		if !ok {
			return
		}

		summary := service.GetSummary(viewedYear)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetSalesSuggestions devolve as projeções sazonais para os meses ainda não
// preenchidos do ano visualizado
func GetSalesSuggestions(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewedYear, ok := viewedYearFromRequest(w, r)
		if !ok {
			return
		}

		suggestions := service.GetSuggestions(viewedYear)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestions); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// viewedYearFromRequest lê o parâmetro de query year, usando o ano corrente
// como padrão
func viewedYearFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return time.Now().Year(), true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
		return 0, false
	}

	return year, true
}

// handleSalesError mapeia os erros do caso de uso de previsão para a resposta HTTP
func handleSalesError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	switch {
	case errors.Is(err, forecasting.ErrInvalidPeriod),
		errors.Is(err, forecasting.ErrInvalidGranularity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, forecasting.ErrUnknownProduct):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar estatística de vendas", nil)
	}
}
