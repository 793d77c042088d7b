package forecasting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/taskboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/taskboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestForecaster(t *testing.T) (*Service, *mocks.MockSalesStatRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	statRepo := mocks.NewMockSalesStatRepository(ctrl)
	return &Service{statRepo: statRepo}, statRepo
}

func TestUpsertStat_InsertsNewObservation(t *testing.T) {
	service, statRepo := newTestForecaster(t)

	req := &domain.UpsertStatRequest{
		Year:     2024,
		Month:    5,
		Product:  domain.ProductPL,
		Quantity: intPtr(40),
	}

	statRepo.EXPECT().
		GetByKey(2024, 5, nil, nil, domain.ProductPL).
		Return(nil, nil)

	statRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(stat *domain.SalesStat) (*domain.SalesStat, error) {
			stat.ID = 1
			return stat, nil
		})

	stat, err := service.UpsertStat(req)

	require.NoError(t, err)
	assert.Equal(t, 1, stat.ID)
	assert.Equal(t, 40, *stat.Quantity)
}

// Reenviar a mesma chave atualiza a observação existente: nunca cria
// registro duplicado
func TestUpsertStat_UpdatesExistingObservation(t *testing.T) {
	service, statRepo := newTestForecaster(t)

	req := &domain.UpsertStatRequest{
		Year:     2024,
		Month:    5,
		Product:  domain.ProductPL,
		Quantity: intPtr(55),
	}

	statRepo.EXPECT().
		GetByKey(2024, 5, nil, nil, domain.ProductPL).
		Return(&domain.SalesStat{
			ID:       9,
			Year:     2024,
			Month:    5,
			Product:  domain.ProductPL,
			Quantity: intPtr(40),
		}, nil)

	statRepo.EXPECT().
		UpdateQuantity(9, req.Quantity).
		Return(nil)

	stat, err := service.UpsertStat(req)

	require.NoError(t, err)
	assert.Equal(t, 9, stat.ID)
	assert.Equal(t, 55, *stat.Quantity)
}

// Lançamento diário deriva a semana ISO do dia informado
func TestUpsertStat_DerivesWeekFromDay(t *testing.T) {
	service, statRepo := newTestForecaster(t)

	day := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
	_, expectedWeek := day.ISOWeek()

	req := &domain.UpsertStatRequest{
		Year:     2024,
		Month:    5,
		Day:      &day,
		Product:  domain.ProductPL,
		Quantity: intPtr(10),
	}

	statRepo.EXPECT().
		GetByKey(2024, 5, gomock.Any(), &day, domain.ProductPL).
		Return(nil, nil)

	statRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(stat *domain.SalesStat) (*domain.SalesStat, error) {
			require.NotNil(t, stat.Week)
			assert.Equal(t, expectedWeek, *stat.Week)
			stat.ID = 1
			return stat, nil
		})

	_, err := service.UpsertStat(req)

	require.NoError(t, err)
}

func TestUpsertStat_RejectsInvalidMonth(t *testing.T) {
	service, _ := newTestForecaster(t)

	_, err := service.UpsertStat(&domain.UpsertStatRequest{
		Year:    2024,
		Month:   13,
		Product: domain.ProductPL,
	})

	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestUpsertStat_RejectsUnknownProduct(t *testing.T) {
	service, _ := newTestForecaster(t)

	_, err := service.UpsertStat(&domain.UpsertStatRequest{
		Year:    2024,
		Month:   5,
		Product: "3 EURO",
	})

	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestUpsertStat_RejectsWeekWithoutDay(t *testing.T) {
	service, _ := newTestForecaster(t)

	_, err := service.UpsertStat(&domain.UpsertStatRequest{
		Year:    2024,
		Month:   5,
		Week:    intPtr(18),
		Product: domain.ProductPL,
	})

	assert.ErrorIs(t, err, ErrInvalidGranularity)
}

// Falha de leitura degrada para conjunto vazio: o painel sempre recebe um
// resumo definido, nunca um erro
func TestGetSummary_DegradesOnFetchFailure(t *testing.T) {
	service, statRepo := newTestForecaster(t)

	statRepo.EXPECT().
		ListAll().
		Return(nil, errors.New("conexão perdida"))

	summary := service.GetSummary(2024)

	require.NotNil(t, summary)
	assert.Equal(t, 0, summary.TotalAllTime)
	assert.Equal(t, TrendInsufficientData, summary.Trend)
}

func TestGetSuggestions_DegradesOnFetchFailure(t *testing.T) {
	service, statRepo := newTestForecaster(t)

	statRepo.EXPECT().
		ListAll().
		Return(nil, errors.New("conexão perdida"))

	suggestions := service.GetSuggestions(2024)

	assert.Empty(t, suggestions)
}
