package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func monthStat(year, month int, product domain.ProductCategory, quantity int) *domain.SalesStat {
	return &domain.SalesStat{
		Year:     year,
		Month:    month,
		Product:  product,
		Quantity: intPtr(quantity),
	}
}

func dayStat(year int, month time.Month, day int, product domain.ProductCategory, quantity int) *domain.SalesStat {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	_, week := date.ISOWeek()
	return &domain.SalesStat{
		Year:     year,
		Month:    int(month),
		Week:     &week,
		Day:      &date,
		Product:  product,
		Quantity: intPtr(quantity),
	}
}

func TestComputeSummary_TwoYearIncrease(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2022, 6, domain.ProductPL, 100),
		monthStat(2023, 6, domain.ProductPL, 150),
	}

	summary := ComputeSummary(stats, 2023)

	assert.Equal(t, 250, summary.TotalAllTime)
	assert.Equal(t, 150, summary.TotalForYear)

	require.NotNil(t, summary.TrendForecast)
	assert.Equal(t, 2024, summary.TrendForecast.NextYear)
	assert.Equal(t, 200, summary.TrendForecast.Prediction)
	assert.Equal(t, 33.33, summary.TrendForecast.PercentChange)
	assert.Equal(t, domain.TrendIncrease, summary.TrendForecast.Direction)
	assert.Equal(t, "Previsão de aumento de 33.33%. Projeção para 2024: ~200 unidades.", summary.Trend)
}

func TestComputeSummary_Decrease(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2022, 6, domain.ProductPL, 200),
		monthStat(2023, 6, domain.ProductPL, 100),
	}

	summary := ComputeSummary(stats, 2023)

	require.NotNil(t, summary.TrendForecast)
	assert.Equal(t, 0, summary.TrendForecast.Prediction)
	assert.Equal(t, -100.0, summary.TrendForecast.PercentChange)
	assert.Equal(t, domain.TrendDecrease, summary.TrendForecast.Direction)
	assert.Contains(t, summary.Trend, "queda")
}

// A projeção nunca é negativa, mesmo com tendência de queda acentuada
func TestComputeSummary_PredictionClampedAtZero(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2021, 6, domain.ProductPL, 500),
		monthStat(2022, 6, domain.ProductPL, 250),
		monthStat(2023, 6, domain.ProductPL, 10),
	}

	summary := ComputeSummary(stats, 2023)

	require.NotNil(t, summary.TrendForecast)
	assert.GreaterOrEqual(t, summary.TrendForecast.Prediction, 0)
}

func TestComputeSummary_InsufficientData(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2023, 6, domain.ProductPL, 150),
	}

	summary := ComputeSummary(stats, 2023)

	assert.Equal(t, TrendInsufficientData, summary.Trend)
	assert.Nil(t, summary.TrendForecast)
	assert.Equal(t, 150, summary.TotalAllTime)
	assert.Equal(t, 150, summary.TotalForYear)
}

func TestComputeSummary_EmptyInput(t *testing.T) {
	summary := ComputeSummary(nil, 2024)

	assert.Equal(t, 0, summary.TotalAllTime)
	assert.Equal(t, 0, summary.TotalForYear)
	assert.Equal(t, TrendInsufficientData, summary.Trend)
	assert.Nil(t, summary.TrendForecast)
}

// Quando um mês tem lançamentos diários, a soma diária substitui o
// lançamento mensal do mesmo produto, evitando dupla contagem
func TestEffectiveMonthTotal_DailyOverridesMonthly(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2024, 5, domain.ProductPL, 50),
		dayStat(2024, time.May, 3, domain.ProductPL, 30),
		dayStat(2024, time.May, 4, domain.ProductPL, 40),
	}

	aggregate := Aggregate(stats)

	total := aggregate.EffectiveMonthTotal(2024, 5, domain.ProductPL)
	require.NotNil(t, total)
	assert.Equal(t, 70, *total)

	summary := ComputeSummary(stats, 2024)
	assert.Equal(t, 70, summary.TotalForYear)
}

// Um mês com granularidade diária registrada usa a soma diária para TODOS os
// produtos: o produto sem lançamentos diários fica com total zero, ainda que
// tenha lançamento mensal
func TestEffectiveMonthTotal_DailyMonthZeroesOtherProducts(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2024, 5, domain.Product1Euro, 80),
		dayStat(2024, time.May, 3, domain.ProductPL, 30),
	}

	aggregate := Aggregate(stats)

	total := aggregate.EffectiveMonthTotal(2024, 5, domain.Product1Euro)
	require.NotNil(t, total)
	assert.Equal(t, 0, *total)
}

func TestEffectiveMonthTotal_NoData(t *testing.T) {
	aggregate := Aggregate(nil)

	assert.Nil(t, aggregate.EffectiveMonthTotal(2024, 5, domain.ProductPL))
}

func TestAggregate_SkipsUnknownProduct(t *testing.T) {
	stats := []*domain.SalesStat{
		{Year: 2024, Month: 5, Product: "INEXISTENTE", Quantity: intPtr(10)},
		monthStat(2024, 5, domain.ProductPL, 20),
	}

	aggregate := Aggregate(stats)

	total := aggregate.EffectiveMonthTotal(2024, 5, domain.ProductPL)
	require.NotNil(t, total)
	assert.Equal(t, 20, *total)
	assert.Nil(t, aggregate.EffectiveMonthTotal(2024, 5, "INEXISTENTE"))
}

// Quantidade nula significa "não informado" e não contribui para os totais
func TestYearlyTotals_IgnoresNilQuantity(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2023, 6, domain.ProductPL, 100),
		{Year: 2023, Month: 7, Product: domain.ProductPL},
	}

	aggregate := Aggregate(stats)
	totals := YearlyTotals(aggregate)

	require.Len(t, totals, 1)
	assert.Equal(t, 2023, totals[0].Year)
	assert.Equal(t, 100, totals[0].Total)
}
