package forecasting

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/taskboard-api/internal/domain"
	"github.com/vfg2006/taskboard-api/pkg/utils"
)

// TrendInsufficientData é a narrativa exibida quando há menos de dois anos
// com vendas registradas
const TrendInsufficientData = "Dados insuficientes para predição."

type yearlyTotal struct {
	Year  int
	Total int
}

// YearlyTotals calcula o total anual de vendas usando os totais efetivos de
// cada mês (soma diária quando houver, senão o lançamento mensal), evitando
// a dupla contagem de meses com as duas granularidades registradas. Somente
// anos com total positivo entram no resultado.
func YearlyTotals(aggregate *SalesAggregate) []yearlyTotal {
	years := make(map[int]struct{})
	for year := range aggregate.DailyTotals {
		years[year] = struct{}{}
	}
	for year := range aggregate.MonthData {
		years[year] = struct{}{}
	}

	totals := make([]yearlyTotal, 0, len(years))
	for year := range years {
		total := yearTotal(aggregate, year)
		if total > 0 {
			totals = append(totals, yearlyTotal{Year: year, Total: total})
		}
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Year < totals[j].Year
	})

	return totals
}

func yearTotal(aggregate *SalesAggregate, year int) int {
	total := 0
	for month := 1; month <= 12; month++ {
		for _, product := range domain.AllProducts() {
			if value := aggregate.EffectiveMonthTotal(year, month, product); value != nil {
				total += *value
			}
		}
	}
	return total
}

// ComputeSummary monta o resumo do painel de estatísticas: total geral,
// total do ano visualizado e a projeção de tendência linear sobre os totais
// anuais. A função é total: qualquer entrada (inclusive vazia) produz um
// resumo definido, nunca um erro.
func ComputeSummary(stats []*domain.SalesStat, viewedYear int) *domain.SalesSummary {
	aggregate := Aggregate(stats)
	totals := YearlyTotals(aggregate)

	summary := &domain.SalesSummary{
		TotalForYear: yearTotal(aggregate, viewedYear),
		Trend:        TrendInsufficientData,
	}

	for _, yearly := range totals {
		summary.TotalAllTime += yearly.Total
	}

	if len(totals) < 2 {
		return summary
	}

	// Regressão linear simples (mínimos quadrados) sobre os pontos
	// (ano, total anual)
	n := float64(len(totals))
	var sumX, sumY, sumXY, sumX2 float64
	for _, point := range totals {
		x := float64(point.Year)
		y := float64(point.Total)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denominator := n*sumX2 - sumX*sumX
	slope := 0.0
	if denominator != 0 {
		slope = (n*sumXY - sumX*sumY) / denominator
	}
	intercept := (sumY / n) - slope*(sumX/n)

	lastYear := totals[len(totals)-1]
	nextYear := lastYear.Year + 1
	prediction := int(math.Round(math.Max(0, slope*float64(nextYear)+intercept)))

	percentChange := 0.0
	if lastYear.Total > 0 {
		percentChange = (float64(prediction-lastYear.Total) / float64(lastYear.Total)) * 100
	}
	percentChange = utils.RoundWithTwoDecimalPlace(percentChange)

	direction := domain.TrendIncrease
	directionWord := "aumento"
	if percentChange < 0 {
		direction = domain.TrendDecrease
		directionWord = "queda"
	}

	summary.TrendForecast = &domain.TrendForecast{
		NextYear:      nextYear,
		Prediction:    prediction,
		PercentChange: percentChange,
		Direction:     direction,
	}
	summary.Trend = fmt.Sprintf(
		"Previsão de %s de %.2f%%. Projeção para %d: ~%d unidades.",
		directionWord,
		math.Abs(percentChange),
		nextYear,
		prediction,
	)

	return summary
}
