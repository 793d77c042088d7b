package forecasting

import (
	"time"

	"github.com/vfg2006/taskboard-api/internal/domain"
)

// StatEntry é o valor indexado de uma observação individual
type StatEntry struct {
	Quantity *int `json:"quantity"`
	ID       int  `json:"id"`
}

// SalesAggregate é o índice aninhado reconstruído integralmente a cada
// leitura (os volumes são pequenos: estatísticas mensais de uma única
// organização, indexação incremental não compensa).
type SalesAggregate struct {
	// DailyTotals soma apenas as observações de granularidade diária:
	// ano -> mês -> produto -> quantidade acumulada
	DailyTotals map[int]map[int]map[domain.ProductCategory]int `json:"daily_totals"`

	// ByDate agrupa as observações diárias individuais:
	// ano -> mês -> semana -> dia (AAAA-MM-DD) -> produto
	ByDate map[int]map[int]map[int]map[string]map[domain.ProductCategory]StatEntry `json:"by_date"`

	// MonthData guarda os lançamentos de nível mensal:
	// ano -> mês -> produto
	MonthData map[int]map[int]map[domain.ProductCategory]StatEntry `json:"month_data"`
}

// Aggregate reconstrói o índice aninhado a partir da coleção plana de
// observações. Entrada nula ou vazia produz um índice vazio utilizável.
func Aggregate(stats []*domain.SalesStat) *SalesAggregate {
	aggregate := &SalesAggregate{
		DailyTotals: make(map[int]map[int]map[domain.ProductCategory]int),
		ByDate:      make(map[int]map[int]map[int]map[string]map[domain.ProductCategory]StatEntry),
		MonthData:   make(map[int]map[int]map[domain.ProductCategory]StatEntry),
	}

	for _, stat := range stats {
		if !stat.Product.IsValid() {
			continue
		}

		entry := StatEntry{Quantity: stat.Quantity, ID: stat.ID}

		switch {
		case stat.IsDaily():
			week := 0
			if stat.Week != nil {
				week = *stat.Week
			}
			dayKey := stat.Day.Format(time.DateOnly)

			if aggregate.ByDate[stat.Year] == nil {
				aggregate.ByDate[stat.Year] = make(map[int]map[int]map[string]map[domain.ProductCategory]StatEntry)
			}
			if aggregate.ByDate[stat.Year][stat.Month] == nil {
				aggregate.ByDate[stat.Year][stat.Month] = make(map[int]map[string]map[domain.ProductCategory]StatEntry)
			}
			if aggregate.ByDate[stat.Year][stat.Month][week] == nil {
				aggregate.ByDate[stat.Year][stat.Month][week] = make(map[string]map[domain.ProductCategory]StatEntry)
			}
			if aggregate.ByDate[stat.Year][stat.Month][week][dayKey] == nil {
				aggregate.ByDate[stat.Year][stat.Month][week][dayKey] = make(map[domain.ProductCategory]StatEntry)
			}
			aggregate.ByDate[stat.Year][stat.Month][week][dayKey][stat.Product] = entry

			if aggregate.DailyTotals[stat.Year] == nil {
				aggregate.DailyTotals[stat.Year] = make(map[int]map[domain.ProductCategory]int)
			}
			if aggregate.DailyTotals[stat.Year][stat.Month] == nil {
				aggregate.DailyTotals[stat.Year][stat.Month] = make(map[domain.ProductCategory]int)
			}
			if stat.Quantity != nil {
				aggregate.DailyTotals[stat.Year][stat.Month][stat.Product] += *stat.Quantity
			}

		case stat.IsMonthly():
			if aggregate.MonthData[stat.Year] == nil {
				aggregate.MonthData[stat.Year] = make(map[int]map[domain.ProductCategory]StatEntry)
			}
			if aggregate.MonthData[stat.Year][stat.Month] == nil {
				aggregate.MonthData[stat.Year][stat.Month] = make(map[domain.ProductCategory]StatEntry)
			}
			aggregate.MonthData[stat.Year][stat.Month][stat.Product] = entry
		}
	}

	return aggregate
}

// HasDailyEntries informa se existe ao menos um lançamento diário para o
// mês, independentemente do produto
func (a *SalesAggregate) HasDailyEntries(year, month int) bool {
	return a.DailyTotals[year] != nil && a.DailyTotals[year][month] != nil
}

// EffectiveMonthTotal devolve o total efetivo do mês para um produto: a soma
// dos lançamentos diários quando o mês tem granularidade diária registrada;
// caso contrário o lançamento mensal, se houver. Retorna nil quando não há
// valor registrado em nenhuma granularidade.
func (a *SalesAggregate) EffectiveMonthTotal(year, month int, product domain.ProductCategory) *int {
	if a.HasDailyEntries(year, month) {
		total := a.DailyTotals[year][month][product]
		return &total
	}

	if byMonth, ok := a.MonthData[year]; ok {
		if entries, ok := byMonth[month]; ok {
			if entry, ok := entries[product]; ok && entry.Quantity != nil {
				quantity := *entry.Quantity
				return &quantity
			}
		}
	}

	return nil
}
