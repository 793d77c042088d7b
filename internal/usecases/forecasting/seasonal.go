package forecasting

import (
	"fmt"
	"math"

	"github.com/vfg2006/taskboard-api/internal/domain"
)

// SuggestionKey monta a chave "{mês}_{produto}" usada pelo frontend para
// posicionar a sugestão na tabela de estatísticas
func SuggestionKey(month int, product domain.ProductCategory) string {
	return fmt.Sprintf("%d_%s", month, product)
}

// ComputeSeasonalSuggestions calcula, para cada produto de forma
// independente, sugestões de quantidade para os meses ainda não preenchidos
// do ano visualizado.
//
// O fator de crescimento é a média das razões ano-sobre-ano dos meses
// qualificados: meses em que tanto o ano visualizado quanto o anterior têm
// valor positivo registrado. Sem meses qualificados não há sugestão para o
// produto. A sugestão para um mês vazio é o valor do ano anterior ajustado
// pelo fator médio, emitida apenas quando o ano anterior tem valor positivo
// naquele mês; um mês já preenchido com valor positivo nunca é sobrescrito.
func ComputeSeasonalSuggestions(stats []*domain.SalesStat, viewedYear int) map[string]int {
	aggregate := Aggregate(stats)
	suggestions := make(map[string]int)

	for _, product := range domain.AllProducts() {
		var ratioSum float64
		var qualifying int

		for month := 1; month <= 12; month++ {
			current := aggregate.EffectiveMonthTotal(viewedYear, month, product)
			previous := aggregate.EffectiveMonthTotal(viewedYear-1, month, product)

			if current != nil && previous != nil && *current > 0 && *previous > 0 {
				ratioSum += float64(*current)/float64(*previous) - 1
				qualifying++
			}
		}

		if qualifying == 0 {
			continue
		}

		averageRatio := ratioSum / float64(qualifying)

		for month := 1; month <= 12; month++ {
			current := aggregate.EffectiveMonthTotal(viewedYear, month, product)
			if current != nil && *current > 0 {
				// Mês já preenchido: não sobrescrever
				continue
			}

			previous := aggregate.EffectiveMonthTotal(viewedYear-1, month, product)
			if previous == nil || *previous <= 0 {
				continue
			}

			suggested := int(math.Round(float64(*previous) * (1 + averageRatio)))
			suggestions[SuggestionKey(month, product)] = suggested
		}
	}

	return suggestions
}
