package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

func TestComputeSeasonalSuggestions(t *testing.T) {
	stats := []*domain.SalesStat{
		// Ano anterior
		monthStat(2023, 1, domain.ProductPL, 100),
		monthStat(2023, 2, domain.ProductPL, 200),
		monthStat(2023, 3, domain.ProductPL, 100),
		// Ano visualizado: janeiro e fevereiro cresceram 10%
		monthStat(2024, 1, domain.ProductPL, 110),
		monthStat(2024, 2, domain.ProductPL, 220),
	}

	suggestions := ComputeSeasonalSuggestions(stats, 2024)

	// Março vazio recebe o valor do ano anterior ajustado pelo fator médio
	assert.Equal(t, 110, suggestions[SuggestionKey(3, domain.ProductPL)])

	// Meses já preenchidos nunca são sobrescritos
	assert.NotContains(t, suggestions, SuggestionKey(1, domain.ProductPL))
	assert.NotContains(t, suggestions, SuggestionKey(2, domain.ProductPL))

	// Meses sem histórico no ano anterior não recebem sugestão
	assert.NotContains(t, suggestions, SuggestionKey(4, domain.ProductPL))
}

// Sem nenhum mês com valores positivos nos dois anos não há base de
// comparação: o produto fica sem sugestões
func TestComputeSeasonalSuggestions_NoQualifyingMonths(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2023, 1, domain.ProductPL, 100),
		monthStat(2023, 2, domain.ProductPL, 200),
	}

	suggestions := ComputeSeasonalSuggestions(stats, 2024)

	assert.Empty(t, suggestions)
}

// As linhas de produto são independentes: o fator de um produto nunca é
// aplicado a outro
func TestComputeSeasonalSuggestions_ProductsIndependent(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2023, 1, domain.ProductPL, 100),
		monthStat(2024, 1, domain.ProductPL, 150),
		monthStat(2023, 2, domain.ProductPL, 100),

		monthStat(2023, 1, domain.Product1Euro, 300),
		monthStat(2023, 2, domain.Product1Euro, 300),
	}

	suggestions := ComputeSeasonalSuggestions(stats, 2024)

	// PL cresceu 50% em janeiro: fevereiro sugerido em 150
	assert.Equal(t, 150, suggestions[SuggestionKey(2, domain.ProductPL)])

	// 1 EURO não tem mês qualificado em 2024: nenhuma sugestão
	assert.NotContains(t, suggestions, SuggestionKey(1, domain.Product1Euro))
	assert.NotContains(t, suggestions, SuggestionKey(2, domain.Product1Euro))
}

// Queda média também é projetada: fator negativo reduz a sugestão
func TestComputeSeasonalSuggestions_NegativeGrowth(t *testing.T) {
	stats := []*domain.SalesStat{
		monthStat(2023, 1, domain.ProductPL, 200),
		monthStat(2024, 1, domain.ProductPL, 100),
		monthStat(2023, 2, domain.ProductPL, 200),
	}

	suggestions := ComputeSeasonalSuggestions(stats, 2024)

	// Fator médio -50%: fevereiro sugerido em 100
	assert.Equal(t, 100, suggestions[SuggestionKey(2, domain.ProductPL)])
}

func TestComputeSeasonalSuggestions_EmptyInput(t *testing.T) {
	assert.Empty(t, ComputeSeasonalSuggestions(nil, 2024))
}
