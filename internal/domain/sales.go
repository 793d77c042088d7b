package domain

import "time"

// Linhas de produto acompanhadas pelas estatísticas de vendas. O conjunto é
// fechado: iteração sempre via AllProducts, nunca por chaves dinâmicas, para
// que um erro de digitação não crie silenciosamente uma quarta categoria.
type ProductCategory string

const (
	ProductPL    ProductCategory = "PL"
	Product1Euro ProductCategory = "1 EURO"
	Product2Euro ProductCategory = "2 EURO"
)

func AllProducts() []ProductCategory {
	return []ProductCategory{ProductPL, Product1Euro, Product2Euro}
}

func (p ProductCategory) IsValid() bool {
	switch p {
	case ProductPL, Product1Euro, Product2Euro:
		return true
	}
	return false
}

// SalesStat é uma observação de venda para uma combinação
// ano/mês/(semana/dia)/produto.
//
// Granularidade: Week e Day nulos => lançamento mensal; ambos presentes =>
// lançamento diário (Week é redundante, derivada de Day, mas armazenada para
// simplificar o agrupamento). Quantity nula significa "ainda não informado",
// distinto de zero.
type SalesStat struct {
	ID        int             `json:"id"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Week      *int            `json:"week"`
	Day       *time.Time      `json:"day"`
	Product   ProductCategory `json:"product"`
	Quantity  *int            `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsDaily informa se a observação é um lançamento de granularidade diária
func (s *SalesStat) IsDaily() bool {
	return s.Day != nil
}

// IsMonthly informa se a observação é um lançamento de nível mensal
func (s *SalesStat) IsMonthly() bool {
	return s.Week == nil && s.Day == nil
}

// UpsertStatRequest é o payload de gravação de uma observação. Quantity nula
// é normalizada para NULL no banco (não confundir com zero).
type UpsertStatRequest struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Week     *int            `json:"week"`
	Day      *time.Time      `json:"day"`
	Product  ProductCategory `json:"product"`
	Quantity *int            `json:"quantity"`
}

// SalesSummary é o resumo exibido no painel de estatísticas
type SalesSummary struct {
	TotalAllTime  int            `json:"total_all_time"`
	TotalForYear  int            `json:"total_for_year"`
	Trend         string         `json:"trend"`
	TrendForecast *TrendForecast `json:"trend_forecast,omitempty"`
}

// TrendForecast carrega os valores numéricos da projeção linear, presente
// apenas quando há pelo menos dois anos com vendas registradas
type TrendForecast struct {
	NextYear      int     `json:"next_year"`
	Prediction    int     `json:"prediction"`
	PercentChange float64 `json:"percent_change"`
	Direction     string  `json:"direction"`
}

// Direções possíveis da tendência anual
const (
	TrendIncrease = "increase"
	TrendDecrease = "decrease"
)
