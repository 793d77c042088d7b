package forecasting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/taskboard-api/infrastructure/repository"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

type Forecaster interface {
	ListStats() ([]*domain.SalesStat, error)
	UpsertStat(req *domain.UpsertStatRequest) (*domain.SalesStat, error)
	GetSummary(viewedYear int) *domain.SalesSummary
	GetSuggestions(viewedYear int) map[string]int
}

type Service struct {
	statRepo repository.SalesStatRepository
}

func NewService(statRepo repository.SalesStatRepository) Forecaster {
	return &Service{
		statRepo: statRepo,
	}
}

func (s *Service) ListStats() ([]*domain.SalesStat, error) {
	return s.statRepo.ListAll()
}

// UpsertStat grava uma observação pela chave única (ano, mês, semana, dia,
// produto): atualiza a quantidade se a observação já existe, senão insere.
// Reenviar a mesma chave com a mesma quantidade não cria registro adicional.
func (s *Service) UpsertStat(req *domain.UpsertStatRequest) (*domain.SalesStat, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, ErrInvalidPeriod
	}

	if !req.Product.IsValid() {
		return nil, ErrUnknownProduct
	}

	// Lançamento diário carrega a semana ISO derivada do dia; a semana é
	// redundante, mas armazenada para simplificar o agrupamento
	if req.Day != nil && req.Week == nil {
		_, week := req.Day.ISOWeek()
		req.Week = &week
	}

	if req.Day == nil && req.Week != nil {
		return nil, ErrInvalidGranularity
	}

	existing, err := s.statRepo.GetByKey(req.Year, req.Month, req.Week, req.Day, req.Product)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.statRepo.UpdateQuantity(existing.ID, req.Quantity); err != nil {
			return nil, err
		}
		existing.Quantity = req.Quantity
		return existing, nil
	}

	stat := &domain.SalesStat{
		Year:     req.Year,
		Month:    req.Month,
		Week:     req.Week,
		Day:      req.Day,
		Product:  req.Product,
		Quantity: req.Quantity,
	}

	return s.statRepo.Insert(stat)
}

// GetSummary devolve o resumo do ano visualizado. Falha de leitura é
// tratada como conjunto vazio (gera a narrativa de dados insuficientes),
// nunca propagada à camada de apresentação.
func (s *Service) GetSummary(viewedYear int) *domain.SalesSummary {
	stats, err := s.statRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar observações de vendas, usando conjunto vazio")
		stats = nil
	}

	return ComputeSummary(stats, viewedYear)
}

func (s *Service) GetSuggestions(viewedYear int) map[string]int {
	stats, err := s.statRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar observações de vendas, usando conjunto vazio")
		stats = nil
	}

	return ComputeSeasonalSuggestions(stats, viewedYear)
}
