package tasking

import (
	"fmt"
	"time"

	"github.com/vfg2006/taskboard-api/internal/domain"
)

// Limite de segurança de instâncias por expansão. Uma janela patológica
// (décadas com cadência diária) não pode travar a materialização.
const DefaultMaxInstances = 1000

// Expand expande um modelo de tarefa cíclica na sequência ordenada de
// instâncias concretas da janela [StartDate, EndDate], inclusiva nas duas
// pontas. É uma função pura do modelo: mesma entrada, mesma saída.
//
// Regras:
//   - o cursor parte de StartDate e avança pela cadência: daily +1 dia,
//     weekly +7 dias, monthly +1 mês de calendário;
//   - o passo mensal usa time.AddDate, que transborda para o mês seguinte
//     quando o dia não existe no mês de destino (31/01 -> 02/03 ou 03/03);
//     comportamento herdado da aritmética nativa de datas do sistema
//     original e travado em teste;
//   - o título de cada instância recebe o sufixo " #N" com a sequência
//     1-based;
//   - o prazo da instância é a data do cursor, preservando o componente de
//     horário de StartDate;
//   - janela invertida (StartDate > EndDate) produz zero instâncias, nunca
//     um erro.
func Expand(template *domain.RecurringTemplate, maxInstances int) []*domain.Task {
	if maxInstances <= 0 {
		maxInstances = DefaultMaxInstances
	}

	leaderID := template.LeaderID
	if leaderID == 0 {
		leaderID = template.CreatorID
	}

	instances := make([]*domain.Task, 0)

	cursor := template.StartDate
	for sequence := 1; !cursor.After(template.EndDate); sequence++ {
		if len(instances) >= maxInstances {
			break
		}

		deadline := cursor
		instance := &domain.Task{
			Title:              fmt.Sprintf("%s #%d", template.Title, sequence),
			ContentState:       template.ContentState,
			Importance:         template.Importance,
			Status:             domain.StatusInProgress,
			CreatorID:          template.CreatorID,
			LeaderID:           leaderID,
			AssignedUserIDs:    append([]int(nil), template.AssignedUserIDs...),
			Deadline:           &deadline,
			NotifyOnCompletion: template.NotifyOnCompletion,
		}

		if template.ID != 0 {
			templateID := template.ID
			instance.RecurringTemplateID = &templateID
		}

		instances = append(instances, instance)
		cursor = advanceCursor(cursor, template.RecurrenceType)
	}

	return instances
}

func advanceCursor(cursor time.Time, recurrence domain.RecurrenceType) time.Time {
	switch recurrence {
	case domain.RecurrenceDaily:
		return cursor.AddDate(0, 0, 1)
	case domain.RecurrenceWeekly:
		return cursor.AddDate(0, 0, 7)
	case domain.RecurrenceMonthly:
		return cursor.AddDate(0, 1, 0)
	}
	// Cadência desconhecida: avança um dia para garantir terminação
	return cursor.AddDate(0, 0, 1)
}
