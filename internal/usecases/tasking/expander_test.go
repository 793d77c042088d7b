package tasking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestExpand_Daily(t *testing.T) {
	template := &domain.RecurringTemplate{
		ID:              12,
		Title:           "Abrir a loja",
		ContentState:    "{}",
		Importance:      domain.ImportanceHigh,
		CreatorID:       1,
		LeaderID:        2,
		AssignedUserIDs: []int{3, 4},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.May, 1),
		EndDate:         date(2024, time.May, 5),
	}

	instances := Expand(template, 0)

	require.Len(t, instances, 5)

	for i, instance := range instances {
		assert.Equal(t, fmt.Sprintf("Abrir a loja #%d", i+1), instance.Title)
		assert.Equal(t, domain.StatusInProgress, instance.Status)
		assert.Equal(t, domain.ImportanceHigh, instance.Importance)
		assert.Equal(t, 1, instance.CreatorID)
		assert.Equal(t, 2, instance.LeaderID)
		assert.Equal(t, []int{3, 4}, instance.AssignedUserIDs)

		require.NotNil(t, instance.Deadline)
		assert.Equal(t, date(2024, time.May, 1+i), *instance.Deadline)

		require.NotNil(t, instance.RecurringTemplateID)
		assert.Equal(t, 12, *instance.RecurringTemplateID)
	}
}

func TestExpand_Weekly(t *testing.T) {
	template := &domain.RecurringTemplate{
		Title:           "Conferir estoque",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceWeekly,
		StartDate:       date(2024, time.January, 1),
		EndDate:         date(2024, time.January, 31),
	}

	instances := Expand(template, 0)

	require.Len(t, instances, 5)

	expected := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 8),
		date(2024, time.January, 15),
		date(2024, time.January, 22),
		date(2024, time.January, 29),
	}
	for i, instance := range instances {
		assert.Equal(t, expected[i], *instance.Deadline)
	}
}

// O passo mensal usa aritmética nativa de calendário: 31 de janeiro + 1 mês
// transborda para o início de março quando fevereiro não tem o dia 31.
func TestExpand_MonthlyRollOver(t *testing.T) {
	template := &domain.RecurringTemplate{
		Title:           "Fechamento",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceMonthly,
		StartDate:       date(2024, time.January, 31),
		EndDate:         date(2024, time.April, 30),
	}

	instances := Expand(template, 0)

	require.Len(t, instances, 3)

	// 2024 é bissexto: 31/01 + 1 mês = 31/02 normalizado para 02/03
	assert.Equal(t, date(2024, time.January, 31), *instances[0].Deadline)
	assert.Equal(t, date(2024, time.March, 2), *instances[1].Deadline)
	assert.Equal(t, date(2024, time.April, 2), *instances[2].Deadline)

	assert.Equal(t, "Fechamento #1", instances[0].Title)
	assert.Equal(t, "Fechamento #2", instances[1].Title)
	assert.Equal(t, "Fechamento #3", instances[2].Title)
}

func TestExpand_SingleDayWindow(t *testing.T) {
	template := &domain.RecurringTemplate{
		Title:           "Inventário",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.June, 10),
		EndDate:         date(2024, time.June, 10),
	}

	instances := Expand(template, 0)

	require.Len(t, instances, 1)
	assert.Equal(t, "Inventário #1", instances[0].Title)
}

func TestExpand_InvertedWindow(t *testing.T) {
	template := &domain.RecurringTemplate{
		Title:           "Inventário",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.June, 10),
		EndDate:         date(2024, time.June, 1),
	}

	instances := Expand(template, 0)

	assert.Empty(t, instances)
}

func TestExpand_MaxInstancesCap(t *testing.T) {
	template := &domain.RecurringTemplate{
		Title:           "Rotina",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.January, 1),
		EndDate:         date(2025, time.December, 31),
	}

	instances := Expand(template, 10)

	assert.Len(t, instances, 10)
}

func TestExpand_LeaderDefaultsToCreator(t *testing.T) {
	template := &domain.RecurringTemplate{
		Title:           "Rotina",
		CreatorID:       7,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       date(2024, time.June, 1),
		EndDate:         date(2024, time.June, 2),
	}

	instances := Expand(template, 0)

	require.Len(t, instances, 2)
	assert.Equal(t, 7, instances[0].LeaderID)
}

func TestExpand_PreservesStartTimeComponent(t *testing.T) {
	start := time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)
	template := &domain.RecurringTemplate{
		Title:           "Reunião",
		CreatorID:       1,
		AssignedUserIDs: []int{2},
		RecurrenceType:  domain.RecurrenceDaily,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, 2),
	}

	instances := Expand(template, 0)

	require.Len(t, instances, 3)
	for i, instance := range instances {
		assert.Equal(t, start.AddDate(0, 0, i), *instance.Deadline)
	}
}

// Expand é uma função pura: chamadas repetidas com o mesmo modelo produzem
// o mesmo plano e não compartilham estado mutável com o modelo de origem
func TestExpand_Deterministic(t *testing.T) {
	template := &domain.RecurringTemplate{
		ID:              5,
		Title:           "Rotina",
		CreatorID:       1,
		AssignedUserIDs: []int{2, 3},
		RecurrenceType:  domain.RecurrenceWeekly,
		StartDate:       date(2024, time.March, 4),
		EndDate:         date(2024, time.April, 1),
	}

	first := Expand(template, 0)
	second := Expand(template, 0)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, *first[i].Deadline, *second[i].Deadline)
	}

	// A lista de atribuídos de cada instância é uma cópia independente
	first[0].AssignedUserIDs[0] = 99
	assert.Equal(t, []int{2, 3}, template.AssignedUserIDs)
}
