package tasking

import "errors"

var (
	ErrTaskNotFound        = errors.New("tarefa não encontrada")
	ErrTaskNotDraft        = errors.New("operação permitida apenas para rascunhos")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidStatus       = errors.New("status de tarefa inválido")
	ErrInvalidDateWindow   = errors.New("a data de início deve ser anterior ou igual à data de término")
	ErrTemplateCreation    = errors.New("erro ao gravar o modelo de tarefa cíclica")
)
