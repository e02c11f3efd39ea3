package appointment

import (
	"strings"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Quem disparou a transição.
type Actor string

const (
	ActorClient Actor = "client"
	ActorAdmin  Actor = "admin"
	ActorSystem Actor = "system"
)

// ===============================
// Máquina de estados
// ===============================

// Tabela única de transições legais. Estados sem arestas de saída são terminais.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusDeclined, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusDeclined:  {},
	StatusCancelled: {},
	StatusCompleted: {},
}

func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

func IsTerminal(s Status) bool {
	edges, ok := transitions[s]
	return ok && len(edges) == 0
}

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

// ValidateTransition valida a aresta e as pré-condições antes de qualquer escrita.
func ValidateTransition(from, to Status, declineReason string) error {
	if err := CanTransition(from, to); err != nil {
		return err
	}
	if to == StatusDeclined && strings.TrimSpace(declineReason) == "" {
		return httperr.ErrBusiness(httperr.CodeMissingDeclineReason)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// LiveStatuses ocupam o slot: no máximo um agendamento vivo por (data, hora).
func LiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
