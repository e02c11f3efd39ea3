package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/notify"
)

func seedAppointment(t *testing.T, repo *fakeRepo, email string) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		ClientName:        "Bruno Lima",
		ClientPhone:       "11988887777",
		ClientEmail:       email,
		ServiceCategory:   "barba",
		Date:              testDate,
		StartTime:         "11:00",
		Status:            string(domain.InitialStatus()),
		CancellationToken: domain.NewCancellationToken(),
		Version:           1,
	}
	if err := repo.CreateAppointmentExclusive(context.Background(), ap); err != nil {
		t.Fatalf("seed falhou: %v", err)
	}
	return ap
}

func TestTransitionStatus_Confirm(t *testing.T) {
	repo := newFakeRepo()
	repo.setWorkingDay(int(time.Monday), "09:00", "18:00")
	queue := &fakeQueue{}
	uc := NewTransitionStatus(repo, queue)

	seeded := seedAppointment(t, repo, "bruno@cliente.test")

	ap, err := uc.Execute(context.Background(), seeded.ID, domain.StatusConfirmed, "", "", domain.ActorAdmin)
	if err != nil {
		t.Fatalf("confirmação falhou: %v", err)
	}

	if ap.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status = %q, esperava confirmed", ap.Status)
	}
	if ap.Version != 2 {
		t.Fatalf("version = %d, esperava 2", ap.Version)
	}

	hist := repo.historyFor(seeded.ID)
	if len(hist) != 2 {
		t.Fatalf("histórico com %d entradas, esperava 2", len(hist))
	}
	last := hist[len(hist)-1]
	if last.OldStatus != string(domain.StatusPending) || last.NewStatus != string(domain.StatusConfirmed) {
		t.Fatalf("última entrada do histórico inesperada: %+v", last)
	}
	if last.ChangedBy != string(domain.ActorAdmin) {
		t.Fatalf("changed_by = %q, esperava admin", last.ChangedBy)
	}

	if n := queue.countByType(notify.TypeClientStatusUpdate); n != 1 {
		t.Fatalf("atualizações para o cliente = %d, esperava 1", n)
	}
}

func TestTransitionStatus_InvalidEdgeLeavesStateUntouched(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTransitionStatus(repo, &fakeQueue{})

	seeded := seedAppointment(t, repo, "")

	_, err := uc.Execute(context.Background(), seeded.ID, domain.StatusCompleted, "", "", domain.ActorAdmin)
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("esperava invalid_transition, veio %v", err)
	}

	cur, err := repo.GetAppointmentByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("leitura falhou: %v", err)
	}
	if cur.Status != string(domain.StatusPending) || cur.Version != 1 {
		t.Fatalf("estado deveria ficar intacto, veio status=%q version=%d", cur.Status, cur.Version)
	}
	if got := len(repo.historyFor(seeded.ID)); got != 1 {
		t.Fatalf("histórico com %d entradas, esperava só a inicial", got)
	}
}

func TestTransitionStatus_UnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTransitionStatus(repo, &fakeQueue{})

	seeded := seedAppointment(t, repo, "")

	_, err := uc.Execute(context.Background(), seeded.ID, domain.Status("arquivado"), "", "", domain.ActorAdmin)
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("esperava invalid_transition, veio %v", err)
	}
}

func TestTransitionStatus_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTransitionStatus(repo, &fakeQueue{})

	_, err := uc.Execute(context.Background(), 999, domain.StatusConfirmed, "", "", domain.ActorAdmin)
	if !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
		t.Fatalf("esperava appointment_not_found, veio %v", err)
	}
}

func TestTransitionStatus_DeclineRequiresReason(t *testing.T) {
	repo := newFakeRepo()
	uc := NewTransitionStatus(repo, &fakeQueue{})

	seeded := seedAppointment(t, repo, "")

	_, err := uc.Execute(context.Background(), seeded.ID, domain.StatusDeclined, "   ", "", domain.ActorAdmin)
	if !httperr.IsBusiness(err, httperr.CodeMissingDeclineReason) {
		t.Fatalf("esperava missing_decline_reason, veio %v", err)
	}

	cur, _ := repo.GetAppointmentByID(context.Background(), seeded.ID)
	if cur.Status != string(domain.StatusPending) {
		t.Fatalf("recusa sem motivo não deveria escrever, status = %q", cur.Status)
	}
}

func TestTransitionStatus_DeclineStoresReason(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	uc := NewTransitionStatus(repo, queue)

	seeded := seedAppointment(t, repo, "bruno@cliente.test")

	ap, err := uc.Execute(context.Background(), seeded.ID, domain.StatusDeclined, "agenda fechada no dia", "", domain.ActorAdmin)
	if err != nil {
		t.Fatalf("recusa falhou: %v", err)
	}

	if ap.DeclineReason != "agenda fechada no dia" {
		t.Fatalf("decline_reason = %q", ap.DeclineReason)
	}
	if n := queue.countByType(notify.TypeClientStatusUpdate); n != 1 {
		t.Fatalf("atualizações para o cliente = %d, esperava 1", n)
	}
}

func TestTransitionStatus_CompletedDoesNotNotify(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	uc := NewTransitionStatus(repo, queue)

	seeded := seedAppointment(t, repo, "bruno@cliente.test")

	if _, err := uc.Execute(context.Background(), seeded.ID, domain.StatusConfirmed, "", "", domain.ActorAdmin); err != nil {
		t.Fatalf("confirmação falhou: %v", err)
	}
	if _, err := uc.Execute(context.Background(), seeded.ID, domain.StatusCompleted, "", "", domain.ActorAdmin); err != nil {
		t.Fatalf("conclusão falhou: %v", err)
	}

	if n := queue.countByType(notify.TypeClientStatusUpdate); n != 1 {
		t.Fatalf("atualizações para o cliente = %d, esperava só a da confirmação", n)
	}
}

// Dois operadores leram a versão 1; só o primeiro a escrever vence.
func TestTransitionStatus_StaleVersionConflicts(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedAppointment(t, repo, "")

	stale := &staleRepo{fakeRepo: repo, snapshot: *seeded}
	uc := NewTransitionStatus(stale, &fakeQueue{})

	if _, err := uc.Execute(context.Background(), seeded.ID, domain.StatusConfirmed, "", "", domain.ActorAdmin); err != nil {
		t.Fatalf("primeira escrita deveria vencer: %v", err)
	}

	_, err := uc.Execute(context.Background(), seeded.ID, domain.StatusCancelled, "", "", domain.ActorAdmin)
	if !httperr.IsBusiness(err, httperr.CodeConcurrentModification) {
		t.Fatalf("esperava concurrent_modification, veio %v", err)
	}

	cur, _ := repo.GetAppointmentByID(context.Background(), seeded.ID)
	if cur.Status != string(domain.StatusConfirmed) || cur.Version != 2 {
		t.Fatalf("perdedor não deveria escrever, veio status=%q version=%d", cur.Status, cur.Version)
	}
}
