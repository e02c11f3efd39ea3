package appointment

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/notify"
)

// fakeRepo reproduz em memória os contratos do repositório: criação
// exclusiva por (data, hora) sob mutex e update condicionado na versão.
type fakeRepo struct {
	mu sync.Mutex

	nextID       uint
	appointments map[uint]*models.Appointment
	history      []models.AppointmentHistory
	schedule     map[int]models.ScheduleDay
	blocked      map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[uint]*models.Appointment{},
		schedule:     map[int]models.ScheduleDay{},
		blocked:      map[string]bool{},
	}
}

func (f *fakeRepo) setWorkingDay(weekday int, startHM, endHM string) {
	f.schedule[weekday] = models.ScheduleDay{
		Weekday:      weekday,
		IsWorkingDay: true,
		StartTime:    startHM,
		EndTime:      endHM,
	}
}

func (f *fakeRepo) setClosedDay(weekday int) {
	f.schedule[weekday] = models.ScheduleDay{Weekday: weekday}
}

func (f *fakeRepo) blockDate(date string) {
	f.blocked[date] = true
}

func isLive(status string) bool {
	return status == string(domain.StatusPending) || status == string(domain.StatusConfirmed)
}

func (f *fakeRepo) CreateAppointmentExclusive(
	ctx context.Context,
	ap *models.Appointment,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.appointments {
		if existing.Date == ap.Date && existing.StartTime == ap.StartTime && isLive(existing.Status) {
			return httperr.ErrBusiness(httperr.CodeSlotAlreadyBooked)
		}
	}

	f.nextID++
	ap.ID = f.nextID

	clone := *ap
	f.appointments[ap.ID] = &clone

	f.history = append(f.history, models.AppointmentHistory{
		AppointmentID: ap.ID,
		OldStatus:     "",
		NewStatus:     ap.Status,
		ChangedBy:     string(domain.ActorClient),
	})

	return nil
}

func (f *fakeRepo) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *ap
	return &clone, nil
}

func (f *fakeRepo) GetAppointmentByToken(
	ctx context.Context,
	token string,
) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.CancellationToken == token {
			clone := *ap
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateStatusVersioned(
	ctx context.Context,
	ap *models.Appointment,
	to domain.Status,
	declineReason string,
	changedBy domain.Actor,
	notes string,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cur, ok := f.appointments[ap.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	if cur.Version != ap.Version {
		return httperr.ErrBusiness(httperr.CodeConcurrentModification)
	}

	old := cur.Status
	cur.Status = string(to)
	cur.DeclineReason = declineReason
	cur.Version++

	f.history = append(f.history, models.AppointmentHistory{
		AppointmentID: ap.ID,
		OldStatus:     old,
		NewStatus:     string(to),
		ChangedBy:     string(changedBy),
		Notes:         notes,
	})

	ap.Status = cur.Status
	ap.DeclineReason = cur.DeclineReason
	ap.Version = cur.Version

	return nil
}

func (f *fakeRepo) GetScheduleDay(
	ctx context.Context,
	weekday int,
) (*models.ScheduleDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	day, ok := f.schedule[weekday]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := day
	return &clone, nil
}

func (f *fakeRepo) IsDateBlocked(
	ctx context.Context,
	date string,
) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.blocked[date], nil
}

func (f *fakeRepo) ListOccupiedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var times []string
	for _, ap := range f.appointments {
		if ap.Date == date && isLive(ap.Status) {
			times = append(times, ap.StartTime)
		}
	}
	sort.Strings(times)
	return times, nil
}

func (f *fakeRepo) ListAppointmentsForDay(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date == date {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(
	ctx context.Context,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date >= startDate && ap.Date < endDate {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (f *fakeRepo) historyFor(id uint) []models.AppointmentHistory {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.AppointmentHistory
	for _, entry := range f.history {
		if entry.AppointmentID == id {
			out = append(out, entry)
		}
	}
	return out
}

// staleRepo devolve sempre o mesmo snapshot na leitura por id, simulando
// dois chamadores que leram a mesma versão antes de escrever.
type staleRepo struct {
	*fakeRepo
	snapshot models.Appointment
}

func (r *staleRepo) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	clone := r.snapshot
	return &clone, nil
}

// fakeQueue registra os enfileiramentos dos usecases.
type fakeQueue struct {
	mu    sync.Mutex
	tasks []notify.Task
	err   error
}

func (q *fakeQueue) Enqueue(ctx context.Context, t notify.Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, t)
	return nil
}

func (q *fakeQueue) countByType(taskType string) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for _, t := range q.tasks {
		if t.Type == taskType {
			n++
		}
	}
	return n
}

// Compile-time checks
var (
	_ domain.Repository = (*fakeRepo)(nil)
	_ domain.Repository = (*staleRepo)(nil)
	_ notify.Enqueuer   = (*fakeQueue)(nil)
)
