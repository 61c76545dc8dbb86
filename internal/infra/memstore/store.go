// Package memstore is an in-memory implementation of every repository
// interface. It backs use case and handler tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Store struct {
	mu sync.Mutex

	nextID       uint
	users        map[uint]models.User
	profiles     map[uint]models.BarberProfile
	hours        map[uint][]models.WorkingHours // by profile id
	services     map[uint]models.Service
	appointments map[uint]models.Appointment

	now func() time.Time
}

var (
	_ appointment.Repository = (*Store)(nil)
	_ barber.Repository      = (*Store)(nil)
)

func New() *Store {
	return &Store{
		users:        map[uint]models.User{},
		profiles:     map[uint]models.BarberProfile{},
		hours:        map[uint][]models.WorkingHours{},
		services:     map[uint]models.Service{},
		appointments: map[uint]models.Appointment{},
		now:          time.Now,
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// ===============================
// Users
// ===============================

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return domain.ErrDuplicate
		}
	}
	u.ID = s.id()
	u.CreatedAt, u.UpdatedAt = s.now(), s.now()
	s.users[u.ID] = *u
	return nil
}

func (s *Store) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) UpdateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	u.UpdatedAt = s.now()
	s.users[u.ID] = *u
	return nil
}

func (s *Store) ListUsers(_ context.Context, f identity.UserFilter) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var clientsOf map[uint]bool
	if f.ClientsOfBarber != nil {
		clientsOf = map[uint]bool{}
		for _, ap := range s.appointments {
			if ap.BarberID == *f.ClientsOfBarber {
				clientsOf[ap.ClientID] = true
			}
		}
	}

	var out []models.User
	for _, u := range s.users {
		if f.ID != nil && u.ID != *f.ID {
			continue
		}
		if clientsOf != nil && !clientsOf[u.ID] {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CountUsers(_ context.Context, role *identity.Role) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, u := range s.users {
		if role == nil || u.UserType == *role {
			n++
		}
	}
	return n, nil
}

// ===============================
// Barber profiles
// ===============================

func (s *Store) loadProfile(p models.BarberProfile) models.BarberProfile {
	p.User = s.users[p.UserID]
	p.WorkingHours = append([]models.WorkingHours(nil), s.hours[p.ID]...)
	return p
}

func (s *Store) GetProfile(_ context.Context, id uint) (*models.BarberProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p = s.loadProfile(p)
	return &p, nil
}

func (s *Store) GetProfileByUser(_ context.Context, userID uint) (*models.BarberProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.UserID == userID {
			p = s.loadProfile(p)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) ListProfiles(_ context.Context, f barber.ProfileFilter) ([]models.BarberProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.BarberProfile
	for _, p := range s.profiles {
		if f.UserID != nil && p.UserID != *f.UserID {
			continue
		}
		if f.ApprovedOnly && !p.IsApproved {
			continue
		}
		out = append(out, s.loadProfile(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateProfile(_ context.Context, p *models.BarberProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.profiles {
		if existing.UserID == p.UserID {
			return domain.ErrDuplicate
		}
	}
	p.ID = s.id()
	p.CreatedAt, p.UpdatedAt = s.now(), s.now()
	s.setHours(p)

	stored := *p
	stored.User, stored.WorkingHours = models.User{}, nil
	s.profiles[p.ID] = stored
	return nil
}

func (s *Store) SaveProfile(_ context.Context, p *models.BarberProfile, replaceHours bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[p.ID]; !ok {
		return domain.ErrNotFound
	}
	p.UpdatedAt = s.now()
	if replaceHours {
		s.setHours(p)
	}

	stored := *p
	stored.User, stored.WorkingHours = models.User{}, nil
	s.profiles[p.ID] = stored
	return nil
}

func (s *Store) setHours(p *models.BarberProfile) {
	rows := make([]models.WorkingHours, len(p.WorkingHours))
	for i, wh := range p.WorkingHours {
		wh.ID = s.id()
		wh.BarberProfileID = p.ID
		rows[i] = wh
	}
	p.WorkingHours = rows
	s.hours[p.ID] = rows
}

// ===============================
// Services
// ===============================

func (s *Store) ListServices(_ context.Context, activeOnly bool) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Service
	for _, svc := range s.services {
		if activeOnly && !svc.IsActive {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetService(_ context.Context, id uint) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &svc, nil
}

func (s *Store) CreateService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc.ID = s.id()
	svc.CreatedAt, svc.UpdatedAt = s.now(), s.now()
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) UpdateService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[svc.ID]; !ok {
		return domain.ErrNotFound
	}
	svc.UpdatedAt = s.now()
	s.services[svc.ID] = *svc
	return nil
}

// ===============================
// Appointments
// ===============================

func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slotTaken(ap) {
		return domain.ErrDuplicate
	}

	ap.ID = s.id()
	ap.CreatedAt, ap.UpdatedAt = s.now(), s.now()
	s.appointments[ap.ID] = strip(*ap)
	return nil
}

func (s *Store) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ap = s.loadAppointment(ap)
	return &ap, nil
}

func (s *Store) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[ap.ID]; !ok {
		return domain.ErrNotFound
	}
	if s.slotTaken(ap) {
		return domain.ErrDuplicate
	}
	ap.UpdatedAt = s.now()
	s.appointments[ap.ID] = strip(*ap)
	return nil
}

// slotTaken mirrors idx_appointments_active_slot: one blocking appointment
// per barber, date and time.
func (s *Store) slotTaken(ap *models.Appointment) bool {
	if !appointment.Status(ap.Status).IsBlocking() {
		return false
	}
	for id, other := range s.appointments {
		if id != ap.ID &&
			other.BarberID == ap.BarberID &&
			other.AppointmentDate.Equal(ap.AppointmentDate) &&
			other.AppointmentTime == ap.AppointmentTime &&
			appointment.Status(other.Status).IsBlocking() {
			return true
		}
	}
	return false
}

func (s *Store) ListAppointments(_ context.Context, f appointment.ListFilter) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if matches(ap, f) {
			out = append(out, s.loadAppointment(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AppointmentDate.Equal(out[j].AppointmentDate) {
			return out[i].AppointmentDate.After(out[j].AppointmentDate)
		}
		return out[i].AppointmentTime > out[j].AppointmentTime
	})
	return out, nil
}

func (s *Store) CountAppointments(_ context.Context, f appointment.ListFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, ap := range s.appointments {
		if matches(ap, f) {
			n++
		}
	}
	return n, nil
}

func (s *Store) loadAppointment(ap models.Appointment) models.Appointment {
	ap.Client = s.users[ap.ClientID]
	ap.Barber = s.users[ap.BarberID]
	ap.Service = s.services[ap.ServiceID]
	return ap
}

func strip(ap models.Appointment) models.Appointment {
	ap.Client, ap.Barber, ap.Service = models.User{}, models.User{}, models.Service{}
	return ap
}

func matches(ap models.Appointment, f appointment.ListFilter) bool {
	if f.ClientID != nil && ap.ClientID != *f.ClientID {
		return false
	}
	if f.BarberID != nil && ap.BarberID != *f.BarberID {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, st := range f.Statuses {
			if string(st) == ap.Status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Date != nil && !ap.AppointmentDate.Equal(*f.Date) {
		return false
	}
	if f.Time != nil && ap.AppointmentTime != *f.Time {
		return false
	}
	if f.FromDate != nil && ap.AppointmentDate.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && !ap.AppointmentDate.Before(*f.ToDate) {
		return false
	}
	return true
}
