package devserver

import (
	"errors"
	"sync"

	"vitalmotion/client/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrUserExists   = errors.New("user with this email already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrNotFound     = errors.New("not found")
)

// User is one registered identity.
type User struct {
	UID          string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
}

// storedWorkout keeps a template's record lines together with the completed
// sessions logged under it, mirroring the backend's nesting.
type storedWorkout struct {
	ID        string
	Exercises []string
	Completed map[string]domain.CompletedWorkout
}

// account holds all per-user collections.
type account struct {
	exercises   map[string]domain.Exercise
	workouts    map[string]*storedWorkout
	pain        map[string]domain.PainNote
	journals    map[string]domain.Journal
	medications map[string]domain.Medication
}

func newAccount() *account {
	return &account{
		exercises:   make(map[string]domain.Exercise),
		workouts:    make(map[string]*storedWorkout),
		pain:        make(map[string]domain.PainNote),
		journals:    make(map[string]domain.Journal),
		medications: make(map[string]domain.Medication),
	}
}

// Store is the dev server's in-memory datastore. Everything is lost on
// restart; that is the point of a dev server.
type Store struct {
	mu           sync.RWMutex
	usersByEmail map[string]*User
	usersByUID   map[string]*User
	accounts     map[string]*account
}

func NewStore() *Store {
	return &Store{
		usersByEmail: make(map[string]*User),
		usersByUID:   make(map[string]*User),
		accounts:     make(map[string]*account),
	}
}

// CreateUser registers a new identity.
func (s *Store) CreateUser(email string, passwordHash []byte, firstName, lastName string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByEmail[email]; ok {
		return nil, ErrUserExists
	}
	u := &User{
		UID:          uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
	}
	s.usersByEmail[email] = u
	s.usersByUID[u.UID] = u
	return u, nil
}

// UserByEmail looks up a registered identity.
func (s *Store) UserByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.usersByEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UserByUID looks up a registered identity by uid.
func (s *Store) UserByUID(uid string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.usersByUID[uid]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// SetupUser copies the premade exercise and workout catalogs into the
// account, the first-login initialization the real backend performs.
func (s *Store) SetupUser(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	for _, ex := range premadeExercises {
		acc.exercises[ex.ID] = ex
	}
	for _, lines := range premadeWorkouts {
		w := &storedWorkout{
			ID:        uuid.NewString(),
			Exercises: append([]string(nil), lines...),
			Completed: make(map[string]domain.CompletedWorkout),
		}
		acc.workouts[w.ID] = w
	}
}

// accountLocked returns the account for uid, creating it on first touch.
// Callers must hold mu.
func (s *Store) accountLocked(uid string) *account {
	acc, ok := s.accounts[uid]
	if !ok {
		acc = newAccount()
		s.accounts[uid] = acc
	}
	return acc
}

// --- Exercises ---

func (s *Store) Exercises(uid string) []domain.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	out := make([]domain.Exercise, 0, len(acc.exercises))
	for _, ex := range acc.exercises {
		out = append(out, ex)
	}
	return out
}

func (s *Store) Exercise(uid, exerciseID string) (domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ex, ok := s.accountLocked(uid).exercises[exerciseID]
	if !ok {
		return domain.Exercise{}, ErrNotFound
	}
	return ex, nil
}

// --- Workouts ---

func (s *Store) Workouts(uid string) []domain.WorkoutRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	out := make([]domain.WorkoutRecord, 0, len(acc.workouts))
	for _, w := range acc.workouts {
		out = append(out, domain.WorkoutRecord{ID: w.ID, Exercises: append([]string(nil), w.Exercises...)})
	}
	return out
}

func (s *Store) Workout(uid, workoutID string) (domain.WorkoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.accountLocked(uid).workouts[workoutID]
	if !ok {
		return domain.WorkoutRecord{}, ErrNotFound
	}
	return domain.WorkoutRecord{ID: w.ID, Exercises: append([]string(nil), w.Exercises...)}, nil
}

func (s *Store) CreateWorkout(uid string, exercises []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := &storedWorkout{
		ID:        uuid.NewString(),
		Exercises: append([]string(nil), exercises...),
		Completed: make(map[string]domain.CompletedWorkout),
	}
	s.accountLocked(uid).workouts[w.ID] = w
	return w.ID
}

func (s *Store) UpdateWorkout(uid, workoutID string, exercises []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.accountLocked(uid).workouts[workoutID]
	if !ok {
		return ErrNotFound
	}
	w.Exercises = append([]string(nil), exercises...)
	return nil
}

// DeleteWorkout removes a template and every completed record under it.
func (s *Store) DeleteWorkout(uid, workoutID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	if _, ok := acc.workouts[workoutID]; !ok {
		return ErrNotFound
	}
	delete(acc.workouts, workoutID)
	return nil
}

func (s *Store) CompleteWorkout(uid, templateID string, completed domain.CompletedWorkout) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.accountLocked(uid).workouts[templateID]
	if !ok {
		return "", ErrNotFound
	}
	completed.ID = uuid.NewString()
	completed.TemplateID = templateID
	w.Completed[completed.ID] = completed
	return completed.ID, nil
}

// CompletedWorkouts returns completed records for one template, or across
// all templates when templateID is "ALL".
func (s *Store) CompletedWorkouts(uid, templateID string) ([]domain.CompletedWorkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	var out []domain.CompletedWorkout
	if templateID == "ALL" {
		for _, w := range acc.workouts {
			for _, c := range w.Completed {
				out = append(out, c)
			}
		}
		return out, nil
	}
	w, ok := acc.workouts[templateID]
	if !ok {
		return nil, ErrNotFound
	}
	for _, c := range w.Completed {
		out = append(out, c)
	}
	return out, nil
}

// --- Pain notes ---

func (s *Store) PainNotes(uid string) []domain.PainNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	out := make([]domain.PainNote, 0, len(acc.pain))
	for _, n := range acc.pain {
		out = append(out, n)
	}
	return out
}

func (s *Store) AddPainNote(uid string, note domain.PainNote) domain.PainNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	note.HashID = uuid.NewString()
	s.accountLocked(uid).pain[note.HashID] = note
	return note
}

func (s *Store) EditPainNote(uid, hashID string, painLevel int, bodyPart string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	n, ok := acc.pain[hashID]
	if !ok {
		return ErrNotFound
	}
	n.PainLevel = painLevel
	n.BodyPart = bodyPart
	acc.pain[hashID] = n
	return nil
}

func (s *Store) RemovePainNote(uid, hashID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	if _, ok := acc.pain[hashID]; !ok {
		return ErrNotFound
	}
	delete(acc.pain, hashID)
	return nil
}

// --- Journals ---

func (s *Store) Journals(uid string) []domain.Journal {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	out := make([]domain.Journal, 0, len(acc.journals))
	for _, j := range acc.journals {
		out = append(out, j)
	}
	return out
}

func (s *Store) AddJournal(uid string, entry domain.Journal) domain.Journal {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = uuid.NewString()
	s.accountLocked(uid).journals[entry.ID] = entry
	return entry
}

func (s *Store) DeleteJournal(uid, journalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	if _, ok := acc.journals[journalID]; !ok {
		return ErrNotFound
	}
	delete(acc.journals, journalID)
	return nil
}

// --- Medications ---

func (s *Store) Medications(uid string) []domain.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	out := make([]domain.Medication, 0, len(acc.medications))
	for _, m := range acc.medications {
		out = append(out, m)
	}
	return out
}

func (s *Store) AddMedication(uid string, med domain.Medication) domain.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()
	med.ID = uuid.NewString()
	s.accountLocked(uid).medications[med.ID] = med
	return med
}

func (s *Store) DeleteMedication(uid, medicationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.accountLocked(uid)
	if _, ok := acc.medications[medicationID]; !ok {
		return ErrNotFound
	}
	delete(acc.medications, medicationID)
	return nil
}
