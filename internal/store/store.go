// Package store persists patient accounts to a line-oriented text file.
//
// Each line holds one patient as seven comma-separated fields:
// username,password,name,age,gender,contact,address. Booleans serialize as
// literal "true"/"false". Fields are not escaped, so a comma inside a name or
// address corrupts that line on reload; this is a known limitation of the
// format. Legacy two-field lines (username,password) are accepted on read and
// rewritten as full seven-field lines on the next save.
//
// Only credentials and profile survive a reload. Appointment, injury and
// report histories are in-memory state and are not persisted.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sportsclinic/injury-clinic/internal/patient"
	"github.com/sportsclinic/injury-clinic/internal/person"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

// Store is the ordered, in-memory collection of accounts plus its file
// backing. All operations are mutex-guarded so concurrent HTTP sessions
// cannot interleave a load-mutate-save cycle.
type Store struct {
	mu       sync.Mutex
	path     string
	patients []*patient.Patient
	skipped  int
	log      zerolog.Logger
}

func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the account file into memory, replacing any previously loaded
// accounts. A missing file is an empty store, not an error. Malformed lines
// are skipped but counted and logged.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.patients = nil
			s.skipped = 0
			return nil
		}
		return fmt.Errorf("open account file: %w", err)
	}
	defer f.Close()

	var loaded []*patient.Patient
	skipped := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			skipped++
			s.log.Warn().Err(err).Str("line", line).Msg("skipping malformed account line")
			continue
		}
		loaded = append(loaded, p)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read account file: %w", err)
	}

	s.patients = loaded
	s.skipped = skipped
	if skipped > 0 {
		s.log.Warn().Int("skipped", skipped).Str("path", s.path).Msg("account file had malformed lines")
	}
	return nil
}

func parseLine(line string) (*patient.Patient, error) {
	parts := strings.Split(line, ",")
	switch len(parts) {
	case 7:
		age, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("parse age: %w", err)
		}
		gender, err := strconv.ParseBool(parts[4])
		if err != nil {
			return nil, fmt.Errorf("parse gender: %w", err)
		}
		profile, err := person.NewProfile(parts[2], age, gender, parts[5], parts[6])
		if err != nil {
			// Address may legitimately be empty; only contact is required
			// beyond the age check, and a stored blank contact falls back to
			// the account default rather than dropping the whole line.
			if errors.Is(err, person.ErrMissingContact) {
				profile, err = person.NewProfile(parts[2], age, gender, patient.DefaultContact, parts[6])
			}
			if err != nil {
				return nil, fmt.Errorf("parse profile: %w", err)
			}
		}
		return patient.New(parts[0], parts[1], profile), nil
	case 2:
		return patient.NewWithDefaults(parts[0], parts[1]), nil
	default:
		return nil, fmt.Errorf("expected 2 or 7 fields, got %d", len(parts))
	}
}

// Save rewrites the whole account file from memory. The write goes to a
// temporary file in the same directory which is then renamed over the target,
// so a crash mid-write cannot truncate the existing store.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp account file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, p := range s.patients {
		line := strings.Join([]string{
			p.Username,
			p.Password,
			p.Profile.Name,
			strconv.Itoa(p.Profile.Age),
			strconv.FormatBool(p.Profile.Gender),
			p.Profile.Contact,
			p.Profile.Address,
		}, ",")
		if _, err := fmt.Fprintln(w, line); err != nil {
			tmp.Close()
			return fmt.Errorf("write account file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush account file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp account file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace account file: %w", err)
	}
	return nil
}

// Add registers a new patient in memory. The username must be unused.
// Callers persist explicitly via Save.
func (s *Store) Add(p *patient.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOfLocked(p.Username) >= 0 {
		return ErrUsernameTaken
	}
	s.patients = append(s.patients, p)
	return nil
}

// Update replaces the stored patient with the same username.
func (s *Store) Update(p *patient.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfLocked(p.Username)
	if i < 0 {
		return ErrPatientNotFound
	}
	s.patients[i] = p
	return nil
}

// IsUsernameTaken reports whether a username is already registered.
// Comparison is case-sensitive exact match.
func (s *Store) IsUsernameTaken(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOfLocked(username) >= 0
}

// Validate checks credentials by exact match on both fields.
func (s *Store) Validate(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfLocked(username)
	return i >= 0 && s.patients[i].Password == password
}

// GetByUsername returns the stored patient for a username.
func (s *Store) GetByUsername(username string) (*patient.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOfLocked(username)
	if i < 0 {
		return nil, ErrPatientNotFound
	}
	return s.patients[i], nil
}

// All returns the accounts in load/registration order.
func (s *Store) All() []*patient.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*patient.Patient(nil), s.patients...)
}

// Len reports the number of loaded accounts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.patients)
}

// SkippedLines reports how many malformed lines the last Load dropped.
func (s *Store) SkippedLines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skipped
}

func (s *Store) indexOfLocked(username string) int {
	for i, p := range s.patients {
		if p.Username == username {
			return i
		}
	}
	return -1
}
