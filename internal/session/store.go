package session

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdministrator = "administrator"
	RoleVendor        = "vendor"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Principal is the authenticated identity produced by a successful
// login. It is what gets serialized into the durable session file.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type VendorRegistration struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
}

type credential struct {
	hash []byte
	role string
}

// Store holds the session state machine: Anonymous or
// Authenticated(principal). Login is the only transition in, logout the
// only transition out. The credential table is fixed at construction;
// a matching login builds the principal, caches it, and persists it to
// the session file. Mutating calls queue on writeMu across the
// simulated latency, one in flight at a time.
type Store struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	latency time.Duration
	file    string
	creds   map[string]credential
	current *Principal
}

// NewStore seeds the mock credential table and, when the session file
// holds a previously persisted principal, rehydrates it without
// re-validation. An unreadable or corrupt file just means anonymous.
func NewStore(file string, latency time.Duration) *Store {
	s := &Store{
		latency: latency,
		file:    file,
		creds:   seedCredentials(),
	}

	if p, err := loadPrincipal(file); err == nil {
		s.current = p
	}
	return s
}

func seedCredentials() map[string]credential {
	creds := make(map[string]credential, 2)
	for _, c := range []struct {
		email, password, role string
	}{
		{"admin@designerme.com", "admin123", RoleAdministrator},
		{"vendor@designerme.com", "vendor123", RoleVendor},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		creds[c.email] = credential{hash: hash, role: c.role}
	}
	return creds
}

func (s *Store) simulate() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// Login checks email and password against the credential table. The
// email match is exact and case-sensitive. On success the principal
// becomes the current session and is persisted; on mismatch the
// session is left exactly as it was.
func (s *Store) Login(email, password string) (Principal, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.simulate()

	c, ok := s.creds[email]
	if !ok {
		return Principal{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
		return Principal{}, ErrInvalidCredentials
	}

	p := Principal{
		ID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
		Username: usernameFromEmail(email),
		Email:    email,
		Role:     c.role,
	}

	s.mu.Lock()
	s.current = &p
	s.mu.Unlock()

	_ = savePrincipal(s.file, p)
	return p, nil
}

// Logout clears the current session and deletes the persisted copy.
func (s *Store) Logout() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	_ = removePrincipal(s.file)
}

func (s *Store) Current() (Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Principal{}, false
	}
	return *s.current, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// RegisterVendor simulates a vendor signup round trip and hands back a
// receipt id. It deliberately mutates nothing: the storefront's vendor
// table is sample data disconnected from registration.
func (s *Store) RegisterVendor(reg VendorRegistration) (string, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.simulate()

	return "v_" + uuid.NewString(), nil
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
