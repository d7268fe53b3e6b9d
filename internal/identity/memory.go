package identity

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type memoryAccount struct {
	account Account
	hash    []byte
}

// MemoryProvider is an in-memory Provider and ProfileStore with the same
// semantics as the Postgres adapter, including uniqueness enforcement under
// its mutex. Used by tests and the no-database dev mode.
type MemoryProvider struct {
	mu       sync.RWMutex
	accounts map[string]memoryAccount // keyed by address
	profiles map[string]Profile       // keyed by phone
}

// NewMemoryProvider builds an empty in-memory identity backend.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		accounts: make(map[string]memoryAccount),
		profiles: make(map[string]Profile),
	}
}

func (m *MemoryProvider) CreateAccount(_ context.Context, address, secret string, meta Metadata) (Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[address]; exists {
		return Account{}, ErrAccountExists
	}
	if _, exists := m.profiles[meta.Phone]; exists {
		return Account{}, ErrAccountExists
	}

	now := time.Now().UTC()
	account := Account{Address: address, FullName: meta.FullName, Phone: meta.Phone, CreatedAt: now}
	m.accounts[address] = memoryAccount{account: account, hash: hash}
	m.profiles[meta.Phone] = Profile{Phone: meta.Phone, HasPaid: false, CreatedAt: now}

	return account, nil
}

func (m *MemoryProvider) VerifyCredentials(_ context.Context, address, secret string) (Session, error) {
	m.mu.RLock()
	stored, ok := m.accounts[address]
	m.mu.RUnlock()

	if !ok {
		return Session{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(stored.hash, []byte(secret)); err != nil {
		return Session{}, ErrBadCredentials
	}
	return Session{Account: stored.account, VerifiedAt: time.Now().UTC()}, nil
}

func (m *MemoryProvider) FindByPhone(_ context.Context, phone string) (Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, ok := m.profiles[phone]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return profile, nil
}

func (m *MemoryProvider) MarkPaid(_ context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.profiles[phone]
	if !ok {
		return ErrProfileNotFound
	}
	profile.HasPaid = true
	m.profiles[phone] = profile
	return nil
}
