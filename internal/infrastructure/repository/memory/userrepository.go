// Package memory provides mutex-guarded in-memory repository implementations.
// They back the test suites and any deployment that does not need durability.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  map[uint]*user.User
	nextID uint
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[uint]*user.User),
		nextID: 1,
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email() == u.Email() {
			return fmt.Errorf("email already exists: %s", u.Email())
		}
	}

	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.users[u.ID()] = u

	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID()]; !ok {
		return fmt.Errorf("user not found: %d", u.ID())
	}
	r.users[u.ID()] = u

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}
