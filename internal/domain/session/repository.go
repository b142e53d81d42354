package session

import (
	"strings"

	"ecitoyen/internal/storage/kv"
)

// Repository хранит текущую сессию (currentUser) и список
// зарегистрированных пользователей (registeredUsers).
type Repository interface {
	Current() (User, bool)
	SetCurrent(u User)
	ClearCurrent()
	FindByEmail(email string) (User, bool)
	AddUser(u User)
	UpdateUser(id string, fn func(User) User) bool
	Users() []User
}

func NewRepo(store *kv.Store) Repository {
	return &repository{
		current: kv.NewSlot[*User](store, kv.KeyCurrentUser, nil),
		users:   kv.NewList[User](store, kv.KeyRegisteredUsers),
	}
}

type repository struct {
	current *kv.Slot[*User]
	users   *kv.List[User]
}

func (r *repository) Current() (User, bool) {
	u := r.current.Value()
	if u == nil {
		return User{}, false
	}
	return *u, true
}

func (r *repository) SetCurrent(u User) {
	r.current.Set(&u)
}

// ClearCurrent удаляет ключ currentUser целиком.
func (r *repository) ClearCurrent() {
	r.current.Remove()
}

// FindByEmail возвращает первого пользователя с таким адресом.
func (r *repository) FindByEmail(email string) (User, bool) {
	email = strings.TrimSpace(email)
	for _, u := range r.users.All() {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}

func (r *repository) AddUser(u User) {
	r.users.Append(u)
}

func (r *repository) UpdateUser(id string, fn func(User) User) bool {
	return r.users.UpdateByID(id, fn)
}

func (r *repository) Users() []User {
	return r.users.All()
}
