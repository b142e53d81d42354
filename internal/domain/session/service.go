package session

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"ecitoyen/internal/utils/clock"
	"ecitoyen/internal/utils/ref"
)

// Значения профиля, подставляемые при входе с неизвестным адресом.
const (
	DefaultPhone   = "+243 000 000 000"
	DefaultAddress = "Kinshasa, RDC"
)

type Servicer interface {
	Login(ctx context.Context, in LoginInput) (User, error)
	Register(ctx context.Context, in RegisterInput) (User, error)
	Logout()
	Current() (User, bool)
	UpdateProfile(p ProfilePatch) (User, error)
	Users() []User
	Mode() string
}

type Service struct {
	repo      Repository
	verifier  Verifier
	validator Validator
	clock     clock.Clock
	log       *slog.Logger
}

func NewService(repo Repository, verifier Verifier, validator Validator, clk clock.Clock, log *slog.Logger) *Service {
	if clk == nil {
		clk = clock.System()
	}
	return &Service{
		repo:      repo,
		verifier:  verifier,
		validator: validator,
		clock:     clk,
		log:       log.With("component", "session_service"),
	}
}

// inferRole определяет роль нового пользователя по адресу и выбранному типу.
func inferRole(email, userType string) Role {
	switch {
	case strings.EqualFold(userType, UserTypeAdmin), strings.Contains(strings.ToLower(email), "admin"):
		return RoleAdmin
	case strings.EqualFold(userType, UserTypeAgent):
		return RoleAgent
	default:
		return RoleCitizen
	}
}

// Login открывает сессию. Пользователь с неизвестным адресом создается
// автоматически и добавляется в registeredUsers.
func (s *Service) Login(ctx context.Context, in LoginInput) (User, error) {
	email := strings.TrimSpace(in.Email)
	if err := s.validator.ValidateEmail(email); err != nil {
		return User{}, err
	}

	if err := s.verifier.Verify(ctx, email, in.Password); err != nil {
		s.log.Info("login rejected", "email", email, "error", err)
		return User{}, err
	}

	user, found := s.repo.FindByEmail(email)
	if !found {
		user = s.synthesize(email, in.UserType)
		s.repo.AddUser(user)
		s.log.Info("unknown email, profile created", "id", user.ID, "role", user.Role)
	}

	s.repo.SetCurrent(user)
	s.log.Info("user logged in", "id", user.ID, "role", user.Role)

	return user, nil
}

func (s *Service) synthesize(email, userType string) User {
	role := inferRole(email, userType)
	first, last := "Utilisateur", "Inconnu"
	if role == RoleAdmin {
		first, last = "Administrateur", "Système"
	}
	return User{
		ID:        ref.UserID(string(role), s.clock.Now()),
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     DefaultPhone,
		Address:   DefaultAddress,
		Role:      role,
	}
}

// Register создает нового пользователя и сразу открывает для него сессию.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	if err := s.validator.ValidateRegister(in); err != nil {
		s.log.Debug("validation failed", "email", in.Email, "error", err)
		return User{}, err
	}

	role := RoleCitizen
	if in.IsAgent() {
		role = RoleAgent
	}

	user := User{
		ID:        ref.UserID(string(role), s.clock.Now()),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Role:      role,
	}
	if role == RoleAgent {
		user.Matricule = strings.TrimSpace(in.Matricule)
		user.Commune = strings.TrimSpace(in.Commune)
		user.Fonction = strings.TrimSpace(in.Fonction)
		user.Service = strings.TrimSpace(in.Service)
		user.AdresseCommune = strings.TrimSpace(in.AdresseCommune)
	}

	if err := s.verifier.Enroll(ctx, user.Email, in.Password); err != nil {
		return User{}, fmt.Errorf("enroll credentials: %w", err)
	}

	if _, exists := s.repo.FindByEmail(user.Email); exists {
		s.log.Warn("email already registered, adding another profile", "email", user.Email)
	}

	s.repo.AddUser(user)
	s.repo.SetCurrent(user)
	s.log.Info("user registered", "id", user.ID, "role", user.Role)

	return user, nil
}

// Logout удаляет только currentUser; registeredUsers не меняется.
func (s *Service) Logout() {
	if u, ok := s.repo.Current(); ok {
		s.log.Info("user logged out", "id", u.ID)
	}
	s.repo.ClearCurrent()
}

func (s *Service) Current() (User, bool) {
	return s.repo.Current()
}

// UpdateProfile перезаписывает профиль сессии и соответствующую запись в registeredUsers.
func (s *Service) UpdateProfile(p ProfilePatch) (User, error) {
	current, ok := s.repo.Current()
	if !ok {
		return User{}, ErrNotAuthenticated
	}

	updated := p.Apply(current)
	if updated.FirstName == "" || updated.LastName == "" {
		return User{}, invalid("name", ErrRequiredField, "Ce champ est obligatoire")
	}

	s.repo.SetCurrent(updated)
	if !s.repo.UpdateUser(updated.ID, p.Apply) {
		s.log.Debug("session user is not in registeredUsers", "id", updated.ID)
	}

	return updated, nil
}

func (s *Service) Users() []User {
	return s.repo.Users()
}

func (s *Service) Mode() string {
	return s.verifier.Mode()
}
