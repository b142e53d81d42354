package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"ecitoyen/internal/storage/kv"
)

// Режимы проверки пароля (AUTH_MODE).
const (
	ModeDemo     = "demo"
	ModeVerified = "verified"
)

// Verifier проверяет пароль при входе и запоминает его при регистрации.
type Verifier interface {
	Verify(ctx context.Context, email, password string) error
	Enroll(ctx context.Context, email, password string) error
	Mode() string
}

// DemoVerifier принимает любой пароль. Пароли НЕ проверяются: режим только
// для демонстрации, о чем пишется предупреждение при каждом входе.
type DemoVerifier struct {
	log *slog.Logger
}

func NewDemoVerifier(log *slog.Logger) *DemoVerifier {
	return &DemoVerifier{log: log.With("component", "demo_verifier")}
}

func (v *DemoVerifier) Verify(ctx context.Context, email, password string) error {
	v.log.Warn("password was not verified, demo auth mode is active", "email", email)
	return nil
}

func (v *DemoVerifier) Enroll(ctx context.Context, email, password string) error {
	return nil
}

func (v *DemoVerifier) Mode() string {
	return ModeDemo
}

// BcryptVerifier хранит bcrypt-хэши паролей в ключе credentials.
type BcryptVerifier struct {
	creds *kv.Slot[map[string]string]
	cost  int
	log   *slog.Logger
}

func NewBcryptVerifier(store *kv.Store, cost int, log *slog.Logger) *BcryptVerifier {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{
		creds: kv.NewSlot(store, kv.KeyCredentials, map[string]string{}),
		cost:  cost,
		log:   log.With("component", "bcrypt_verifier"),
	}
}

func credentialKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (v *BcryptVerifier) Verify(ctx context.Context, email, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	hash, ok := v.creds.Value()[credentialKey(email)]
	if !ok {
		v.log.Debug("no credential enrolled", "email", email)
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}

func (v *BcryptVerifier) Enroll(ctx context.Context, email, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return fmt.Errorf("хэш пароля: %w", err)
	}

	v.creds.Update(func(prev map[string]string) map[string]string {
		next := make(map[string]string, len(prev)+1)
		for k, h := range prev {
			next[k] = h
		}
		next[credentialKey(email)] = string(hash)
		return next
	})
	return nil
}

func (v *BcryptVerifier) Mode() string {
	return ModeVerified
}

// NewVerifier выбирает проверку пароля по режиму AUTH_MODE.
func NewVerifier(mode string, store *kv.Store, log *slog.Logger) (Verifier, error) {
	switch mode {
	case "", ModeDemo:
		return NewDemoVerifier(log), nil
	case ModeVerified:
		return NewBcryptVerifier(store, bcrypt.DefaultCost, log), nil
	}
	return nil, fmt.Errorf("неизвестный режим аутентификации: %s", mode)
}
