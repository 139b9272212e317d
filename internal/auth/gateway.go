package auth

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/veldwerk/backend/internal/model"
	"github.com/veldwerk/backend/internal/repository"
)

// ErrNotConfigured is returned by sign-in/out when the gateway has no
// backing store to authenticate against.
var ErrNotConfigured = errors.New("auth: not configured")

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Gateway manages the administrative session: credential sign-in, the
// current-user snapshot, and change notification. Auth state resolves
// asynchronously at startup, so callers that need an authoritative snapshot
// wait on WaitUntilReady first.
type Gateway struct {
	repo   repository.AdminRepository // nil when unconfigured
	secret []byte

	mu        sync.Mutex
	current   *model.AdminUser
	subs      map[int]func(*model.AdminUser)
	nextSubID int

	readyOnce sync.Once
	ready     chan struct{}
}

// NewGateway creates a Gateway. A nil repo produces a degraded gateway:
// sign-in/out fail with ErrNotConfigured, snapshots are empty, and
// WaitUntilReady resolves immediately.
func NewGateway(repo repository.AdminRepository, secret []byte) *Gateway {
	g := &Gateway{
		repo:   repo,
		secret: secret,
		subs:   make(map[int]func(*model.AdminUser)),
		ready:  make(chan struct{}),
	}
	if repo == nil {
		g.markReady()
	}
	return g
}

// SignIn verifies the credential pair, records the signed-in user, and
// returns a session token for it.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (string, error) {
	if g.repo == nil {
		return "", ErrNotConfigured
	}
	defer g.markReady()

	user, err := g.repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	g.setCurrent(user)
	return CreateSessionToken(user.ID, g.secret), nil
}

// SignOut clears the current user and notifies subscribers.
func (g *Gateway) SignOut(ctx context.Context) error {
	if g.repo == nil {
		return ErrNotConfigured
	}
	defer g.markReady()
	g.setCurrent(nil)
	return nil
}

// Restore resolves a previously issued session token back into the current
// user. An empty or invalid token resolves the auth state to "signed out"
// rather than failing; startup calls this once so that WaitUntilReady has a
// defined completion point.
func (g *Gateway) Restore(ctx context.Context, token string) error {
	if g.repo == nil {
		g.markReady()
		return nil
	}
	defer g.markReady()

	if token == "" {
		g.setCurrent(nil)
		return nil
	}
	userID, err := VerifySessionToken(token, g.secret)
	if err != nil {
		g.setCurrent(nil)
		return nil
	}
	user, err := g.repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		g.setCurrent(nil)
		return nil
	}
	if err != nil {
		return err
	}
	g.setCurrent(user)
	return nil
}

// CurrentUser returns the signed-in admin, or nil. Not authoritative until
// WaitUntilReady has resolved.
func (g *Gateway) CurrentUser() *model.AdminUser {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// IsAuthenticated reports whether an admin is signed in.
func (g *Gateway) IsAuthenticated() bool {
	return g.CurrentUser() != nil
}

// OnChange registers a callback invoked with the new snapshot on every
// sign-in and sign-out. The returned function unsubscribes; for a degraded
// gateway it is a no-op over a subscription that will never fire.
func (g *Gateway) OnChange(fn func(*model.AdminUser)) func() {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextSubID
	g.nextSubID++
	g.subs[id] = fn
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.subs, id)
	}
}

// WaitUntilReady blocks until the first auth-state resolution (a Restore,
// SignIn or SignOut) and returns the snapshot at that point. Returns
// immediately for a degraded gateway.
func (g *Gateway) WaitUntilReady(ctx context.Context) (*model.AdminUser, error) {
	select {
	case <-g.ready:
		return g.CurrentUser(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *Gateway) setCurrent(user *model.AdminUser) {
	g.mu.Lock()
	g.current = user
	subs := make([]func(*model.AdminUser), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}

func (g *Gateway) markReady() {
	g.readyOnce.Do(func() { close(g.ready) })
}

// HashPassword produces a bcrypt hash for storing admin credentials.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
