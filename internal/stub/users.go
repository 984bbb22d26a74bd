package stub

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/buildflow/client/internal/core/domain"
)

// demoAccount is one hardcoded sample login served by the stub.
type demoAccount struct {
	user     domain.User
	password string
	hash     []byte
}

// demoAccounts mirrors the demo roster of the real backend: one admin, one
// manager, three workers.
func demoAccounts() map[string]*demoAccount {
	users := []struct {
		user     domain.User
		password string
	}{
		{domain.User{Username: "admin", Name: "John Admin", Email: "admin@buildflow.com", Role: domain.RoleAdmin}, "admin123"},
		{domain.User{Username: "manager1", Name: "Sarah Manager", Email: "sarah@buildflow.com", Role: domain.RoleManager, ManagedProjects: []int{1, 2}}, "manager123"},
		{domain.User{Username: "worker1", Name: "Mike Construction", Email: "mike@buildflow.com", Role: domain.RoleWorker, WorkerName: "Mike Construction"}, "worker123"},
		{domain.User{Username: "worker2", Name: "Lisa Field", Email: "lisa@buildflow.com", Role: domain.RoleWorker, WorkerName: "Lisa Field"}, "worker123"},
		{domain.User{Username: "worker3", Name: "Construction Team A", Email: "teama@buildflow.com", Role: domain.RoleWorker, WorkerName: "Construction Team A"}, "worker123"},
	}

	accounts := make(map[string]*demoAccount, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.MinCost)
		if err != nil {
			panic(fmt.Sprintf("stub: hash demo password: %v", err))
		}
		accounts[u.user.Username] = &demoAccount{user: u.user, password: u.password, hash: hash}
	}
	return accounts
}

// authenticate verifies a username/password pair against the demo roster.
func (s *Server) authenticate(username, password string) (*domain.User, bool) {
	acct, ok := s.accounts[username]
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(acct.hash, []byte(password)) != nil {
		return nil, false
	}
	user := acct.user
	return &user, true
}

// issueToken signs an HS256 JWT carrying the subject and role, matching the
// claim shape of the real backend.
func (s *Server) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parseToken validates a bearer token and returns the demo account it names.
func (s *Server) parseToken(token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, _ := claims["sub"].(string)
	acct, ok := s.accounts[sub]
	if !ok {
		return nil, fmt.Errorf("unknown subject")
	}
	user := acct.user
	return &user, nil
}
