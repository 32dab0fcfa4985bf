// Package session хранит токен текущей сессии поставщика.
// Один Store на процесс; сервис заказов только читает токен через ports.TokenProvider.
package session

import (
	"strings"
	"sync"
)

type Store struct {
	mu    sync.RWMutex
	token string
}

// NewStore создаёт хранилище; initial может быть пустым (сессии нет).
func NewStore(initial string) *Store {
	return &Store{token: strings.TrimSpace(initial)}
}

// SignIn запоминает токен. Пустой токен равносилен выходу.
func (s *Store) SignIn(token string) {
	s.mu.Lock()
	s.token = strings.TrimSpace(token)
	s.mu.Unlock()
}

func (s *Store) SignOut() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// Token возвращает токен и признак того, что сессия есть.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}
