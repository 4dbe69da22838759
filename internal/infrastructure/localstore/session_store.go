package localstore

import (
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore adaptador del namespace session.json: el puntero a la sesión
// activa única. Cada transición de estado de auth (Establish/Clear) dispara la
// notificación "auth changed" de forma síncrona antes de retornar.
type SessionStore struct {
	s *Store
}

// Current devuelve la sesión activa o (nil, nil) si no hay ninguna (incluido
// el caso de archivo corrupto, que se descarta).
func (st *SessionStore) Current() (*entity.SessionUser, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	var user entity.SessionUser
	ok, err := st.s.read(sessionFile, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// Establish reemplaza la sesión activa completa y notifica a los observadores.
func (st *SessionStore) Establish(user *entity.SessionUser) error {
	st.s.mu.Lock()
	err := st.s.write(sessionFile, user)
	st.s.mu.Unlock()
	if err != nil {
		return err
	}
	st.s.notify()
	return nil
}

// Clear destruye la sesión activa y notifica a los observadores.
func (st *SessionStore) Clear() error {
	st.s.mu.Lock()
	err := st.s.remove(sessionFile)
	st.s.mu.Unlock()
	if err != nil {
		return err
	}
	st.s.notify()
	return nil
}

// Subscribe registra un observador de cambios de auth y devuelve su baja.
func (st *SessionStore) Subscribe(fn func()) func() {
	return st.s.subscribe(fn)
}
