// Package localstore persiste la identidad (cuenta de admin, guardias y la
// sesión activa) como archivos JSON planos bajo un directorio de datos: un
// namespace lógico por archivo, ida y vuelta objeto→texto→objeto sin campo de
// versión. Un cambio de esquema implica reset completo del almacén; no hay
// ruta de migración y no debe asumirse ninguna.
//
// Un archivo ilegible equivale a "no hay registro": el valor corrupto se
// descarta de forma oportunista y se continúa con el estado vacío en lugar de
// fallar (el ErrStorageCorrupt nunca sale de este paquete).
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/pkg/logger"
)

// Nombres de archivo por namespace.
const (
	adminFile   = "admin.json"
	guardsFile  = "guards.json"
	sessionFile = "session.json"
)

// Store almacén local compartido por los tres namespaces. Un único mutex:
// toda escritura es visible de inmediato para la siguiente lectura del mismo
// proceso (sin buffering). El proceso es el único escritor.
type Store struct {
	mu  sync.Mutex
	dir string
	log *logger.Logger

	observers []observer // orden de suscripción
	nextObsID int
}

type observer struct {
	id int
	fn func()
}

// New crea el almacén sobre dir (se crea si no existe).
func New(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Admins devuelve el adaptador del namespace de la cuenta de administrador.
func (s *Store) Admins() *AdminStore { return &AdminStore{s: s} }

// Guards devuelve el adaptador del namespace de guardias.
func (s *Store) Guards() *GuardStore { return &GuardStore{s: s} }

// Sessions devuelve el adaptador de la sesión activa (con notificaciones).
func (s *Store) Sessions() *SessionStore { return &SessionStore{s: s} }

// read deserializa el namespace en v. Devuelve false sin error si el archivo
// no existe o está corrupto (en ese caso el valor se descarta y se borra).
// El caller debe tener tomado s.mu.
func (s *Store) read(name string, v interface{}) (bool, error) {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("leer %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// Registro ilegible: se descarta y se sigue con estado vacío.
		if s.log != nil {
			s.log.Warn().Str("file", name).
				Err(fmt.Errorf("%w: %v", domain.ErrStorageCorrupt, err)).
				Msg("registro persistido ilegible, descartado")
		}
		_ = os.Remove(path)
		return false, nil
	}
	return true, nil
}

// write serializa v al namespace. El caller debe tener tomado s.mu.
func (s *Store) write(name string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o600); err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	return nil
}

// remove borra el namespace; que no exista no es error. El caller debe tener
// tomado s.mu.
func (s *Store) remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar %s: %w", name, err)
	}
	return nil
}

// subscribe registra un observador de cambios de auth.
func (s *Store) subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers = append(s.observers, observer{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.observers {
			if s.observers[i].id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// notify entrega la señal de cambio de auth a cada observador, de forma
// síncrona y en orden de suscripción, antes de retornar (sin batching ni
// debounce). Se llama sin tener tomado s.mu: cada observador relee el almacén
// como única fuente de verdad.
func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), len(s.observers))
	for i, o := range s.observers {
		fns[i] = o.fn
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
