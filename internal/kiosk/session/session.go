// Package session guarda la lista de medicamentos de la receta actual
// entre páginas del kiosk, bajo una única clave.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"ilac-otomasyon/internal/platform/logger"
)

// Key es la clave bajo la que vive la sesión de receta.
const Key = "prescriptionDrugs"

// Drug es un medicamento tal como lo devuelve el lookup y lo guarda la sesión.
// Name es la identidad dentro de la sesión.
type Drug struct {
	Name              string `json:"name"`
	Expiry            string `json:"expiry"`
	UsageInstructions string `json:"usageInstructions"`
}

type Store interface {
	// Save reemplaza la lista guardada.
	Save(ctx context.Context, drugs []Drug) error
	// Load nunca falla: ausente o ilegible => lista vacía.
	Load(ctx context.Context) []Drug
	// Remove quita el primer registro con ese nombre; sin coincidencia no hace nada.
	Remove(ctx context.Context, name string) error
	// Clear borra la clave.
	Clear(ctx context.Context) error
}

// KV es el backend mínimo; lo cumple el repo SQLite del kiosk.
// Get devuelve (nil, nil) si la clave no existe.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type KVStore struct {
	kv  KV
	log logger.Logger
}

func NewKVStore(kv KV, log logger.Logger) *KVStore {
	if log == nil {
		log = logger.Nop()
	}
	return &KVStore{kv: kv, log: log}
}

// NewMemory es un Store en memoria, para tests y para correr sin disco.
func NewMemory() *KVStore {
	return NewKVStore(NewMemoryKV(), logger.Nop())
}

func (s *KVStore) Save(ctx context.Context, drugs []Drug) error {
	if drugs == nil {
		drugs = []Drug{}
	}
	b, err := json.Marshal(drugs)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, Key, b); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *KVStore) Load(ctx context.Context) []Drug {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		s.log.Warn("session load failed, using empty list", map[string]any{"error": err})
		return []Drug{}
	}
	if len(raw) == 0 {
		return []Drug{}
	}

	var drugs []Drug
	if err := json.Unmarshal(raw, &drugs); err != nil {
		s.log.Warn("session value unreadable, using empty list", map[string]any{"error": err})
		return []Drug{}
	}
	if drugs == nil {
		return []Drug{}
	}
	return drugs
}

func (s *KVStore) Remove(ctx context.Context, name string) error {
	// releer justo antes de escribir
	drugs := s.Load(ctx)
	for i, d := range drugs {
		if d.Name != name {
			continue
		}
		rest := make([]Drug, 0, len(drugs)-1)
		rest = append(rest, drugs[:i]...)
		rest = append(rest, drugs[i+1:]...)
		return s.Save(ctx, rest)
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// MemoryKV es un KV en memoria seguro para uso concurrente.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
