package games

import (
	"fmt"
	"sync"

	"casino/domain/entities"
)

// Registry holds the playable game variants keyed by game type.
type Registry struct {
	mu       sync.RWMutex
	variants map[entities.GameType]Variant
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{variants: make(map[entities.GameType]Variant)}
}

// NewDefaultRegistry creates a registry with all six standard games.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, v := range []Variant{
		NewDice(),
		NewSlots(),
		NewBlackjack(),
		NewRoulette(),
		NewPoker(),
		NewLottery(),
	} {
		if err := r.Register(v); err != nil {
			panic(fmt.Sprintf("failed to register default game: %v", err))
		}
	}
	return r
}

// Register adds a variant, replacing any existing one of the same type.
func (r *Registry) Register(v Variant) error {
	if v == nil {
		return fmt.Errorf("cannot register nil variant")
	}
	if v.Type() == "" {
		return fmt.Errorf("variant game type cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[v.Type()] = v
	return nil
}

// Get retrieves a variant by game type.
func (r *Registry) Get(gameType entities.GameType) (Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.variants[gameType]
	return v, ok
}

// Types returns the registered game types.
func (r *Registry) Types() []entities.GameType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]entities.GameType, 0, len(r.variants))
	for t := range r.variants {
		types = append(types, t)
	}
	return types
}
