package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry   = make(map[string]EntityDefinition)
	registryMu sync.RWMutex
)

// Register adds an entity definition to the registry.
// Panics if an entity with the same key is already registered.
func Register(def EntityDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("entity already registered: %s", def.Info.Key))
	}
	if def.Info.Match == "" {
		panic(fmt.Sprintf("entity %s has no file name match", def.Info.Key))
	}

	registry[def.Info.Key] = def
}

// All returns all registered entity definitions in dispatch order.
func All() []EntityDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]EntityDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Info.Order != result[j].Info.Order {
			return result[i].Info.Order < result[j].Info.Order
		}
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// Match returns the first entity, in dispatch order, whose match string
// occurs in fileName. Returns false if the file belongs to no entity.
func Match(fileName string) (EntityDefinition, bool) {
	name := strings.ToLower(fileName)
	for _, def := range All() {
		if strings.Contains(name, def.Info.Match) {
			return def, true
		}
	}
	return EntityDefinition{}, false
}

// EntityCount returns the number of registered entities.
func EntityCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered entities.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]EntityDefinition)
}
