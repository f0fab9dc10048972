package commands

import (
	"fmt"
	"sort"
	"sync"

	"todo/internal/output"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // key, name and aliases map to command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the key, name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Key(), c.Name()}, c.Aliases()...)
	for _, name := range names {
		if _, exists := r.cmds[name]; exists {
			return fmt.Errorf("command already registered: %s", name)
		}
	}

	for _, name := range names {
		r.cmds[name] = c
	}
	return nil
}

// Find looks up a command by menu key, name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all unique commands in menu order.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		seen[cmd.Key()] = cmd
	}

	result := make([]Command, 0, len(seen))
	for _, cmd := range seen {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return keyLess(result[i].Key(), result[j].Key())
	})
	return result
}

// ExitCommand returns the first command in menu order that ends the loop.
func (r *Registry) ExitCommand() (Command, bool) {
	for _, cmd := range r.All() {
		if cmd.Exits() {
			return cmd, true
		}
	}
	return nil, false
}

// MenuItems returns the menu entries in menu order.
func (r *Registry) MenuItems() []output.MenuItem {
	cmds := r.All()
	items := make([]output.MenuItem, len(cmds))
	for i, cmd := range cmds {
		items[i] = output.MenuItem{Key: cmd.Key(), Label: cmd.Label()}
	}
	return items
}

// keyLess orders numeric keys numerically ("2" before "10").
func keyLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
