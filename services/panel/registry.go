package panel

import (
	"fmt"
	"sort"
	"sync"

	"controls-go/controls"
	"controls-go/types"
)

// BuildInput is handed to a builder to construct one control.
type BuildInput struct {
	ID     string
	Params any // type-specific, decoded by the builder
	HAL    controls.Platform
	Muxes  map[string]*controls.Multiplexer
}

// Builder constructs a control from its config params.
type Builder interface {
	Build(in BuildInput) (controls.Input, error)
}

var (
	regMu    sync.RWMutex
	builders = map[types.Kind]Builder{}
)

// RegisterBuilder installs a builder for a control type.
// It panics on duplicate registration to catch mistakes at start-up.
func RegisterBuilder(kind types.Kind, b Builder) {
	regMu.Lock()
	defer regMu.Unlock()
	if kind == "" {
		panic("panel: empty control type for builder")
	}
	if _, exists := builders[kind]; exists {
		panic(fmt.Sprintf("panel: builder already registered for type %q", kind))
	}
	builders[kind] = b
}

func lookupBuilder(kind types.Kind) (Builder, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	b, ok := builders[kind]
	return b, ok
}

// Kinds lists registered control types, sorted.
func Kinds() []types.Kind {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]types.Kind, 0, len(builders))
	for k := range builders {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
