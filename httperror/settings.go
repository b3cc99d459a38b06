package httperror

import "sync"

// Settings holds the switches that shape errors built through it.
// A Settings is safe for concurrent use.
type Settings struct {
	mu             sync.RWMutex
	includeStack   bool
	defaultContext map[string]any
}

var defaultSettings = NewSettings()

// NewSettings returns Settings with stacks included and no default context.
func NewSettings() *Settings {
	return &Settings{includeStack: true}
}

// Default returns the Settings used by the package-level functions.
func Default() *Settings { return defaultSettings }

// SetIncludeStack controls whether ToJSON parses the raw stack. It applies to
// every later serialization of errors bound to s.
func (s *Settings) SetIncludeStack(include bool) {
	s.mu.Lock()
	s.includeStack = include
	s.mu.Unlock()
}

// IncludeStack reports the current stack switch.
func (s *Settings) IncludeStack() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.includeStack
}

// SetDefaultContext sets the context merged under the instance context of
// every error constructed afterwards. Nil clears it. The map is copied.
func (s *Settings) SetDefaultContext(ctx map[string]any) {
	s.mu.Lock()
	s.defaultContext = cloneMap(ctx)
	s.mu.Unlock()
}

// DefaultContext returns a copy of the current default context, or nil.
func (s *Settings) DefaultContext() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneMap(s.defaultContext)
}

// mergeContext layers ctx over the default context, one level deep.
func (s *Settings) mergeContext(ctx map[string]any) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.defaultContext == nil && ctx == nil {
		return nil
	}

	out := cloneMap(s.defaultContext)
	if out == nil {
		out = make(map[string]any, len(ctx))
	}

	for k, v := range ctx {
		out[k] = cloneValue(v)
	}

	return out
}

// SetIncludeStack sets the stack switch on the default Settings.
func SetIncludeStack(include bool) { defaultSettings.SetIncludeStack(include) }

// SetDefaultContext sets the default context on the default Settings.
func SetDefaultContext(ctx map[string]any) { defaultSettings.SetDefaultContext(ctx) }
