package theme

// Key is the name the theme is persisted under.
const Key = "theme"

// KV is the persistence the Manager writes through to.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Manager owns the current theme. It reads the store once on creation and
// writes every change back through Set.
type Manager struct {
	kv      KV
	current Theme
}

// NewManager loads the persisted theme. Missing or unrecognised values fall
// back to Default; only a failing store is reported.
func NewManager(kv KV) (*Manager, error) {
	m := &Manager{kv: kv, current: Default}
	if kv == nil {
		return m, nil
	}

	v, ok, err := kv.Get(Key)
	if err != nil {
		return m, err
	}
	if ok {
		if t, err := Parse(v); err == nil {
			m.current = t
		}
	}
	return m, nil
}

// Start makes t the active theme without persisting it. Later Set and
// Toggle calls still write through.
func (m *Manager) Start(t Theme) { m.current = t }

// Current returns the active theme.
func (m *Manager) Current() Theme { return m.current }

// Set changes the theme and persists it.
func (m *Manager) Set(t Theme) error {
	m.current = t
	if m.kv == nil {
		return nil
	}
	return m.kv.Set(Key, t.String())
}

// Toggle flips between dark and light and returns the new theme.
func (m *Manager) Toggle() (Theme, error) {
	next := m.current.Toggle()
	return next, m.Set(next)
}
