package input

// State reports whether a key is currently held down.
type State interface {
	KeyPressed(key Key) bool
}

// Pressed is a State backed by a set of held keys. It stands in for a real
// window when replaying input or testing.
type Pressed struct {
	keys map[Key]struct{}
}

// NewPressed returns a Pressed with the given keys held.
func NewPressed(keys ...Key) *Pressed {
	p := &Pressed{keys: make(map[Key]struct{}, len(keys))}
	for _, k := range keys {
		p.keys[k] = struct{}{}
	}
	return p
}

// Press marks key as held.
func (p *Pressed) Press(key Key) {
	if p.keys == nil {
		p.keys = make(map[Key]struct{})
	}
	p.keys[key] = struct{}{}
}

// Release marks key as not held.
func (p *Pressed) Release(key Key) {
	delete(p.keys, key)
}

// KeyPressed implements State.
func (p *Pressed) KeyPressed(key Key) bool {
	_, ok := p.keys[key]
	return ok
}
