package core

// Layer is a slice of the frame (game world, debug overlay, ...). Layers
// render bottom to top and receive events top to bottom.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct {
	list []Layer
	eng  *Engine
}

func NewLayerStack(e *Engine) *LayerStack { return &LayerStack{eng: e} }

// Push attaches l on top of the stack.
func (ls *LayerStack) Push(l Layer) {
	ls.list = append(ls.list, l)
	l.OnAttach(ls.eng)
}

// Pop detaches and returns the top layer.
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list[i] = nil
	ls.list = ls.list[:i]
	l.OnDetach(ls.eng)
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

// Clear detaches every layer, top first.
func (ls *LayerStack) Clear() {
	for ls.Len() > 0 {
		ls.Pop()
	}
}

func (ls *LayerStack) Update(dt float64) {
	for _, l := range ls.list {
		l.OnUpdate(ls.eng, dt)
	}
}

func (ls *LayerStack) Render(alpha float64) {
	for _, l := range ls.list {
		l.OnRender(ls.eng, alpha)
	}
}

// Dispatch offers ev to layers from the top down and reports whether one
// handled it.
func (ls *LayerStack) Dispatch(ev Event) bool {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if ls.list[i].OnEvent(ls.eng, ev) {
			return true
		}
	}
	return false
}
