package util

// Pool é um cache genérico de instâncias reutilizáveis, com lista livre
// e conjunto ativo. Invariante: uma instância nunca está nos dois ao
// mesmo tempo. Evita realocar chunks inteiros a cada entrada e saída da
// janela de render.
type Pool[T any] struct {
	newFn   func() *T
	resetFn func(*T)
	free    []*T
	active  map[*T]struct{}
}

// NewPool cria um pool com o construtor e a função de reset fornecidos.
// O reset roda no Release, antes do objeto voltar para a lista livre.
func NewPool[T any](newFn func() *T, resetFn func(*T)) *Pool[T] {
	return &Pool[T]{
		newFn:   newFn,
		resetFn: resetFn,
		free:    make([]*T, 0, 32),
		active:  make(map[*T]struct{}),
	}
}

// Acquire retira uma instância da lista livre, ou constrói uma nova se
// a lista estiver vazia, e a registra no conjunto ativo.
func (p *Pool[T]) Acquire() *T {
	var obj *T
	if n := len(p.free); n > 0 {
		obj = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		obj = p.newFn()
	}
	p.active[obj] = struct{}{}
	return obj
}

// Release reseta a instância e a devolve para a lista livre.
// Retorna false sem fazer nada se o objeto não estiver no conjunto
// ativo (double-release é violação de precondição, não pânico).
func (p *Pool[T]) Release(obj *T) bool {
	if obj == nil {
		return false
	}
	if _, ok := p.active[obj]; !ok {
		return false
	}
	delete(p.active, obj)
	if p.resetFn != nil {
		p.resetFn(obj)
	}
	p.free = append(p.free, obj)
	return true
}

// ActiveCount retorna quantas instâncias estão em uso.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// FreeCount retorna quantas instâncias aguardam na lista livre.
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}
