package util

import "testing"

func TestUniqueQueueFIFO(t *testing.T) {
	q := NewUniqueQueue[string, int]()

	q.Enqueue("a", 1)
	q.Enqueue("b", 2)
	q.Enqueue("c", 3)

	order := []string{"a", "b", "c"}
	for _, want := range order {
		key, _, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue falhou com %d itens restantes", q.Len())
		}
		if key != want {
			t.Errorf("Dequeue retornou %q, esperado %q", key, want)
		}
	}

	if _, _, ok := q.Dequeue(); ok {
		t.Error("Dequeue em fila vazia deveria retornar false")
	}
}

func TestUniqueQueueDedup(t *testing.T) {
	q := NewUniqueQueue[string, int]()

	if !q.Enqueue("a", 1) {
		t.Error("primeiro Enqueue deveria retornar true")
	}
	if q.Enqueue("a", 99) {
		t.Error("Enqueue repetido deveria retornar false")
	}
	if q.Len() != 1 {
		t.Fatalf("Len = %d, esperado 1", q.Len())
	}

	// O valor é atualizado mas a posição na fila é mantida.
	q.Enqueue("b", 2)
	key, value, _ := q.Dequeue()
	if key != "a" || value != 99 {
		t.Errorf("Dequeue retornou (%q, %d), esperado (a, 99)", key, value)
	}
}

func TestUniqueQueueContainsClear(t *testing.T) {
	q := NewUniqueQueue[int, string]()
	q.Enqueue(7, "x")

	if !q.Contains(7) {
		t.Error("Contains(7) deveria ser true")
	}
	if q.Contains(8) {
		t.Error("Contains(8) deveria ser false")
	}

	q.Clear()
	if q.Len() != 0 || q.Contains(7) {
		t.Error("Clear deveria esvaziar a fila e o índice de presença")
	}

	// Reenfileirar após Clear volta a funcionar como entrada nova.
	if !q.Enqueue(7, "y") {
		t.Error("Enqueue após Clear deveria retornar true")
	}
}

func TestPoolAcquireRelease(t *testing.T) {
	type thing struct{ n int }

	built := 0
	p := NewPool(
		func() *thing { built++; return &thing{} },
		func(o *thing) { o.n = 0 },
	)

	a := p.Acquire()
	a.n = 42
	if p.ActiveCount() != 1 || p.FreeCount() != 0 {
		t.Fatalf("após Acquire: active=%d free=%d", p.ActiveCount(), p.FreeCount())
	}

	if !p.Release(a) {
		t.Fatal("Release de objeto ativo deveria retornar true")
	}
	if p.ActiveCount() != 0 || p.FreeCount() != 1 {
		t.Fatalf("após Release: active=%d free=%d", p.ActiveCount(), p.FreeCount())
	}

	// Reuso: o mesmo objeto volta resetado, sem novo construtor.
	b := p.Acquire()
	if b != a {
		t.Error("Acquire deveria reutilizar a instância liberada")
	}
	if b.n != 0 {
		t.Errorf("instância reutilizada não foi resetada: n=%d", b.n)
	}
	if built != 1 {
		t.Errorf("construtor rodou %d vezes, esperado 1", built)
	}
}

func TestPoolDoubleRelease(t *testing.T) {
	type thing struct{}
	p := NewPool(func() *thing { return &thing{} }, nil)

	a := p.Acquire()
	p.Release(a)

	if p.Release(a) {
		t.Error("segundo Release do mesmo objeto deveria retornar false")
	}
	if p.FreeCount() != 1 {
		t.Errorf("double-release duplicou a lista livre: free=%d", p.FreeCount())
	}

	if p.Release(nil) {
		t.Error("Release(nil) deveria retornar false")
	}

	// Objeto que nunca passou pelo pool também é rejeitado.
	if p.Release(&thing{}) {
		t.Error("Release de objeto estranho ao pool deveria retornar false")
	}
}
