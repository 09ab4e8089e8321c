package sharedqueue

import "testing"

func TestBufferZeroValue(t *testing.T) {
	var b Buffer[int]
	if _, ok := b.Pop(); ok {
		t.Fatal("pop on empty buffer should fail")
	}
	b.Push(1)
	if n := b.PushMany(2, 3); n != 2 {
		t.Fatalf("pushmany = %d want 2", n)
	}
	if v, ok := b.Front(); !ok || v != 1 {
		t.Fatalf("front = %v,%v want 1,true", v, ok)
	}
	for want := 1; want <= 3; want++ {
		if v, ok := b.Pop(); !ok || v != want {
			t.Fatalf("pop = %v,%v want %d,true", v, ok, want)
		}
	}
	if b.Len() != 0 {
		t.Fatalf("len = %d want 0", b.Len())
	}
}

func TestBufferPopZeroesSlot(t *testing.T) {
	b := NewBuffer[*int](4)
	x, y := 1, 2
	b.PushMany(&x, &y)
	backing := b.data[:2]
	b.Pop()
	if backing[0] != nil {
		t.Fatal("popped slot still references the element")
	}
	b.Reset()
	if backing[1] != nil || b.Len() != 0 {
		t.Fatal("reset left references behind")
	}
}
