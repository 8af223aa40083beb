package diag

import (
	"sort"
)

// Bag is an append-only diagnostic collector. It is not safe for concurrent
// use; parallel producers keep one Bag each and Merge afterwards.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag returns a bag holding at most max diagnostics; max <= 0 means no limit.
func NewBag(max int) *Bag {
	capacity := max
	if capacity <= 0 {
		capacity = 16
	}
	return &Bag{
		items: make([]Diagnostic, 0, capacity),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Fixable counts diagnostics that carry a fix.
func (b *Bag) Fixable() int {
	n := 0
	for i := range b.items {
		if b.items[i].Fix != nil {
			n++
		}
	}
	return n
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if b.max > 0 && newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
}

// Sort сортирует диагностики по: start, end, code
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		return Less(&b.items[i], &b.items[j])
	})
}

// Less orders diagnostics by range start, range end, then rule code.
func Less(a, b *Diagnostic) bool {
	if c := a.Range.Start.Compare(b.Range.Start); c != 0 {
		return c < 0
	}
	if c := a.Range.End.Compare(b.Range.End); c != 0 {
		return c < 0
	}
	return a.Rule().Code() < b.Rule().Code()
}

type dedupKey struct {
	code string
	rng  string
	msg  string
}

// простая дедупликация (по Code+Range+Message)
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]bool, len(b.items))
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := dedupKey{code: d.Rule().Code(), rng: d.Range.String(), msg: d.Message()}
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}
