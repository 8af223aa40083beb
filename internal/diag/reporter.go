package diag

// Reporter: минимальный контракт получения диагностик от правил.
// Диагностика передаётся по значению; порядок значения не имеет.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
