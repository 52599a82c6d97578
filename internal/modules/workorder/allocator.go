package workorder

import (
	"context"
	"strings"

	"fenix/internal/domain"
)

// Allocator predicts the next work-order code for display before a
// record exists. The prediction is not a reservation: the code stored
// at insert time is the authoritative one and may differ when another
// intake lands first.
type Allocator struct {
	repo        AllocatorRepository
	pointOfSale string
}

func NewAllocator(repo AllocatorRepository, pointOfSale string) *Allocator {
	return &Allocator{repo: repo, pointOfSale: pointOfSale}
}

// codeStrategy returns a usable code or reports that the next strategy
// should be tried.
type codeStrategy func(ctx context.Context) (string, bool)

// NextCode never fails: strategies are tried in order and the terminal
// one always produces the first code of the series.
func (a *Allocator) NextCode(ctx context.Context) string {
	for _, strategy := range []codeStrategy{a.fromSequence, a.fromScan} {
		if code, ok := strategy(ctx); ok {
			return code
		}
	}
	return domain.NextWorkOrderCode(a.pointOfSale, "")
}

// fromSequence asks the server-side sequence function. Whatever
// non-empty value it returns is used verbatim.
func (a *Allocator) fromSequence(ctx context.Context) (string, bool) {
	code, err := a.repo.NextCodeFromSequence(ctx, a.pointOfSale)
	if err != nil {
		return "", false
	}
	code = strings.TrimSpace(code)
	return code, code != ""
}

// fromScan increments the highest existing code for the point of sale.
// An empty table yields the first code; a failed query falls through to
// the terminal default.
func (a *Allocator) fromScan(ctx context.Context) (string, bool) {
	last, err := a.repo.LastCodeWithPrefix(ctx, a.pointOfSale+"-")
	if err != nil {
		return "", false
	}
	return domain.NextWorkOrderCode(a.pointOfSale, last), true
}
