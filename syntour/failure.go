package syntour

import (
	"fmt"

	"github.com/samber/mo"
)

// FailureKind is a flat enumeration of the failure classes the tour
// exercises. Matching is by kind, never by type hierarchy.
type FailureKind string

const KindAbsentValue FailureKind = "absent_value"

// Failure is the single error type produced by the demonstration steps.
type Failure struct {
	Kind FailureKind
	Op   string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: value is absent", f.Op)
}

// Filter is a predicate evaluated after a failure is caught. It may have
// side effects (typically logging) and reports whether the failure is
// considered handled. A false result means the failure must propagate.
type Filter func(err error) bool

// Length reads the length of an optional string. It is guaranteed to fail
// with an absent-value failure when the value is absent.
func Length(o mo.Option[string]) (int, error) {
	s, ok := o.Get()
	if !ok {
		return 0, &Failure{Kind: KindAbsentValue, Op: "read length"}
	}

	return len(s), nil
}
