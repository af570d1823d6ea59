package proxy

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/ygrebnov/proxy/contract"
	"github.com/ygrebnov/proxy/internal/core"
)

// synthesizedTypes memoizes synthesized implementations keyed by contract
// reflect.Type identity, process-wide. Entries are never evicted and are
// immutable once published; readers of published entries are never blocked
// by concurrent inserts.
var synthesizedTypes sync.Map // reflect.Type -> contract.Type

// typeFor returns the synthesized implementation for a validated contract,
// building it on first use. Synthesis is pure, so a duplicate build under a
// race is harmless: LoadOrStore keeps the first published type and the
// loser's build is discarded. All callers after publication observe the same
// type.
func typeFor(contractType reflect.Type, props []contract.Property, logger *zap.Logger) contract.Type {
	if cached, ok := synthesizedTypes.Load(contractType); ok {
		return cached.(contract.Type)
	}
	built := core.Synthesize(contractType, props)
	actual, loaded := synthesizedTypes.LoadOrStore(contractType, contract.Type(built))
	if !loaded {
		logger.Debug("synthesized contract implementation",
			zap.String("contract", contractType.String()),
			zap.Int("properties", len(props)),
		)
	}
	return actual.(contract.Type)
}
