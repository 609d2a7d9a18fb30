package ibkr

import (
	"context"
	"fmt"

	"github.com/wvietor/ibkr-go/model"
	"github.com/wvietor/ibkr-go/wire"
)

// ReqContractDetails resolves a (possibly partial) contract specification
// into its full envelope. Unlike the streaming Req* methods, this one
// completes synchronously from the caller's point of view: internally it
// registers a one-shot channel keyed by request id, which sessionWrapper
// feeds from the decoder's ContractDetails/ContractDetailsEnd callbacks,
// and blocks on it (or ctx) here.
func (s *Session) ReqContractDetails(ctx context.Context, contract model.Contract) (model.Contract, error) {
	id := s.registerContractQuery(contract.ContractID, contract.Exchange)
	ch := make(chan model.Contract, 1)
	s.pendingContracts.Store(id, ch)

	enc := wire.NewEncoder().PutCode(wire.OutReqContractData).Put(wire.Int(int64(id)))
	putContract(enc, contract)
	if err := s.sendEncoded(ctx, enc); err != nil {
		s.pendingContracts.Delete(id)
		s.retire(id)
		return model.Contract{}, err
	}

	select {
	case c, ok := <-ch:
		if !ok {
			return model.Contract{}, newError(ErrValidation, fmt.Sprintf("contract details request %d returned no contract", id))
		}
		return c, nil
	case <-ctx.Done():
		s.pendingContracts.Delete(id)
		s.retire(id)
		return model.Contract{}, ctx.Err()
	case <-s.ctx.Done():
		s.pendingContracts.Delete(id)
		s.retire(id)
		return model.Contract{}, newError(ErrClosed, "session closed while awaiting contract details")
	}
}
