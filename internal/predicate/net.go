package predicate

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"
)

func (e *Evaluator) evalNet(ctx context.Context, r NetRequest) Result {
	switch r.Verb {
	case NetOnline:
		return e.probe(ctx, e.onlineAddress, e.onlineTimeout)
	case NetPortOpen:
		if r.Host == "" {
			return falseBecause(fmt.Errorf("%w: empty host", ErrUnreachable))
		}
		return e.probe(ctx, net.JoinHostPort(r.Host, strconv.Itoa(int(r.Port))), r.Timeout)
	}
	return unknownVerb(FamilyNet, r.Verb)
}

// probe makes exactly one TCP connection attempt. Name resolution counts
// against the timeout. A non-positive timeout never connects.
func (e *Evaluator) probe(ctx context.Context, address string, timeout time.Duration) Result {
	if timeout <= 0 {
		return falseBecause(fmt.Errorf("%w: %s: zero timeout", ErrUnreachable, address))
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := e.dial(ctx, "tcp", address)
	if err != nil {
		return falseBecause(fmt.Errorf("%w: %s: %v", ErrUnreachable, address, err))
	}
	conn.Close()
	return verdict(true)
}
