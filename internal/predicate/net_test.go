package predicate

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listenLocal(t *testing.T) (host string, port uint16) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()
	addr := ln.Addr().(*net.TCPAddr)
	return "127.0.0.1", uint16(addr.Port)
}

// closedPort returns a port that had a listener a moment ago.
func closedPort(t *testing.T) uint16 {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return uint16(port)
}

func TestPortOpen(t *testing.T) {
	host, port := listenLocal(t)

	res := evalWith(t, Options{}, NetRequest{Verb: NetPortOpen, Host: host, Port: port, Timeout: time.Second})
	assert.Equal(t, True, res.Outcome)

	res = evalWith(t, Options{}, NetRequest{Verb: NetPortOpen, Host: "127.0.0.1", Port: closedPort(t), Timeout: time.Second})
	assert.Equal(t, False, res.Outcome)
	assert.True(t, errors.Is(res.Cause, ErrUnreachable))
}

func TestPortOpenRejectsDegenerateInput(t *testing.T) {
	host, port := listenLocal(t)

	res := evalWith(t, Options{}, NetRequest{Verb: NetPortOpen, Host: host, Port: port, Timeout: 0})
	assert.Equal(t, False, res.Outcome, "zero timeout never connects")

	res = evalWith(t, Options{}, NetRequest{Verb: NetPortOpen, Host: "", Port: port, Timeout: time.Second})
	assert.Equal(t, False, res.Outcome, "empty host is not localhost")

	res = evalWith(t, Options{}, NetRequest{Verb: NetPortOpen, Host: "host.invalid", Port: 80, Timeout: time.Second})
	assert.Equal(t, False, res.Outcome)
}

func TestPortOpenDialsOnce(t *testing.T) {
	calls := 0
	var gotAddress string
	dial := func(ctx context.Context, network, address string) (net.Conn, error) {
		calls++
		gotAddress = address
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil, errors.New("refused")
	}
	res := evalWith(t, Options{Dial: dial}, NetRequest{Verb: NetPortOpen, Host: "::1", Port: 8080, Timeout: time.Second})
	assert.Equal(t, False, res.Outcome)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "[::1]:8080", gotAddress)
}

func TestOnline(t *testing.T) {
	host, port := listenLocal(t)
	address := net.JoinHostPort(host, strconv.Itoa(int(port)))

	res := evalWith(t, Options{OnlineAddress: address}, NetRequest{Verb: NetOnline})
	assert.Equal(t, True, res.Outcome)

	var dialed string
	dial := func(_ context.Context, _, address string) (net.Conn, error) {
		dialed = address
		return nil, errors.New("network is unreachable")
	}
	res = evalWith(t, Options{Dial: dial}, NetRequest{Verb: NetOnline})
	assert.Equal(t, False, res.Outcome)
	assert.Equal(t, DefaultOnlineAddress, dialed)
}
