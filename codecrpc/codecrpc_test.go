package codecrpc

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/bij256/bij256"
	"xdao.co/bij256/cidutil"
)

func startServer(t *testing.T, srv *Server) *Client {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	RegisterCodecServer(s, srv)

	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	c := NewClient(cc)
	c.Timeout = 2 * time.Second
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCodecRPC_RoundTrip(t *testing.T) {
	client := startServer(t, &Server{Codec: Local{}})

	n, err := client.EncodeInteger([]byte{0x03, 0xC0})
	if err != nil {
		t.Fatalf("EncodeInteger: %v", err)
	}
	if n.Int64() != 1217 {
		t.Fatalf("EncodeInteger = %s, want 1217", n)
	}

	b, err := client.DecodeInteger(big.NewInt(1217))
	if err != nil {
		t.Fatalf("DecodeInteger: %v", err)
	}
	if !bytes.Equal(b, []byte{0x03, 0xC0}) {
		t.Fatalf("DecodeInteger = %x", b)
	}

	u, err := client.EncodeUnary([]byte{0x01})
	if err != nil {
		t.Fatalf("EncodeUnary: %v", err)
	}
	if u != "AA" {
		t.Fatalf("EncodeUnary = %q", u)
	}
	b, err = client.DecodeUnary(u)
	if err != nil {
		t.Fatalf("DecodeUnary: %v", err)
	}
	if !bytes.Equal(b, []byte{0x01}) {
		t.Fatalf("DecodeUnary = %x", b)
	}
}

func TestCodecRPC_Empty(t *testing.T) {
	client := startServer(t, &Server{Codec: Local{}})

	n, err := client.EncodeInteger(nil)
	if err != nil || n.Sign() != 0 {
		t.Fatalf("EncodeInteger(empty) = %v, %v", n, err)
	}
	b, err := client.DecodeInteger(new(big.Int))
	if err != nil {
		t.Fatalf("DecodeInteger(0): %v", err)
	}
	if b == nil || len(b) != 0 {
		t.Fatalf("DecodeInteger(0) = %#v", b)
	}
	u, err := client.EncodeUnary(nil)
	if err != nil || u != "" {
		t.Fatalf("EncodeUnary(empty) = %q, %v", u, err)
	}
}

func TestCodecRPC_Errors(t *testing.T) {
	p := &bij256.Projector{Ceiling: big.NewInt(1217)}
	client := startServer(t, &Server{Codec: Local{Projector: p}})

	_, err := client.DecodeUnary("AAB")
	var e *bij256.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *bij256.Error, got %T %v", err, err)
	}
	if e.Kind != bij256.KindInvalidEncoding || e.RuleID != bij256.RuleUnaryMarker || e.Offset != 2 || e.Char != 'B' {
		t.Fatalf("unexpected error: %+v", e)
	}

	_, err = client.EncodeUnary([]byte{0x03, 0xC0})
	if !bij256.IsKind(err, bij256.KindTooLarge) {
		t.Fatalf("expected KindTooLarge, got %v", err)
	}
	if got := bij256.RequiredLength(err); got == nil || got.Int64() != 1217 {
		t.Fatalf("RequiredLength = %v", got)
	}

	_, err = client.DecodeInteger(big.NewInt(-1))
	if !bij256.IsKind(err, bij256.KindInvalidLength) {
		t.Fatalf("expected KindInvalidLength, got %v", err)
	}
}

func TestCodecRPC_MalformedIntegerOnWire(t *testing.T) {
	client := startServer(t, &Server{Codec: Local{}})

	for _, in := range []string{"-5", "twelve"} {
		_, err := client.client.DecodeInteger(context.Background(), wrapperspb.String(in))
		if status.Code(err) != codes.OutOfRange {
			t.Fatalf("%q: code = %s, want OutOfRange", in, status.Code(err))
		}
		if !bij256.IsKind(mapRPC(err), bij256.KindInvalidLength) {
			t.Fatalf("%q: mapRPC lost the kind: %v", in, mapRPC(err))
		}
	}
}

func TestCodecRPC_MaxUnary(t *testing.T) {
	client := startServer(t, &Server{Codec: Local{}, MaxUnary: 100})

	u, err := client.EncodeUnary([]byte{0x63})
	if err != nil {
		t.Fatalf("EncodeUnary at limit: %v", err)
	}
	if len(u) != 100 {
		t.Fatalf("len = %d, want 100", len(u))
	}
	_, err = client.EncodeUnary([]byte{0x64})
	if got := bij256.RequiredLength(err); got == nil || got.Int64() != 101 {
		t.Fatalf("expected TooLarge with 101, got %v", err)
	}
}

func TestCodecRPC_MaxDigits(t *testing.T) {
	client := startServer(t, &Server{Codec: Local{}, MaxDigits: 4})

	b, err := client.DecodeInteger(big.NewInt(1217))
	if err != nil || !bytes.Equal(b, []byte{0x03, 0xC0}) {
		t.Fatalf("DecodeInteger(1217) = %x, %v", b, err)
	}

	_, err = client.DecodeInteger(big.NewInt(12170))
	if !bij256.IsKind(err, bij256.KindInvalidLength) || bij256.RuleID(err) != bij256.RuleLengthLimit {
		t.Fatalf("expected %s, got %v", bij256.RuleLengthLimit, err)
	}

	// Whitespace around the digits is not counted.
	_, err = client.client.DecodeInteger(context.Background(), wrapperspb.String(" 1217\n"))
	if err != nil {
		t.Fatalf("padded text: %v", err)
	}
	_, err = client.client.DecodeInteger(context.Background(), wrapperspb.String("00001"))
	if status.Code(err) != codes.OutOfRange {
		t.Fatalf("code = %s, want OutOfRange", status.Code(err))
	}
}

func TestServer_MissingCodec(t *testing.T) {
	var s *Server
	_, err := s.EncodeInteger(context.Background(), wrapperspb.Bytes(nil))
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s", status.Code(err))
	}
	_, err = (&Server{}).DecodeUnary(context.Background(), wrapperspb.String(""))
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s", status.Code(err))
	}
}

func TestMapRPC_PassesForeignStatuses(t *testing.T) {
	foreign := status.Error(codes.InvalidArgument, "grpc: something else")
	if got := mapRPC(foreign); got != foreign {
		t.Fatalf("foreign status rewritten: %v", got)
	}
	plain := errors.New("plain")
	if got := mapRPC(plain); got != plain {
		t.Fatalf("plain error rewritten: %v", got)
	}
	if status.Code(mapErr(plain)) != codes.Internal {
		t.Fatalf("non-core errors must map to Internal")
	}
}

func TestCheckCID(t *testing.T) {
	header := metadata.Pairs(CIDHeader, cidutil.String([]byte("y")))
	if _, err := checkCID(header, []byte("x")); err == nil {
		t.Fatalf("expected CID mismatch")
	}
	b, err := checkCID(metadata.Pairs(CIDHeader, cidutil.String([]byte("x"))), []byte("x"))
	if err != nil || string(b) != "x" {
		t.Fatalf("checkCID = %q, %v", b, err)
	}
	if b, err := checkCID(nil, nil); err != nil || b == nil {
		t.Fatalf("checkCID without header = %#v, %v", b, err)
	}
}
