package codecrpc

import (
	"context"
	"math/big"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/bij256/bij256"
	"xdao.co/bij256/cidutil"
	"xdao.co/bij256/model"
)

// Client implements Codec over a Codec gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client CodecClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

var _ Codec = (*Client)(nil)

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return NewClient(cc), nil
}

// NewClient wraps an existing connection. Close closes it.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewCodecClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) EncodeInteger(b []byte) (*big.Int, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.EncodeInteger(ctx, wrapperspb.Bytes(b))
	if err != nil {
		return nil, mapRPC(err)
	}
	return model.ParseInteger(reply.GetValue())
}

func (c *Client) DecodeInteger(n *big.Int) ([]byte, error) {
	if n == nil || n.Sign() < 0 {
		// Rejected locally with the same error the server would send.
		return bij256.DecodeInteger(n)
	}
	ctx, cancel := c.ctx()
	defer cancel()

	var header metadata.MD
	reply, err := c.client.DecodeInteger(ctx, wrapperspb.String(model.FormatInteger(n)), grpc.Header(&header))
	if err != nil {
		return nil, mapRPC(err)
	}
	return checkCID(header, reply.GetValue())
}

func (c *Client) EncodeUnary(b []byte) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.EncodeUnary(ctx, wrapperspb.Bytes(b))
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) DecodeUnary(s string) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	var header metadata.MD
	reply, err := c.client.DecodeUnary(ctx, wrapperspb.String(s), grpc.Header(&header))
	if err != nil {
		return nil, mapRPC(err)
	}
	return checkCID(header, reply.GetValue())
}

func checkCID(header metadata.MD, b []byte) ([]byte, error) {
	if b == nil {
		b = []byte{}
	}
	ids := header.Get(CIDHeader)
	if len(ids) == 0 {
		return b, nil
	}
	if err := cidutil.Verify(ids[0], b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
