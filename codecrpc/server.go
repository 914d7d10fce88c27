package codecrpc

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/bij256/bij256"
	"xdao.co/bij256/cidutil"
	"xdao.co/bij256/model"
)

// CIDHeader is the response header binding returned bytes to their CID.
const CIDHeader = "bij256-cid"

// Server exposes a Codec over the Codec gRPC service.
type Server struct {
	UnimplementedCodecServer
	Codec Codec

	// MaxUnary, when positive, is the longest unary reply the server will
	// build, independent of the codec's own ceiling.
	MaxUnary int64

	// MaxDigits, when positive, is the longest decimal integer DecodeInteger
	// accepts. Surrounding whitespace does not count.
	MaxDigits int
}

func (s *Server) EncodeInteger(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Codec == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing codec")
	}
	n, err := s.Codec.EncodeInteger(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(model.FormatInteger(n)), nil
}

func (s *Server) DecodeInteger(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	if s == nil || s.Codec == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing codec")
	}
	text := strings.TrimSpace(in.GetValue())
	if s.MaxDigits > 0 && len(text) > s.MaxDigits {
		e := bij256.NewInvalidLength(bij256.RuleLengthLimit,
			fmt.Sprintf("length has %d digits, server limit is %d", len(text), s.MaxDigits), nil)
		return nil, mapErr(e)
	}
	n, err := model.ParseInteger(text)
	if err != nil {
		return nil, mapErr(err)
	}
	b, err := s.Codec.DecodeInteger(n)
	if err != nil {
		return nil, mapErr(err)
	}
	bindCID(ctx, b)
	return wrapperspb.Bytes(b), nil
}

func (s *Server) EncodeUnary(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Codec == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing codec")
	}
	b := in.GetValue()
	if s.MaxUnary > 0 {
		n, err := s.Codec.EncodeInteger(b)
		if err != nil {
			return nil, mapErr(err)
		}
		if n.Cmp(big.NewInt(s.MaxUnary)) > 0 {
			e := &bij256.Error{
				Kind:     bij256.KindTooLarge,
				RuleID:   bij256.RuleUnaryTooLarge,
				Message:  "unary string of length " + n.String() + " exceeds the server reply limit; use EncodeInteger instead",
				Required: n,
			}
			return nil, mapErr(e)
		}
	}
	u, err := s.Codec.EncodeUnary(b)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(u), nil
}

func (s *Server) DecodeUnary(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	if s == nil || s.Codec == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing codec")
	}
	b, err := s.Codec.DecodeUnary(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	bindCID(ctx, b)
	return wrapperspb.Bytes(b), nil
}

// bindCID attaches the CID of b as a response header. Outside a gRPC call
// (direct method use) there is no stream to attach to and this is a no-op.
func bindCID(ctx context.Context, b []byte) {
	id := cidutil.String(b)
	if id == "" {
		return
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(CIDHeader, id))
}
