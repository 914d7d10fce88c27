package codecrpc

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/bij256/bij256"
)

const (
	errorDomain = "bij256.xdao.co"

	metaRequired = "required_length"
	metaOffset   = "offset"
	metaChar     = "char"
)

func codeFor(kind bij256.Kind) codes.Code {
	switch kind {
	case bij256.KindInvalidLength:
		return codes.OutOfRange
	case bij256.KindTooLarge:
		return codes.ResourceExhausted
	case bij256.KindInvalidEncoding:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

func kindFor(code codes.Code) (bij256.Kind, bool) {
	switch code {
	case codes.OutOfRange:
		return bij256.KindInvalidLength, true
	case codes.ResourceExhausted:
		return bij256.KindTooLarge, true
	case codes.InvalidArgument:
		return bij256.KindInvalidEncoding, true
	default:
		return "", false
	}
}

// mapErr converts a core error into a gRPC status. The RuleID and the
// kind-specific fields travel in an ErrorInfo detail.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var e *bij256.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}
	st := status.New(codeFor(e.Kind), e.Error())
	info := &errdetails.ErrorInfo{Reason: e.RuleID, Domain: errorDomain, Metadata: map[string]string{}}
	switch e.Kind {
	case bij256.KindTooLarge:
		if e.Required != nil {
			info.Metadata[metaRequired] = e.Required.String()
		}
	case bij256.KindInvalidEncoding:
		info.Metadata[metaOffset] = strconv.Itoa(e.Offset)
		info.Metadata[metaChar] = strconv.Itoa(int(e.Char))
	}
	withInfo, derr := st.WithDetails(info)
	if derr != nil {
		return st.Err()
	}
	return withInfo.Err()
}

// mapRPC converts a status produced by mapErr back into a *bij256.Error.
// Statuses that do not carry a core kind are returned unchanged.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	kind, ok := kindFor(st.Code())
	if !ok {
		return err
	}
	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if i, ok := d.(*errdetails.ErrorInfo); ok && i.GetDomain() == errorDomain {
			info = i
			break
		}
	}
	if info == nil {
		// Not one of ours; InvalidArgument and friends are also used by grpc itself.
		return err
	}

	out := &bij256.Error{
		Kind:    kind,
		RuleID:  info.GetReason(),
		Message: strings.TrimPrefix(st.Message(), "bij256: "),
	}
	md := info.GetMetadata()
	switch kind {
	case bij256.KindTooLarge:
		if v, ok := new(big.Int).SetString(md[metaRequired], 10); ok {
			out.Required = v
		}
	case bij256.KindInvalidEncoding:
		out.Offset, _ = strconv.Atoi(md[metaOffset])
		c, _ := strconv.Atoi(md[metaChar])
		out.Char = byte(c)
	}
	return out
}
