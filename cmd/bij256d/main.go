package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"xdao.co/bij256/codecrpc"
	"xdao.co/bij256/profile"
)

func main() {
	fs := flag.NewFlagSet("bij256d", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7780", "listen address")
	maxMsg := fs.Int("max-msg-bytes", 16<<20, "Max gRPC message size in bytes (also caps unary replies)")
	maxDigits := fs.Int("max-decode-digits", 1<<18, "Longest decimal integer DecodeInteger accepts (0 = unlimited)")
	listProfiles := fs.Bool("list-profiles", false, "List ceiling profiles and exit")

	pf := profile.RegisterFlags(fs)

	_ = fs.Parse(os.Args[1:])
	if *listProfiles {
		for _, p := range profile.List() {
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", p.Name, p.Ceiling, p.Description)
		}
		return
	}

	p, err := pf.Projector()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *maxMsg <= 0 {
		fmt.Fprintln(os.Stderr, "--max-msg-bytes must be positive")
		os.Exit(2)
	}
	if *maxDigits < 0 {
		fmt.Fprintln(os.Stderr, "--max-decode-digits must not be negative")
		os.Exit(2)
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(*maxMsg),
		grpc.MaxSendMsgSize(*maxMsg),
	)
	// Leave headroom for protobuf framing.
	codecrpc.RegisterCodecServer(s, &codecrpc.Server{
		Codec:     codecrpc.Local{Projector: p},
		MaxUnary:  int64(*maxMsg) - 64,
		MaxDigits: *maxDigits,
	})

	fmt.Fprintf(os.Stderr, "bij256d listening on %s (ceiling=%s marker=%q)\n", lis.Addr().String(), p.Ceiling, p.Marker)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
