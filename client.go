package glossary

import (
	"io"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/server"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultAddress is where a local glossary server listens for gRPC.
const DefaultAddress = "localhost:4020"

type Client interface {
	io.Closer
	v1.GlossaryServiceClient
}

type client struct {
	conn *grpc.ClientConn
	v1.GlossaryServiceClient
}

// NewClient connects to the glossary gRPC server at addr.
func NewClient(addr string) (Client, error) {
	if addr == "" {
		addr = DefaultAddress
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(server.UnaryRequestTimeInterceptor()),
	)
	if err != nil {
		return nil, err
	}

	return &client{
		conn:                  conn,
		GlossaryServiceClient: v1.NewGlossaryServiceClient(conn),
	}, nil
}

func (c *client) Close() error {
	return c.conn.Close()
}
