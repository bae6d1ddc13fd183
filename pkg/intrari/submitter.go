package intrari

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rezonia/intrari-furnizori/internal/client"
)

// Receipt describes the server's answer to a submission
type Receipt = client.Receipt

// TransportError reports a submission that got no HTTP response
type TransportError = client.TransportError

// SubmitOptions configures where and how batches are sent
type SubmitOptions struct {
	Host           string
	Port           int
	ConnectTimeout time.Duration
	Logger         zerolog.Logger
}

// DefaultSubmitOptions returns default submit options
func DefaultSubmitOptions() SubmitOptions {
	return SubmitOptions{
		Host:           "localhost",
		Port:           8080,
		ConnectTimeout: client.DefaultConnectTimeout,
		Logger:         zerolog.Nop(),
	}
}

// Submitter sends batches to one server
type Submitter struct {
	client *client.Client
}

// NewSubmitter creates a submitter with the given options
func NewSubmitter(opts SubmitOptions) *Submitter {
	return &Submitter{
		client: client.New(
			client.Endpoint(opts.Host, opts.Port),
			client.WithConnectTimeout(opts.ConnectTimeout),
			client.WithLogger(opts.Logger),
		),
	}
}

// NewDefaultSubmitter creates a submitter with default options
func NewDefaultSubmitter() *Submitter {
	return NewSubmitter(DefaultSubmitOptions())
}

// Endpoint returns the URL batches are posted to
func (s *Submitter) Endpoint() string {
	return s.client.Endpoint()
}

// Submit posts batch once. Any HTTP response is a delivery; only transport
// failures and invalid batches are errors.
func (s *Submitter) Submit(ctx context.Context, batch IntrareFurnizori) (Receipt, error) {
	return s.client.Submit(ctx, batch)
}

// Encode returns the JSON body Submit would send
func Encode(batch IntrareFurnizori) ([]byte, error) {
	return client.Encode(batch)
}
