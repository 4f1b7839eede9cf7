// Package client pushes benchmark records to a Longbow server over Apache
// Flight. Uploads run behind a circuit breaker so an unreachable server
// degrades a sweep instead of stalling it.
package client

import (
	"context"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/flight"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Pusher uploads RecordBatches to named datasets via Flight DoPut.
type Pusher struct {
	client  flight.Client
	conn    *grpc.ClientConn
	breaker *CircuitBreaker
}

// NewPusher creates a Pusher for the given address. The underlying gRPC
// connection is lazy; a dead address surfaces on the first push.
func NewPusher(addr string) (*Pusher, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &Pusher{
		client:  flight.NewClientFromConn(conn, nil),
		conn:    conn,
		breaker: NewCircuitBreaker(5, 10*time.Second),
	}, nil
}

// Push sends one RecordBatch to the given dataset. While the breaker is
// open, pushes fail fast with ErrCircuitOpen.
func (p *Pusher) Push(ctx context.Context, dataset string, rec arrow.RecordBatch) error {
	return p.breaker.Do(func() error {
		if err := p.doPut(ctx, dataset, rec); err != nil {
			log.Warn().Err(err).Str("dataset", dataset).Msg("Flight DoPut failed")
			return err
		}
		return nil
	})
}

func (p *Pusher) doPut(ctx context.Context, dataset string, rec arrow.RecordBatch) error {
	desc := &flight.FlightDescriptor{
		Type: flight.DescriptorPATH,
		Path: []string{dataset},
	}

	stream, err := p.client.DoPut(ctx)
	if err != nil {
		return err
	}

	writer := flight.NewRecordWriter(stream)
	writer.SetFlightDescriptor(desc)

	if err := writer.Write(rec); err != nil {
		return err
	}
	return writer.Close()
}

// PushSamples encodes samples as one RecordBatch and uploads it. An empty
// slice is a no-op.
func (p *Pusher) PushSamples(ctx context.Context, dataset string, samples []Sample) error {
	rec := SampleBatch(memory.DefaultAllocator, samples)
	if rec == nil {
		return nil
	}
	defer rec.Release()
	return p.Push(ctx, dataset, rec)
}

// Close closes the client connection.
func (p *Pusher) Close() error {
	return p.conn.Close()
}
