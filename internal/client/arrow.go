package client

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Sample is one benchmark measurement: a routine timed on one backend.
type Sample struct {
	Routine   string  `json:"routine" cbor:"routine"`
	Backend   string  `json:"backend" cbor:"backend"`
	Device    string  `json:"device" cbor:"device"`
	N         int64   `json:"n" cbor:"n"`
	Iters     int64   `json:"iters" cbor:"iters"`
	ElapsedNS int64   `json:"elapsed_ns" cbor:"elapsed_ns"`
	MFlops    float64 `json:"mflops" cbor:"mflops"`
}

// SampleSchema is the wire schema of pushed benchmark batches.
var SampleSchema = arrow.NewSchema(
	[]arrow.Field{
		{Name: "routine", Type: arrow.BinaryTypes.String},
		{Name: "backend", Type: arrow.BinaryTypes.String},
		{Name: "device", Type: arrow.BinaryTypes.String},
		{Name: "n", Type: arrow.PrimitiveTypes.Int64},
		{Name: "iters", Type: arrow.PrimitiveTypes.Int64},
		{Name: "elapsed_ns", Type: arrow.PrimitiveTypes.Int64},
		{Name: "mflops", Type: arrow.PrimitiveTypes.Float64},
	},
	nil,
)

// SampleBatch converts samples into one RecordBatch with SampleSchema.
// Returns nil for an empty slice. The caller releases the batch.
func SampleBatch(mem memory.Allocator, samples []Sample) arrow.RecordBatch {
	if len(samples) == 0 {
		return nil
	}

	routines := array.NewStringBuilder(mem)
	defer routines.Release()
	backends := array.NewStringBuilder(mem)
	defer backends.Release()
	devices := array.NewStringBuilder(mem)
	defer devices.Release()
	ns := array.NewInt64Builder(mem)
	defer ns.Release()
	iters := array.NewInt64Builder(mem)
	defer iters.Release()
	elapsed := array.NewInt64Builder(mem)
	defer elapsed.Release()
	mflops := array.NewFloat64Builder(mem)
	defer mflops.Release()

	for _, s := range samples {
		routines.Append(s.Routine)
		backends.Append(s.Backend)
		devices.Append(s.Device)
		ns.Append(s.N)
		iters.Append(s.Iters)
		elapsed.Append(s.ElapsedNS)
		mflops.Append(s.MFlops)
	}

	cols := []arrow.Array{
		routines.NewArray(),
		backends.NewArray(),
		devices.NewArray(),
		ns.NewArray(),
		iters.NewArray(),
		elapsed.NewArray(),
		mflops.NewArray(),
	}
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	return array.NewRecordBatch(SampleSchema, cols, int64(len(samples)))
}
