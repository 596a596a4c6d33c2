package main

import (
	"context"
	"io"

	"github.com/pjscruggs/slogcp"
	priorityadapter "github.com/pjscruggs/slogcp-priority-adapter"
)

// This example demonstrates handing a slogcp handler straight to the
// translator. It builds (and will run if invoked), proving slogcp handlers are
// accepted as sinks.
func ExampleNew() {
	handler, _ := slogcp.NewHandler(io.Discard)

	translator, err := priorityadapter.New(handler, priorityadapter.WithEventContext(true))
	if err != nil {
		panic(err)
	}
	_ = translator.Log(context.Background(), priorityadapter.PriorityCrit, "replica lagging")
	// Output:
}
