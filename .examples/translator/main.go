// Copyright 2025-2026 Patrick J. Scruggs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"log"
	"os"

	"github.com/pjscruggs/slogcp"
	priorityadapter "github.com/pjscruggs/slogcp-priority-adapter"
)

// A minimal runnable example that routes syslog-style priorities to slogcp.
// Configuration comes from PRIORITY_* environment variables, for example
// PRIORITY_TRANSLATIONS=8:notice PRIORITY_INCLUDE_EVENT_AS_CONTEXT=true.
func main() {
	handler, err := slogcp.NewHandler(os.Stdout)
	if err != nil {
		log.Fatalf("failed to create handler: %v", err)
	}

	cfg, err := priorityadapter.ConfigFromEnv("priority")
	if err != nil {
		log.Fatalf("failed to read configuration: %v", err)
	}
	cfg.Sink = handler

	translator, err := priorityadapter.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to create translator: %v", err)
	}

	ctx := context.Background()
	for p := priorityadapter.PriorityEmerg; p <= priorityadapter.PriorityDebug+1; p++ {
		if err := translator.Log(ctx, p, "priority "+p.String(), "code", int(p)); err != nil {
			log.Fatalf("log failed: %v", err)
		}
	}
}
