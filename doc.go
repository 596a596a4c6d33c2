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

// Package priorityadapter lets code that logs with syslog-style numeric
// priorities emit its records through a leveled logger with the eight
// standard level names (debug, info, notice, warning, error, critical, alert,
// emergency).
//
// A Translator looks each event's Priority up in a table, falls back to a
// configurable level for priorities it does not know, optionally attaches the
// event's metadata as context, and makes exactly one call to a Sink. The table
// starts from DefaultTranslations and can be extended or overridden with
// WithTranslations; custom priorities never fail, they take the fallback level
// (LevelDebug unless WithFallbackLevel says otherwise).
//
// Sinks are provided for log/slog (including [github.com/pjscruggs/slogcp]
// handlers, which render notice, critical, alert and emergency as the matching
// Cloud Logging severities), [go.uber.org/zap], [github.com/go-kit/log],
// [github.com/rs/zerolog] and [github.com/go-logr/logr]. New accepts any of
// those loggers directly and fails with ErrInvalidConfiguration when handed
// something it cannot log to, including a nil logger of a supported kind.
//
// Quick start:
//
//	handler, _ := slogcp.NewHandler(os.Stdout)
//	translator, err := priorityadapter.New(handler, priorityadapter.WithEventContext(true))
//	if err != nil {
//		return err
//	}
//	_ = translator.Handle(ctx, priorityadapter.Event{
//		Priority: priorityadapter.PriorityNotice,
//		Message:  "config reloaded",
//	})
//
// Configuration can also be read from a YAML block with ParseConfig or from the
// environment with ConfigFromEnv and turned into a translator with
// NewFromConfig. The gRPC helpers UnaryServerInterceptor,
// StreamServerInterceptor, UnaryClientInterceptor and StreamClientInterceptor
// route [github.com/grpc-ecosystem/go-grpc-middleware/v2] logging through a
// translator.
package priorityadapter
