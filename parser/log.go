// Copyright (c) 2024 The EXCCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package parser

import "github.com/decred/slog"

// log is the package-level logger used by every parse function. It is
// disabled by default so importing this package has no logging side
// effects until a caller wires one in with UseLogger.
var log = slog.Disabled

// UseLogger sets the package-wide logger. It must be called before any
// parse function to have an effect on that call.
func UseLogger(logger slog.Logger) {
	log = logger
}
