// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
)

// Enabled returns whether messages at the given level
// are shown with the current [UserLevel].
func Enabled(level slog.Level) bool {
	return UserLevel.Level() <= level
}

// Printf is equivalent to [fmt.Fprintf], but it does not print
// anything if [UserLevel] is above the given level.
func Printf(w io.Writer, level slog.Level, format string, a ...any) (n int, err error) {
	if !Enabled(level) {
		return 0, nil
	}
	return fmt.Fprintf(w, format, a...)
}

// PrintfWarn is equivalent to [fmt.Fprintf], but it does not
// print anything if [UserLevel] is above [slog.LevelWarn].
// It is used for the regular output of commands, which is
// shown unless the user asks for quiet.
func PrintfWarn(w io.Writer, format string, a ...any) (n int, err error) {
	return Printf(w, slog.LevelWarn, format, a...)
}

// PrintfInfo is equivalent to [fmt.Fprintf], but it does not
// print anything if [UserLevel] is above [slog.LevelInfo].
func PrintfInfo(w io.Writer, format string, a ...any) (n int, err error) {
	return Printf(w, slog.LevelInfo, format, a...)
}
