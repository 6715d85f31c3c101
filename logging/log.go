/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances which are configured with the
// necessary backends and formatters.
package logging

import (
	"log"
	"os"
	"sync"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-reversi/engine/config"
)

// Out is a locale-aware printer, used by subsystems that report large
// counts (nodes searched, positions generated) in log messages.
var Out = message.NewPrinter(language.English)

var (
	mu      sync.Mutex
	loggers = map[string]*logging.Logger{}

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

// GetLog returns a Logger for the named subsystem (e.g. "search", "tt",
// "train", "cli"), preconfigured with an os.Stdout backend and the
// standard time/file/level format. Calling GetLog again with the same
// name returns the same Logger instance.
func GetLog(name string) *logging.Logger {
	return getLevelled(name, config.LogLevel)
}

// GetSearchLog returns the Logger used by the search driver, honoring
// config.SearchLogLevel independently of the general log level.
func GetSearchLog() *logging.Logger {
	return getLevelled("search", config.SearchLogLevel)
}

// GetTestLog returns the Logger used by package tests, honoring
// config.TestLogLevel.
func GetTestLog() *logging.Logger {
	return getLevelled("test", config.TestLogLevel)
}

func getLevelled(name string, level int) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	levelled := logging.AddModuleLevel(formatted)
	levelled.SetLevel(logging.Level(level), "")
	l := logging.MustGetLogger(name)
	l.SetBackend(levelled)
	loggers[name] = l
	return l
}
