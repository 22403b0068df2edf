/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dferrors

import (
	"errors"
	"fmt"
)

// common errors
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrEmptyItem        = errors.New("empty item")
)

// LineError reports a malformed line of an operation log.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// IsLineError reports whether err carries a malformed line.
func IsLineError(err error) bool {
	var lineErr *LineError
	return errors.As(err, &lineErr)
}
