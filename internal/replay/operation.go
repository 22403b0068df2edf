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

package replay

import (
	"fmt"
	"strings"
	"unicode"

	"d7y.io/popularity/internal/dferrors"
)

// Operation is a single change applied to a tracker.
type Operation int

const (
	// Increase adds one to the count of an item.
	Increase Operation = iota

	// Decrease subtracts one from the count of an item.
	Decrease
)

func (o Operation) String() string {
	switch o {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

var operations = map[string]Operation{
	"increase": Increase,
	"inc":      Increase,
	"+":        Increase,
	"decrease": Decrease,
	"dec":      Decrease,
	"-":        Decrease,
}

// ParseLine parses one line of an operation log, "<operation> <item>". The
// item is the rest of the line with surrounding blanks trimmed. Blank lines
// and lines starting with # carry no operation and return ok false.
func ParseLine(text string) (op Operation, item string, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return 0, "", false, nil
	}

	name, rest := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		name, rest = text[:i], text[i:]
	}

	op, found := operations[strings.ToLower(name)]
	if !found {
		return 0, "", false, dferrors.ErrUnknownOperation
	}

	item = strings.TrimSpace(rest)
	if item == "" {
		return 0, "", false, dferrors.ErrEmptyItem
	}

	return op, item, true, nil
}
