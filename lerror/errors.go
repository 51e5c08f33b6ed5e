// Copyright 2025 The lemafi authors
//   This file is part of LEMAFI.
//
//  LEMAFI is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  LEMAFI is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with LEMAFI.  If not, see <https://www.gnu.org/licenses/>.

package lerror

import (
	"encoding/json"
	"fmt"
)

// InputError covers missing or unreadable input files and invalid
// user-provided arguments. Always fatal for the running action.
type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}

func (err InputError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

func NewInputError(format string, args ...any) InputError {
	return InputError{Msg: fmt.Sprintf(format, args...)}
}

// ----------------------------

// IntegrityError covers malformed data in files the pipeline itself is
// expected to have produced (e.g. a CSV row with a wrong number of
// columns). Fatal for exporter stages - a silently partial app asset is
// worse than no asset.
type IntegrityError struct {
	Msg string
}

func (err IntegrityError) Error() string {
	return err.Msg
}

func (err IntegrityError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

func NewIntegrityError(format string, args ...any) IntegrityError {
	return IntegrityError{Msg: fmt.Sprintf(format, args...)}
}

// ---------------------------

// ExistsError signals that an output (typically a database table)
// already exists and no explicit overwrite was requested.
type ExistsError struct {
	Msg string
}

func (err ExistsError) Error() string {
	return err.Msg
}

func (err ExistsError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

func NewExistsError(format string, args ...any) ExistsError {
	return ExistsError{Msg: fmt.Sprintf(format, args...)}
}
