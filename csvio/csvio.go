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

// Package csvio provides BOM-tolerant readers for the pipeline's text
// inputs. Frequency lists and CSV tables exported from spreadsheet
// tools regularly start with a UTF-8 byte order mark which would
// otherwise end up glued to the first surface form or header name.
package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"lemafi/lerror"
)

type bomReader struct {
	io.Reader
	f *os.File
}

func (r *bomReader) Close() error {
	return r.f.Close()
}

// Open opens a text file for reading with a possible leading UTF-8
// BOM stripped from the stream.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec := unicode.UTF8BOM.NewDecoder()
	return &bomReader{Reader: transform.NewReader(f, dec), f: f}, nil
}

// ReadTable reads a headered CSV file and returns the header and data
// rows. Row arity is enforced against the header; a row with a
// different number of columns produces an IntegrityError, not a
// partial result.
func ReadTable(path string) ([]string, [][]string, error) {
	src, err := Open(path)
	if err != nil {
		return nil, nil, lerror.NewInputError("cannot open CSV %s: %s", path, err)
	}
	defer src.Close()
	reader := csv.NewReader(src)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, lerror.NewIntegrityError("CSV %s is empty", path)

	} else if err != nil {
		return nil, nil, lerror.NewIntegrityError("failed to read CSV %s: %s", path, err)
	}
	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
			return nil, nil, lerror.NewIntegrityError(
				"CSV %s: row %d has %d columns, expected %d",
				path, parseErr.Line, len(row), len(header),
			)
		}
		if err != nil {
			return nil, nil, lerror.NewIntegrityError("failed to read CSV %s: %s", path, err)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
