// SPDX-License-Identifier: MIT
// Package: export
//
// mat.go — MATLAB Level 5 MAT-file writer.
//
// File layout (little-endian):
//   - 128-byte header: 116 bytes descriptive text, 8 reserved bytes,
//     uint16 version 0x0100, the 2-byte endian indicator "IM".
//   - One miMATRIX data element per channel: array flags (mxDOUBLE_CLASS),
//     dimensions (1×N), padded variable name, and the real part as
//     miDOUBLE samples.
//
// The shared time base is written first under the variable name "time",
// followed by every waveform and envelope channel under sanitized MATLAB
// identifiers.

package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MAT-file data type and class tags (only the ones this writer emits).
const (
	miINT8   uint32 = 1
	miINT32  uint32 = 5
	miUINT32 uint32 = 6
	miDOUBLE uint32 = 9
	miMATRIX uint32 = 14

	mxDoubleClass uint32 = 6

	matHeaderTextLen = 116
	matVersion       = 0x0100

	// matNameMax mirrors MATLAB's namelengthmax.
	matNameMax = 63
)

// WriteMAT streams the document as a Level 5 MAT-file. An empty document
// yields ErrNoData.
func WriteMAT(w io.Writer, doc Document) error {
	timeBase, err := doc.timeBase()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeMATHeader(bw, doc); err != nil {
		return fmt.Errorf("export: writing mat header: %w", err)
	}

	if err := writeMATMatrix(bw, "time", timeBase); err != nil {
		return fmt.Errorf("export: writing mat time vector: %w", err)
	}

	for _, wf := range doc.Waveforms {
		if err := writeMATMatrix(bw, matIdentifier(wf.Name), wf.Series.Values); err != nil {
			return fmt.Errorf("export: writing mat variable %q: %w", wf.Name, err)
		}
	}
	for _, env := range doc.Envelopes {
		if err := writeMATMatrix(bw, matIdentifier(env.Name), env.Series.Values); err != nil {
			return fmt.Errorf("export: writing mat variable %q: %w", env.Name, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: writing mat: %w", err)
	}

	return nil
}

// writeMATHeader emits the fixed 128-byte prologue.
func writeMATHeader(w io.Writer, doc Document) error {
	text := fmt.Sprintf("MATLAB 5.0 MAT-file, Created on: %s",
		doc.stamp().Format(csvTimestampLayout))
	header := make([]byte, matHeaderTextLen)
	for i := range header {
		header[i] = ' '
	}
	copy(header, text)
	if _, err := w.Write(header); err != nil {
		return err
	}

	// Eight reserved subsystem-offset bytes.
	if _, err := w.Write(make([]byte, 8)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(matVersion)); err != nil {
		return err
	}
	_, err := w.Write([]byte{'I', 'M'}) // little-endian indicator

	return err
}

// writeMATMatrix emits one 1×N double-precision row vector element.
func writeMATMatrix(w io.Writer, name string, data []float64) error {
	n := len(data)
	namePadded := pad8(len(name))

	// Subelement sizes: array flags (16) + dimensions (16) +
	// name tag (8 + padded bytes) + real part tag (8 + 8N).
	total := 16 + 16 + 8 + namePadded + 8 + 8*n

	// miMATRIX tag.
	if err := binary.Write(w, binary.LittleEndian, [2]uint32{miMATRIX, uint32(total)}); err != nil {
		return err
	}

	// Array flags: class in the low byte, no complex/global/logical flags.
	if err := binary.Write(w, binary.LittleEndian, [4]uint32{miUINT32, 8, mxDoubleClass, 0}); err != nil {
		return err
	}

	// Dimensions: 1×N.
	if err := binary.Write(w, binary.LittleEndian, [2]uint32{miINT32, 8}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, [2]int32{1, int32(n)}); err != nil {
		return err
	}

	// Array name, zero-padded to an 8-byte boundary.
	if err := binary.Write(w, binary.LittleEndian, [2]uint32{miINT8, uint32(len(name))}); err != nil {
		return err
	}
	nameBytes := make([]byte, namePadded)
	copy(nameBytes, name)
	if _, err := w.Write(nameBytes); err != nil {
		return err
	}

	// Real part: miDOUBLE, already 8-aligned.
	if err := binary.Write(w, binary.LittleEndian, [2]uint32{miDOUBLE, uint32(8 * n)}); err != nil {
		return err
	}
	buf := make([]byte, 8*n)
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	_, err := w.Write(buf)

	return err
}

// pad8 rounds n up to the next multiple of 8.
func pad8(n int) int {
	if rem := n % 8; rem != 0 {
		return n + 8 - rem
	}

	return n
}

// matIdentifier sanitizes a channel name into a valid MATLAB variable name:
// letters, digits and underscores, starting with a letter, at most 63
// characters. An empty result becomes "signal".
func matIdentifier(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name) && len(out) < matNameMax; i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
			out = append(out, c)
		case c >= '0' && c <= '9':
			if len(out) == 0 {
				out = append(out, 'w') // identifiers must start with a letter
			}
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "signal"
	}
	if out[0] == '_' {
		out[0] = 'w'
	}

	return string(out)
}
