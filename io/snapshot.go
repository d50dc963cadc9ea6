package io

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Snapshot is a plain-text dump of the RAM. Each cell is one line of
// Width '0'/'1' characters, written from bit 0 up to bit Width-1.
type Snapshot struct {
	Width int
	Cells []uint32
}

// Marshal writes the snapshot text to a writer.
func (snap *Snapshot) Marshal(file io.Writer) (err error) {
	w := bufio.NewWriter(file)

	line := make([]byte, snap.Width+1)
	line[snap.Width] = '\n'
	for _, cell := range snap.Cells {
		for n := range snap.Width {
			line[n] = '0' + byte((cell>>n)&1)
		}
		_, err = w.Write(line)
		if err != nil {
			return
		}
	}

	err = w.Flush()
	return
}

// Unmarshal loads snapshot text from a reader, replacing any existing cells.
// If Width is zero it is taken from the first line.
func (snap *Snapshot) Unmarshal(file io.Reader) (err error) {
	scanner := bufio.NewScanner(file)

	snap.Cells = snap.Cells[:0]
	var lineno int
	for scanner.Scan() {
		lineno++
		text := strings.TrimRight(scanner.Text(), "\r")
		if snap.Width == 0 {
			snap.Width = len(text)
		}
		if len(text) != snap.Width {
			err = errors.Wrap(ErrSnapshotWidth, f("line %d", lineno))
			return
		}

		var cell uint32
		for n, c := range []byte(text) {
			switch c {
			case '0':
			case '1':
				cell |= 1 << n
			default:
				err = errors.Wrap(ErrSnapshotBit, f("line %d", lineno))
				return
			}
		}
		snap.Cells = append(snap.Cells, cell)
	}

	err = scanner.Err()
	return
}

// WriteFile replaces the file at path with the snapshot text.
// The text is written to a temporary file first, so a reader never sees
// a partial snapshot.
func (snap *Snapshot) WriteFile(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	err = snap.Marshal(tmp)
	if err != nil {
		tmp.Close()
		err = errors.Wrap(err, path)
		return
	}

	err = tmp.Close()
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		err = errors.Wrap(err, path)
	}
	return
}

// ReadFile loads the snapshot text from the file at path.
func (snap *Snapshot) ReadFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = errors.Wrap(err, path)
		return
	}
	defer inf.Close()

	err = snap.Unmarshal(inf)
	if err != nil {
		err = errors.Wrap(err, path)
	}
	return
}
