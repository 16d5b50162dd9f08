// seehuhn.de/go/turtle - turtle graphics for Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package panel

import (
	"sync"
	"sync/atomic"
)

// segmentStore is the ordered collection of segments owned by a Panel.
type segmentStore interface {
	add(Segment)
	reset()

	// snapshot returns the current sequence.  The caller must not modify
	// the returned slice.
	snapshot() []Segment
}

// cowStore is a copy-on-write store.  Readers never block and always see a
// complete sequence; every write copies the whole sequence.
type cowStore struct {
	mu   sync.Mutex // serialises writers
	segs atomic.Pointer[[]Segment]
}

func (s *cowStore) add(seg Segment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.snapshot()
	next := make([]Segment, len(old)+1)
	copy(next, old)
	next[len(old)] = seg
	s.segs.Store(&next)
}

func (s *cowStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.segs.Store(nil)
}

func (s *cowStore) snapshot() []Segment {
	if p := s.segs.Load(); p != nil {
		return *p
	}
	return nil
}

// sliceStore appends in amortised constant time.  It must not be read while
// a write is in progress.
type sliceStore struct {
	segs []Segment
}

func (s *sliceStore) add(seg Segment) {
	s.segs = append(s.segs, seg)
}

func (s *sliceStore) reset() {
	clear(s.segs)
	s.segs = s.segs[:0]
}

func (s *sliceStore) snapshot() []Segment {
	return s.segs
}
