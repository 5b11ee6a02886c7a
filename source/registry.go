package source

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/Global19/powerquery-parser/location"
)

// sourceEntry holds the content and precomputed indices for a source.
type sourceEntry struct {
	content []byte
	// lineOffsets[i] is the byte offset of the start of line i+1.
	// lineOffsets[0] is always 0 (start of line 1).
	lineOffsets []int
	// runeOffsets[i] is the byte offset of the i-th rune.
	runeOffsets []int
}

// Registry provides source content storage and position conversion.
//
// Registry is thread-safe for concurrent access. It implements
// location.PositionRegistry (via PositionAt) and location.RuneOffsetConverter
// (via RuneToByteOffset).
type Registry struct {
	mu      sync.RWMutex
	entries map[location.SourceID]*sourceEntry
}

// RegistryStats contains memory usage statistics for a source registry.
type RegistryStats struct {
	SourceCount  int
	ContentBytes int64
	IndexBytes   int64
}

// KeyCollisionError indicates that a registration was attempted with a
// SourceID that already exists but with different content.
type KeyCollisionError struct {
	SourceID location.SourceID
}

// Error implements the error interface.
func (e *KeyCollisionError) Error() string {
	return fmt.Sprintf("source key collision: different content registered for %q", e.SourceID.String())
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[location.SourceID]*sourceEntry),
	}
}

// Register stores content under the given sourceID.
//
// Expensive work (computing line and rune offsets) is performed before
// acquiring the lock. The content is defensively cloned; callers may freely
// mutate or discard the original slice after Register returns.
//
// Registration with an existing sourceID and identical content is
// idempotent (succeeds). Registration with an existing sourceID and
// different content returns *KeyCollisionError.
func (r *Registry) Register(sourceID location.SourceID, content []byte) error {
	cloned := slices.Clone(content)
	lineOffsets := computeLineOffsets(cloned)
	runeOffsets := computeRuneOffsets(cloned)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[sourceID]; ok {
		if bytes.Equal(existing.content, cloned) {
			return nil
		}
		return &KeyCollisionError{SourceID: sourceID}
	}

	r.entries[sourceID] = &sourceEntry{
		content:     cloned,
		lineOffsets: lineOffsets,
		runeOffsets: runeOffsets,
	}

	return nil
}

// RegisterFile reads the file at path from disk and registers its content
// under a file-backed SourceID (see location.SourceIDFromPath).
//
// Returns the SourceID on success. As with Register, re-registering the
// same path with unchanged on-disk content is idempotent; a change in
// content between calls returns *KeyCollisionError.
func (r *Registry) RegisterFile(path string) (location.SourceID, error) {
	sourceID, err := location.SourceIDFromPath(path)
	if err != nil {
		return location.SourceID{}, fmt.Errorf("register file %q: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return location.SourceID{}, fmt.Errorf("register file %q: %w", path, err)
	}

	if err := r.Register(sourceID, content); err != nil {
		return location.SourceID{}, err
	}

	return sourceID, nil
}

// ContentBySource returns the full content for a source.
//
// Returns nil, false if the sourceID is not registered. The returned slice
// is a defensive copy.
func (r *Registry) ContentBySource(sourceID location.SourceID) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[sourceID]
	if !ok {
		return nil, false
	}

	return slices.Clone(entry.content), true
}

// Content returns raw bytes for a source identified by the span's Source
// field. It extracts span.Source and delegates to ContentBySource.
func (r *Registry) Content(span location.Span) ([]byte, bool) {
	return r.ContentBySource(span.Source)
}

// PositionAt converts a byte offset in the specified source to a Position.
//
// Returns a zero Position if the source is not registered or the byte
// offset is out of range. byteOffset == len(content) is valid and returns
// an EOF position.
func (r *Registry) PositionAt(source location.SourceID, byteOffset int) location.Position {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[source]
	if !ok {
		return location.UnknownPosition()
	}

	if byteOffset < 0 || byteOffset > len(entry.content) {
		return location.UnknownPosition()
	}

	line := findLine(entry.lineOffsets, byteOffset)
	lineStart := entry.lineOffsets[line-1]

	column := columnFromByteOffset(entry.runeOffsets, lineStart, byteOffset, len(entry.content))

	return location.NewPosition(line, column, byteOffset)
}

// LineStartByte returns the byte offset of the start of the given
// (1-based) line. Returns (0, false) if the source is not registered or
// the line is out of range.
func (r *Registry) LineStartByte(source location.SourceID, line int) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[source]
	if !ok {
		return 0, false
	}

	if line < 1 || line > len(entry.lineOffsets) {
		return 0, false
	}

	return entry.lineOffsets[line-1], true
}

// RuneToByteOffset converts a 0-based rune index to a byte offset.
//
// Returns (0, false) if the source is not registered or the rune index is
// out of range. runeIndex == number of runes returns (len(content), true)
// for EOF.
func (r *Registry) RuneToByteOffset(source location.SourceID, runeIndex int) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[source]
	if !ok {
		return 0, false
	}

	if runeIndex < 0 {
		return 0, false
	}

	if runeIndex == len(entry.runeOffsets) {
		return len(entry.content), true
	}

	if runeIndex > len(entry.runeOffsets) {
		return 0, false
	}

	return entry.runeOffsets[runeIndex], true
}

// Keys returns all registered source identifiers, sorted by their
// String() representation. The returned slice is a defensive copy.
func (r *Registry) Keys() []location.SourceID {
	r.mu.RLock()
	keys := make([]location.SourceID, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b location.SourceID) int {
		return cmp.Compare(a.String(), b.String())
	})

	return keys
}

// Has reports whether the given sourceID is registered.
func (r *Registry) Has(sourceID location.SourceID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[sourceID]
	return ok
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Clear removes all registered sources, resetting the registry to its
// initial state. Previously-obtained []byte slices from
// Content/ContentBySource remain valid since they are defensive copies.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[location.SourceID]*sourceEntry)
}

// Stats returns memory usage statistics for the registry.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats RegistryStats
	stats.SourceCount = len(r.entries)

	for _, entry := range r.entries {
		stats.ContentBytes += int64(len(entry.content))
		stats.IndexBytes += int64(len(entry.lineOffsets) * 8)
		stats.IndexBytes += int64(len(entry.runeOffsets) * 8)
	}

	return stats
}

// computeLineOffsets precomputes the byte offset of each line start.
// Handles \r\n as a single line break.
func computeLineOffsets(content []byte) []int {
	offsets := []int{0}

	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			offsets = append(offsets, i+1)
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				offsets = append(offsets, i+2)
				i++
			} else {
				offsets = append(offsets, i+1)
			}
		}
	}

	return offsets
}

// computeRuneOffsets precomputes the byte offset of each rune.
func computeRuneOffsets(content []byte) []int {
	runeCount := utf8.RuneCount(content)
	offsets := make([]int, 0, runeCount)

	for i := 0; i < len(content); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRune(content[i:])
		i += size
	}

	return offsets
}

// findLine finds the 1-based line number for a given byte offset using
// binary search. byteOffset must be in range [0, len(content)].
func findLine(lineOffsets []int, byteOffset int) int {
	lo, hi := 0, len(lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineOffsets[mid] <= byteOffset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// columnFromByteOffset computes the 1-based column for a byte offset
// within a line, using binary search over precomputed rune offsets.
func columnFromByteOffset(runeOffsets []int, lineStartByte, byteOffset, contentLen int) int {
	if byteOffset <= lineStartByte {
		return 1
	}

	lineStartRune := findRuneIndex(runeOffsets, lineStartByte)
	targetRune := findRuneIndex(runeOffsets, byteOffset)

	if byteOffset >= contentLen && len(runeOffsets) > 0 {
		targetRune = len(runeOffsets)
	}

	return targetRune - lineStartRune + 1
}

// findRuneIndex returns the rune index for a given byte offset using
// binary search (floor semantics for mid-rune offsets).
func findRuneIndex(runeOffsets []int, byteOffset int) int {
	if len(runeOffsets) == 0 {
		return 0
	}

	lo, hi := 0, len(runeOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if runeOffsets[mid] <= byteOffset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
