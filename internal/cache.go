package internal

import "sync"

import "github.com/tinne26/mtxt/core"

// Default cache size value, in bytes.
const DefaultCacheSize = 8*1024*1024 // 8 MiB

// Maximum cache capacity, in bytes.
const MaxCacheSize = 1*1024*1024*1024 // 1 GiB

// Package level cache shared by all strands. Glyphs are keyed by
// font key, code point and rasterization size, so different strands
// and sizes can coexist without interfering with each other.
var DefaultCache *Cache = NewCache(DefaultCacheSize)

const noEntry32 uint32 = uint32(0b11111111_11111111_11111111_11111111)
const brokenCode = "broken code"

// Cached data for a single glyph. Metrics are usually stored first,
// and the mask is only loaded once the glyph needs to be drawn.
// Glyphs that the source can't provide are cached too, as Missing.
type GlyphData struct {
	Metrics core.GlyphMetrics
	Mask core.GlyphMask // can be nil for blank glyphs
	MaskLoaded bool
	Missing bool
}

type CachedGlyphEntry struct {
	Data GlyphData // Read-only.
	ByteSize uint32 // Read-only.

	key [2]uint64
	prev uint32 // towards lru. none if == noEntry32
	next uint32 // towards mru. none if == noEntry32. also used as next free entry index
}

// A byte-bounded glyph cache with a least recently used eviction
// policy. Entries are stored in a slice and linked by index, and
// evicted slots are reused through a free list.
type Cache struct {
	glyphsMap map[[2]uint64]uint32
	entries []CachedGlyphEntry
	mruIndex uint32
	lruIndex uint32
	nextFreeEntryIndex uint32 // none if == noEntry32

	mutex sync.RWMutex
	capacity uint64
	currentSize uint64
	peakSize uint64 // (max ever size)
}

func NewCache(capacity int) *Cache {
	if capacity < 0 { panic("can't create cache with negative capacity") }
	if capacity > MaxCacheSize {
		Logger().Warn("excessive cache capacity requested, limited to 1GiB", "requested", capacity)
		capacity = MaxCacheSize
	}
	return &Cache{
		capacity: uint64(capacity),
		glyphsMap: make(map[[2]uint64]uint32, 64),
		entries: make([]CachedGlyphEntry, 0, 64),
		nextFreeEntryIndex: noEntry32,
		mruIndex: noEntry32,
		lruIndex: noEntry32,
	}
}

func glyphKey(fontKey uint64, codePoint rune, size uint16) [2]uint64 {
	return [2]uint64{fontKey, (uint64(uint32(codePoint)) << 16) | uint64(size)}
}

func (self *Cache) SetCapacity(bytes int) {
	if bytes < 0 { panic("can't cache.SetCapacity(bytes) with bytes < 0") }
	if bytes > MaxCacheSize {
		Logger().Warn("excessive cache capacity requested, limited to 1GiB", "requested", bytes)
		bytes = MaxCacheSize
	}

	self.mutex.Lock()
	if bytes == 0 {
		clear(self.glyphsMap)
		clear(self.entries) // allow masks to be GC'd
		self.entries = self.entries[ : 0]
		self.mruIndex, self.lruIndex = noEntry32, noEntry32
		self.nextFreeEntryIndex = noEntry32
		self.currentSize = 0
	} else {
		for self.currentSize > uint64(bytes) {
			self.evictOldest()
		}
	}
	self.capacity = uint64(bytes)
	self.mutex.Unlock()
}

func (self *Cache) Capacity() int {
	self.mutex.RLock()
	capacity := self.capacity
	self.mutex.RUnlock()
	return int(capacity)
}

func (self *Cache) CurrentSize() int {
	self.mutex.RLock()
	currentSize := self.currentSize
	self.mutex.RUnlock()
	return int(currentSize)
}

func (self *Cache) PeakSize() uint64 {
	self.mutex.RLock()
	peakSize := self.peakSize
	self.mutex.RUnlock()
	return peakSize
}

// Returns the number of glyphs currently stored in the cache.
func (self *Cache) NumEntries() int {
	self.mutex.RLock()
	numEntries := len(self.glyphsMap)
	self.mutex.RUnlock()
	return numEntries
}

// Returns the cached data for the given glyph key, if any.
// Hits are bumped to most recently used.
func (self *Cache) Get(fontKey uint64, codePoint rune, size uint16) (GlyphData, bool) {
	key := glyphKey(fontKey, codePoint, size)
	self.mutex.Lock()
	index, found := self.glyphsMap[key]
	if !found {
		self.mutex.Unlock()
		return GlyphData{}, false
	}
	if index != self.mruIndex {
		self.unlink(index)
		self.linkAsMRU(index)
	}
	data := self.entries[index].Data
	self.mutex.Unlock()
	return data, true
}

// Stores the given glyph data, evicting older entries as necessary.
// Returns false if the glyph can't fit in the cache at all.
func (self *Cache) Set(fontKey uint64, codePoint rune, size uint16, data GlyphData) bool {
	key := glyphKey(fontKey, codePoint, size)
	byteSize := glyphMaskByteSize(data.Mask)

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if uint64(byteSize) > self.capacity { return false }

	index, found := self.glyphsMap[key]
	if found { // update existing entry case
		// detach the entry so it can't be evicted by itself
		self.currentSize -= uint64(self.entries[index].ByteSize)
		self.unlink(index)
		for self.currentSize + uint64(byteSize) > self.capacity {
			self.evictOldest()
		}
		entry := &self.entries[index]
		entry.Data     = data
		entry.ByteSize = byteSize
	} else { // new entry case
		for self.currentSize + uint64(byteSize) > self.capacity {
			self.evictOldest()
		}
		entry := CachedGlyphEntry{
			Data: data,
			ByteSize: byteSize,
			key: key,
			prev: noEntry32,
			next: noEntry32,
		}
		if self.nextFreeEntryIndex == noEntry32 {
			index = uint32(len(self.entries))
			self.entries = append(self.entries, entry)
		} else {
			index = self.nextFreeEntryIndex
			self.nextFreeEntryIndex = self.entries[index].next
			self.entries[index] = entry
		}
		self.glyphsMap[key] = index
	}
	self.linkAsMRU(index)

	self.currentSize += uint64(byteSize)
	if self.currentSize > self.peakSize {
		self.peakSize = self.currentSize
	}
	return true
}

// ---- linked list helpers ----
// (all of them must be called with the cache locked)

func (self *Cache) unlink(index uint32) {
	entry := &self.entries[index]
	if entry.prev != noEntry32 {
		self.entries[entry.prev].next = entry.next
	} else {
		self.lruIndex = entry.next
	}
	if entry.next != noEntry32 {
		self.entries[entry.next].prev = entry.prev
	} else {
		self.mruIndex = entry.prev
	}
	entry.prev, entry.next = noEntry32, noEntry32
}

func (self *Cache) linkAsMRU(index uint32) {
	entry := &self.entries[index]
	entry.prev = self.mruIndex
	entry.next = noEntry32
	if self.mruIndex != noEntry32 {
		self.entries[self.mruIndex].next = index
	} else {
		self.lruIndex = index
	}
	self.mruIndex = index
}

// Precondition: the cache has at least one linked entry.
func (self *Cache) evictOldest() {
	index := self.lruIndex
	if index == noEntry32 { panic(brokenCode) }
	self.unlink(index)

	entry := &self.entries[index]
	if uint64(entry.ByteSize) > self.currentSize { panic(brokenCode) } // discretionary safety check
	delete(self.glyphsMap, entry.key)
	self.currentSize -= uint64(entry.ByteSize)
	entry.Data.Mask = nil // allow mask to be GC'd
	entry.next = self.nextFreeEntryIndex
	self.nextFreeEntryIndex = index
}
