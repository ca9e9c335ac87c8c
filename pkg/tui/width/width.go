// ABOUTME: Column widths for runes and strings used by cursor arithmetic and layout
// ABOUTME: Heuristic byte-count width by default; runewidth/uniseg for Unicode-aware measurement

package width

import (
	"container/list"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// Func reports how many terminal columns the cursor advances for r.
type Func func(r rune) int

// Heuristic approximates the column width of r as its UTF-8 length capped
// at two. ASCII is one column and everything else two, which holds for CJK
// and most emoji but not for combining marks or narrow accented letters.
func Heuristic(r rune) int {
	n := utf8.RuneLen(r)
	if n < 0 {
		// Invalid runes are written as U+FFFD.
		return 2
	}
	return min(n, 2)
}

// Unicode returns the East Asian width of r as reported by go-runewidth.
// Control characters still advance one column so cursor math never stalls.
func Unicode(r rune) int {
	if r < 0x20 || r == 0x7f {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// ByName resolves a width mode name from configuration.
func ByName(name string) (Func, error) {
	switch name {
	case "", "heuristic":
		return Heuristic, nil
	case "unicode":
		return Unicode, nil
	}
	return nil, fmt.Errorf("unknown width mode %q", name)
}

// Runes sums fn over rs.
func Runes(rs []rune, fn Func) int {
	w := 0
	for _, r := range rs {
		w += fn(r)
	}
	return w
}

// lruEntry holds a cached width measurement.
type lruEntry struct {
	key   string
	value int
}

// cache is an O(1) LRU cache for non-ASCII string widths.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

var widthCache = newCache(cacheSize)

// VisibleWidth returns the display width of s, skipping ANSI escape
// sequences and measuring grapheme clusters, so wide CJK and emoji count
// as two cells. It is used for layout (progress bars, labels), never for
// edit buffer cursor math.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := uniseg.StringWidth(StripANSI(s))
	widthCache.put(s, w)
	return w
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}
