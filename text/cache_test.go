package text

import (
	"testing"

	"github.com/gogpu/gplot"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRunCacheGetOrCreate(t *testing.T) {
	c := newRunCache(16)
	calls := 0
	build := func() inkRun {
		calls++
		return inkRun{maxX: float32(calls)}
	}

	k := runKey{text: "Squares", size: 12}
	first := c.getOrCreate(k, build)
	second := c.getOrCreate(k, build)
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if first.maxX != second.maxX {
		t.Errorf("second lookup returned a different run")
	}

	c.getOrCreate(runKey{text: "Squares", size: 13}, build)
	if calls != 2 {
		t.Errorf("different size should miss, create called %d times", calls)
	}
	if got := c.len(); got != 2 {
		t.Errorf("len() = %d, want 2", got)
	}
}

func TestRunCacheEviction(t *testing.T) {
	const limit = 8
	c := newRunCache(limit)
	build := func() inkRun { return inkRun{} }

	keys := make([]runKey, limit)
	for i := range keys {
		keys[i] = runKey{text: string(rune('a' + i)), size: 10}
		c.getOrCreate(keys[i], build)
	}
	// Touch the oldest key so it survives eviction.
	c.getOrCreate(keys[0], build)

	c.getOrCreate(runKey{text: "overflow", size: 10}, build)
	if got, want := c.len(), limit*3/4; got != want {
		t.Fatalf("len() after eviction = %d, want %d", got, want)
	}

	rebuilt := false
	c.getOrCreate(keys[0], func() inkRun {
		rebuilt = true
		return inkRun{}
	})
	if rebuilt {
		t.Error("recently used entry was evicted")
	}
	c.getOrCreate(keys[1], func() inkRun {
		rebuilt = true
		return inkRun{}
	})
	if !rebuilt {
		t.Error("least recently used entry survived eviction")
	}
}

func TestMeasureThenDrawShapesOnce(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}

	w, h := src.Measure("Legend", 18)
	if w == 0 || h == 0 {
		t.Fatalf("Measure() = (%d, %d), want non-zero", w, h)
	}
	before := src.runs.len()

	c := gplot.NewCanvas(w+4, h+4)
	src.Draw(c, "Legend", 18, 2, 2, gplot.Black)

	if got := src.runs.len(); got != before || got != 1 {
		t.Errorf("run cache holds %d runs after draw, want 1", got)
	}
	if c.DroppedWrites() != 0 {
		t.Errorf("DroppedWrites() = %d, want 0", c.DroppedWrites())
	}
}
