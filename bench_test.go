package text

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// benchLines builds count lines of roughly the given width.
func benchLines(count, width int) []string {
	rng := rand.New(rand.NewSource(42))
	lines := make([]string, count)
	for i := range lines {
		n := width/2 + rng.Intn(width)
		var sb strings.Builder
		sb.Grow(n)
		for j := 0; j < n; j++ {
			sb.WriteByte(byte('a' + rng.Intn(26)))
		}
		lines[i] = sb.String()
	}
	return lines
}

func benchDoc(b *testing.B, count, width int) Text {
	b.Helper()
	doc, err := Of(benchLines(count, width))
	if err != nil {
		b.Fatal(err)
	}
	return doc
}

func BenchmarkOf(b *testing.B) {
	for _, count := range []int{100, 10_000, 100_000} {
		lines := benchLines(count, 60)
		b.Run(fmt.Sprintf("lines-%d", count), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Of(lines)
			}
		})
	}
}

func BenchmarkReplace(b *testing.B) {
	for _, count := range []int{1000, 100_000} {
		doc := benchDoc(b, count, 60)
		insert := FromString("inserted text")
		rng := rand.New(rand.NewSource(7))
		b.Run(fmt.Sprintf("lines-%d", count), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pos := rng.Intn(doc.Len())
				_, _ = doc.Replace(pos, pos, insert)
			}
		})
	}
}

func BenchmarkLine(b *testing.B) {
	doc := benchDoc(b, 100_000, 60)
	rng := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = doc.Line(1 + rng.Intn(doc.LineCount()))
	}
}

func BenchmarkLineAt(b *testing.B) {
	doc := benchDoc(b, 100_000, 60)
	rng := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = doc.LineAt(rng.Intn(doc.Len() + 1))
	}
}

func BenchmarkSliceString(b *testing.B) {
	doc := benchDoc(b, 100_000, 60)
	rng := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := rng.Intn(doc.Len() - 1000)
		_, _ = doc.SliceString(from, from+1000)
	}
}

func BenchmarkIter(b *testing.B) {
	doc := benchDoc(b, 10_000, 60)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		total := 0
		for it := doc.Iter(1); it.Next(0); {
			total += len(it.Value())
		}
		_ = total
	}
}

func BenchmarkEq(b *testing.B) {
	lines := benchLines(10_000, 60)
	a, _ := Of(lines)
	// Same content, different shape.
	c, _ := Of(lines[:1])
	for _, line := range lines[1:] {
		c = c.Append(FromString("\n" + line))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !a.Eq(c) {
			b.Fatal("content mismatch")
		}
	}
}
