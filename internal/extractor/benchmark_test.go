package extractor

import (
	"fmt"
	"testing"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/pdftest"
)

func BenchmarkExtractPDF(b *testing.B) {
	for _, pages := range []int{1, 10, 100} {
		texts := make([]string, pages)
		for i := range texts {
			texts[i] = fmt.Sprintf("Page %d du livre de test.", i+1)
		}
		data := pdftest.Build(texts...)

		b.Run(fmt.Sprintf("pages=%d", pages), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := ExtractPDF(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
