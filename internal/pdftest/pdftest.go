// Package pdftest builds small, valid PDF documents with known text for tests
// and for the benchmark fixture.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// LivrePages is the text of the three-page livre.pdf fixture, one entry per page.
var LivrePages = []string{
	"Chapitre premier : le service lit le fichier.",
	"Chapitre deux : la bibliotheque extrait le texte.",
	"Chapitre trois : la reponse part en JSON.",
}

// LivreText is the text extracted from Livre, captured once from the PDF
// reader. Pages are separated by a blank line.
const LivreText = "Chapitre premier : le service lit le fichier.\n\n" +
	"Chapitre deux : la bibliotheque extrait le texte.\n\n" +
	"Chapitre trois : la reponse part en JSON."

// Livre returns the three-page livre.pdf fixture.
func Livre() []byte {
	return Build(LivrePages...)
}

// Build returns a PDF with one page per entry. Each page draws its entry as a
// single Helvetica text run in WinAnsiEncoding, so accented Latin text
// survives. It panics on characters Windows-1252 cannot represent.
func Build(pages ...string) []byte {
	var objects []string

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)

	for i, text := range pages {
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", encode(escape(text)))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// WriteFile writes a PDF built from pages to path.
func WriteFile(path string, pages ...string) error {
	return os.WriteFile(path, Build(pages...), 0o644)
}

// encode converts s to the single-byte Windows-1252 form the font declares.
// The result is a byte string, not UTF-8.
func encode(s string) string {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		panic(fmt.Sprintf("pdftest: %q is not representable in Windows-1252: %v", s, err))
	}
	return out
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
