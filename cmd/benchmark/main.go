// Command benchmark extracts the text of livre.pdf once and prints how long it took.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/extractor"
	"github.com/BerylCAtieno/pdf-extraction-service/internal/utils"
)

const inputFile = "livre.pdf"

func main() {
	os.Exit(run())
}

func run() int {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.FileReadPrefix+err.Error())
		return 1
	}

	start := time.Now()
	text, err := extractor.ExtractPDF(data)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.ExtractionPrefix+err.Error())
		return 1
	}

	fmt.Println(text)
	fmt.Printf("Durée d'extraction : %s\n", elapsed)
	return 0
}
