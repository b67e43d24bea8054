package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"ipam-importer/feature/phpipam"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_rows <export-file> [sheet]")
	}
	file := os.Args[1]
	sheet := ""
	if len(os.Args) > 2 {
		sheet = os.Args[2]
	}

	// Open the export
	src, err := phpipam.OpenFile(file, sheet)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	// Test 1: classify every row and show the headers we recognize
	fmt.Println("=== TEST 1: Row Classification ===")
	counts := map[phpipam.RowKind]int{}
	var suspects []string
	rows := 0
	for {
		cells, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		rows++

		c := phpipam.Classify(cells)
		counts[c.Kind]++

		switch c.Kind {
		case phpipam.KindSubnetHeader:
			fmt.Printf("row %4d: %s  %q\n", rows, c.Subnet.CIDR, c.Subnet.Description)
		case phpipam.KindNoise:
			// Noise containing a slash is usually a header the export mangled
			if len(cells) > 0 && strings.Contains(cells[0], "/") {
				suspects = append(suspects, cells[0])
			}
		}
	}

	kinds := []phpipam.RowKind{
		phpipam.KindSubnetHeader,
		phpipam.KindColumnTitle,
		phpipam.KindAddress,
		phpipam.KindNoise,
	}

	fmt.Printf("\nTotal rows read: %d\n", rows)
	for _, kind := range kinds {
		fmt.Printf("  %-14s %d\n", kind, counts[kind])
	}

	// Test 2: noise rows that look like they wanted to be headers
	fmt.Println("\n=== TEST 2: Suspect Noise Rows ===")
	if len(suspects) == 0 {
		fmt.Println("No noise rows containing '/'")
	}
	for _, cell := range suspects {
		fmt.Printf("  %q\n", cell)
	}

	// Save detailed output
	output := map[string]interface{}{"rows": rows}
	for _, kind := range kinds {
		output[kind.String()] = counts[kind]
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_rows.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_rows.json for details.")
}
