package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cloudx-io/salesreport/core"
	"github.com/cloudx-io/salesreport/reportapi"
)

func main() {
	// Define CLI flags
	var (
		dataInput    = flag.String("data", "", "Sales data JSON (file path or inline JSON)")
		outputFormat = flag.String("format", "text", "Output format: text, json or cbor")
		outputPath   = flag.String("out", "", "Output file (default: stdout)")
		help         = flag.Bool("help", false, "Show usage information")
	)

	flag.Parse()

	// Show help
	if *help {
		showUsage()
		os.Exit(0)
	}

	// Check for required inputs
	if *dataInput == "" {
		showUsage()
		fmt.Fprintf(os.Stderr, "\nError: --data is required\n")
		os.Exit(1)
	}

	// Parse input
	rawData, err := readJSONInput(*dataInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading sales data: %v\n", err)
		os.Exit(2)
	}

	dataset, err := reportapi.ParseSalesData(rawData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sales data: %v\n", err)
		os.Exit(2)
	}

	log.Printf("INFO: Analyzing %d purchase records for %d sellers",
		len(dataset.PurchaseRecords), len(dataset.Sellers))

	// Run the pipeline with the reference strategies
	results, err := core.Analyze(dataset, core.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis error: %v\n", err)
		os.Exit(2)
	}

	report := reportapi.NewReport(results)
	log.Printf("INFO: Report %s generated: %d sellers ranked", report.ReportID, report.SellerCount)

	// Output results
	var output []byte
	switch *outputFormat {
	case "json":
		output, err = report.EncodeJSON()
	case "cbor":
		output, err = report.EncodeCBOR()
	case "text":
		output = []byte(formatText(report))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", *outputFormat)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
		os.Exit(2)
	}

	if err := writeOutput(*outputPath, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(2)
	}
	os.Exit(0)
}

func showUsage() {
	fmt.Println("Seller Sales Performance Report")
	fmt.Println()
	fmt.Println("Aggregates revenue and profit per seller, ranks sellers by profit,")
	fmt.Println("assigns tiered bonuses and lists each seller's top purchased products.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sales-report --data <json> [options]")
	fmt.Println()
	fmt.Println("Required Flags:")
	fmt.Println("  --data <json>           Sales data document (file path or inline JSON)")
	fmt.Println()
	fmt.Println("Optional Flags:")
	fmt.Println("  --format <text|json|cbor>  Output format (default: text)")
	fmt.Println("  --out <path>               Output file (default: stdout)")
	fmt.Println("  --help                     Show this help message")
	fmt.Println()
	fmt.Println("Input Format:")
	fmt.Println("  {")
	fmt.Println("    \"products\":         [{\"sku\": \"A\", \"purchase_price\": 10}],")
	fmt.Println("    \"sellers\":          [{\"id\": \"S1\", \"first_name\": \"Ada\", \"last_name\": \"Day\"}],")
	fmt.Println("    \"purchase_records\": [{")
	fmt.Println("      \"seller_id\": \"S1\", \"total_amount\": 100, \"total_discount\": 0,")
	fmt.Println("      \"items\": [{\"sku\": \"A\", \"quantity\": 2, \"sale_price\": 15}]")
	fmt.Println("    }]")
	fmt.Println("  }")
	fmt.Println()
	fmt.Println("  Numeric fields also accept numeric strings (\"purchase_price\": \"10\").")
	fmt.Println()
	fmt.Println("Exit Codes:")
	fmt.Println("  0 - Report generated")
	fmt.Println("  1 - Invalid usage")
	fmt.Println("  2 - Invalid input or runtime error")
}

func readJSONInput(input string) ([]byte, error) {
	// Try reading as file first
	if data, err := os.ReadFile(input); err == nil {
		return data, nil
	}
	// Treat as inline JSON
	return []byte(input), nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func formatText(report *reportapi.Report) string {
	out := fmt.Sprintf("Report %s (%s)\n", report.ReportID, report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	for rank, r := range report.Results {
		out += fmt.Sprintf("#%d %s (%s): revenue=%.2f profit=%.2f sales=%d bonus=%.2f\n",
			rank+1, r.Name, r.SellerID, r.Revenue, r.Profit, r.SalesCount, r.Bonus)
		for _, p := range r.TopProducts {
			out += fmt.Sprintf("    %s x%g\n", p.SKU, p.Quantity)
		}
	}
	return out
}
