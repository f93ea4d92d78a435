package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"dataforge/internal/database"
	"dataforge/internal/models"
	"dataforge/internal/pipeline"
)

const usage = `dataforge - data processing pipeline

Usage:
  dataforge ingest <file> [-preview] [-verbose]   Ingest and process a CSV file
  dataforge status                                Show processing statistics
  dataforge jobs                                  List recent processing jobs
  dataforge init                                  Initialize the database
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	var err error
	switch os.Args[1] {
	case "ingest":
		err = runIngest(os.Args[2:])
	case "status":
		err = runStatus()
	case "jobs":
		err = runJobs()
	case "init":
		err = runInit()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runIngest(args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	preview := fs.Bool("preview", false, "preview only, don't save")
	verbose := fs.Bool("verbose", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := fs.Arg(0)
	if path == "" {
		return fmt.Errorf("ingest requires a file path")
	}

	fmt.Printf("Loading: %s\n", path)

	ingester := pipeline.NewIngester(pipeline.Options{})
	table, meta, profile, err := ingester.Ingest(path)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d rows, %d columns\n", meta.RowCount, meta.ColumnCount)

	if *verbose {
		fmt.Println("\nColumn Info:")
		cols := make([]string, 0, len(profile))
		for col := range profile {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			info := profile[col]
			fmt.Printf("  - %s: %s (%.2f%% null, %d unique)\n", col, info.DType, info.NullPercentage, info.UniqueCount)
		}
	}

	fmt.Println("\nValidating...")
	validated := pipeline.NewValidator().ValidateTable(table)

	validCount := 0
	for _, row := range validated.Rows {
		if v, ok := row["is_valid"].(bool); ok && v {
			validCount++
		}
	}
	invalidCount := len(validated.Rows) - validCount
	fmt.Printf("Valid: %d\nInvalid: %d\n", validCount, invalidCount)

	if *preview {
		fmt.Println("\nPreview (first 5 rows):")
		printTable(validated, 5)
		return nil
	}

	fmt.Println("\nSaving to database...")
	database.ConnectDatabase()
	db := database.GetDB()

	now := time.Now().UTC()
	job := models.ProcessingJob{
		ID:          uuid.New(),
		Filename:    meta.Filename,
		Status:      models.JobStatusCompleted,
		TotalRows:   len(validated.Rows),
		ValidRows:   validCount,
		InvalidRows: invalidCount,
		StartedAt:   &now,
		CompletedAt: &now,
	}
	if err := db.Create(&job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	records := make([]models.Record, 0, len(validated.Rows))
	for _, row := range validated.Rows {
		records = append(records, models.FromRow(row, meta.Filename))
	}
	if len(records) > 0 {
		if err := db.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to store records: %w", err)
		}
	}

	fmt.Printf("Saved %d records (Job ID: %s)\n", len(records), job.ID)
	fmt.Println("\nProcessing complete!")
	return nil
}

func runStatus() error {
	database.ConnectDatabase()
	db := database.GetDB()

	var totalRecords, validRecords, totalJobs int64
	if err := db.Model(&models.Record{}).Count(&totalRecords).Error; err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}
	if err := db.Model(&models.Record{}).Where("is_valid = ?", true).Count(&validRecords).Error; err != nil {
		return fmt.Errorf("failed to count valid records: %w", err)
	}
	if err := db.Model(&models.ProcessingJob{}).Count(&totalJobs).Error; err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "Total Records\t%d\n", totalRecords)
	fmt.Fprintf(w, "Valid Records\t%d\n", validRecords)
	fmt.Fprintf(w, "Invalid Records\t%d\n", totalRecords-validRecords)
	fmt.Fprintf(w, "Processing Jobs\t%d\n", totalJobs)
	return w.Flush()
}

func runJobs() error {
	database.ConnectDatabase()
	db := database.GetDB()

	var jobs []models.ProcessingJob
	if err := db.Order("created_at desc").Limit(10).Find(&jobs).Error; err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILENAME\tSTATUS\tROWS\tVALID\tINVALID")
	for _, job := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			job.ID, job.Filename, job.Status, job.TotalRows, job.ValidRows, job.InvalidRows)
	}
	return w.Flush()
}

func runInit() error {
	fmt.Println("Initializing database...")
	database.ConnectDatabase()
	fmt.Println("Database initialized")
	return nil
}

// printTable renders up to n rows of a table in column order.
func printTable(t *pipeline.Table, n int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := ""
	for i, col := range t.Columns {
		if i > 0 {
			header += "\t"
		}
		header += col
	}
	fmt.Fprintln(w, header)

	for i, row := range t.Rows {
		if i >= n {
			break
		}
		line := ""
		for j, col := range t.Columns {
			if j > 0 {
				line += "\t"
			}
			if row[col] == nil {
				line += "<null>"
			} else {
				line += fmt.Sprintf("%v", row[col])
			}
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()
}
