// package formatter provides functions to export movie lists to various formats (JSON, CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"espoir/internal/models"
)

// ExportToJSON converts a movie list to indented JSON.
func ExportToJSON(title string, movies []models.Movie) ([]byte, error) {
	payload := struct {
		Title  string         `json:"title"`
		Count  int            `json:"count"`
		Movies []models.Movie `json:"movies"`
	}{Title: title, Count: len(movies), Movies: movies}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

// ExportToCSV converts a movie list to CSV with columns: ID, Title, Release Date, Rating, Runtime, Genres
func ExportToCSV(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Release Date", "Rating", "Runtime", "Genres"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range movies {
		record := []string{
			strconv.Itoa(movie.ID),
			movie.Title,
			movie.ReleaseDate,
			strconv.FormatFloat(movie.VoteAverage, 'f', 1, 64),
			formatRuntime(movie.Runtime),
			strings.Join(movie.GenreNames(), "; "),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a movie list to a Markdown document.
func ExportToMarkdown(title string, movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(movies)))

	for i, movie := range movies {
		yearPart := ""
		if year := movie.Year(); year != "" {
			yearPart = fmt.Sprintf(" (%s)", year)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s — %.1f/10\n", i+1, movie.Title, yearPart, movie.VoteAverage))
		if movie.Tagline != "" {
			buf.WriteString(fmt.Sprintf("   *%s*\n", movie.Tagline))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a movie list to plain text.
func ExportToText(title string, movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", title))
	buf.WriteString(fmt.Sprintf("Movies: %d\n\n", len(movies)))

	for i, movie := range movies {
		buf.WriteString(fmt.Sprintf("%d. %s", i+1, movie.Title))
		if year := movie.Year(); year != "" {
			buf.WriteString(fmt.Sprintf(" (%s)", year))
		}
		buf.WriteString(fmt.Sprintf(" [%.1f]", movie.VoteAverage))
		if movie.Runtime > 0 {
			buf.WriteString(fmt.Sprintf(" %s", formatRuntime(movie.Runtime)))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// Export converts a movie list to the named format: json, csv, markdown, or txt.
func Export(format, title string, movies []models.Movie) ([]byte, error) {
	switch format {
	case "json":
		return ExportToJSON(title, movies)
	case "csv":
		return ExportToCSV(movies)
	case "markdown", "md":
		return ExportToMarkdown(title, movies)
	case "txt", "text":
		return ExportToText(title, movies)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// formatRuntime renders minutes as "2h 14m". Zero runtime renders empty.
func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
