package browse

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/JusticeSenyo/movieproject/tmdb"
)

var printer = message.NewPrinter(language.English)

// YearLabel returns the release year, or "" when the date is unknown
func YearLabel(m tmdb.MovieSummary) string {
	year := m.Year()
	if year == 0 {
		return ""
	}
	return fmt.Sprintf("%d", year)
}

// RatingLabel formats a vote average with one decimal
func RatingLabel(vote float64) string {
	return fmt.Sprintf("%.1f", vote)
}

// MoneyLabel formats a dollar amount with thousands separators
func MoneyLabel(amount int64) string {
	return printer.Sprintf("$%d", amount)
}

// RuntimeLabel formats a runtime in minutes
func RuntimeLabel(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}
