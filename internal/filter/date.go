package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	yearOnlyRegex = regexp.MustCompile(`\b(20\d{2})\b`)
)

// IsRecentArticle reports whether a published-date string is within the last
// 60 days. Unparseable dates are kept rather than dropped: feeds disagree
// wildly on date formats.
func IsRecentArticle(dateStr string) bool {
	if dateStr == "" || dateStr == "N/A" || dateStr == "Recent" {
		return true
	}

	now := time.Now()
	var pubDate time.Time
	var err error

	//Case 1: ISO format "2026-01-27" or 2026-01-27T...
	if isoDateRegex.MatchString(dateStr) {
		pubDate, err = time.Parse("2006-01-02", dateStr[:10])
		if err == nil {
			return isWithin60Days(now, pubDate)
		}
	}

	//case 2: RFC1123 style dates ("Mon, 17 Aug 2026 10:00:00 GMT")
	if pubDate, err = time.Parse(time.RFC1123, dateStr); err == nil {
		return isWithin60Days(now, pubDate)
	}
	if pubDate, err = time.Parse(time.RFC1123Z, dateStr); err == nil {
		return isWithin60Days(now, pubDate)
	}

	//case 3: dd/mm/yyyy or mm/dd/yyyy
	if strings.Contains(dateStr, "/") {
		parts := strings.Split(dateStr, "/")
		if len(parts) >= 3 {
			day, _ := strconv.Atoi(parts[0])
			month, _ := strconv.Atoi(parts[1])
			year, _ := strconv.Atoi(parts[2])

			//assume dd/mm/yyyy
			pubDate = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			return isWithin60Days(now, pubDate)
		}
	}

	//case 4: year only fallback
	if match := yearOnlyRegex.FindStringSubmatch(dateStr); match != nil {
		year, _ := strconv.Atoi(match[1])
		validYears := []int{now.Year(), now.Year() - 1}
		for _, validYear := range validYears {
			if year == validYear {
				return true
			}
		}
		return false
	}

	//default
	return true
}

func isWithin60Days(now, pubDate time.Time) bool {
	diff := now.Sub(pubDate)
	//reject if older than 60 days
	if diff > 60*24*time.Hour {
		return false
	}

	//reject if future date >2 days (timezone issues)
	if diff < -2*24*time.Hour {
		return false
	}
	return true
}
