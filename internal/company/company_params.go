package company

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	FilterAll = "all"

	NextEventWithinWeek     = "within_week"
	NextEventWithinTwoWeeks = "within_two_weeks"
	NextEventWithinMonth    = "within_month"

	SortNextEventDate = "next_event_date"

	defaultPerPage = 10
)

// sortColumns whitelists datastore-ordered sort fields. next_event_date is
// handled separately because it spans the joined events relation.
var sortColumns = map[string]bool{
	"name":       true,
	"industry":   true,
	"status":     true,
	"location":   true,
	"created_at": true,
	"updated_at": true,
}

type ListParams struct {
	Page              int
	PerPage           int
	Sort              string
	Order             string
	Query             string
	RecruitmentStatus string
	NextEvent         string
}

// ParseListParams normalizes list query parameters. Parsing is deliberately
// permissive: malformed values fall back to defaults instead of erroring, and
// pages past the end simply come back empty.
func ParseListParams(c *gin.Context) ListParams {
	p := ListParams{
		Page:              atoiOr(c.Query("page"), 1),
		PerPage:           atoiOr(c.Query("per_page"), defaultPerPage),
		Sort:              c.DefaultQuery("sort", "name"),
		Order:             c.DefaultQuery("order", "asc"),
		Query:             c.Query("query"),
		RecruitmentStatus: c.DefaultQuery("recruitment_status", FilterAll),
		NextEvent:         c.DefaultQuery("next_event", FilterAll),
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.Order != "asc" && p.Order != "desc" {
		p.Order = "asc"
	}
	if !sortColumns[p.Sort] && p.Sort != SortNextEventDate {
		p.Sort = "name"
	}
	switch p.NextEvent {
	case FilterAll, NextEventWithinWeek, NextEventWithinTwoWeeks, NextEventWithinMonth:
	default:
		p.NextEvent = FilterAll
	}

	return p
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// WindowEnd computes the upper bound of the next-event filter window.
// within_month means one calendar month, not thirty days.
func (p ListParams) WindowEnd(now time.Time) time.Time {
	switch p.NextEvent {
	case NextEventWithinWeek:
		return now.AddDate(0, 0, 7)
	case NextEventWithinTwoWeeks:
		return now.AddDate(0, 0, 14)
	case NextEventWithinMonth:
		return now.AddDate(0, 1, 0)
	default:
		return now
	}
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
