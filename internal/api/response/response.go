// Package response builds the JSON envelope shared by every endpoint.
package response

import (
	"fmt"
	"math"
)

// Envelope status values.
const (
	StatusSuccess     = "success"
	StatusCreated     = "created"
	StatusUpdated     = "updated"
	StatusDeleted     = "deleted"
	StatusDeactivated = "deactivated"
	StatusError       = "error"
)

type Link struct {
	Href string `json:"href"`
}

type Links struct {
	Self  Link  `json:"self"`
	First *Link `json:"first,omitempty"`
	Prev  *Link `json:"prev,omitempty"`
	Next  *Link `json:"next,omitempty"`
	Last  *Link `json:"last,omitempty"`
}

type Envelope struct {
	Data       any         `json:"data"`
	Status     string      `json:"status"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Links      *Links      `json:"_links,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

// Page is the data member of a paginated envelope and of list responses.
type Page[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func NewPage[T any](items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Count: len(items)}
}

// Success wraps data. An empty selfHref omits _links.
func Success(data any, status, selfHref string) Envelope {
	env := Envelope{Data: data, Status: status}
	if selfHref != "" {
		env.Links = &Links{Self: Link{Href: selfHref}}
	}
	return env
}

// Error builds the error envelope. An empty details is omitted.
func Error(message, details string) Envelope {
	return Envelope{
		Data:   nil,
		Status: StatusError,
		Error:  &ErrorBody{Message: message, Details: details},
	}
}

// Paginated wraps one page of items. totalPages is ceil(totalItems/pageSize);
// prev is present only past the first page and next only before the last.
// With no items the last link points at page 0.
func Paginated[T any](items []T, page, pageSize, totalItems int, baseURL string) Envelope {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}

	href := func(p int) string {
		return fmt.Sprintf("%s?page=%d&pageSize=%d", baseURL, p, pageSize)
	}

	links := &Links{
		Self:  Link{Href: href(page)},
		First: &Link{Href: href(1)},
		Last:  &Link{Href: href(totalPages)},
	}
	if page > 1 {
		links.Prev = &Link{Href: href(page - 1)}
	}
	if page < totalPages {
		links.Next = &Link{Href: href(page + 1)}
	}

	return Envelope{
		Data:   NewPage(items),
		Status: StatusSuccess,
		Pagination: &Pagination{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
		},
		Links: links,
	}
}
