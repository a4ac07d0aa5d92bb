// Package model holds the Item entity and the request payloads of the
// item endpoints.
package model

import (
	"strconv"
	"time"

	"github.com/deppfellow/multitier-app/internal/validation"
)

// Item is a single row of the items table.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListItemsRequest carries no input.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// ItemIDRequest addresses a single item by its path id.
//
// The id is kept as text; ParseID decides whether it can name a row.
type ItemIDRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *ItemIDRequest) Validate() error {
	return nil
}

// ParseID returns the numeric id and whether it is a positive integer.
func (r *ItemIDRequest) ParseID() (int64, bool) {
	return parseID(r.ID)
}

// CreateItemRequest is the body of POST /api/items.
//
// A nil Description means the field was omitted.
type CreateItemRequest struct {
	Name        string  `json:"name" form:"name" validate:"notblank"`
	Description *string `json:"description" form:"description"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateItemRequest is the body of PUT /api/items/:id. Name is always
// replaced; a nil Description keeps the stored one.
type UpdateItemRequest struct {
	ID          string  `param:"id" json:"-"`
	Name        string  `json:"name" form:"name" validate:"notblank"`
	Description *string `json:"description" form:"description"`
}

func (r *UpdateItemRequest) Validate() error {
	return validation.Struct(r)
}

// ParseID returns the numeric id and whether it is a positive integer.
func (r *UpdateItemRequest) ParseID() (int64, bool) {
	return parseID(r.ID)
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
