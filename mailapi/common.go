// Package mailapi holds the wire types of the email marketing API: request
// bodies, path and query parameters, response objects and error payloads.
//
// Struct tags are the source of truth for the published schemas:
//
//	json         property name
//	validate     go-playground rules; "required" marks the property required,
//	             min/max/len become length, range or item bounds, oneof
//	             becomes an enum, email/uuid/url/base64/datetime select a
//	             format, multiple_of=N becomes multipleOf, and rules after
//	             "dive" constrain array items or map values
//	description  property description
//	example      example value, parsed according to the property type
//	default      default value, parsed according to the property type
//	format       explicit format override ("binary")
package mailapi

// Pagination is the query accepted by every list operation.
type Pagination struct {
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" default:"10" example:"25" description:"Maximum number of objects to return."`
	Cursor string `json:"cursor,omitempty" validate:"omitempty,max=512" example:"eyJpZCI6IjQ4MjEifQ" description:"Opaque cursor returned by a previous page; omit to start from the beginning."`
}

// Page is the envelope returned by every list operation.
type Page[T any] struct {
	HasMore bool   `json:"has_more" validate:"required" example:"false" description:"Whether more objects exist after this page."`
	Cursor  string `json:"cursor" validate:"required" example:"eyJpZCI6IjQ4MjEifQ" description:"Cursor to pass to fetch the next page; empty on the last page."`
	Data    []T    `json:"data" validate:"required,dive" description:"Objects on this page."`
}

// Deleted is returned by every delete operation.
type Deleted struct {
	ID      string `json:"id" validate:"required,uuid" example:"2c8f4b36-54a6-4d8e-9c1b-7f6a3e2d1c0b" description:"Identifier of the deleted object."`
	Deleted bool   `json:"deleted" validate:"required" example:"true" description:"Always true."`
}

// BrandPath addresses a single brand.
type BrandPath struct {
	BrandID string `json:"brand_id" validate:"required,uuid" example:"7f3e9a52-1c4b-4e8d-a6f2-0b9d8c7e6a51" description:"Brand identifier."`
}
