// Package entity holds concrete documents: named-field facades over the
// generic document contract.
package entity

import (
	"github.com/sghaida/designpatterns/document"
)

//go:generate go run ../cmd/docgen -spec car.entity.json -out car.gen.go

// Car is a document with model, price and color accessors.
//
// Any other property can still be stored with Put and read with the
// document helpers:
//
//	car := entity.NewCar(map[string]any{"model": "Tesla Model S", "price": 79900})
//	car.Put("color", "red")
//	car.SetModel("Tesla Model 3")
//
// Model, Price and Color never fail: a missing property and a property of
// the wrong type both yield the zero value. Use TryModel, TryPrice and
// TryColor to see a type mismatch.
//
// The zero Car is an empty car: reads see no properties and the first Put
// allocates its document.
type Car struct {
	*document.Base
}

// Put stores value under key, allocating the document on first use.
func (c *Car) Put(key string, value any) {
	if c.Base == nil {
		c.Base = document.New(nil)
	}
	c.Base.Put(key, value)
}

// NewCar returns a car seeded with a copy of props. A nil props yields an
// empty car.
func NewCar(props map[string]any) *Car {
	return &Car{Base: document.New(props)}
}

// CarFromDocument wraps an existing document, taking ownership of it.
func CarFromDocument(doc *document.Base) *Car {
	if doc == nil {
		doc = document.New(nil)
	}
	return &Car{Base: doc}
}
